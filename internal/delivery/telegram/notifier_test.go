package telegram

import (
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"

	"giving-tree-admin/internal/models"
)

type fakeBot struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if b.err != nil {
		return tgbotapi.Message{}, b.err
	}
	b.sent = append(b.sent, c.(tgbotapi.MessageConfig))
	return tgbotapi.Message{}, nil
}

func TestNotifier_CharitySubmitted(t *testing.T) {
	bot := &fakeBot{}
	n := &Notifier{bot: bot, chatID: 42}

	id := int64(3)
	p := models.CharityPayload{
		ID:      &id,
		Name:    "Hope Fund",
		Website: "https://hope.org",
		LineItems: []models.LineItem{
			{Name: "Beds", Quantity: 2, UnitPrice: 1000, TotalPrice: 2000},
			{Name: "Food", Quantity: 1.5, UnitPrice: 3, TotalPrice: 4.5},
		},
	}
	require.NoError(t, n.CharitySubmitted(context.Background(), p))
	require.Len(t, bot.sent, 1)
	require.Equal(t, int64(42), bot.sent[0].ChatID)

	text := bot.sent[0].Text
	require.Contains(t, text, "Charity updated (#3): Hope Fund")
	require.Contains(t, text, "1. Beds x2 @ 1000.00 = 2000.00")
	require.Contains(t, text, "2. Food x1.5 @ 3.00 = 4.50")
	require.Contains(t, text, "Total: 2004.50")
}

func TestNotifier_SendError(t *testing.T) {
	n := &Notifier{bot: &fakeBot{err: errors.New("forbidden")}, chatID: 1}
	err := n.CharitySubmitted(context.Background(), models.CharityPayload{Name: "x"})
	require.ErrorContains(t, err, "forbidden")
	require.Contains(t, summary(models.CharityPayload{Name: "x"}), "Charity created: x")
}
