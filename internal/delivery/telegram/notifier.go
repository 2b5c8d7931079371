package telegram

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"giving-tree-admin/internal/models"
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Notifier posts a short summary of every accepted charity to an ops chat.
type Notifier struct {
	bot    sender
	chatID int64
}

func NewNotifier(token string, chatID int64) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram: %w", err)
	}
	return &Notifier{bot: bot, chatID: chatID}, nil
}

func (n *Notifier) CharitySubmitted(_ context.Context, p models.CharityPayload) error {
	msg := tgbotapi.NewMessage(n.chatID, summary(p))
	msg.DisableWebPagePreview = true
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}

func summary(p models.CharityPayload) string {
	verb := "created"
	if p.ID != nil {
		verb = fmt.Sprintf("updated (#%d)", *p.ID)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Charity %s: %s\n", verb, p.Name)
	fmt.Fprintf(&sb, "%s\n", p.Website)
	for i, li := range p.LineItems {
		fmt.Fprintf(&sb, "%d. %s x%g @ %.2f = %.2f\n", i+1, li.Name, li.Quantity, li.UnitPrice, li.TotalPrice)
	}
	fmt.Fprintf(&sb, "Total: %.2f", p.Total())
	return sb.String()
}
