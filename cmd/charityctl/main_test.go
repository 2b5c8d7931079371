package main

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"

	"giving-tree-admin/internal/form"
	"giving-tree-admin/internal/models"
	"giving-tree-admin/internal/pricing"
)

type recordingAPI struct {
	created []models.CharityPayload
	updated []models.CharityPayload
}

func (r *recordingAPI) CreateCharity(_ context.Context, p models.CharityPayload) error {
	r.created = append(r.created, p)
	return nil
}

func (r *recordingAPI) UpdateCharity(_ context.Context, _ int64, p models.CharityPayload) error {
	r.updated = append(r.updated, p)
	return nil
}

func fakeDraft(f *gofakeit.Faker, wishes int) models.CharityDraft {
	d := models.CharityDraft{
		Name:        f.Company(),
		Description: f.Sentence(8),
		Website:     f.URL(),
		ImageURL:    f.URL(),
	}
	for i := 0; i < wishes; i++ {
		d.LineItems = append(d.LineItems, models.LineItem{
			Name:        f.ProductName(),
			Description: f.ProductDescription(),
			Quantity:    float64(f.Number(1, 50)),
			UnitPrice:   f.Price(1, 999),
		})
	}
	return d
}

func TestLoadDraft_SubmitsWhatTheFileSays(t *testing.T) {
	f := gofakeit.New(7)
	d := fakeDraft(f, 3)
	api := &recordingAPI{}
	c := form.NewController(api)

	require.NoError(t, loadDraft(c, d))
	payload, err := c.Submit(context.Background())
	require.NoError(t, err)

	require.Len(t, api.created, 1)
	require.Equal(t, d.Name, payload.Name)
	require.Len(t, payload.LineItems, 3)
	for i, li := range payload.LineItems {
		require.Equal(t, d.LineItems[i].Quantity, li.Quantity)
		require.Equal(t, d.LineItems[i].UnitPrice, li.UnitPrice)
		require.Equal(t, pricing.ComputeTotal(li.Quantity, li.UnitPrice), li.TotalPrice)
	}
}

func TestLoadDraft_TooManyWishes(t *testing.T) {
	f := gofakeit.New(7)
	c := form.NewController(&recordingAPI{}, form.WithBounds(1, 2))
	err := loadDraft(c, fakeDraft(f, 3))
	require.ErrorIs(t, err, form.ErrValidation)
	require.Equal(t, "Maximum of 2 wishes allowed.", err.Error())
}

func TestLoadDraft_EditKeepsWishIDs(t *testing.T) {
	f := gofakeit.New(11)
	d := fakeDraft(f, 3)
	first, second := int64(70), int64(71)
	d.LineItems[0].ID = &first
	d.LineItems[1].ID = &second

	api := &recordingAPI{}
	charity, wishes := editSource(42, d)
	c := form.NewEditController(api, charity, wishes)
	require.NoError(t, loadDraft(c, d))

	payload, err := c.Submit(context.Background())
	require.NoError(t, err)
	require.Empty(t, api.created)
	require.Len(t, api.updated, 1)
	require.Equal(t, int64(42), *payload.ID)

	require.Len(t, payload.LineItems, 3)
	require.Equal(t, first, *payload.LineItems[0].ID)
	require.Equal(t, second, *payload.LineItems[1].ID)
	require.Nil(t, payload.LineItems[2].ID)
	require.Equal(t, d.LineItems[2].Name, payload.LineItems[2].Name)
}
