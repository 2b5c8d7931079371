package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"giving-tree-admin/internal/models"
	"giving-tree-admin/internal/pricing"
	"giving-tree-admin/internal/repository/cache"
)

func (s *Service) Charities(ctx context.Context) ([]models.Charity, error) {
	if v, err := s.listings.Charities(); err == nil {
		return v, nil
	}
	v, err := s.api.ListAdminCharities(ctx)
	if err != nil {
		return nil, err
	}
	s.listings.PutCharities(v)
	return v, nil
}

func (s *Service) wishes(ctx context.Context) ([]models.Wish, error) {
	if v, err := s.listings.Wishes(); err == nil {
		return v, nil
	}
	v, err := s.api.ListWishes(ctx)
	if err != nil {
		return nil, err
	}
	s.listings.PutWishes(v)
	return v, nil
}

// Wishes adds the funded percentage the wish table shows next to each row.
func (s *Service) Wishes(ctx context.Context) ([]models.WishProgress, error) {
	ws, err := s.wishes(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.WishProgress, 0, len(ws))
	for _, w := range ws {
		out = append(out, models.WishProgress{Wish: w, Progress: pricing.Percent(w.CurrentPrice, w.TotalPrice)})
	}
	return out, nil
}

func (s *Service) Donations(ctx context.Context) ([]models.Donation, error) {
	if v, err := s.listings.Donations(); err == nil {
		return v, nil
	}
	v, err := s.api.ListPayments(ctx)
	if err != nil {
		return nil, err
	}
	s.listings.PutDonations(v)
	return v, nil
}

func (s *Service) Stats(ctx context.Context) (models.Stats, error) {
	charities, err := s.Charities(ctx)
	if err != nil {
		return models.Stats{}, fmt.Errorf("charities: %w", err)
	}
	donations, err := s.Donations(ctx)
	if err != nil {
		return models.Stats{}, fmt.Errorf("donations: %w", err)
	}

	st := models.Stats{TotalCharities: len(charities), DonationCount: len(donations)}
	for _, c := range charities {
		if c.Active {
			st.ActiveCharities++
		}
	}
	amounts := make([]float64, 0, len(donations))
	for _, d := range donations {
		amounts = append(amounts, d.Amount)
	}
	st.TotalDonations = pricing.Sum(amounts...)
	return st, nil
}

func (s *Service) ToggleCharity(ctx context.Context, id int64) (string, error) {
	msg, err := s.api.ToggleCharityStatus(ctx, id)
	if err != nil {
		return "", err
	}
	s.listings.Invalidate(cache.KeyCharities)
	logrus.WithField("charity_id", id).Info(msg)
	return msg, nil
}

func (s *Service) DeleteCharity(ctx context.Context, id int64) error {
	if err := s.api.DeleteCharity(ctx, id); err != nil {
		return err
	}
	s.listings.Invalidate(cache.KeyCharities, cache.KeyWishes)
	logrus.WithField("charity_id", id).Info("charity deleted")
	return nil
}
