package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"giving-tree-admin/internal/form"
	"giving-tree-admin/internal/models"
	"giving-tree-admin/internal/repository/cache"
)

func (s *Service) OpenCreateDraft() (string, form.State) {
	id := s.newID()
	c := form.NewController(s.api, s.formOpts...)
	s.drafts.PutDraft(id, c)
	logrus.WithField("draft", id).Debug("create draft opened")
	return id, c.State()
}

// OpenEditDraft loads the charity and its wishes. Wishes carry only the charity
// name, so that is what they are matched on.
func (s *Service) OpenEditDraft(ctx context.Context, charityID int64) (string, form.State, error) {
	charities, err := s.Charities(ctx)
	if err != nil {
		return "", form.State{}, err
	}
	var (
		charity models.Charity
		found   bool
	)
	for _, c := range charities {
		if c.ID == charityID {
			charity, found = c, true
			break
		}
	}
	if !found {
		return "", form.State{}, fmt.Errorf("charity %d: %w", charityID, ErrNotFound)
	}

	all, err := s.wishes(ctx)
	if err != nil {
		return "", form.State{}, err
	}
	var wishes []models.Wish
	for _, w := range all {
		if w.CharityName == charity.Name {
			wishes = append(wishes, w)
		}
	}

	id := s.newID()
	c := form.NewEditController(s.api, charity, wishes, s.formOpts...)
	s.drafts.PutDraft(id, c)
	logrus.WithFields(logrus.Fields{"draft": id, "charity_id": charityID, "wishes": len(wishes)}).Debug("edit draft opened")
	return id, c.State(), nil
}

// Draft looks up an open form and keeps it alive for another TTL.
func (s *Service) Draft(id string) (*form.Controller, error) {
	c, err := s.drafts.GetDraft(id)
	if err != nil {
		return nil, mapCacheErr(err)
	}
	s.drafts.PutDraft(id, c)
	return c, nil
}

func (s *Service) DiscardDraft(id string) error {
	if _, err := s.drafts.GetDraft(id); err != nil {
		return mapCacheErr(err)
	}
	s.drafts.DeleteDraft(id)
	return nil
}

// SubmitDraft runs the form submit and records the outcome. The returned state
// is taken after the call so it reflects a reset or an error message.
func (s *Service) SubmitDraft(ctx context.Context, id string) (models.CharityPayload, form.State, error) {
	c, err := s.Draft(id)
	if err != nil {
		return models.CharityPayload{}, form.State{}, err
	}
	payload, err := c.Submit(ctx)
	submitOutcome(err)
	if err != nil {
		return models.CharityPayload{}, c.State(), err
	}
	s.listings.Invalidate(cache.KeyCharities, cache.KeyWishes)
	return payload, c.State(), nil
}

func mapCacheErr(err error) error {
	if errors.Is(err, cache.ErrMiss) {
		return fmt.Errorf("%v: %w", err, ErrNotFound)
	}
	return err
}
