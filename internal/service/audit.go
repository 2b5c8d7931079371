package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"giving-tree-admin/internal/models"
)

func humanizeValidationErrors(errs validator.ValidationErrors) string {
	var b strings.Builder
	for _, fe := range errs {
		if b.Len() > 0 {
			b.WriteString("; ")
		}
		if fe.Param() != "" {
			fmt.Fprintf(&b, "%s: %s=%s", fe.Namespace(), fe.Tag(), fe.Param())
		} else {
			fmt.Fprintf(&b, "%s: %s", fe.Namespace(), fe.Tag())
		}
	}
	return b.String()
}

func (s *Service) Submissions() ([]models.Submission, error) {
	return s.subs.GetAll()
}

// HandleMessage stores one submission event. Redelivery of the same event id
// overwrites the earlier row.
func (s *Service) HandleMessage(ctx context.Context, payload []byte) error {
	var ev models.SubmissionEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		auditOutcome("decode_error")
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err := s.v.StructCtx(ctx, ev); err != nil {
		auditOutcome("invalid")
		if verrs, ok := err.(validator.ValidationErrors); ok {
			return fmt.Errorf("%w: %s", ErrValidation, humanizeValidationErrors(verrs))
		}
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	charity, err := json.Marshal(ev.Charity)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	sub := models.Submission{
		EventID:     ev.EventID,
		Action:      ev.Action,
		CharityID:   ev.CharityID,
		CharityName: ev.Charity.Name,
		WishCount:   len(ev.Charity.LineItems),
		TotalAmount: ev.Charity.Total(),
		Payload:     string(charity),
		SubmittedAt: ev.SubmittedAt.UTC(),
	}
	if err := s.subs.CreateOrUpdate(sub); err != nil {
		auditOutcome("store_error")
		return fmt.Errorf("store submission %s: %w", ev.EventID, err)
	}
	auditOutcome("stored")
	logrus.WithFields(logrus.Fields{
		"event":   ev.EventID,
		"action":  ev.Action,
		"charity": ev.Charity.Name,
	}).Info("submission recorded")
	return nil
}
