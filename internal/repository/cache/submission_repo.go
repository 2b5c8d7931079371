package cache

import (
	"fmt"
	"net/http"
	"sort"

	"giving-tree-admin/internal/models"
)

// SubmissionCacheRepo is the in-process audit log used when no database is
// configured. It satisfies the same contract as the Postgres repository.
type SubmissionCacheRepo struct {
	cch KV
}

func NewSubmissionCache(cch KV) *SubmissionCacheRepo {
	return &SubmissionCacheRepo{cch: cch}
}

func (s *SubmissionCacheRepo) Create(sub models.Submission) error {
	if _, ok := s.cch.Get(sub.EventID); ok {
		return NewErrorHandler(fmt.Errorf("submission %s already recorded", sub.EventID), http.StatusConflict)
	}
	s.cch.Put(sub.EventID, sub)
	return nil
}

func (s *SubmissionCacheRepo) CreateOrUpdate(sub models.Submission) error {
	s.cch.Put(sub.EventID, sub)
	return nil
}

func (s *SubmissionCacheRepo) Get(eventID string) (models.Submission, error) {
	v, ok := s.cch.Get(eventID)
	if !ok {
		return models.Submission{}, miss("submission", eventID)
	}
	sub, ok := v.(models.Submission)
	if !ok {
		return models.Submission{}, badType("submission", eventID, v)
	}
	return sub, nil
}

// GetAll returns newest first.
func (s *SubmissionCacheRepo) GetAll() ([]models.Submission, error) {
	snap := s.cch.Snapshot()
	out := make([]models.Submission, 0, len(snap))
	for id, v := range snap {
		sub, ok := v.(models.Submission)
		if !ok {
			return nil, badType("submission", id, v)
		}
		out = append(out, sub)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.After(out[j].SubmittedAt) })
	return out, nil
}
