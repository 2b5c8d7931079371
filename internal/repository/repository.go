package repository

import (
	"time"

	"github.com/jinzhu/gorm"

	"giving-tree-admin/internal/form"
	"giving-tree-admin/internal/models"
	"giving-tree-admin/internal/repository/cache"
	"giving-tree-admin/internal/repository/postgres"
)

type SubmissionPostgres interface {
	Create(s models.Submission) error
	CreateOrUpdate(s models.Submission) error
	Get(eventID string) (models.Submission, error)
	GetAll() ([]models.Submission, error)
}

type DraftStore interface {
	PutDraft(id string, c *form.Controller)
	GetDraft(id string) (*form.Controller, error)
	DeleteDraft(id string)
}

type ListingCache interface {
	PutCharities(v []models.Charity)
	PutWishes(v []models.Wish)
	PutDonations(v []models.Donation)
	Charities() ([]models.Charity, error)
	Wishes() ([]models.Wish, error)
	Donations() ([]models.Donation, error)
	Invalidate(keys ...string)
}

type Repository struct {
	SubmissionPostgres
	DraftStore
	ListingCache

	closers []func()
}

// NewRepository falls back to an in-memory audit log when db is nil.
func NewRepository(db *gorm.DB, draftTTL, listingTTL time.Duration) *Repository {
	drafts := cache.NewShardedCache(cache.WithShardTTL(draftTTL))
	listings := cache.NewCache(cache.WithTTL(listingTTL))
	r := &Repository{
		DraftStore:   cache.NewDraftCache(drafts),
		ListingCache: cache.NewListingCache(listings),
		closers:      []func(){drafts.Close, listings.Close},
	}
	if db != nil {
		r.SubmissionPostgres = postgres.NewSubmissionPostgres(db)
	} else {
		mem := cache.NewCache()
		r.SubmissionPostgres = cache.NewSubmissionCache(mem)
		r.closers = append(r.closers, mem.Close)
	}
	return r
}

// Close stops the cache janitors.
func (r *Repository) Close() {
	for _, c := range r.closers {
		c()
	}
}
