package cache

import (
	"giving-tree-admin/internal/models"
)

const (
	KeyCharities = "charities"
	KeyWishes    = "wishes"
	KeyDonations = "donations"
)

// ListingCacheRepo keeps the last backend listings for a short TTL so the
// dashboard does not hit the API on every page render.
type ListingCacheRepo struct {
	cch KV
}

func NewListingCache(cch KV) *ListingCacheRepo {
	return &ListingCacheRepo{cch: cch}
}

func (l *ListingCacheRepo) PutCharities(v []models.Charity) { l.cch.Put(KeyCharities, v) }
func (l *ListingCacheRepo) PutWishes(v []models.Wish) { l.cch.Put(KeyWishes, v) }
func (l *ListingCacheRepo) PutDonations(v []models.Donation) { l.cch.Put(KeyDonations, v) }

func (l *ListingCacheRepo) Charities() ([]models.Charity, error) {
	return listing[models.Charity](l.cch, KeyCharities)
}

func (l *ListingCacheRepo) Wishes() ([]models.Wish, error) {
	return listing[models.Wish](l.cch, KeyWishes)
}

func (l *ListingCacheRepo) Donations() ([]models.Donation, error) {
	return listing[models.Donation](l.cch, KeyDonations)
}

func (l *ListingCacheRepo) Invalidate(keys ...string) {
	for _, k := range keys {
		l.cch.Delete(k)
	}
}

func listing[T any](cch KV, key string) ([]T, error) {
	v, ok := cch.Get(key)
	if !ok {
		return nil, miss("listing", key)
	}
	out, ok := v.([]T)
	if !ok {
		return nil, badType("listing", key, v)
	}
	return out, nil
}
