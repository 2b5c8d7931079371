package cache

import (
	"giving-tree-admin/internal/form"
)

type DraftCacheRepo struct {
	cch KV
}

func NewDraftCache(cch KV) *DraftCacheRepo {
	return &DraftCacheRepo{cch: cch}
}

// PutDraft also refreshes the TTL, so every touch keeps an open form alive.
func (d *DraftCacheRepo) PutDraft(id string, c *form.Controller) {
	d.cch.Put(id, c)
}

func (d *DraftCacheRepo) GetDraft(id string) (*form.Controller, error) {
	v, ok := d.cch.Get(id)
	if !ok {
		return nil, miss("draft", id)
	}
	c, ok := v.(*form.Controller)
	if !ok {
		return nil, badType("draft", id, v)
	}
	return c, nil
}

func (d *DraftCacheRepo) DeleteDraft(id string) {
	d.cch.Delete(id)
}

func (d *DraftCacheRepo) DraftCount() int {
	return len(d.cch.Snapshot())
}
