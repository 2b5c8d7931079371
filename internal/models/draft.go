package models

import "giving-tree-admin/internal/pricing"

// LineItem is one wish being edited. TotalPrice is derived and only written
// together with Quantity or UnitPrice.
type LineItem struct {
	ID          *int64  `json:"id,omitempty"`
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description" validate:"required"`
	Quantity    float64 `json:"quantity"    validate:"gt=0"`
	UnitPrice   float64 `json:"unitPrice"   validate:"gt=0"`
	TotalPrice  float64 `json:"totalPrice"`
}

type CharityDraft struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Website     string     `json:"website"`
	ImageURL    string     `json:"imageUrl"`
	LineItems   []LineItem `json:"lineItems"`
}

// Clone returns a deep copy so snapshots never alias controller state.
func (d CharityDraft) Clone() CharityDraft {
	out := d
	out.LineItems = make([]LineItem, len(d.LineItems))
	for i, li := range d.LineItems {
		if li.ID != nil {
			id := *li.ID
			li.ID = &id
		}
		out.LineItems[i] = li
	}
	return out
}

// CharityPayload is the body of the create and update calls.
type CharityPayload struct {
	ID          *int64     `json:"id,omitempty"`
	Name        string     `json:"name"        validate:"required"`
	Description string     `json:"description" validate:"required"`
	Website     string     `json:"website"     validate:"required"`
	ImageURL    string     `json:"imageUrl"    validate:"required"`
	LineItems   []LineItem `json:"lineItems"   validate:"required,min=1,dive"`
}

// Total is the sum of the line totals at cent precision.
func (p CharityPayload) Total() float64 {
	totals := make([]float64, 0, len(p.LineItems))
	for _, li := range p.LineItems {
		totals = append(totals, li.TotalPrice)
	}
	return pricing.Sum(totals...)
}
