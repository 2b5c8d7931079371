package form

import (
	"math"
	"strings"

	"giving-tree-admin/internal/models"
)

const (
	DefaultMinItems = 1
	DefaultMaxItems = 5
)

// Validator checks a draft before it is sent. Rules run in a fixed order and the
// first violation wins.
type Validator struct {
	Min int
	Max int
}

func NewValidator(min, max int) Validator {
	if min < 0 {
		min = 0
	}
	if max < min {
		max = min
	}
	return Validator{Min: min, Max: max}
}

func (v Validator) Validate(d models.CharityDraft) error {
	if blank(d.Name) || blank(d.Description) || blank(d.Website) || blank(d.ImageURL) {
		return invalid("All Charity Details fields are required.")
	}

	if n := len(d.LineItems); n < v.Min || n > v.Max {
		return invalid("A charity must have between %d and %d wishes.", v.Min, v.Max)
	}

	for i, li := range d.LineItems {
		pos := i + 1
		if blank(li.Name) {
			return invalid("Wish %d: name is required.", pos)
		}
		if blank(li.Description) {
			return invalid("Wish %d: Description is required.", pos)
		}
		if !positive(li.Quantity) {
			return invalid("Wish %d: Quantity must be a number greater than 0.", pos)
		}
		if !positive(li.UnitPrice) {
			return invalid("Wish %d: Unit price must be a number greater than 0.", pos)
		}
	}
	return nil
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

func positive(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f > 0
}
