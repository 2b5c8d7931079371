package form

import (
	"context"
	"io"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"giving-tree-admin/internal/models"
	"giving-tree-admin/internal/pricing"
)

type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

type Field string

const (
	FieldName        Field = "name"
	FieldDescription Field = "description"
	FieldWebsite     Field = "website"
	FieldImageURL    Field = "imageUrl"
)

type LineItemField string

const (
	ItemName        LineItemField = "name"
	ItemDescription LineItemField = "description"
	ItemQuantity    LineItemField = "quantity"
	ItemUnitPrice   LineItemField = "unitPrice"
)

// CharityAPI is the remote backend the finished draft is sent to.
type CharityAPI interface {
	CreateCharity(ctx context.Context, p models.CharityPayload) error
	UpdateCharity(ctx context.Context, id int64, p models.CharityPayload) error
}

// Notifier is told about every payload the API accepted.
type Notifier interface {
	CharitySubmitted(ctx context.Context, p models.CharityPayload) error
}

type ImageUploader interface {
	Upload(ctx context.Context, name string, r io.Reader) (string, error)
}

// State is a point-in-time copy of a controller, safe to hand to renderers.
type State struct {
	Mode       Mode                `json:"mode"`
	CharityID  *int64              `json:"charity_id,omitempty"`
	Draft      models.CharityDraft `json:"draft"`
	Error      string              `json:"error,omitempty"`
	Submitting bool                `json:"submitting"`
	MinItems   int                 `json:"min_items"`
	MaxItems   int                 `json:"max_items"`
	CanAdd     bool                `json:"can_add"`
	CanRemove  bool                `json:"can_remove"`
}

// Controller owns one draft for the lifetime of a form.
type Controller struct {
	mu sync.Mutex

	mode       Mode
	charityID  *int64
	draft      models.CharityDraft
	errMsg     string
	submitting bool

	validator Validator
	api       CharityAPI
	uploader  ImageUploader
	notifiers []Notifier
}

type Option func(*Controller)

func WithBounds(min, max int) Option {
	return func(c *Controller) { c.validator = NewValidator(min, max) }
}

func WithUploader(u ImageUploader) Option { return func(c *Controller) { c.uploader = u } }

func WithNotifiers(n ...Notifier) Option {
	return func(c *Controller) { c.notifiers = append(c.notifiers, n...) }
}

// NewController starts a create form with the minimum number of blank wishes.
func NewController(api CharityAPI, opts ...Option) *Controller {
	c := newController(api, ModeCreate, opts)
	c.draft = c.blankDraft()
	return c
}

// NewEditController starts an edit form pre-populated from an existing charity.
func NewEditController(api CharityAPI, charity models.Charity, wishes []models.Wish, opts ...Option) *Controller {
	c := newController(api, ModeEdit, opts)
	id := charity.ID
	c.charityID = &id

	items := make([]models.LineItem, 0, len(wishes))
	for _, w := range wishes {
		li := models.LineItem{
			Name:        w.Name,
			Description: w.Description,
			Quantity:    w.Quantity,
			UnitPrice:   w.UnitPrice,
			TotalPrice:  pricing.ComputeTotal(w.Quantity, w.UnitPrice),
		}
		// zero id: a wish added in this edit, not yet known to the backend
		if w.ID != 0 {
			wid := w.ID
			li.ID = &wid
		}
		items = append(items, li)
	}
	c.draft = models.CharityDraft{
		Name:        charity.Name,
		Description: charity.Description,
		Website:     charity.Website,
		ImageURL:    charity.ImageURL,
		LineItems:   items,
	}
	return c
}

func newController(api CharityAPI, mode Mode, opts []Option) *Controller {
	c := &Controller{
		mode:      mode,
		api:       api,
		validator: NewValidator(DefaultMinItems, DefaultMaxItems),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Controller) blankDraft() models.CharityDraft {
	return models.CharityDraft{LineItems: make([]models.LineItem, c.validator.Min)}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.draft.LineItems)
	st := State{
		Mode:       c.mode,
		Draft:      c.draft.Clone(),
		Error:      c.errMsg,
		Submitting: c.submitting,
		MinItems:   c.validator.Min,
		MaxItems:   c.validator.Max,
		CanAdd:     n < c.validator.Max,
		CanRemove:  n > c.validator.Min,
	}
	if c.charityID != nil {
		id := *c.charityID
		st.CharityID = &id
	}
	return st
}

func (c *Controller) UpdateField(field Field, raw string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.submitting {
		return ErrSubmitInProgress
	}

	switch field {
	case FieldName:
		c.draft.Name = raw
	case FieldDescription:
		c.draft.Description = raw
	case FieldWebsite:
		c.draft.Website = raw
	case FieldImageURL:
		c.draft.ImageURL = raw
	default:
		return ErrUnknownField
	}
	c.errMsg = ""
	return nil
}

// UpdateLineItem writes one wish field. Numeric text that does not parse is
// dropped and the previous value kept.
func (c *Controller) UpdateLineItem(index int, field LineItemField, raw string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.submitting {
		return ErrSubmitInProgress
	}
	if index < 0 || index >= len(c.draft.LineItems) {
		return ErrLineItemIndex
	}
	li := &c.draft.LineItems[index]

	switch field {
	case ItemName:
		li.Name = raw
	case ItemDescription:
		li.Description = raw
	case ItemQuantity, ItemUnitPrice:
		v, ok := coerceNumber(raw)
		if !ok {
			logrus.WithFields(logrus.Fields{"index": index, "field": field}).Debug("ignored non-numeric input")
			return nil
		}
		if field == ItemQuantity {
			li.Quantity = v
		} else {
			li.UnitPrice = v
		}
		li.TotalPrice = pricing.ComputeTotal(li.Quantity, li.UnitPrice)
	default:
		return ErrUnknownField
	}
	c.errMsg = ""
	return nil
}

func (c *Controller) AddLineItem() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.submitting {
		return ErrSubmitInProgress
	}
	if len(c.draft.LineItems) >= c.validator.Max {
		err := invalid("Maximum of %d wishes allowed.", c.validator.Max)
		c.errMsg = err.Message
		return err
	}
	c.draft.LineItems = append(c.draft.LineItems, models.LineItem{})
	c.errMsg = ""
	return nil
}

func (c *Controller) RemoveLineItem(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.submitting {
		return ErrSubmitInProgress
	}
	if index < 0 || index >= len(c.draft.LineItems) {
		return ErrLineItemIndex
	}
	if len(c.draft.LineItems) <= c.validator.Min {
		err := invalid("Minimum of %d wishes required.", c.validator.Min)
		c.errMsg = err.Message
		return err
	}
	c.draft.LineItems = append(c.draft.LineItems[:index], c.draft.LineItems[index+1:]...)
	c.errMsg = ""
	return nil
}

// AttachImage uploads an image and stores its URL as the charity image.
func (c *Controller) AttachImage(ctx context.Context, name string, r io.Reader) (string, error) {
	if c.uploader == nil {
		return "", ErrNoUploader
	}
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return "", ErrSubmitInProgress
	}
	c.mu.Unlock()

	url, err := c.uploader.Upload(ctx, name, r)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.submitting {
		// a submit started during the upload and already holds its payload
		return "", ErrSubmitInProgress
	}
	if err != nil {
		c.errMsg = err.Error()
		return "", err
	}
	c.draft.ImageURL = url
	c.errMsg = ""
	return url, nil
}

// Submit validates the draft and sends it. Only one submit runs at a time; the
// lock is not held while the API call is in flight.
func (c *Controller) Submit(ctx context.Context) (models.CharityPayload, error) {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return models.CharityPayload{}, ErrSubmitInProgress
	}
	c.errMsg = ""
	if err := c.validator.Validate(c.draft); err != nil {
		c.errMsg = err.Error()
		c.mu.Unlock()
		return models.CharityPayload{}, err
	}
	payload := serialize(c.draft, c.charityID)
	c.submitting = true
	mode := c.mode
	c.mu.Unlock()

	var err error
	if mode == ModeEdit {
		err = c.api.UpdateCharity(ctx, *payload.ID, payload)
	} else {
		err = c.api.CreateCharity(ctx, payload)
	}

	c.mu.Lock()
	c.submitting = false
	if err != nil {
		c.errMsg = err.Error()
		c.mu.Unlock()
		logrus.WithError(err).WithField("charity", payload.Name).Warn("charity submit failed")
		return models.CharityPayload{}, err
	}
	if mode == ModeCreate {
		c.draft = c.blankDraft()
	}
	c.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"charity": payload.Name,
		"mode":    mode,
		"wishes":  len(payload.LineItems),
	}).Info("charity submitted")

	for _, n := range c.notifiers {
		if nerr := n.CharitySubmitted(ctx, payload); nerr != nil {
			logrus.WithError(nerr).WithField("charity", payload.Name).Error("submit notification failed")
		}
	}
	return payload, nil
}

func serialize(d models.CharityDraft, charityID *int64) models.CharityPayload {
	p := models.CharityPayload{
		Name:        strings.TrimSpace(d.Name),
		Description: strings.TrimSpace(d.Description),
		Website:     strings.TrimSpace(d.Website),
		ImageURL:    strings.TrimSpace(d.ImageURL),
		LineItems:   make([]models.LineItem, 0, len(d.LineItems)),
	}
	if charityID != nil {
		id := *charityID
		p.ID = &id
	}
	for _, li := range d.Clone().LineItems {
		li.Name = strings.TrimSpace(li.Name)
		li.Description = strings.TrimSpace(li.Description)
		p.LineItems = append(p.LineItems, li)
	}
	return p
}

// coerceNumber mirrors form-input semantics: blank means zero, anything that is
// not a finite number is rejected.
func coerceNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
