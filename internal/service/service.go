package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"giving-tree-admin/internal/form"
	"giving-tree-admin/internal/models"
	"giving-tree-admin/internal/repository"
)

// Dashboard is everything the HTTP and Kafka deliveries need.
type Dashboard interface {
	Charities(ctx context.Context) ([]models.Charity, error)
	Wishes(ctx context.Context) ([]models.WishProgress, error)
	Donations(ctx context.Context) ([]models.Donation, error)
	Stats(ctx context.Context) (models.Stats, error)
	ToggleCharity(ctx context.Context, id int64) (string, error)
	DeleteCharity(ctx context.Context, id int64) error

	OpenCreateDraft() (string, form.State)
	OpenEditDraft(ctx context.Context, charityID int64) (string, form.State, error)
	Draft(id string) (*form.Controller, error)
	DiscardDraft(id string) error
	SubmitDraft(ctx context.Context, id string) (models.CharityPayload, form.State, error)

	Submissions() ([]models.Submission, error)
	HandleMessage(ctx context.Context, payload []byte) error
}

// CharityBackend is the slice of the Giving Tree API the dashboard uses.
type CharityBackend interface {
	form.CharityAPI
	ToggleCharityStatus(ctx context.Context, id int64) (string, error)
	DeleteCharity(ctx context.Context, id int64) error
	ListAdminCharities(ctx context.Context) ([]models.Charity, error)
	ListWishes(ctx context.Context) ([]models.Wish, error)
	ListPayments(ctx context.Context) ([]models.Donation, error)
}

type Service struct {
	subs     repository.SubmissionPostgres
	drafts   repository.DraftStore
	listings repository.ListingCache

	api      CharityBackend
	formOpts []form.Option
	v        *validator.Validate
	newID    func() string
}

var _ Dashboard = (*Service)(nil)

// NewService wires the repository and backend; formOpts are applied to every
// draft the service opens.
func NewService(repo *repository.Repository, api CharityBackend, formOpts ...form.Option) *Service {
	return &Service{
		subs:     repo.SubmissionPostgres,
		drafts:   repo.DraftStore,
		listings: repo.ListingCache,
		api:      api,
		formOpts: formOpts,
		v:        validator.New(),
		newID:    uuid.NewString,
	}
}
