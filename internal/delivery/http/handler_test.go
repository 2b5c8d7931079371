package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"giving-tree-admin/internal/delivery/givingapi"
	httpdelivery "giving-tree-admin/internal/delivery/http"
	"giving-tree-admin/internal/form"
	"giving-tree-admin/internal/models"
	"giving-tree-admin/internal/service"
)

func init() { gin.SetMode(gin.TestMode) }

type svcStub struct {
	charities   func(ctx context.Context) ([]models.Charity, error)
	wishes      func(ctx context.Context) ([]models.WishProgress, error)
	donations   func(ctx context.Context) ([]models.Donation, error)
	stats       func(ctx context.Context) (models.Stats, error)
	toggle      func(ctx context.Context, id int64) (string, error)
	deleteFn    func(ctx context.Context, id int64) error
	openEdit    func(ctx context.Context, id int64) (string, form.State, error)
	submit      func(ctx context.Context, id string) (models.CharityPayload, form.State, error)
	submissions func() ([]models.Submission, error)

	drafts map[string]*form.Controller
}

var _ service.Dashboard = (*svcStub)(nil)

func (s *svcStub) Charities(ctx context.Context) ([]models.Charity, error) {
	if s.charities != nil {
		return s.charities(ctx)
	}
	return nil, nil
}

func (s *svcStub) Wishes(ctx context.Context) ([]models.WishProgress, error) {
	if s.wishes != nil {
		return s.wishes(ctx)
	}
	return nil, nil
}

func (s *svcStub) Donations(ctx context.Context) ([]models.Donation, error) {
	if s.donations != nil {
		return s.donations(ctx)
	}
	return nil, nil
}

func (s *svcStub) Stats(ctx context.Context) (models.Stats, error) {
	if s.stats != nil {
		return s.stats(ctx)
	}
	return models.Stats{}, nil
}

func (s *svcStub) ToggleCharity(ctx context.Context, id int64) (string, error) {
	if s.toggle != nil {
		return s.toggle(ctx, id)
	}
	return "", nil
}

func (s *svcStub) DeleteCharity(ctx context.Context, id int64) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *svcStub) OpenCreateDraft() (string, form.State) {
	c := form.NewController(nopAPI{}, form.WithBounds(1, 2))
	s.put("new", c)
	return "new", c.State()
}

func (s *svcStub) OpenEditDraft(ctx context.Context, id int64) (string, form.State, error) {
	if s.openEdit != nil {
		return s.openEdit(ctx, id)
	}
	return "", form.State{}, service.ErrNotFound
}

func (s *svcStub) Draft(id string) (*form.Controller, error) {
	c, ok := s.drafts[id]
	if !ok {
		return nil, fmt.Errorf("draft %s: %w", id, service.ErrNotFound)
	}
	return c, nil
}

func (s *svcStub) DiscardDraft(id string) error {
	if _, ok := s.drafts[id]; !ok {
		return service.ErrNotFound
	}
	delete(s.drafts, id)
	return nil
}

func (s *svcStub) SubmitDraft(ctx context.Context, id string) (models.CharityPayload, form.State, error) {
	if s.submit != nil {
		return s.submit(ctx, id)
	}
	return models.CharityPayload{}, form.State{}, service.ErrNotFound
}

func (s *svcStub) Submissions() ([]models.Submission, error) {
	if s.submissions != nil {
		return s.submissions()
	}
	return nil, nil
}

func (s *svcStub) HandleMessage(context.Context, []byte) error { return nil }

func (s *svcStub) put(id string, c *form.Controller) {
	if s.drafts == nil {
		s.drafts = map[string]*form.Controller{}
	}
	s.drafts[id] = c
}

type nopAPI struct{}

func (nopAPI) CreateCharity(context.Context, models.CharityPayload) error        { return nil }
func (nopAPI) UpdateCharity(context.Context, int64, models.CharityPayload) error { return nil }

type urlUploader struct{ got string }

func (u *urlUploader) Upload(_ context.Context, name string, r io.Reader) (string, error) {
	b, _ := io.ReadAll(r)
	u.got = string(b)
	return "https://cdn.example/" + name, nil
}

func do(t *testing.T, s service.Dashboard, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	httpdelivery.NewHandler(s).InitRoutes().ServeHTTP(w, req)
	return w
}

type stateBody struct {
	ID      string     `json:"id"`
	Message string     `json:"message"`
	State   form.State `json:"state"`
}

func decodeState(t *testing.T, w *httptest.ResponseRecorder) stateBody {
	t.Helper()
	var out stateBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHandler_NoRoute(t *testing.T) {
	w := do(t, &svcStub{}, http.MethodGet, "/api/unknown", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"message":"not found"}`, w.Body.String())
}

func TestHandler_GetCharities(t *testing.T) {
	s := &svcStub{charities: func(context.Context) ([]models.Charity, error) {
		return []models.Charity{{ID: 1, Name: "Hope", Active: true, WishLength: 3}}, nil
	}}
	w := do(t, s, http.MethodGet, "/api/charities", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"name":"Hope"`)
	require.Contains(t, w.Body.String(), `"wish_length":3`)
}

func TestHandler_BackendErrorIsBadGateway(t *testing.T) {
	s := &svcStub{charities: func(context.Context) ([]models.Charity, error) {
		return nil, &givingapi.Error{StatusCode: 500, Message: "db down"}
	}}
	w := do(t, s, http.MethodGet, "/api/charities", nil)
	require.Equal(t, http.StatusBadGateway, w.Code)
	require.JSONEq(t, `{"message":"db down"}`, w.Body.String())
}

func TestHandler_ToggleAndDelete(t *testing.T) {
	var toggled, deleted int64
	s := &svcStub{
		toggle: func(_ context.Context, id int64) (string, error) {
			toggled = id
			return "Charity status changed to inactive", nil
		},
		deleteFn: func(_ context.Context, id int64) error { deleted = id; return nil },
	}

	w := do(t, s, http.MethodPut, "/api/charities/5/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, int64(5), toggled)
	require.Contains(t, w.Body.String(), "inactive")

	w = do(t, s, http.MethodDelete, "/api/charities/6", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, int64(6), deleted)

	w = do(t, s, http.MethodPut, "/api/charities/abc/toggle", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_OpenEditDraftNotFound(t *testing.T) {
	w := do(t, &svcStub{}, http.MethodPost, "/api/charities/9/drafts", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_DraftFlow(t *testing.T) {
	s := &svcStub{}

	w := do(t, s, http.MethodPost, "/api/drafts", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeState(t, w)
	require.Equal(t, "new", body.ID)
	require.Len(t, body.State.Draft.LineItems, 1)
	require.True(t, body.State.CanAdd)

	w = do(t, s, http.MethodPatch, "/api/drafts/new/fields", map[string]string{"field": "name", "value": "Hope"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Hope", decodeState(t, w).State.Draft.Name)

	w = do(t, s, http.MethodPatch, "/api/drafts/new/fields", map[string]string{"field": "logoUrl", "value": "x"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, s, http.MethodPatch, "/api/drafts/new/wishes/0", map[string]string{"field": "quantity", "value": "3"})
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, s, http.MethodPatch, "/api/drafts/new/wishes/0", map[string]string{"field": "unitPrice", "value": "2.50"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 7.5, decodeState(t, w).State.Draft.LineItems[0].TotalPrice)

	w = do(t, s, http.MethodPatch, "/api/drafts/new/wishes/0", map[string]string{"field": "quantity", "value": "abc"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 3.0, decodeState(t, w).State.Draft.LineItems[0].Quantity)

	w = do(t, s, http.MethodPatch, "/api/drafts/new/wishes/7", map[string]string{"field": "name", "value": "x"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, s, http.MethodPost, "/api/drafts/new/wishes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, s, http.MethodPost, "/api/drafts/new/wishes", nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body = decodeState(t, w)
	require.Equal(t, "Maximum of 2 wishes allowed.", body.Message)
	require.Len(t, body.State.Draft.LineItems, 2)

	w = do(t, s, http.MethodDelete, "/api/drafts/new/wishes/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, s, http.MethodDelete, "/api/drafts/new/wishes/0", nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.Equal(t, "Minimum of 1 wishes required.", decodeState(t, w).Message)

	w = do(t, s, http.MethodGet, "/api/drafts/new", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, s, http.MethodDelete, "/api/drafts/new", nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	w = do(t, s, http.MethodGet, "/api/drafts/new", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_SubmitStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"invalid", &form.ValidationError{Message: "Wish 1: name is required."}, http.StatusUnprocessableEntity},
		{"busy", form.ErrSubmitInProgress, http.StatusConflict},
		{"api", &givingapi.Error{StatusCode: 400, Message: "Charity name taken"}, http.StatusBadGateway},
		{"transport", errors.New("POST /adders/charity: connection refused"), http.StatusBadGateway},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := &svcStub{submit: func(context.Context, string) (models.CharityPayload, form.State, error) {
				return models.CharityPayload{}, form.State{Mode: form.ModeCreate, Error: tc.err.Error()}, tc.err
			}}
			w := do(t, s, http.MethodPost, "/api/drafts/d1/submit", nil)
			require.Equal(t, tc.code, w.Code)
			body := decodeState(t, w)
			require.Equal(t, tc.err.Error(), body.Message)
			require.Equal(t, tc.err.Error(), body.State.Error)
		})
	}

	w := do(t, &svcStub{}, http.MethodPost, "/api/drafts/missing/submit", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_SubmitOK(t *testing.T) {
	s := &svcStub{submit: func(context.Context, string) (models.CharityPayload, form.State, error) {
		return models.CharityPayload{Name: "Hope"}, form.State{Mode: form.ModeEdit}, nil
	}}
	w := do(t, s, http.MethodPost, "/api/drafts/d1/submit", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Charity updated successfully!")
	require.Contains(t, w.Body.String(), `"name":"Hope"`)
}

func multipartImage(t *testing.T, name, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = io.WriteString(fw, content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestHandler_UploadImage(t *testing.T) {
	up := &urlUploader{}
	s := &svcStub{}
	s.put("d1", form.NewController(nopAPI{}, form.WithUploader(up)))
	s.put("d2", form.NewController(nopAPI{}))

	body, ct := multipartImage(t, "logo.png", "PNGDATA")
	req := httptest.NewRequest(http.MethodPost, "/api/drafts/d1/image", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	httpdelivery.NewHandler(s).InitRoutes().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "PNGDATA", up.got)
	require.Contains(t, w.Body.String(), `"imageUrl":"https://cdn.example/logo.png"`)

	body, ct = multipartImage(t, "logo.png", "PNGDATA")
	req = httptest.NewRequest(http.MethodPost, "/api/drafts/d2/image", body)
	req.Header.Set("Content-Type", ct)
	w = httptest.NewRecorder()
	httpdelivery.NewHandler(s).InitRoutes().ServeHTTP(w, req)
	require.Equal(t, http.StatusNotImplemented, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/drafts/d1/image", strings.NewReader(""))
	w = httptest.NewRecorder()
	httpdelivery.NewHandler(s).InitRoutes().ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_StatsAndSubmissions(t *testing.T) {
	s := &svcStub{
		stats: func(context.Context) (models.Stats, error) {
			return models.Stats{ActiveCharities: 2, TotalCharities: 3, TotalDonations: 30.31, DonationCount: 3}, nil
		},
		submissions: func() ([]models.Submission, error) { return nil, errors.New("db gone") },
	}
	w := do(t, s, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"total_donations":30.31`)

	w = do(t, s, http.MethodGet, "/api/submissions", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandler_Metrics(t *testing.T) {
	s := &svcStub{}
	_ = do(t, s, http.MethodGet, "/api/wishes", nil)
	w := do(t, s, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "giving_tree_http_requests_total")
}

func TestServer_Run_Shutdown(t *testing.T) {
	s := &httpdelivery.Server{}
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	done := make(chan error, 1)
	go func() { done <- s.Run("127.0.0.1:0", handler) }()
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, s.Shutdown(context.Background()))
	require.ErrorIs(t, <-done, http.ErrServerClosed)
}
