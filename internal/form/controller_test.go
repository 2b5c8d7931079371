package form_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"giving-tree-admin/internal/form"
	"giving-tree-admin/internal/models"
)

type apiStub struct {
	mu      sync.Mutex
	creates []models.CharityPayload
	updates []models.CharityPayload

	create func(ctx context.Context, p models.CharityPayload) error
	update func(ctx context.Context, id int64, p models.CharityPayload) error
}

var _ form.CharityAPI = (*apiStub)(nil)

func (a *apiStub) CreateCharity(ctx context.Context, p models.CharityPayload) error {
	a.mu.Lock()
	a.creates = append(a.creates, p)
	a.mu.Unlock()
	if a.create != nil {
		return a.create(ctx, p)
	}
	return nil
}

func (a *apiStub) UpdateCharity(ctx context.Context, id int64, p models.CharityPayload) error {
	a.mu.Lock()
	a.updates = append(a.updates, p)
	a.mu.Unlock()
	if a.update != nil {
		return a.update(ctx, id, p)
	}
	return nil
}

func (a *apiStub) calls() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.creates) + len(a.updates)
}

type notifierStub struct {
	got []models.CharityPayload
	err error
}

func (n *notifierStub) CharitySubmitted(_ context.Context, p models.CharityPayload) error {
	n.got = append(n.got, p)
	return n.err
}

type uploaderStub struct {
	url string
	err error
}

func (u uploaderStub) Upload(_ context.Context, _ string, r io.Reader) (string, error) {
	_, _ = io.ReadAll(r)
	return u.url, u.err
}

// gatedUploader blocks until release is closed.
type gatedUploader struct {
	url     string
	entered chan struct{}
	release chan struct{}
}

func (u gatedUploader) Upload(_ context.Context, _ string, r io.Reader) (string, error) {
	_, _ = io.ReadAll(r)
	close(u.entered)
	<-u.release
	return u.url, nil
}

func fill(t *testing.T, c *form.Controller, items int) {
	t.Helper()
	require.NoError(t, c.UpdateField(form.FieldName, "Hope Fund"))
	require.NoError(t, c.UpdateField(form.FieldDescription, "d"))
	require.NoError(t, c.UpdateField(form.FieldWebsite, "https://x.org"))
	require.NoError(t, c.UpdateField(form.FieldImageURL, "https://x.org/i.png"))
	for len(c.State().Draft.LineItems) < items {
		require.NoError(t, c.AddLineItem())
	}
	for i := 0; i < items; i++ {
		require.NoError(t, c.UpdateLineItem(i, form.ItemName, "Wish"))
		require.NoError(t, c.UpdateLineItem(i, form.ItemDescription, "Needed"))
		require.NoError(t, c.UpdateLineItem(i, form.ItemQuantity, "2"))
		require.NoError(t, c.UpdateLineItem(i, form.ItemUnitPrice, "1000.00"))
	}
}

func TestController_NewStartsWithMinimumBlankItems(t *testing.T) {
	c := form.NewController(&apiStub{}, form.WithBounds(3, 5))
	st := c.State()
	require.Equal(t, form.ModeCreate, st.Mode)
	require.Len(t, st.Draft.LineItems, 3)
	require.True(t, st.CanAdd)
	require.False(t, st.CanRemove)
	require.Nil(t, st.CharityID)
}

func TestController_UpdateLineItem_RecomputesTotal(t *testing.T) {
	c := form.NewController(&apiStub{})

	require.NoError(t, c.UpdateLineItem(0, form.ItemQuantity, "2"))
	require.Equal(t, 0.0, c.State().Draft.LineItems[0].TotalPrice)

	require.NoError(t, c.UpdateLineItem(0, form.ItemUnitPrice, "0.1"))
	require.Equal(t, 0.2, c.State().Draft.LineItems[0].TotalPrice)

	require.NoError(t, c.UpdateLineItem(0, form.ItemQuantity, "3"))
	require.Equal(t, 0.3, c.State().Draft.LineItems[0].TotalPrice)

	require.NoError(t, c.UpdateLineItem(0, form.ItemQuantity, ""))
	li := c.State().Draft.LineItems[0]
	require.Equal(t, 0.0, li.Quantity)
	require.Equal(t, 0.0, li.TotalPrice)
}

func TestController_UpdateLineItem_RejectsBadNumbers(t *testing.T) {
	c := form.NewController(&apiStub{})
	require.NoError(t, c.UpdateLineItem(0, form.ItemQuantity, "4"))
	require.NoError(t, c.UpdateLineItem(0, form.ItemUnitPrice, "25"))

	for _, raw := range []string{"abc", "NaN", "Inf", "-Inf", "1e400", "12x"} {
		require.NoError(t, c.UpdateLineItem(0, form.ItemQuantity, raw))
		require.NoError(t, c.UpdateLineItem(0, form.ItemUnitPrice, raw))
	}

	li := c.State().Draft.LineItems[0]
	require.Equal(t, 4.0, li.Quantity)
	require.Equal(t, 25.0, li.UnitPrice)
	require.Equal(t, 100.0, li.TotalPrice)
	require.Empty(t, c.State().Error)
}

func TestController_UpdateLineItem_TextKeptRaw(t *testing.T) {
	c := form.NewController(&apiStub{})
	require.NoError(t, c.UpdateLineItem(0, form.ItemName, "  padded  "))
	require.Equal(t, "  padded  ", c.State().Draft.LineItems[0].Name)
}

func TestController_BadFieldAndIndex(t *testing.T) {
	c := form.NewController(&apiStub{})
	require.ErrorIs(t, c.UpdateField("logoUrl", "x"), form.ErrUnknownField)
	require.ErrorIs(t, c.UpdateLineItem(0, "totalPrice", "5"), form.ErrUnknownField)
	require.ErrorIs(t, c.UpdateLineItem(7, form.ItemName, "x"), form.ErrLineItemIndex)
	require.ErrorIs(t, c.UpdateLineItem(-1, form.ItemName, "x"), form.ErrLineItemIndex)
	require.ErrorIs(t, c.RemoveLineItem(9), form.ErrLineItemIndex)
}

func TestController_AddLineItem_StopsAtMax(t *testing.T) {
	c := form.NewController(&apiStub{}, form.WithBounds(1, 5))
	for i := 0; i < 4; i++ {
		require.NoError(t, c.AddLineItem())
	}
	require.Len(t, c.State().Draft.LineItems, 5)
	require.False(t, c.State().CanAdd)

	err := c.AddLineItem()
	require.ErrorIs(t, err, form.ErrValidation)
	st := c.State()
	require.Len(t, st.Draft.LineItems, 5)
	require.Equal(t, "Maximum of 5 wishes allowed.", st.Error)
}

func TestController_RemoveLineItem_StopsAtMin(t *testing.T) {
	c := form.NewController(&apiStub{}, form.WithBounds(1, 5))
	require.NoError(t, c.AddLineItem())
	require.NoError(t, c.UpdateLineItem(1, form.ItemName, "second"))

	require.NoError(t, c.RemoveLineItem(0))
	st := c.State()
	require.Len(t, st.Draft.LineItems, 1)
	require.Equal(t, "second", st.Draft.LineItems[0].Name)

	err := c.RemoveLineItem(0)
	require.ErrorIs(t, err, form.ErrValidation)
	st = c.State()
	require.Len(t, st.Draft.LineItems, 1)
	require.Equal(t, "Minimum of 1 wishes required.", st.Error)
}

func TestController_EditClearsError(t *testing.T) {
	c := form.NewController(&apiStub{}, form.WithBounds(1, 1))
	require.Error(t, c.AddLineItem())
	require.NotEmpty(t, c.State().Error)

	require.NoError(t, c.UpdateField(form.FieldName, "x"))
	require.Empty(t, c.State().Error)
}

func TestController_StateIsACopy(t *testing.T) {
	c := form.NewController(&apiStub{})
	st := c.State()
	st.Draft.LineItems[0].Name = "mutated"
	require.Empty(t, c.State().Draft.LineItems[0].Name)
}

func TestController_Submit_Create(t *testing.T) {
	api := &apiStub{}
	n := &notifierStub{}
	c := form.NewController(api, form.WithBounds(1, 5), form.WithNotifiers(n))
	fill(t, c, 3)
	require.NoError(t, c.UpdateField(form.FieldName, "  Hope Fund  "))

	for _, li := range c.State().Draft.LineItems {
		require.Equal(t, 2000.0, li.TotalPrice)
	}

	payload, err := c.Submit(context.Background())
	require.NoError(t, err)

	require.Equal(t, 1, api.calls())
	require.Len(t, api.creates, 1)
	sent := api.creates[0]
	require.Equal(t, "Hope Fund", sent.Name)
	require.Nil(t, sent.ID)
	require.Len(t, sent.LineItems, 3)
	require.Equal(t, 2000.0, sent.LineItems[0].TotalPrice)
	require.Equal(t, sent, payload)

	require.Len(t, n.got, 1)
	require.Equal(t, "Hope Fund", n.got[0].Name)

	st := c.State()
	require.Empty(t, st.Draft.Name)
	require.Len(t, st.Draft.LineItems, 1)
	require.Empty(t, st.Error)
	require.False(t, st.Submitting)
}

func TestController_Submit_InvalidSkipsNetwork(t *testing.T) {
	api := &apiStub{}
	c := form.NewController(api)
	fill(t, c, 3)
	require.NoError(t, c.UpdateLineItem(1, form.ItemQuantity, "0"))

	_, err := c.Submit(context.Background())
	require.ErrorIs(t, err, form.ErrValidation)
	require.Contains(t, err.Error(), "Wish 2")
	require.Contains(t, err.Error(), "greater than 0")
	require.Equal(t, 0, api.calls())
	require.Equal(t, err.Error(), c.State().Error)
}

func TestController_Submit_APIFailureKeepsDraft(t *testing.T) {
	api := &apiStub{create: func(context.Context, models.CharityPayload) error {
		return errors.New("db down")
	}}
	n := &notifierStub{}
	c := form.NewController(api, form.WithNotifiers(n))
	fill(t, c, 3)
	before := c.State().Draft

	_, err := c.Submit(context.Background())
	require.Error(t, err)

	st := c.State()
	require.Equal(t, "db down", st.Error)
	require.Equal(t, before, st.Draft)
	require.False(t, st.Submitting)
	require.Empty(t, n.got)
}

func TestController_Submit_NotifierErrorDoesNotFail(t *testing.T) {
	c := form.NewController(&apiStub{}, form.WithNotifiers(&notifierStub{err: errors.New("broker down")}))
	fill(t, c, 1)
	_, err := c.Submit(context.Background())
	require.NoError(t, err)
	require.Empty(t, c.State().Error)
}

func TestController_Submit_Edit(t *testing.T) {
	api := &apiStub{}
	charity := models.Charity{ID: 42, Name: "Hope Fund", Description: "d", Website: "https://x.org", ImageURL: "https://x.org/i.png"}
	wishes := []models.Wish{
		{ID: 7, Name: "Books", Description: "School books", Quantity: 3, UnitPrice: 0.1},
	}
	c := form.NewEditController(api, charity, wishes)

	st := c.State()
	require.Equal(t, form.ModeEdit, st.Mode)
	require.Equal(t, int64(42), *st.CharityID)
	require.Equal(t, 0.3, st.Draft.LineItems[0].TotalPrice)
	require.Equal(t, int64(7), *st.Draft.LineItems[0].ID)

	require.NoError(t, c.UpdateField(form.FieldDescription, "updated"))
	payload, err := c.Submit(context.Background())
	require.NoError(t, err)
	require.Len(t, api.updates, 1)
	require.Equal(t, int64(42), *payload.ID)

	st = c.State()
	require.Equal(t, "updated", st.Draft.Description)
}

func TestController_Submit_NoReentry(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	api := &apiStub{create: func(context.Context, models.CharityPayload) error {
		close(entered)
		<-release
		return nil
	}}
	c := form.NewController(api)
	fill(t, c, 1)

	done := make(chan error, 1)
	go func() {
		_, err := c.Submit(context.Background())
		done <- err
	}()
	<-entered

	require.True(t, c.State().Submitting)
	_, err := c.Submit(context.Background())
	require.ErrorIs(t, err, form.ErrSubmitInProgress)
	require.ErrorIs(t, c.UpdateField(form.FieldName, "x"), form.ErrSubmitInProgress)
	require.ErrorIs(t, c.AddLineItem(), form.ErrSubmitInProgress)

	close(release)
	require.NoError(t, <-done)
	require.Equal(t, 1, api.calls())
	require.False(t, c.State().Submitting)
}

func TestController_AttachImage(t *testing.T) {
	c := form.NewController(&apiStub{}, form.WithUploader(uploaderStub{url: "https://cdn.example/i.png"}))
	url, err := c.AttachImage(context.Background(), "i.png", strings.NewReader("img"))
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example/i.png", url)
	require.Equal(t, url, c.State().Draft.ImageURL)

	c = form.NewController(&apiStub{}, form.WithUploader(uploaderStub{err: errors.New("upload rejected")}))
	_, err = c.AttachImage(context.Background(), "i.png", strings.NewReader("img"))
	require.Error(t, err)
	require.Equal(t, "upload rejected", c.State().Error)
	require.Empty(t, c.State().Draft.ImageURL)

	c = form.NewController(&apiStub{})
	_, err = c.AttachImage(context.Background(), "i.png", strings.NewReader("img"))
	require.ErrorIs(t, err, form.ErrNoUploader)
}

func TestController_AttachImage_SubmitStartedDuringUpload(t *testing.T) {
	up := gatedUploader{url: "https://cdn.example/new.png", entered: make(chan struct{}), release: make(chan struct{})}
	apiEntered := make(chan struct{})
	apiRelease := make(chan struct{})
	api := &apiStub{update: func(context.Context, int64, models.CharityPayload) error {
		close(apiEntered)
		<-apiRelease
		return nil
	}}
	charity := models.Charity{ID: 42, Name: "Hope Fund", Description: "d", Website: "https://x.org", ImageURL: "https://x.org/old.png"}
	wishes := []models.Wish{{ID: 7, Name: "Books", Description: "School books", Quantity: 1, UnitPrice: 5}}
	c := form.NewEditController(api, charity, wishes, form.WithUploader(up))

	attached := make(chan error, 1)
	go func() {
		_, err := c.AttachImage(context.Background(), "new.png", strings.NewReader("img"))
		attached <- err
	}()
	<-up.entered

	submitted := make(chan error, 1)
	go func() {
		_, err := c.Submit(context.Background())
		submitted <- err
	}()
	<-apiEntered

	close(up.release)
	require.ErrorIs(t, <-attached, form.ErrSubmitInProgress)
	require.Equal(t, "https://x.org/old.png", c.State().Draft.ImageURL)

	close(apiRelease)
	require.NoError(t, <-submitted)
	require.Len(t, api.updates, 1)
	require.Equal(t, "https://x.org/old.png", api.updates[0].ImageURL)
	require.Equal(t, "https://x.org/old.png", c.State().Draft.ImageURL)
}
