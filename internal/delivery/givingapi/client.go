package givingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"giving-tree-admin/internal/models"
)

// Error is a failure reported by the backend. Its text is shown to the operator as is.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string { return e.Message }

type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option { return func(c *Client) { c.http = hc } }

func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type envelope struct {
	Success json.RawMessage `json:"success"`
	Status  json.RawMessage `json:"status"`
	Message string          `json:"message"`
}

func (e envelope) failed() bool {
	return isFalse(e.Success) || isFalse(e.Status)
}

func isFalse(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "false"
}

func (c *Client) CreateCharity(ctx context.Context, p models.CharityPayload) error {
	p.ID = nil
	_, err := c.do(ctx, http.MethodPost, "/adders/charity", p, nil, "Failed to create charity")
	return err
}

func (c *Client) UpdateCharity(ctx context.Context, id int64, p models.CharityPayload) error {
	p.ID = &id
	_, err := c.do(ctx, http.MethodPut, "/adders/edit-charity", p, nil, "Failed to update charity")
	return err
}

// ToggleCharityStatus flips the active flag and returns the backend's confirmation.
func (c *Client) ToggleCharityStatus(ctx context.Context, id int64) (string, error) {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/changers/charity/%d/toggle-status", id), nil, nil, "Failed to change charity status")
}

func (c *Client) DeleteCharity(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/changers/charity/%d", id), nil, nil, "Failed to delete charity")
	return err
}

func (c *Client) ListCharities(ctx context.Context) ([]models.Charity, error) {
	var out struct {
		Charities []models.Charity `json:"charities"`
	}
	if _, err := c.do(ctx, http.MethodGet, "/getters/charities", nil, &out, "Failed to load charities"); err != nil {
		return nil, err
	}
	return out.Charities, nil
}

// ListAdminCharities is ListCharities plus the wish count of every charity.
func (c *Client) ListAdminCharities(ctx context.Context) ([]models.Charity, error) {
	var out struct {
		Charities []models.Charity `json:"charities"`
	}
	if _, err := c.do(ctx, http.MethodGet, "/getters/charities-admin", nil, &out, "Failed to load charities"); err != nil {
		return nil, err
	}
	return out.Charities, nil
}

func (c *Client) ListWishes(ctx context.Context) ([]models.Wish, error) {
	var out struct {
		Wishes []models.Wish `json:"wishes"`
	}
	if _, err := c.do(ctx, http.MethodGet, "/getters/wishes", nil, &out, "Failed to load wishes"); err != nil {
		return nil, err
	}
	return out.Wishes, nil
}

func (c *Client) ListPayments(ctx context.Context) ([]models.Donation, error) {
	var out struct {
		Payments []models.Donation `json:"payments"`
	}
	if _, err := c.do(ctx, http.MethodGet, "/getters/payments", nil, &out, "Failed to load donations"); err != nil {
		return nil, err
	}
	return out.Payments, nil
}

// do sends one request. A non-2xx status or an explicit false success/status flag
// is returned as *Error; out, when set, receives the decoded body.
func (c *Client) do(ctx context.Context, method, path string, in, out any, failure string) (string, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return "", errors.Wrap(err, "encode request")
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return "", errors.Wrapf(err, "%s %s", method, path)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrapf(err, "read %s response", path)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := env.Message
		if decodeErr != nil || msg == "" {
			msg = fmt.Sprintf("%s (HTTP %d)", failure, resp.StatusCode)
		}
		return "", &Error{StatusCode: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		if out == nil {
			// the request went through; a body without flags cannot mark it failed
			if len(bytes.TrimSpace(raw)) > 0 {
				logrus.WithFields(logrus.Fields{"path": path, "status": resp.StatusCode}).
					Warnf("unexpected %s response body ignored: %v", method, decodeErr)
			}
			return "", nil
		}
		return "", errors.Wrapf(decodeErr, "decode %s response", path)
	}
	if env.failed() {
		msg := env.Message
		if msg == "" {
			msg = failure
		}
		return "", &Error{StatusCode: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return "", errors.Wrapf(err, "decode %s response", path)
		}
	}
	return env.Message, nil
}
