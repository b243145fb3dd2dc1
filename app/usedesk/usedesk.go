// Package usedesk implements the client over the UseDesk ticket update API.
package usedesk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cappuccinotm/usedesk-rss/app/errs"
	"github.com/cappuccinotm/usedesk-rss/pkg/httpx"
	"github.com/cappuccinotm/usedesk-rss/pkg/logx"
)

// UpdateTicketURL is the UseDesk endpoint to update ticket fields.
const UpdateTicketURL = "https://api.usedesk.ru/update/ticket"

const defaultTimeout = 10 * time.Second

// Client makes requests to the UseDesk API.
type Client struct {
	url string
	cl  httpx.Doer
	l   logx.Logger
}

// Params describes parameters to initialize Client.
type Params struct {
	URL    string // UpdateTicketURL if empty
	Client httpx.Doer
	Logger logx.Logger
}

// FieldUpdate describes a single update of the ticket's additional field.
type FieldUpdate struct {
	APIToken string
	TicketID string
	FieldID  string
	Value    string
}

// NewClient makes new instance of Client.
func NewClient(params Params) *Client {
	svc := &Client{url: params.URL, cl: params.Client, l: params.Logger}

	if svc.url == "" {
		svc.url = UpdateTicketURL
	}

	if svc.cl == nil {
		svc.cl = &http.Client{Timeout: defaultTimeout}
	}

	if svc.l == nil {
		svc.l = logx.NopLogger()
	}

	return svc
}

// UpdateField sets the value of the ticket's field. It makes exactly one
// request to UseDesk and never retries it.
func (c *Client) UpdateField(ctx context.Context, upd FieldUpdate) error {
	form := url.Values{}
	form.Set("api_token", upd.APIToken)
	form.Set("ticket_id", upd.TicketID)
	form.Set("field_id", upd.FieldID)
	form.Set("field_value", upd.Value)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.cl.Do(req)
	if err != nil {
		return errs.ErrUpstreamUnreachable{Err: err}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.l.Printf("[WARN] failed to close usedesk response body: %v", err)
		}
	}()

	bts, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.ErrUpstreamUnreachable{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.ErrUseDeskAPI{ResponseStatus: resp.StatusCode, Body: string(bts)}
	}

	return c.checkResult(resp.StatusCode, bts)
}

// checkResult interprets the body of the successful response.
// Non-JSON bodies are considered to be plain "ok".
func (c *Client) checkResult(status int, bts []byte) error {
	if !json.Valid(bts) {
		c.l.Printf("[DEBUG] usedesk responded with non-json body, considering it as success")
		return nil
	}

	rerr := errs.ErrUseDeskAPI{ResponseStatus: status, Body: string(bts)}

	var result struct {
		Status  interface{} `json:"status"`
		Message interface{} `json:"message"`
	}

	// valid json, which is not an object, has no status, so it's a failure
	if err := json.Unmarshal(bts, &result); err != nil {
		return rerr
	}

	rerr.Status, _ = result.Status.(string)
	rerr.Message, _ = result.Message.(string)

	if rerr.Status == "success" || rerr.Status == "ok" {
		return nil
	}

	return rerr
}
