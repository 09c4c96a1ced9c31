// Package airtable is a minimal client for the remote catalog datastore: an
// Airtable-compatible REST API queried per table with a page size, an optional
// sort spec and an offset continuation cursor.
package airtable

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jmgilman/go/errors"
)

const (
	defaultBaseURL = "https://api.airtable.com/v0"

	// Per-request timeout. Bounds a single attempt; the retry executor
	// bounds the attempt count. The two compose.
	requestTimeout = 15 * time.Second

	// The API never returns more than 100 records per page.
	maxPageSize = 100
)

// Config carries the two required credentials plus optional overrides.
type Config struct {
	APIKey  string
	BaseID  string
	BaseURL string        // defaults to the public API endpoint
	Timeout time.Duration // defaults to requestTimeout
}

// Record is a raw remote row: opaque id plus a heterogeneous field map whose
// keys vary by table layout and language.
type Record struct {
	ID          string         `json:"id"`
	CreatedTime time.Time      `json:"createdTime"`
	Fields      map[string]any `json:"fields"`
}

// Query addresses one logical table.
type Query struct {
	Table         string
	PageSize      int
	SortField     string
	SortDirection string // "asc" | "desc"
}

type listResponse struct {
	Records []Record `json:"records"`
	Offset  string   `json:"offset"`
}

// Client issues authenticated requests against one base.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient validates credentials and constructs a client. A missing API key
// or base ID is a permanent configuration failure, never retried.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New(errors.CodeInvalidConfig, "airtable: api key is not configured")
	}
	if cfg.BaseID == "" {
		return nil, errors.New(errors.CodeInvalidConfig, "airtable: base id is not configured")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = requestTimeout
	}

	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// ListPage fetches one page of records. A non-empty returned offset means more
// pages remain and must be passed back verbatim on the next call.
func (c *Client) ListPage(ctx context.Context, q Query, offset string) ([]Record, string, error) {
	if q.Table == "" {
		return nil, "", errors.New(errors.CodeInvalidInput, "airtable: table name is required")
	}

	pageSize := q.PageSize
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	params := url.Values{}
	params.Set("pageSize", strconv.Itoa(pageSize))
	if q.SortField != "" {
		dir := q.SortDirection
		if dir == "" {
			dir = "asc"
		}
		params.Set("sort[0][field]", q.SortField)
		params.Set("sort[0][direction]", dir)
	}
	if offset != "" {
		params.Set("offset", offset)
	}

	endpoint := fmt.Sprintf("%s/%s/%s?%s", c.cfg.BaseURL, c.cfg.BaseID, url.PathEscape(q.Table), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, "", errors.Wrapf(err, errors.CodeInvalidInput, "airtable: building request for %s", q.Table)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, "", errors.Wrapf(err, errors.CodeTimeout, "airtable: %s request cancelled", q.Table)
		}
		return nil, "", errors.Wrapf(err, errors.CodeNetwork, "airtable: %s request failed", q.Table)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", statusError(q.Table, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", errors.Wrapf(err, errors.CodeNetwork, "airtable: reading %s response", q.Table)
	}

	var page listResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, "", errors.Wrapf(err, errors.CodeSchemaFailed, "airtable: decoding %s response", q.Table)
	}

	return page.Records, page.Offset, nil
}

func statusError(table string, status int) error {
	switch {
	case status == http.StatusTooManyRequests:
		return errors.Newf(errors.CodeRateLimit, "airtable: %s rate limited", table)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return errors.Newf(errors.CodeUnauthorized, "airtable: %s rejected credentials (%d)", table, status)
	case status == http.StatusNotFound:
		return errors.Newf(errors.CodeNotFound, "airtable: table %s not found", table)
	case status >= 500:
		return errors.Newf(errors.CodeUnavailable, "airtable: %s returned %d", table, status)
	default:
		return errors.Newf(errors.CodeInvalidInput, "airtable: %s returned %d", table, status)
	}
}
