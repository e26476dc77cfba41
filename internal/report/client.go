// Package report fetches the prior-day search-term report from the upstream
// reporting API as a newline-delimited JSON stream. Rows are consumed
// sequentially through TermStream; the report is never materialized.
package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2/clientcredentials"

	"termguard/internal/models"
)

const userAgent = "TermGuard-Reconciler/1.0"

// Config holds the upstream reporting API settings.
type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	TokenURL     string
	Timeout      time.Duration
}

// Client reads search-term reports over HTTP.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a report client. When OAuth2 client credentials are
// configured the client fetches and refreshes tokens itself; otherwise plain
// HTTP is used (local development against a stub server).
func NewClient(ctx context.Context, cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}

	var httpClient *http.Client
	if cfg.ClientID != "" && cfg.TokenURL != "" {
		cc := clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
		}
		httpClient = cc.Client(ctx)
	} else {
		httpClient = &http.Client{}
	}
	httpClient.Timeout = timeout

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  httpClient,
	}
}

// SearchTerms opens the search-term report stream for the given campaigns
// and report date. Upstream pre-filters to rows with at least one click. The
// caller must Close the returned stream.
func (c *Client) SearchTerms(ctx context.Context, date time.Time, campaignIDs []uuid.UUID) (*TermStream, error) {
	if c.baseURL == "" {
		return nil, errors.New("report source: base URL not configured")
	}

	params := url.Values{}
	params.Set("date", date.Format("2006-01-02"))
	params.Set("min_clicks", "1")
	for _, id := range campaignIDs {
		params.Add("campaign_id", id.String())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/v1/reports/search-terms?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("report source: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/x-ndjson")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("report source: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		return nil, fmt.Errorf("report source: HTTP %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	return &TermStream{
		body:    resp.Body,
		decoder: json.NewDecoder(resp.Body),
	}, nil
}

// TermStream is a single-pass iterator over report rows.
type TermStream struct {
	body    io.ReadCloser
	decoder *json.Decoder
	row     models.SearchTermRow
	err     error
}

// Next advances to the next row, reporting false at end of stream or on
// error. Zero-click rows are dropped even though upstream claims to
// pre-filter them: the run statistics must never count traffic the report
// contract says cannot exist.
func (s *TermStream) Next() bool {
	if s.err != nil {
		return false
	}
	for {
		var row models.SearchTermRow
		if err := s.decoder.Decode(&row); err != nil {
			if !errors.Is(err, io.EOF) {
				s.err = err
			}
			return false
		}
		if row.Clicks < 1 {
			continue
		}
		s.row = row
		return true
	}
}

// Row returns the current row. Valid only after Next returned true.
func (s *TermStream) Row() models.SearchTermRow {
	return s.row
}

// Err returns the first error encountered while reading the stream.
func (s *TermStream) Err() error {
	return s.err
}

// Close releases the underlying response body.
func (s *TermStream) Close() error {
	return s.body.Close()
}
