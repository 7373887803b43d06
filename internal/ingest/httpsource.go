package ingest

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/internradar/internradar/internal/utils"
)

const (
	defaultUserAgent = "internradar (https://github.com/internradar/internradar)"
	contentType      = "application/json"
	contentEncoding  = "gzip, deflate, br"
)

// HTTPSource fetches raw records from a JSON job-board API. One instance per
// configured site; the concrete scraping mechanism behind the endpoint is
// the collaborator's concern.
type HTTPSource struct {
	name    string
	baseURL string
	apiKey  string
	// delay is a courtesy pause between per-term requests so sources are
	// not hammered.
	delay  time.Duration
	logger *zap.Logger

	HTTPClient *http.Client
	UserAgent  string
}

type itemResponse struct {
	Items []map[string]any `json:"items"`
	Found int              `json:"found"`
}

func NewHTTPSource(name, baseURL, apiKey string, delay time.Duration, logger *zap.Logger) *HTTPSource {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &HTTPSource{
		name:    name,
		baseURL: baseURL,
		apiKey:  apiKey,
		delay:   delay,
		logger:  logger,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		UserAgent: defaultUserAgent,
	}
}

func (s *HTTPSource) Name() string { return s.name }

// Fetch issues one request per search term and merges the returned records.
// Records missing a site key are tagged with this source's name.
func (s *HTTPSource) Fetch(ctx context.Context, q Query) ([]map[string]any, error) {
	var records []map[string]any

	for i, term := range q.Terms {
		if i > 0 {
			if err := utils.WaitFor(ctx, s.delay); err != nil {
				return nil, err
			}
		}

		items, err := s.getItems(ctx, term, q)
		if err != nil {
			return nil, fmt.Errorf("term %q: %w", term, err)
		}

		for _, item := range items {
			if _, ok := item["site"]; !ok {
				item["site"] = s.name
			}
			records = append(records, item)
		}
	}

	s.logger.Debug("fetched records",
		zap.String("source", s.name),
		zap.Int("terms", len(q.Terms)),
		zap.Int("records", len(records)),
	)

	return records, nil
}

func (s *HTTPSource) getItems(ctx context.Context, term string, q Query) ([]map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL, nil)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("q", term)
	if q.Location != "" {
		params.Set("location", q.Location)
	}
	if q.MaxAgeDays > 0 {
		params.Set("max_age_days", strconv.Itoa(q.MaxAgeDays))
	}
	req.URL.RawQuery = params.Encode()

	req.Header.Set("User-Agent", s.UserAgent)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept-Encoding", contentEncoding)
	if s.apiKey != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))
	}

	s.logger.Debug("make request", zap.String("url", req.URL.String()))

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status: %s", resp.Status)
	}

	var body io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		body = gz
	}

	var response itemResponse
	if err := json.NewDecoder(body).Decode(&response); err != nil {
		return nil, err
	}

	return response.Items, nil
}
