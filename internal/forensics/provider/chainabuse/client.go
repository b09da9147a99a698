// Package chainabuse reads scam reports from a Chainabuse compatible feed.
package chainabuse

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/provider"
	"go.uber.org/zap"
)

const (
	providerName   = "chainabuse"
	maxBodyBytes   = 4 << 20
	DefaultBaseURL = "https://api.chainabuse.com"
	DefaultPerPage = 50
	DefaultPages   = 4
	DefaultTimeout = 20 * time.Second
)

// Config configures the feed client.
type Config struct {
	BaseURL  string
	APIKey   string
	PerPage  int
	MaxPages int
	Timeout  time.Duration
}

// Client pages through the reports filed against an address.
type Client struct {
	cfg     Config
	http    HTTPClient
	metrics Metrics
	logger  *zap.Logger
	now     func() time.Time
}

type reportsResponse struct {
	Reports []reportResponse `json:"reports"`
}

type reportResponse struct {
	ID           string `json:"id"`
	ScamCategory string `json:"scamCategory"`
	CreatedAt    string `json:"createdAt"`
	Trusted      bool   `json:"trusted"`
	Addresses    []struct {
		Domain string `json:"domain"`
	} `json:"addresses"`
}

// NewClient builds a Client.
func NewClient(cfg Config, httpClient HTTPClient, metrics Metrics, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.PerPage <= 0 {
		cfg.PerPage = DefaultPerPage
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = DefaultPages
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{cfg: cfg, http: httpClient, metrics: metrics, logger: logger.Named("chainabuse"), now: time.Now}
}

// Reports returns every report filed against address. A 404 means none.
// A missing API key fails with provider.ErrUnconfigured, a 429 with provider.ErrRateLimited.
func (c *Client) Reports(ctx context.Context, address string) (_ []model.Report, err error) {
	start := time.Now()
	defer func() {
		c.metrics.Observe("reports", err, start)
	}()

	if c.cfg.APIKey == "" {
		return nil, fmt.Errorf("chainabuse api key: %w", provider.ErrUnconfigured)
	}

	var reports []model.Report
	for page := 1; page <= c.cfg.MaxPages; page++ {
		batch, err := c.page(ctx, address, page)
		if err != nil {
			return nil, fmt.Errorf("fetch reports page %d: %w", page, err)
		}
		fetchedAt := c.now().UTC()
		for _, r := range batch {
			reports = append(reports, c.convert(address, r, fetchedAt))
		}
		if len(batch) < c.cfg.PerPage {
			break
		}
	}
	return reports, nil
}

func (c *Client) page(ctx context.Context, address string, page int) ([]reportResponse, error) {
	q := url.Values{}
	q.Set("address", address)
	q.Set("includePrivate", "false")
	q.Set("page", strconv.Itoa(page))
	q.Set("perPage", strconv.Itoa(c.cfg.PerPage))

	reqCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, c.cfg.BaseURL+"/v0/reports?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(c.cfg.APIKey+":")))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request reports: %w: %w", provider.ErrUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read reports: %w: %w", provider.ErrUnavailable, err)
	}
	if err := provider.CheckResponse(providerName, resp, body); err != nil {
		if provider.Classify(err) == provider.ClassTransient {
			return nil, fmt.Errorf("%w: %w", provider.ErrUnavailable, err)
		}
		return nil, err
	}

	var decoded reportsResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decode reports: %w", err)
	}
	return decoded.Reports, nil
}

func (c *Client) convert(address string, r reportResponse, fetchedAt time.Time) model.Report {
	createdAt, err := time.Parse(time.RFC3339, r.CreatedAt)
	if err != nil {
		c.logger.Debug("unparseable report timestamp", zap.String("id", r.ID), zap.String("createdAt", r.CreatedAt))
		createdAt = fetchedAt
	}
	domains := make([]string, 0, len(r.Addresses))
	for _, a := range r.Addresses {
		if a.Domain != "" {
			domains = append(domains, a.Domain)
		}
	}
	slices.Sort(domains)
	return model.Report{
		ID:        r.ID,
		Address:   address,
		Category:  r.ScamCategory,
		CreatedAt: createdAt.UTC(),
		Trusted:   r.Trusted,
		Domains:   slices.Compact(domains),
		FetchedAt: fetchedAt,
	}
}
