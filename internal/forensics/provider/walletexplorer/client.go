// Package walletexplorer looks up wallet clustering labels.
package walletexplorer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/provider"
	"go.uber.org/zap"
)

const (
	providerName   = "walletexplorer"
	maxBodyBytes   = 1 << 20
	DefaultBaseURL = "https://www.walletexplorer.com"
	DefaultTimeout = 10 * time.Second
)

// Config configures the lookup client.
type Config struct {
	BaseURL string
	Caller  string
	Timeout time.Duration
	Policy  provider.Policy
}

// Client resolves an address to the wallet it was clustered into.
type Client struct {
	cfg     Config
	http    HTTPClient
	pacer   *provider.Pacer
	metrics Metrics
	logger  *zap.Logger
}

type lookupResponse struct {
	Found          bool   `json:"found"`
	Label          string `json:"label"`
	WalletID       string `json:"wallet_id"`
	UpdatedToBlock uint64 `json:"updated_to_block"`
	Message        string `json:"message"`
}

// NewClient builds a Client.
func NewClient(cfg Config, httpClient HTTPClient, pacer *provider.Pacer, metrics Metrics, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{cfg: cfg, http: httpClient, pacer: pacer, metrics: metrics, logger: logger.Named("walletexplorer")}
}

// Lookup returns the wallet label of address; Found is false when it is not clustered.
func (c *Client) Lookup(ctx context.Context, address string) (_ model.WalletLabel, err error) {
	start := time.Now()
	defer func() {
		c.metrics.Observe("address_lookup", err, start)
	}()

	policy := c.cfg.Policy
	policy.OnRetry = func(attempt int, class provider.Class, wait time.Duration, attemptErr error) {
		c.metrics.ObserveRetry("address_lookup", class.String())
		c.logger.Warn("retrying wallet lookup", zap.Int("attempt", attempt), zap.Duration("wait", wait), zap.Error(attemptErr))
	}

	var resp lookupResponse
	err = provider.Do(ctx, policy, func(ctx context.Context, _ int) error {
		resp = lookupResponse{}
		return c.attempt(ctx, address, &resp)
	})
	if err != nil {
		return model.WalletLabel{}, fmt.Errorf("lookup wallet of %s: %w", address, err)
	}

	return model.WalletLabel{
		Found:          resp.Found,
		Label:          resp.Label,
		WalletID:       resp.WalletID,
		UpdatedToBlock: resp.UpdatedToBlock,
	}, nil
}

func (c *Client) attempt(ctx context.Context, address string, dst *lookupResponse) error {
	if err := c.pacer.Wait(ctx); err != nil {
		return err
	}

	q := url.Values{}
	q.Set("address", address)
	if c.cfg.Caller != "" {
		q.Set("caller", c.cfg.Caller)
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, c.cfg.BaseURL+"/api/1/address-lookup?"+q.Encode(), nil)
	if err != nil {
		return &provider.APIError{Provider: providerName, Message: err.Error()}
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request lookup: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read lookup: %w", err)
	}
	if err := provider.CheckResponse(providerName, resp, body); err != nil {
		return err
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode lookup: %w", err)
	}
	return nil
}
