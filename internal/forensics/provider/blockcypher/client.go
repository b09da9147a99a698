// Package blockcypher fetches address, transaction and block data from a
// BlockCypher compatible REST API.
package blockcypher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/model"
	"github.com/goodnatureofminers/blockinsight7000-forensics/internal/forensics/provider"
	"go.uber.org/zap"
)

const (
	providerName   = "blockcypher"
	maxBodyBytes   = 8 << 20
	limitsReached  = "Limits reached"
	DefaultBaseURL = "https://api.blockcypher.com/v1/btc/main"
	DefaultTimeout = 20 * time.Second
)

// Config configures the client.
type Config struct {
	BaseURL string
	Tokens  []string
	Timeout time.Duration
	Policy  provider.Policy
}

// Client talks to the chain-data provider with bounded retries.
type Client struct {
	baseURL string
	timeout time.Duration
	http    HTTPClient
	tokens  provider.TokenPool
	policy  provider.Policy
	pacer   *provider.Pacer
	metrics Metrics
	logger  *zap.Logger
	intN    func(int) int
	now     func() time.Time
}

// NewClient builds a Client; pacer may be shared with other clients.
func NewClient(cfg Config, httpClient HTTPClient, pacer *provider.Pacer, metrics Metrics, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: cfg.Timeout,
		http:    httpClient,
		tokens:  provider.NewTokenPool(cfg.Tokens),
		policy:  cfg.Policy,
		pacer:   pacer,
		metrics: metrics,
		logger:  logger.Named("blockcypher"),
		intN:    rand.IntN,
		now:     time.Now,
	}
}

// AddressSnapshot returns balances and up to limit recent transactions of address.
func (c *Client) AddressSnapshot(ctx context.Context, address string, limit int) (model.AddressSnapshot, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var resp addressResponse
	if err := c.get(ctx, "address_full", "/addrs/"+url.PathEscape(address)+"/full", query, &resp); err != nil {
		return model.AddressSnapshot{}, fmt.Errorf("fetch address %s: %w", address, err)
	}
	if resp.Address == "" {
		resp.Address = address
	}
	return convertAddress(resp, c.now()), nil
}

// Block returns block metadata by hash.
func (c *Client) Block(ctx context.Context, hash string) (model.Block, error) {
	var resp blockResponse
	if err := c.get(ctx, "block", "/blocks/"+url.PathEscape(hash), url.Values{}, &resp); err != nil {
		return model.Block{}, fmt.Errorf("fetch block %s: %w", hash, err)
	}
	if resp.Hash == "" {
		resp.Hash = hash
	}
	return convertBlock(resp), nil
}

func (c *Client) get(ctx context.Context, operation, path string, query url.Values, dst any) (err error) {
	start := time.Now()
	defer func() {
		c.metrics.Observe(operation, err, start)
	}()

	policy := c.policy
	policy.Classify = classify
	policy.OnRetry = func(attempt int, class provider.Class, wait time.Duration, attemptErr error) {
		c.metrics.ObserveRetry(operation, class.String())
		c.logger.Warn("retrying provider call",
			zap.String("operation", operation),
			zap.Int("attempt", attempt),
			zap.Stringer("class", class),
			zap.Duration("wait", wait),
			zap.Error(attemptErr),
		)
	}

	return provider.Do(ctx, policy, func(ctx context.Context, _ int) error {
		return c.attempt(ctx, path, query, dst)
	})
}

func (c *Client) attempt(ctx context.Context, path string, query url.Values, dst any) error {
	if err := c.pacer.Wait(ctx); err != nil {
		return err
	}

	q := url.Values{}
	for k, v := range query {
		q[k] = v
	}
	if token := c.tokens.Pick(c.intN(max(c.tokens.Len(), 1))); token != "" {
		q.Set("token", token)
	}
	target := c.baseURL + path
	if encoded := q.Encode(); encoded != "" {
		target += "?" + encoded
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, target, nil)
	if err != nil {
		return &provider.APIError{Provider: providerName, Message: err.Error()}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := quotaAnswer(path, resp, body); err != nil {
		return err
	}
	if err := provider.CheckResponse(providerName, resp, body); err != nil {
		return err
	}
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", path, model.ErrNotFound)
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	if envelope.Error != "" {
		if strings.Contains(envelope.Error, limitsReached) {
			return fmt.Errorf("%s: %s: %w", path, envelope.Error, provider.ErrRateLimited)
		}
		return &provider.APIError{Provider: providerName, Status: resp.StatusCode, Message: envelope.Error}
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// quotaAnswer reports a JSON 4xx whose error message is the quota notice,
// whatever status code carried it.
func quotaAnswer(path string, resp *http.Response, body []byte) error {
	if resp.StatusCode < http.StatusBadRequest || resp.StatusCode >= http.StatusInternalServerError {
		return nil
	}
	if provider.IsChallenge(resp.Header, body) {
		return nil
	}
	var envelope errorEnvelope
	if json.Unmarshal(body, &envelope) != nil || !strings.Contains(envelope.Error, limitsReached) {
		return nil
	}
	return fmt.Errorf("%s: %s: %w", path, envelope.Error, provider.ErrRateLimited)
}

func classify(err error) provider.Class {
	if errors.Is(err, model.ErrNotFound) {
		return provider.ClassFatal
	}
	return provider.Classify(err)
}
