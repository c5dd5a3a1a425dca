package marketpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Client talks to the payment platform's merchant-of-record account API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     *zap.SugaredLogger
}

func NewClient(baseURL, apiKey string, log *zap.SugaredLogger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}
}

type getAccountHolderRequest struct {
	AccountHolderCode string `json:"accountHolderCode,omitempty"`
	AccountCode       string `json:"accountCode,omitempty"`
}

// GetByHolderCode queries an account holder by its holder code,
// which equals the marketplace shop id.
func (c *Client) GetByHolderCode(ctx context.Context, holderCode string) (*AccountHolder, error) {
	return c.getAccountHolder(ctx, &getAccountHolderRequest{AccountHolderCode: holderCode})
}

// GetByAccountCode queries an account holder by one of its
// ledger account codes.
func (c *Client) GetByAccountCode(ctx context.Context, accountCode string) (*AccountHolder, error) {
	return c.getAccountHolder(ctx, &getAccountHolderRequest{AccountCode: accountCode})
}

func (c *Client) getAccountHolder(ctx context.Context, req *getAccountHolderRequest) (*AccountHolder, error) {
	var holder AccountHolder
	if err := c.post(ctx, "/getAccountHolder", req, &holder); err != nil {
		return nil, err
	}
	return &holder, nil
}

// SubmitPayout re-submits a previously failed payout request verbatim.
func (c *Client) SubmitPayout(ctx context.Context, request json.RawMessage) error {
	return c.post(ctx, "/payoutAccountHolder", request, nil)
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrAccountHolderNotFound
	}
	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
			apiErr.Message = resp.Status
		}
		c.log.Errorw("marketpay api error", "path", path, "status", apiErr.Status, "code", apiErr.ErrorCode, "message", apiErr.Message)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
