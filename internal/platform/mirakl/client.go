package mirakl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Client talks to the marketplace operator API.
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

type getShopsResponse struct {
	Shops []Shop `json:"shops"`
}

// GetShopsByIDs fetches shops by id. Unknown ids are simply absent from the
// result; callers decide whether that is fatal.
func (c *Client) GetShopsByIDs(ctx context.Context, ids []string) ([]Shop, error) {
	q := url.Values{"shop_ids": []string{strings.Join(ids, ",")}}
	var res getShopsResponse
	if err := c.do(ctx, http.MethodGet, "/api/shops?"+q.Encode(), nil, &res); err != nil {
		return nil, fmt.Errorf("get shops %v: %w", ids, err)
	}
	return res.Shops, nil
}

// DeleteDocument removes a previously uploaded shop document.
func (c *Client) DeleteDocument(ctx context.Context, documentID string) error {
	path := "/api/shops/documents/" + url.PathEscape(documentID)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete document %s: %w", documentID, err)
	}
	return nil
}

type createManualDocumentsRequest struct {
	Documents []ManualDocumentRequest `json:"manual_accounting_documents"`
}

// CreateManualDocument creates a single manual accounting document. The
// marketplace reports creation errors inside the response body, not as a
// failed HTTP call.
func (c *Client) CreateManualDocument(ctx context.Context, doc ManualDocumentRequest) (*CreatedManualDocuments, error) {
	req := createManualDocumentsRequest{Documents: []ManualDocumentRequest{doc}}
	var res CreatedManualDocuments
	if err := c.do(ctx, http.MethodPost, "/api/invoices/manual_accounting_document", req, &res); err != nil {
		return nil, fmt.Errorf("create manual document for shop %s: %w", doc.ShopID, err)
	}
	return &res, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		c.log.Errorw("mirakl api error", "method", method, "path", path, "status", resp.StatusCode)
		return fmt.Errorf("mirakl api: %s %s: status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
