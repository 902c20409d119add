package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/CSCI-GA-2820-FA22-001/shopcarts/models"
)

// ShopcartClient talks to one shopcart API server of a known Variant.
// Timeouts, retries and connection reuse are left to the http.Client.
type ShopcartClient struct {
	baseURL    string
	variant    Variant
	httpClient *http.Client
}

func NewShopcartClient(baseURL string, variant Variant, httpClient ...*http.Client) *ShopcartClient {
	hc := http.DefaultClient
	if len(httpClient) > 0 && httpClient[0] != nil {
		hc = httpClient[0]
	}
	return &ShopcartClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		variant:    variant,
		httpClient: hc,
	}
}

func (c *ShopcartClient) Variant() Variant {
	return c.variant
}

// CreateShopcart handles POST {base}
func (c *ShopcartClient) CreateShopcart(ctx context.Context, req models.CreateShopcartRequest) (*models.Shopcart, error) {
	var cart models.Shopcart
	if _, err := c.do(ctx, http.MethodPost, c.collectionPath(), req, &cart, false); err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddItem handles POST {base}/{shopcart_id}/items
func (c *ShopcartClient) AddItem(ctx context.Context, shopcartID string, req models.AddItemRequest) error {
	_, err := c.do(ctx, http.MethodPost, c.itemsPath(shopcartID), req, nil, true)
	return err
}

// GetItem handles GET {base}/{shopcart_id}/items/{item_id}
func (c *ShopcartClient) GetItem(ctx context.Context, shopcartID, itemID string) (*models.Item, error) {
	var item models.Item
	if _, err := c.do(ctx, http.MethodGet, c.itemPath(shopcartID, itemID), nil, &item, false); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem handles PUT {base}/{shopcart_id}/items/{item_id}. The returned
// item is nil when the server answers without a body.
func (c *ShopcartClient) UpdateItem(ctx context.Context, shopcartID, itemID string, patch models.ItemPatch) (*models.Item, error) {
	var item models.Item
	decoded, err := c.do(ctx, http.MethodPut, c.itemPath(shopcartID, itemID), patch, &item, true)
	if err != nil {
		return nil, err
	}
	if !decoded {
		return nil, nil
	}
	return &item, nil
}

// GetShopcart handles GET {base}/{shopcart_id}
func (c *ShopcartClient) GetShopcart(ctx context.Context, shopcartID string) (*models.Shopcart, error) {
	var cart models.Shopcart
	if _, err := c.do(ctx, http.MethodGet, c.shopcartPath(shopcartID), nil, &cart, false); err != nil {
		return nil, err
	}
	return &cart, nil
}

// ListShopcarts handles GET {base}
func (c *ShopcartClient) ListShopcarts(ctx context.Context) ([]models.Shopcart, error) {
	return c.listShopcarts(ctx, c.collectionPath())
}

// SearchShopcarts handles GET {base}?{query}. The query is sent as built.
func (c *ShopcartClient) SearchShopcarts(ctx context.Context, query string) ([]models.Shopcart, error) {
	path := c.collectionPath()
	if query != "" {
		path += "?" + query
	}
	return c.listShopcarts(ctx, path)
}

// DeleteItem handles DELETE {base}/{shopcart_id}/items/{item_id}
func (c *ShopcartClient) DeleteItem(ctx context.Context, shopcartID, itemID string) error {
	_, err := c.do(ctx, http.MethodDelete, c.itemPath(shopcartID, itemID), nil, nil, true)
	return err
}

// DeleteShopcart handles DELETE {base}/{shopcart_id}
func (c *ShopcartClient) DeleteShopcart(ctx context.Context, shopcartID string) error {
	_, err := c.do(ctx, http.MethodDelete, c.shopcartPath(shopcartID), nil, nil, true)
	return err
}

// ListItems handles GET {base}/{shopcart_id}/items
func (c *ShopcartClient) ListItems(ctx context.Context, shopcartID string) ([]models.Item, error) {
	var list models.ItemList
	if _, err := c.do(ctx, http.MethodGet, c.itemsPath(shopcartID), nil, &list, false); err != nil {
		return nil, err
	}
	if list.Items == nil {
		list.Items = []models.Item{}
	}
	return list.Items, nil
}

// ResetShopcart handles PUT {base}/{shopcart_id}/reset
func (c *ShopcartClient) ResetShopcart(ctx context.Context, shopcartID string) (*models.Shopcart, error) {
	var cart models.Shopcart
	if _, err := c.do(ctx, http.MethodPut, c.shopcartPath(shopcartID)+"/reset", nil, &cart, false); err != nil {
		return nil, err
	}
	return &cart, nil
}

// UpdateShopcart handles PUT {base}/{shopcart_id}
func (c *ShopcartClient) UpdateShopcart(ctx context.Context, shopcartID string, req models.UpdateShopcartRequest) (*models.Shopcart, error) {
	var cart models.Shopcart
	if _, err := c.do(ctx, http.MethodPut, c.shopcartPath(shopcartID), req, &cart, false); err != nil {
		return nil, err
	}
	return &cart, nil
}

// Checkout handles POST {base}/{shopcart_id}/checkout and returns the
// items taken out of the cart.
func (c *ShopcartClient) Checkout(ctx context.Context, shopcartID string, req models.CheckoutRequest) ([]models.Item, error) {
	var list models.ItemList
	if _, err := c.do(ctx, http.MethodPost, c.shopcartPath(shopcartID)+"/checkout", req, &list, false); err != nil {
		return nil, err
	}
	if list.Items == nil {
		list.Items = []models.Item{}
	}
	return list.Items, nil
}

func (c *ShopcartClient) listShopcarts(ctx context.Context, path string) ([]models.Shopcart, error) {
	var raw json.RawMessage
	if _, err := c.do(ctx, http.MethodGet, path, nil, &raw, false); err != nil {
		return nil, err
	}

	carts, err := decodeShopcartList(raw, c.variant.ListWrapperKey)
	if err != nil {
		return nil, &RequestFailedError{StatusCode: http.StatusOK, Err: err}
	}
	return carts, nil
}

func decodeShopcartList(raw json.RawMessage, wrapperKey string) ([]models.Shopcart, error) {
	if wrapperKey != "" {
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal(raw, &wrapper); err != nil {
			return nil, fmt.Errorf("failed to unmarshal shopcart list: %w", err)
		}
		inner, ok := wrapper[wrapperKey]
		if !ok {
			return nil, fmt.Errorf("shopcart list response has no %q key", wrapperKey)
		}
		raw = inner
	}

	var carts []models.Shopcart
	if err := json.Unmarshal(raw, &carts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal shopcart list: %w", err)
	}
	if carts == nil {
		carts = []models.Shopcart{}
	}
	return carts, nil
}

// do performs one request. When out is non-nil a JSON body is decoded into
// it; an empty body is an error unless optional is set. The returned bool
// reports whether anything was decoded.
func (c *ShopcartClient) do(ctx context.Context, method, path string, in, out any, optional bool) (bool, error) {
	var body io.Reader
	if in != nil {
		jsonData, err := json.Marshal(in)
		if err != nil {
			return false, &RequestFailedError{Err: fmt.Errorf("failed to marshal request: %w", err)}
		}
		body = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return false, &RequestFailedError{Err: fmt.Errorf("failed to build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, &RequestFailedError{Err: fmt.Errorf("failed to call shopcart service: %w", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, &RequestFailedError{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, newStatusError(resp.StatusCode, respBody)
	}

	if len(bytes.TrimSpace(respBody)) == 0 {
		if out != nil && !optional {
			return false, &RequestFailedError{StatusCode: resp.StatusCode, Err: errors.New("empty response body")}
		}
		return false, nil
	}

	if out == nil {
		if !json.Valid(respBody) {
			return false, &RequestFailedError{StatusCode: resp.StatusCode, Err: errors.New("malformed JSON response body")}
		}
		return false, nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return false, &RequestFailedError{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to unmarshal response: %w", err)}
	}
	return true, nil
}

func newStatusError(status int, body []byte) *RequestFailedError {
	rf := &RequestFailedError{
		StatusCode: status,
		Err:        fmt.Errorf("unexpected status code %d: %s", status, http.StatusText(status)),
	}
	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		rf.Message = errResp.Message
	}
	return rf
}

func (c *ShopcartClient) collectionPath() string {
	return c.variant.BasePath
}

func (c *ShopcartClient) shopcartPath(shopcartID string) string {
	return c.variant.BasePath + "/" + url.PathEscape(shopcartID)
}

func (c *ShopcartClient) itemsPath(shopcartID string) string {
	return c.shopcartPath(shopcartID) + "/items"
}

func (c *ShopcartClient) itemPath(shopcartID, itemID string) string {
	return c.itemsPath(shopcartID) + "/" + url.PathEscape(itemID)
}
