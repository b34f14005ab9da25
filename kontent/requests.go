package kontent

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// GetItems performs one paginated listing request against the delivery API.
func (api *API) GetItems(ctx context.Context, opts ItemsQuery) (*ItemsResponse, error) {
	ep, err := api.itemsEndpoint(opts)
	if err != nil {
		return nil, fmt.Errorf("kontent: couldn't get items endpoint: %w", err)
	}

	body, err := api.request(ctx, ep, api.deliveryKey, nil)
	if err != nil {
		return nil, fmt.Errorf("kontent: couldn't perform request: %w", err)
	}

	var items ItemsResponse

	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("kontent: couldn't parse json response: %w", err)
	}

	return &items, nil
}

// GetItemsFiltered performs one equality-filter lookup against the delivery API.
func (api *API) GetItemsFiltered(ctx context.Context, opts FilterQuery) (*ItemsResponse, error) {
	ep, err := api.itemsFilterEndpoint(opts)
	if err != nil {
		return nil, fmt.Errorf("kontent: couldn't get filter endpoint: %w", err)
	}

	body, err := api.request(ctx, ep, api.deliveryKey, nil)
	if err != nil {
		return nil, fmt.Errorf("kontent: couldn't perform request: %w", err)
	}

	var items ItemsResponse

	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("kontent: couldn't parse json response: %w", err)
	}

	return &items, nil
}

// ListManagementItems probes the management API's content-item listing.
// Resolving each item's language variants would take one further request per
// item and is not implemented.
func (api *API) ListManagementItems(ctx context.Context) (*ManagementItemsResponse, error) {
	if !api.HasManagementKey() {
		return nil, fmt.Errorf("kontent: no management API key configured")
	}

	ep, err := api.managementItemsEndpoint()
	if err != nil {
		return nil, fmt.Errorf("kontent: couldn't get management items endpoint: %w", err)
	}

	body, err := api.request(ctx, ep, api.managementKey, nil)
	if err != nil {
		return nil, fmt.Errorf("kontent: couldn't perform request: %w", err)
	}

	var items ManagementItemsResponse

	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("kontent: couldn't parse json response: %w", err)
	}

	return &items, nil
}

// ListVariantsOfType lists every language variant of every item of one
// content type via the management API, following continuation tokens until
// the listing is exhausted.
func (api *API) ListVariantsOfType(ctx context.Context, contentType string) ([]LanguageVariant, error) {
	if !api.HasManagementKey() {
		return nil, fmt.Errorf("kontent: no management API key configured")
	}

	ep, err := api.variantsEndpoint(contentType)
	if err != nil {
		return nil, fmt.Errorf("kontent: couldn't get variants endpoint: %w", err)
	}

	variants := []LanguageVariant{}
	continuation := ""

	for {
		var header http.Header
		if continuation != "" {
			header = http.Header{}
			header.Set("x-continuation", continuation)
		}

		body, err := api.request(ctx, ep, api.managementKey, header)
		if err != nil {
			return nil, fmt.Errorf("kontent: couldn't list variants of type %s: %w", contentType, err)
		}

		var page VariantsResponse
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("kontent: couldn't parse json response: %w", err)
		}

		variants = append(variants, page.Variants...)

		if page.Pagination.ContinuationToken == "" || page.Pagination.NextPage == "" {
			break
		}
		continuation = page.Pagination.ContinuationToken
	}

	return variants, nil
}

// request implements the basic GET helper shared by both API surfaces.
func (api *API) request(ctx context.Context, url *url.URL, key string, extraHeader http.Header) ([]byte, error) {
	if api.Limiter != nil {
		if err := api.Limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("kontent: rate limiter interrupted: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("kontent: couldn't instantiate http request: %w", err)
	}

	req.Header.Add("Accept", "application/json, */*")

	// Public projects allow unauthenticated delivery requests.
	if key != "" {
		req.Header.Set("Authorization", "Bearer "+key)
	}

	for k, vs := range extraHeader {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	response, err := api.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("kontent: couldn't perform http request: %w", err)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("kontent: couldn't read http response body: %w", err)
	}

	if err := response.Body.Close(); err != nil {
		return nil, fmt.Errorf("kontent: couldn't close response body: %w", err)
	}

	switch response.StatusCode {
	case http.StatusOK, http.StatusPartialContent:
		return body, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("kontent: authentication failed: %s", response.Status)
	case http.StatusNotFound:
		return nil, fmt.Errorf("kontent: not found, check your project ID: %s", response.Status)
	case http.StatusTooManyRequests:
		return nil, fmt.Errorf("kontent: rate limited by remote API: %s", response.Status)
	case http.StatusServiceUnavailable:
		return nil, fmt.Errorf("kontent: service is not available: %s", response.Status)
	case http.StatusInternalServerError:
		return nil, fmt.Errorf("kontent: internal server error: %s", response.Status)
	}

	return nil, fmt.Errorf("kontent: unexpected HTTP response status: %s: %s", response.Status, url.String())
}
