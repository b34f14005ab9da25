package kontent

import (
	"fmt"
	"net/url"

	"github.com/google/go-querystring/query"
)

// itemsEndpoint returns the delivery API endpoint to list content items:
// https://kontent.ai/learn/docs/apis/openapi/delivery-api/#operation/list-content-items
func (a *API) itemsEndpoint(opts ItemsQuery) (*url.URL, error) {
	ep, err := a.resolveEndpoint(a.DeliveryURI, fmt.Sprintf("/%s/items", a.ProjectID))
	if err != nil {
		return nil, fmt.Errorf("kontent: couldn't resolve endpoint: %w", err)
	}

	v, err := query.Values(opts)
	if err != nil {
		return nil, fmt.Errorf("kontent: couldn't encode query params: %w", err)
	}
	ep.RawQuery = v.Encode()

	return ep, nil
}

// itemsFilterEndpoint returns the delivery API items endpoint with an
// equality filter on one slug element.  The element name is dynamic
// (elements.slug or elements.url_slug), which go-querystring's static tags
// can't express, so it's added to the encoded values here.
func (a *API) itemsFilterEndpoint(opts FilterQuery) (*url.URL, error) {
	if opts.Field == "" {
		return nil, fmt.Errorf("kontent: please provide the element name to filter on")
	}

	ep, err := a.resolveEndpoint(a.DeliveryURI, fmt.Sprintf("/%s/items", a.ProjectID))
	if err != nil {
		return nil, fmt.Errorf("kontent: couldn't resolve endpoint: %w", err)
	}

	v, err := query.Values(opts)
	if err != nil {
		return nil, fmt.Errorf("kontent: couldn't encode query params: %w", err)
	}
	v.Set("elements."+opts.Field, opts.Value)
	ep.RawQuery = v.Encode()

	return ep, nil
}

// managementItemsEndpoint returns the management API endpoint to list the
// project's content items:
// https://kontent.ai/learn/docs/apis/openapi/management-api-v2/#operation/list-content-items
func (a *API) managementItemsEndpoint() (*url.URL, error) {
	return a.resolveEndpoint(a.ManagementURI, fmt.Sprintf("/projects/%s/items", a.ProjectID))
}

// variantsEndpoint returns the management API endpoint to list all language
// variants of items of one content type:
// https://kontent.ai/learn/docs/apis/openapi/management-api-v2/#operation/list-language-variants-of-content-type
func (a *API) variantsEndpoint(contentType string) (*url.URL, error) {
	if contentType == "" {
		return nil, fmt.Errorf("kontent: please provide a content type codename")
	}

	return a.resolveEndpoint(a.ManagementURI, fmt.Sprintf("/projects/%s/types/%s/variants", a.ProjectID, contentType))
}

// Do a bit of error checking on endpoint format, and return it relative to the base URI.
func (a *API) resolveEndpoint(base *url.URL, endpoint string) (*url.URL, error) {
	ref, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("kontent: failed to parse endpoint ref: %w", err)
	}

	// ResolveReference would discard a base path like /v2, so join instead.
	joined := *base
	joined.Path = base.Path + ref.Path
	joined.RawQuery = ref.RawQuery

	return &joined, nil
}

// FilterURL exposes the URL an equality-filter request would hit, for
// diagnostic reporting.
func (a *API) FilterURL(opts FilterQuery) (string, error) {
	ep, err := a.itemsFilterEndpoint(opts)
	if err != nil {
		return "", err
	}
	return ep.String(), nil
}
