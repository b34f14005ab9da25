package kontent

import (
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"
)

const (
	// DeliveryAPIBase is the public, read-only delivery endpoint.
	DeliveryAPIBase = "https://deliver.kontent.ai"

	// ManagementAPIBase is the authenticated management endpoint.
	ManagementAPIBase = "https://manage.kontent.ai/v2"
)

func NewAPI(projectID string, deliveryKey string, managementKey string) (*API, error) {
	if projectID == "" {
		return &API{}, fmt.Errorf("kontent: configure your Kontent.ai project ID with --project-id or KONTENT_PROJECT_ID")
	}

	deliveryURI, err := url.ParseRequestURI(DeliveryAPIBase)
	if err != nil {
		return nil, fmt.Errorf("kontent: couldn't parse delivery API URL: %w", err)
	}

	managementURI, err := url.ParseRequestURI(ManagementAPIBase)
	if err != nil {
		return nil, fmt.Errorf("kontent: couldn't parse management API URL: %w", err)
	}

	a := &API{
		ProjectID:     projectID,
		DeliveryURI:   deliveryURI,
		ManagementURI: managementURI,
		deliveryKey:   deliveryKey,
		managementKey: managementKey,
	}
	a.Client = &http.Client{}

	// The delivery API's rate limits are undocumented; stay well under
	// anything plausible rather than hammering it.
	a.Limiter = rate.NewLimiter(rate.Limit(20), 20)

	return a, nil
}

type API struct {
	// ProjectID is the Kontent.ai project (environment) identifier.
	ProjectID string

	// Base URIs for the two API surfaces.
	DeliveryURI   *url.URL
	ManagementURI *url.URL

	// An HTTP client - you can substitute VCR or whatnot.
	Client *http.Client

	// Limiter throttles outgoing requests.
	Limiter *rate.Limiter

	// Auth info.  The delivery key is optional for public projects.
	deliveryKey, managementKey string
}

// HasManagementKey reports whether management-API calls can be attempted.
func (a *API) HasManagementKey() bool {
	return a.managementKey != ""
}
