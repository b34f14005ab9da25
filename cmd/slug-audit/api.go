package main

import (
	"fmt"
	"net/http"

	"github.com/kontent-tools/slug-audit/kontent"
	"gopkg.in/dnaeon/go-vcr.v3/cassette"
	"gopkg.in/dnaeon/go-vcr.v3/recorder"
)

// buildAPI assembles the API client from resolved configuration.  A missing
// project ID yields a nil API on purpose: the Finder fails closed with a
// descriptive report instead of us erroring out here.
func buildAPI() (*kontent.API, error) {
	if ProjectID == "" {
		return nil, nil
	}

	api, err := kontent.NewAPI(ProjectID, DeliveryAPIKey, ManagementAPIKey)
	if err != nil {
		return nil, fmt.Errorf("cmd: Kontent API creation failed: %w", err)
	}

	return api, nil
}

// setupVCR substitutes a go-vcr client on the API.  Callers must Stop() the
// returned recorder.
func setupVCR(api *kontent.API) (*recorder.Recorder, error) {
	opts := &recorder.Options{
		CassetteName:       "fixtures/slug-audit",
		Mode:               recorder.ModeReplayWithNewEpisodes,
		SkipRequestLatency: true,
		RealTransport:      http.DefaultTransport,
	}
	r, err := recorder.NewWithOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("cmd: couldn't set up go-vcr recording: %w", err)
	}

	// Keep API keys out of the cassettes.
	hook := func(i *cassette.Interaction) error {
		delete(i.Request.Headers, "Authorization")
		return nil
	}
	r.AddHook(hook, recorder.AfterCaptureHook)
	r.SetReplayableInteractions(true)

	api.Client = r.GetDefaultClient()
	return r, nil
}
