package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"mariage/internal/models"
)

// ErrNoEndpoint is returned when none of the candidate base URLs
// answers with a well-formed list envelope.
var ErrNoEndpoint = errors.New("no reachable RSVP endpoint")

// API is a resolved connection to one RSVP server. The base URL is
// fixed at construction; there is no hidden module-level cache.
type API struct {
	base string
	http *http.Client
}

// New returns an API bound to the given base URL, e.g.
// "http://localhost:3002". A nil client uses http.DefaultClient.
func New(base string, httpClient *http.Client) *API {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &API{base: strings.TrimRight(base, "/"), http: httpClient}
}

// Base returns the server URL this API talks to.
func (a *API) Base() string {
	return a.base
}

// Resolve probes the candidate base URLs in order with a lightweight
// read of the list endpoint and returns an API for the first one that
// answers with a well-formed success envelope.
func Resolve(ctx context.Context, candidates []string, httpClient *http.Client) (*API, error) {
	for _, base := range candidates {
		api := New(base, httpClient)
		if api.probe(ctx) {
			return api, nil
		}
	}
	return nil, ErrNoEndpoint
}

func (a *API) probe(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.base+"/api/rsvp", nil)
	if err != nil {
		return false
	}
	res, err := a.http.Do(req)
	if err != nil {
		return false
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return false
	}
	var envelope struct {
		Ok *bool `json:"ok"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return false
	}
	return envelope.Ok != nil
}

// Submit posts one response. Any transport error, non-2xx status or
// failure envelope is returned as an error for the caller's fallback
// chain; there is no retry here.
func (a *API) Submit(ctx context.Context, request models.RsvpRequest) error {
	body, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.base+"/api/rsvp", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := a.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned HTTP %d", res.StatusCode)
	}

	var envelope struct {
		Ok    bool   `json:"ok"`
		Error string `json:"error"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if !envelope.Ok {
		return fmt.Errorf("server rejected submission: %s", envelope.Error)
	}
	return nil
}

// List fetches the newest responses, most recent first.
func (a *API) List(ctx context.Context) ([]models.Rsvp, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.base+"/api/rsvp", nil)
	if err != nil {
		return nil, err
	}
	res, err := a.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned HTTP %d", res.StatusCode)
	}

	var envelope struct {
		Ok   bool          `json:"ok"`
		Data []models.Rsvp `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if !envelope.Ok {
		return nil, errors.New("server reported failure")
	}
	return envelope.Data, nil
}

// Delete removes one response by id and reports how many rows the
// server deleted (0 for an id that no longer exists).
func (a *API) Delete(ctx context.Context, id int64) (int64, error) {
	url := fmt.Sprintf("%s/api/rsvp/%d", a.base, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return 0, err
	}
	res, err := a.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("server returned HTTP %d", res.StatusCode)
	}

	var envelope struct {
		Ok      bool  `json:"ok"`
		Deleted int64 `json:"deleted"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return 0, fmt.Errorf("failed to decode response: %w", err)
	}
	if !envelope.Ok {
		return 0, errors.New("server reported failure")
	}
	return envelope.Deleted, nil
}

// Health checks the server's health endpoint.
func (a *API) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.base+"/api/health", nil)
	if err != nil {
		return err
	}
	res, err := a.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned HTTP %d", res.StatusCode)
	}
	return nil
}
