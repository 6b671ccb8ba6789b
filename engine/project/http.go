package project

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// HTTPLoader fetches layer records from the project service's demo API.
type HTTPLoader struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPLoader(baseURL string) *HTTPLoader {
	return &HTTPLoader{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (l *HTTPLoader) LoadLayers(ctx context.Context, projectID string) ([]Layer, error) {
	url := fmt.Sprintf("%s/api/v1/demo/projects/%s/layers", l.BaseURL, projectID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &LoadError{ProjectID: projectID, Cause: err}
	}
	resp, err := l.Client.Do(req)
	if err != nil {
		return nil, &LoadError{ProjectID: projectID, Cause: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &LoadError{ProjectID: projectID, Cause: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	var payload struct {
		Layers []Layer `json:"layers"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &LoadError{ProjectID: projectID, Cause: fmt.Errorf("malformed payload: %w", err)}
	}
	if payload.Layers == nil {
		return nil, &LoadError{ProjectID: projectID, Cause: fmt.Errorf("malformed payload: missing layers")}
	}
	return payload.Layers, nil
}
