// Package project fetches project layer records and seeds the scene from
// them. The engine only consumes the record fields listed here; layer
// metadata is otherwise uninterpreted.
package project

import (
	"context"
	"fmt"
)

// Layer is one layer record from the project service.
type Layer struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	LayerType    string `json:"layer_type"`
	IsVisible    bool   `json:"is_visible"`
	GeometryType string `json:"geometry_type"`
}

// Loader fetches the layer records of a project.
type Loader interface {
	LoadLayers(ctx context.Context, projectID string) ([]Layer, error)
}

// LoadError reports a failed or malformed project fetch. The engine stays
// usable with the scene it already has.
type LoadError struct {
	ProjectID string
	Cause     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("project: loading %s: %v", e.ProjectID, e.Cause)
}

func (e *LoadError) Unwrap() error { return e.Cause }
