package project

import (
	"context"
	"errors"
)

// DemoLoader serves a built-in sample building, mirroring the project
// service's demo data. Works offline; the viewer uses it when no service
// URL is configured.
type DemoLoader struct{}

func (DemoLoader) LoadLayers(ctx context.Context, projectID string) ([]Layer, error) {
	if projectID == "" {
		return nil, &LoadError{ProjectID: projectID, Cause: errors.New("empty project id")}
	}
	return []Layer{
		{ID: "demo-foundation", Name: "Foundation", LayerType: "structure", IsVisible: true, GeometryType: "solid"},
		{ID: "demo-walls", Name: "Walls", LayerType: "wall", IsVisible: true, GeometryType: "surface"},
		{ID: "demo-roof", Name: "Roof", LayerType: "structure", IsVisible: false, GeometryType: "solid"},
	}, nil
}
