// Package hosting defines the abstraction for static-site hosting providers
// that accept one-shot deployments of named files.
package hosting

import (
	"context"
	"encoding/json"
)

// File is a single named file in a deployment payload.
type File struct {
	// Name is the path of the file inside the deployment, e.g. "index.html".
	Name string `json:"file"`
	// Data is the file content as text.
	Data string `json:"data"`
}

// Deployment describes one deployment request to the provider.
type Deployment struct {
	// Name is the project/site name the deployment belongs to.
	Name string
	// Files are the named files that make up the site.
	Files []File
	// Target is the deployment environment, e.g. "production".
	Target string
}

// Client is the abstraction for hosting providers.
//
//go:generate mockgen -package mockhosting -source=interface.go -destination=mock/mockhosting.go *
type Client interface {
	// Deploy submits the deployment and returns the provider's raw JSON
	// response. A non-2xx provider response or transport failure is returned
	// as an error carrying the provider's error detail.
	Deploy(ctx context.Context, deployment Deployment) (json.RawMessage, error)
}
