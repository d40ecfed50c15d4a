// Package deploy assembles site fragments into a single deployable document
// and submits it to the configured hosting provider.
package deploy

import (
	"context"
	"encoding/json"
	"time"

	"bloghub/internal/config"
	"bloghub/pkg/hosting"
)

// productionTarget is the provider environment every deployment is sent to.
const productionTarget = "production"

// indexFileName is the single file composing the deployed site.
const indexFileName = "index.html"

// Request carries the site fragments and display name for one deployment.
type Request struct {
	// HTML is the markup fragment inlined as the document body.
	HTML string
	// CSS is the style fragment embedded in the head style block.
	CSS string
	// JS is the behavior fragment embedded in the trailing script block.
	JS string
	// SiteName is the display name used as document title and provider
	// project name.
	SiteName string
}

// Result is the outcome of a successful deployment submission.
type Result struct {
	// Files are the named files that were submitted.
	Files []hosting.File
	// ProviderResponse is the provider's raw JSON response.
	ProviderResponse json.RawMessage
}

// Options configure how deployments are dispatched.
type Options struct {
	// Timeout bounds the provider call. The original behavior of waiting
	// indefinitely is deliberately not reproduced.
	Timeout time.Duration
}

// NewOptions constructs an Options value from the application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Timeout: cfg.Hosting.Timeout,
	}
}

// Service exposes the deployment operation used by the HTTP layer.
type Service interface {
	// Deploy assembles the fragments into one document and submits it to the
	// hosting provider, returning the submitted files and the provider's raw
	// response. Provider and transport failures surface as errors carrying
	// the provider's detail.
	Deploy(ctx context.Context, req Request) (*Result, error)
}

type service struct {
	options Options
	client  hosting.Client
}

func (s *service) Deploy(ctx context.Context, req Request) (*Result, error) {
	document := AssembleDocument(req.HTML, req.CSS, req.JS, req.SiteName)
	files := []hosting.File{{
		Name: indexFileName,
		Data: document,
	}}

	if s.options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.options.Timeout)
		defer cancel()
	}

	resp, err := s.client.Deploy(ctx, hosting.Deployment{
		Name:   req.SiteName,
		Files:  files,
		Target: productionTarget,
	})
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &Result{
		Files:            files,
		ProviderResponse: resp,
	}, nil
}

// New creates a deployment Service dispatching through the provided hosting
// client.
func New(client hosting.Client, options Options) Service {
	return &service{
		options: options,
		client:  client,
	}
}
