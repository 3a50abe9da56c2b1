package server

import "context"

// Server defines the lifecycle contract of the transport servers managed by
// this package.
type Server interface {
	// RunServer serves requests until SIGTERM, SIGINT or SIGQUIT arrives,
	// then shuts down gracefully. It returns the first serve error, if any.
	RunServer() error

	// Run serves requests until ctx is done or a transport fails.
	Run(ctx context.Context) error

	// Shutdown stops every transport, waiting for in-flight requests until
	// ctx is done.
	Shutdown(ctx context.Context)
}
