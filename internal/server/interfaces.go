package server

import "context"

// Server defines the lifecycle of the control API server.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT is received, then
	// shuts down gracefully.
	RunServer() error

	// Run serves until ctx is done, then shuts down gracefully.
	Run(ctx context.Context) error

	// Shutdown stops the server, waiting at most the configured shutdown
	// timeout for in-flight requests.
	Shutdown()
}
