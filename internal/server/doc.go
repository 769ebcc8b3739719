// Package server runs the control API of the refresher.
//
// It owns the HTTP listener lifecycle: startup, signal handling and a
// bounded graceful shutdown.
package server
