// Package config loads process configuration from the environment so main
// stays lean.
package config

import (
	"fmt"
	"os"
	"time"
)

// Server captures HTTP server and directory-service configuration.
type Server struct {
	// Addr is the listen address for the public HTTP surface.
	Addr string

	// DirectoryURL is the single endpoint of the external directory
	// service. Required; the gateway has no state of its own.
	DirectoryURL string

	// DirectoryTimeout bounds every directory-service call. Calls are not
	// retried; a timeout surfaces as an internal error.
	DirectoryTimeout time.Duration

	// ResetNotice is a presentation flag echoed in the market status
	// payload. It carries no workflow semantics and is passed explicitly
	// instead of living in mutable module state.
	ResetNotice bool
}

// FromEnv builds a Server config from environment variables.
func FromEnv() (Server, error) {
	addr := os.Getenv("MARKETDAY_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	directoryURL := os.Getenv("DIRECTORY_URL")
	if directoryURL == "" {
		return Server{}, fmt.Errorf("DIRECTORY_URL is required")
	}

	timeout := 25 * time.Second
	if raw := os.Getenv("DIRECTORY_TIMEOUT"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return Server{}, fmt.Errorf("parse DIRECTORY_TIMEOUT: %w", err)
		}
		timeout = parsed
	}

	return Server{
		Addr:             addr,
		DirectoryURL:     directoryURL,
		DirectoryTimeout: timeout,
		ResetNotice:      os.Getenv("RESET_NOTICE") == "true",
	}, nil
}
