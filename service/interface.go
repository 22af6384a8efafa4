package service

import "context"

// Service defines the lifecycle interface for infrastructure subsystems
// Services manage long-lived resources: audio backend, HUD feed listener, save storage
//
// Lifecycle:
//  1. Construction
//  2. Init(args...) - configuration from parsed flags
//  3. Start(ctx) - launch background goroutines bound to ctx
//  4. [runtime operation]
//  5. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Init before this one
	Dependencies() []string

	// Init configures the service from optional args
	Init(args ...any) error

	// Start begins service operation; goroutines exit when ctx is cancelled
	Start(ctx context.Context) error

	// Stop halts service operation and releases resources
	// Must be idempotent
	Stop() error
}
