package service

// Service is a long-lived host subsystem: audio backend, score store, metrics
//
// Lifecycle:
//  1. Construction
//  2. Init(args...) - configuration handed over by the host (session, config, registry)
//  3. Start() - launch background work
//  4. Stop() - halt and release resources, idempotent
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Init before this one
	Dependencies() []string

	Init(args ...any) error
	Start() error
	Stop() error
}
