package status

// StatusService exposes the Registry through the service lifecycle
type StatusService struct {
	registry *Registry
}

// NewService creates a new status service with an empty registry
func NewService() *StatusService {
	return &StatusService{registry: NewRegistry()}
}

// Name implements service.Service
func (s *StatusService) Name() string { return "status" }

// Dependencies implements service.Service
func (s *StatusService) Dependencies() []string { return nil }

// Init implements service.Service
func (s *StatusService) Init(args ...any) error { return nil }

// Start implements service.Service
func (s *StatusService) Start() error { return nil }

// Stop implements service.Service
func (s *StatusService) Stop() error { return nil }

// Registry returns the underlying metrics registry
func (s *StatusService) Registry() *Registry {
	return s.registry
}
