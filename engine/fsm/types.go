package fsm

import (
	"github.com/lixenwraith/vi-snake/events"
)

// StateID is a unique identifier for a node
type StateID int

const (
	StateNone StateID = 0
	StateRoot StateID = 1
)

// Machine is the generic Hierarchical Finite State Machine runtime
// T is the context type passed to actions and guards (e.g., *game.Session)
// Not safe for concurrent use; driven from the owner's goroutine only
type Machine[T any] struct {
	// Graph Data (Immutable after load)
	nodes map[StateID]*Node[T]

	// InitialStateID is stored during load for reset/init
	InitialStateID StateID

	// Runtime State
	activeStateID StateID   // The current leaf node
	activePath    []StateID // Stack of active states (Root -> Child -> Leaf)

	// Dependency Injection
	guardReg  map[string]GuardFunc[T]
	actionReg map[string]ActionFunc[T]
}

// Node represents a state in the hierarchy
type Node[T any] struct {
	ID       StateID
	Name     string
	ParentID StateID

	// Pre-calculated path from Root to this node, used for LCA lookup
	Path []StateID

	// Lifecycle Actions
	OnEnter []Action[T]
	OnExit  []Action[T]

	// Transitions in evaluation order
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Trigger  string
	Guard    GuardFunc[T] // nil = Always true
}

// Action represents a side-effect
type Action[T any] struct {
	Func ActionFunc[T]
	Args any // Pre-compiled payload
}

// EmitEventArgs is the compiled argument of the EmitEvent action
type EmitEventArgs struct {
	Type events.EventType
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T, args any)
