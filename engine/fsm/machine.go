package fsm

import "fmt"

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:      make(map[StateID]*Node[T]),
		guardReg:   make(map[string]GuardFunc[T]),
		actionReg:  make(map[string]ActionFunc[T]),
		activePath: make([]StateID, 0, 4),
	}
}

// RegisterGuard adds a predicate function to the registry
func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guardReg[name] = fn
}

// RegisterAction adds a side-effect function to the registry
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actionReg[name] = fn
}

// Init enters the initial state, running OnEnter for the chain Root -> Initial
func (m *Machine[T]) Init(ctx T) error {
	node, ok := m.nodes[m.InitialStateID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", m.InitialStateID)
	}

	m.activeStateID = m.InitialStateID
	m.activePath = append(m.activePath[:0], node.Path...)

	for _, id := range m.activePath {
		for _, action := range m.nodes[id].OnEnter {
			action.Func(ctx, action.Args)
		}
	}
	return nil
}

// HandleEvent routes a named trigger from the active leaf up to Root
// The first transition whose guard passes wins; returns true if a transition happened
func (m *Machine[T]) HandleEvent(ctx T, trigger string) bool {
	if m.activeStateID == StateNone {
		return false
	}
	currID := m.activeStateID
	for currID != StateNone {
		node := m.nodes[currID]
		for _, trans := range node.Transitions {
			if trans.Trigger != trigger {
				continue
			}
			if trans.Guard == nil || trans.Guard(ctx) {
				m.transition(ctx, trans.TargetID)
				return true
			}
		}
		currID = node.ParentID
	}
	return false
}

// transition performs the state change, running exit actions up to the LCA and enter actions down to the target
// A transition to the active state is a self-transition: the leaf is exited and re-entered
func (m *Machine[T]) transition(ctx T, targetID StateID) {
	targetNode, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("FSM: Attempted transition to unknown state ID %d", targetID))
	}

	currentPath := m.activePath
	targetPath := targetNode.Path

	lcaIndex := -1
	minLen := len(currentPath)
	if len(targetPath) < minLen {
		minLen = len(targetPath)
	}
	for i := 0; i < minLen; i++ {
		if currentPath[i] != targetPath[i] {
			break
		}
		lcaIndex = i
	}
	if targetID == m.activeStateID {
		lcaIndex = len(targetPath) - 2
	}

	// Exit Phase: walk UP from current leaf to LCA (exclusive)
	for i := len(currentPath) - 1; i > lcaIndex; i-- {
		for _, action := range m.nodes[currentPath[i]].OnExit {
			action.Func(ctx, action.Args)
		}
	}

	m.activeStateID = targetID
	m.activePath = append(m.activePath[:0], targetPath...)

	// Enter Phase: walk DOWN from LCA (exclusive) to target leaf
	for i := lcaIndex + 1; i < len(targetPath); i++ {
		for _, action := range m.nodes[targetPath[i]].OnEnter {
			action.Func(ctx, action.Args)
		}
	}
}

// Current returns the active leaf state name, empty before Init
func (m *Machine[T]) Current() string {
	if node, ok := m.nodes[m.activeStateID]; ok {
		return node.Name
	}
	return ""
}

// CurrentID returns the active leaf state
func (m *Machine[T]) CurrentID() StateID {
	return m.activeStateID
}

// Is reports whether name is the active leaf or one of its ancestors
func (m *Machine[T]) Is(name string) bool {
	for _, id := range m.activePath {
		if m.nodes[id].Name == name {
			return true
		}
	}
	return false
}
