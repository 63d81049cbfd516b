package fsm

import (
	"fmt"
	"slices"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-snake/events"
)

// rootName is the implicit top of every graph; transitions declared on it apply from any state
const rootName = "Root"

// graphDef is the TOML layout of a state graph
type graphDef struct {
	Initial string               `toml:"initial"`
	States  map[string]*stateDef `toml:"states"`
}

type stateDef struct {
	Parent      string          `toml:"parent"`
	OnEnter     []actionDef     `toml:"on_enter"`
	OnExit      []actionDef     `toml:"on_exit"`
	Transitions []transitionDef `toml:"transitions"`
}

type transitionDef struct {
	Trigger string `toml:"trigger"` // Command name
	Target  string `toml:"target"`  // Target state name
	Guard   string `toml:"guard"`   // Registered guard name
}

type actionDef struct {
	Action string `toml:"action"` // Registered action name
	Event  string `toml:"event"`  // EmitEvent only: event name
}

// LoadConfig parses a TOML byte slice and populates the Machine
// Validates all references (states, guards, actions, events)
// Clears existing graph data before loading
func (m *Machine[T]) LoadConfig(data []byte) error {
	var config graphDef
	md, err := toml.Decode(string(data), &config)
	if err != nil {
		return fmt.Errorf("failed to unmarshal FSM config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key '%s'", undecoded[0].String())
	}
	if config.States == nil {
		config.States = make(map[string]*stateDef)
	}

	// Clear existing graph
	m.nodes = make(map[StateID]*Node[T])
	m.activeStateID = StateNone
	m.activePath = m.activePath[:0]

	m.addState(StateRoot, rootName, StateNone)
	nameToID := map[string]StateID{rootName: StateRoot}

	if _, ok := config.States[rootName]; !ok {
		config.States[rootName] = &stateDef{}
	}

	// Sort keys for deterministic ID generation
	stateNames := make([]string, 0, len(config.States))
	for name := range config.States {
		if name != rootName {
			stateNames = append(stateNames, name)
		}
	}
	sort.Strings(stateNames)

	nextID := StateRoot + 1
	for _, name := range stateNames {
		nameToID[name] = nextID
		nextID++
	}

	// Create nodes first so transitions can reference any state
	for _, name := range stateNames {
		cfg := config.States[name]
		pName := cfg.Parent
		if pName == "" {
			pName = rootName
		}
		parentID, ok := nameToID[pName]
		if !ok {
			return fmt.Errorf("state '%s' references unknown parent '%s'", name, pName)
		}
		m.addState(nameToID[name], name, parentID)
	}

	for name, cfg := range config.States {
		node := m.nodes[nameToID[name]]

		if node.OnEnter, err = m.compileActions(cfg.OnEnter); err != nil {
			return fmt.Errorf("state '%s' on_enter: %w", name, err)
		}
		if node.OnExit, err = m.compileActions(cfg.OnExit); err != nil {
			return fmt.Errorf("state '%s' on_exit: %w", name, err)
		}
		if err := m.compileTransitions(node, cfg.Transitions, nameToID); err != nil {
			return fmt.Errorf("state '%s' transitions: %w", name, err)
		}
	}

	if err := m.compilePaths(); err != nil {
		return err
	}

	initialID, ok := nameToID[config.Initial]
	if !ok || initialID == StateRoot {
		return fmt.Errorf("initial state '%s' not found", config.Initial)
	}
	m.InitialStateID = initialID

	return nil
}

// addState registers a node with empty behavior lists
func (m *Machine[T]) addState(id StateID, name string, parentID StateID) {
	m.nodes[id] = &Node[T]{
		ID:       id,
		Name:     name,
		ParentID: parentID,
	}
}

// compilePaths stores the [Root, ..., node] ancestry on every node
func (m *Machine[T]) compilePaths() error {
	for id, node := range m.nodes {
		var path []StateID
		for curr := node; ; {
			path = append(path, curr.ID)
			if curr.ParentID == StateNone {
				break
			}
			parent, ok := m.nodes[curr.ParentID]
			if !ok {
				return fmt.Errorf("node %d references missing parent %d", id, curr.ParentID)
			}
			if len(path) > len(m.nodes) {
				return fmt.Errorf("node %d is part of a parent cycle", id)
			}
			curr = parent
		}
		slices.Reverse(path)
		node.Path = path
	}
	return nil
}

func (m *Machine[T]) compileActions(configs []actionDef) ([]Action[T], error) {
	actions := make([]Action[T], 0, len(configs))
	for _, cfg := range configs {
		fn, ok := m.actionReg[cfg.Action]
		if !ok {
			return nil, fmt.Errorf("unknown action function '%s'", cfg.Action)
		}

		var args any
		if cfg.Action == "EmitEvent" {
			if cfg.Event == "" {
				return nil, fmt.Errorf("EmitEvent action requires 'event' field")
			}
			et, ok := events.GetEventType(cfg.Event)
			if !ok {
				return nil, fmt.Errorf("unknown event type '%s'", cfg.Event)
			}
			args = &EmitEventArgs{Type: et}
		}

		actions = append(actions, Action[T]{Func: fn, Args: args})
	}
	return actions, nil
}

func (m *Machine[T]) compileTransitions(node *Node[T], configs []transitionDef, nameToID map[string]StateID) error {
	for _, cfg := range configs {
		targetID, ok := nameToID[cfg.Target]
		if !ok || targetID == StateRoot {
			return fmt.Errorf("transition references unknown target '%s'", cfg.Target)
		}
		if cfg.Trigger == "" {
			return fmt.Errorf("transition to '%s' has no trigger", cfg.Target)
		}

		var guard GuardFunc[T]
		if cfg.Guard != "" {
			g, ok := m.guardReg[cfg.Guard]
			if !ok {
				return fmt.Errorf("unknown guard '%s'", cfg.Guard)
			}
			guard = g
		}

		node.Transitions = append(node.Transitions, Transition[T]{
			TargetID: targetID,
			Trigger:  cfg.Trigger,
			Guard:    guard,
		})
	}
	return nil
}
