package domain

import "errors"

// ErrNoStartState is returned by Reset when the definition declares no state
// with IsStart set.
var ErrNoStartState = errors.New("automaton has no start state")

// ErrDuplicateStartState is returned by Reset when more than one state is
// declared as the start state.
var ErrDuplicateStartState = errors.New("automaton declares more than one start state")

// ErrNotStarted is returned by Step when the engine has not been reset yet.
var ErrNotStarted = errors.New("automaton not started: call Reset first")

// ErrUnknownKind is returned when constructing an automaton for an
// unregistered definition kind.
var ErrUnknownKind = errors.New("unknown automaton kind")

// ErrRunNotFound is returned when a run ID cannot be found in a store.
var ErrRunNotFound = errors.New("run not found")
