// package input records keyboard state for the demo. Raw platform key codes are stored as delivered by the
// window, and logical actions are resolved against them through a Bindings table.
package input

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// tracker is the implementation of the Tracker interface.
type tracker struct {
	keyStates map[uint32]bool
	bindings  Bindings
	logger    zerolog.Logger
}

// Tracker records pressed/released state per key code and answers queries by key code or by logical action.
// It is owned by a single goroutine; no synchronization is performed.
type Tracker interface {
	// KeyDown marks the key code as pressed.
	//
	// Parameters:
	//   - keyCode: the platform key code
	KeyDown(keyCode uint32)

	// KeyUp marks the key code as released.
	//
	// Parameters:
	//   - keyCode: the platform key code
	KeyUp(keyCode uint32)

	// IsKeyDown reports whether the key code is currently pressed.
	// Key codes that were never seen report false.
	//
	// Parameters:
	//   - keyCode: the platform key code
	//
	// Returns:
	//   - bool: true if the key is pressed
	IsKeyDown(keyCode uint32) bool

	// ActionDown reports whether the key bound to the action is currently pressed.
	// Actions without a binding are never down.
	//
	// Parameters:
	//   - a: the logical action
	//
	// Returns:
	//   - bool: true if the bound key is pressed
	ActionDown(a Action) bool

	// Bindings returns a copy of the action bindings used by this tracker.
	//
	// Returns:
	//   - Bindings: the action to key code bindings
	Bindings() Bindings

	// Reset releases every key.
	Reset()
}

var _ Tracker = &tracker{}

// NewTracker creates an empty Tracker using DefaultBindings unless overridden by options.
//
// Parameters:
//   - options: functional options to configure the tracker
//
// Returns:
//   - Tracker: the newly created tracker
func NewTracker(options ...TrackerBuilderOption) Tracker {
	t := &tracker{
		keyStates: make(map[uint32]bool),
		bindings:  DefaultBindings(),
		logger:    log.Logger,
	}
	for _, opt := range options {
		opt(t)
	}
	return t
}

func (t *tracker) KeyDown(keyCode uint32) {
	t.keyStates[keyCode] = true
	t.logger.Debug().Uint32("key", keyCode).Msg("key pressed")
}

func (t *tracker) KeyUp(keyCode uint32) {
	t.keyStates[keyCode] = false
}

func (t *tracker) IsKeyDown(keyCode uint32) bool {
	return t.keyStates[keyCode]
}

func (t *tracker) ActionDown(a Action) bool {
	code, ok := t.bindings[a]
	if !ok {
		return false
	}
	return t.keyStates[code]
}

func (t *tracker) Bindings() Bindings {
	cp := make(Bindings, len(t.bindings))
	for a, code := range t.bindings {
		cp[a] = code
	}
	return cp
}

func (t *tracker) Reset() {
	clear(t.keyStates)
}
