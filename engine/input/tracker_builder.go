package input

import "github.com/rs/zerolog"

// TrackerBuilderOption is a functional option for configuring a Tracker.
type TrackerBuilderOption func(*tracker)

// WithBindings replaces the tracker's action bindings.
//
// Parameters:
//   - b: the action to key code bindings to use
//
// Returns:
//   - TrackerBuilderOption: option function to apply
func WithBindings(b Bindings) TrackerBuilderOption {
	return func(t *tracker) {
		t.bindings = make(Bindings, len(b))
		for a, code := range b {
			t.bindings[a] = code
		}
	}
}

// WithLogger sets the logger used for key event debug output.
//
// Parameters:
//   - logger: the zerolog logger to use
//
// Returns:
//   - TrackerBuilderOption: option function to apply
func WithLogger(logger zerolog.Logger) TrackerBuilderOption {
	return func(t *tracker) {
		t.logger = logger
	}
}
