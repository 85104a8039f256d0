package model

// ModelBuilderOption is a functional option for configuring a Model.
type ModelBuilderOption func(*model)

// WithName sets the model identifier.
//
// Parameters:
//   - name: the model name
//
// Returns:
//   - ModelBuilderOption: option function to apply
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithHalfExtent sets the distance from the cube center to each face.
// Non-positive values are ignored.
//
// Parameters:
//   - halfExtent: the half extent of the cube
//
// Returns:
//   - ModelBuilderOption: option function to apply
func WithHalfExtent(halfExtent float32) ModelBuilderOption {
	return func(m *model) {
		if halfExtent > 0 {
			m.halfExtent = halfExtent
		}
	}
}
