package bind_group_provider

// BufferWrite describes a single GPU buffer write operation targeting a specific binding
// on a BindGroupProvider at a given byte offset.
type BufferWrite struct {
	Provider BindGroupProvider
	Binding  int
	Offset   uint64
	Data     []byte
}

// NewBufferWrite creates a write of data to the start of the buffer at binding.
//
// Parameters:
//   - provider: the provider owning the target buffer
//   - binding: the binding index of the target buffer
//   - data: the bytes to write
//
// Returns:
//   - BufferWrite: the write description
func NewBufferWrite(provider BindGroupProvider, binding int, data []byte) BufferWrite {
	return BufferWrite{Provider: provider, Binding: binding, Data: data}
}
