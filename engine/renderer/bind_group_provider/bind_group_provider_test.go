package bind_group_provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBindGroupProvider(t *testing.T) {
	p := NewBindGroupProvider("cube", WithIndexCount(36))
	p.SetBuffer(0, nil)
	assert.Equal(t, "cube", p.Label())
	assert.Equal(t, 36, p.IndexCount())
	assert.Nil(t, p.BindGroup())
	assert.Nil(t, p.BindGroupLayout())
	assert.Nil(t, p.VertexBuffer())
	assert.Nil(t, p.IndexBuffer())
	assert.Contains(t, p.Buffers(), 0)
	assert.Nil(t, p.Buffer(0))
}

func TestReleaseWithoutGPUResources(t *testing.T) {
	p := NewBindGroupProvider("empty", WithIndexCount(6))
	p.SetBuffer(3, nil)

	assert.NotPanics(t, func() {
		p.Release()
		p.Release()
	})
	assert.Empty(t, p.Buffers())
	assert.Equal(t, 0, p.IndexCount())
}

func TestNewBufferWrite(t *testing.T) {
	p := NewBindGroupProvider("uniforms")
	w := NewBufferWrite(p, 2, []byte{1, 2, 3})
	assert.Same(t, p, w.Provider)
	assert.Equal(t, 2, w.Binding)
	assert.Equal(t, uint64(0), w.Offset)
	assert.Equal(t, []byte{1, 2, 3}, w.Data)
}
