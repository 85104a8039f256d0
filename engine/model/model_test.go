package model

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCubeLayout(t *testing.T) {
	m := NewCube()
	assert.Equal(t, "cube", m.Name())
	require.Len(t, m.Vertices(), 8)
	assert.Equal(t, 36, m.IndexCount())
	assert.Len(t, m.VertexData(), 8*VertexStride)
	assert.Len(t, m.IndexData(), 36*4)

	var v GPUVertex
	assert.Equal(t, VertexStride, v.Size())
}

func TestCubeFaceColors(t *testing.T) {
	for i, v := range NewCube().Vertices() {
		if v.Position[2] > 0 {
			assert.Equal(t, frontColor, v.Color, "vertex %d", i)
		} else {
			assert.Equal(t, backColor, v.Color, "vertex %d", i)
		}
	}
}

func TestCubeHalfExtent(t *testing.T) {
	m := NewCube(WithHalfExtent(2.5), WithName("big"))
	assert.Equal(t, "big", m.Name())
	for _, v := range m.Vertices() {
		for _, c := range v.Position {
			assert.Equal(t, float32(2.5), float32(math.Abs(float64(c))))
		}
	}

	ignored := NewCube(WithHalfExtent(-1))
	assert.Equal(t, float32(1), ignored.Vertices()[0].Position[0])
}

func TestCubeIndicesInRange(t *testing.T) {
	m := NewCube()
	for _, idx := range m.Indices() {
		assert.Less(t, idx, uint32(8))
	}
}

func TestCubeTrianglesFaceOutward(t *testing.T) {
	m := NewCube()
	verts := m.Vertices()
	idx := m.Indices()
	pos := func(i uint32) mgl32.Vec3 { return mgl32.Vec3(verts[i].Position) }

	for tri := 0; tri < len(idx); tri += 3 {
		a, b, c := pos(idx[tri]), pos(idx[tri+1]), pos(idx[tri+2])
		normal := b.Sub(a).Cross(c.Sub(a))
		centroid := a.Add(b).Add(c).Mul(1.0 / 3.0)
		assert.Greater(t, normal.Dot(centroid), float32(0), "triangle %d winds inward", tri/3)
	}
}

func TestVertexMarshal(t *testing.T) {
	v := GPUVertex{Position: [3]float32{1, 2, 3}, Color: [4]float32{0.25, 0.5, 0.75, 1}}
	buf := v.Marshal()
	require.Len(t, buf, 28)

	expected := []float32{1, 2, 3, 0.25, 0.5, 0.75, 1}
	for i, want := range expected {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		assert.Equal(t, want, got, "float %d", i)
	}
}

func TestIndexDataLittleEndian(t *testing.T) {
	buf := MarshalIndices([]uint32{0x01020304, 7})
	assert.Equal(t, []byte{4, 3, 2, 1, 7, 0, 0, 0}, buf)

	m := NewCube()
	data := m.IndexData()
	assert.Equal(t, uint32(6), binary.LittleEndian.Uint32(data[7*4:]))
}
