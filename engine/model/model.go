package model

// VertexStride is the byte stride of one GPUVertex in the vertex buffer.
const VertexStride = 28

// DefaultHalfExtent is the default distance from the cube center to each face.
const DefaultHalfExtent float32 = 1.0

var (
	frontColor = [4]float32{0, 1, 0, 1}
	backColor  = [4]float32{1, 0, 0, 1}
)

// cubeIndices lists the 12 triangles of the cube with clockwise front faces.
var cubeIndices = [36]uint32{
	0, 1, 2, 0, 2, 3, // +Z
	4, 6, 5, 4, 7, 6, // -Z
	3, 2, 6, 3, 6, 7, // -X
	0, 5, 1, 0, 4, 5, // +X
	1, 5, 6, 1, 6, 2, // +Y
	0, 3, 7, 0, 7, 4, // -Y
}

// model is the implementation of the Model interface.
type model struct {
	name       string
	halfExtent float32
	vertices   []GPUVertex
	indices    []uint32
}

// Model defines the interface for a GPU-ready mesh.
// A Model holds the CPU-side vertex and index data that the renderer uploads once at initialization.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Vertices returns a copy of the model's vertices.
	//
	// Returns:
	//   - []GPUVertex: the vertices
	Vertices() []GPUVertex

	// Indices returns a copy of the model's triangle indices.
	//
	// Returns:
	//   - []uint32: the indices
	Indices() []uint32

	// VertexData returns the raw vertex data for this model's mesh.
	//
	// Returns:
	//   - []byte: the vertex data
	VertexData() []byte

	// IndexData returns the raw index data for this model's mesh.
	//
	// Returns:
	//   - []byte: the index data
	IndexData() []byte

	// IndexCount returns the number of indices in the model's mesh.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int
}

var _ Model = &model{}

// NewCube creates the demo cube: 8 vertices and 36 indices centered on the origin.
// The +Z face vertices are green and the -Z face vertices are red.
//
// Parameters:
//   - options: a variadic list of ModelBuilderOption functions to configure the cube
//
// Returns:
//   - Model: the cube model
func NewCube(options ...ModelBuilderOption) Model {
	m := &model{
		name:       "cube",
		halfExtent: DefaultHalfExtent,
	}
	for _, opt := range options {
		opt(m)
	}

	h := m.halfExtent
	m.vertices = []GPUVertex{
		{Position: [3]float32{+h, -h, +h}, Color: frontColor},
		{Position: [3]float32{+h, +h, +h}, Color: frontColor},
		{Position: [3]float32{-h, +h, +h}, Color: frontColor},
		{Position: [3]float32{-h, -h, +h}, Color: frontColor},
		{Position: [3]float32{+h, -h, -h}, Color: backColor},
		{Position: [3]float32{+h, +h, -h}, Color: backColor},
		{Position: [3]float32{-h, +h, -h}, Color: backColor},
		{Position: [3]float32{-h, -h, -h}, Color: backColor},
	}
	m.indices = cubeIndices[:]
	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Vertices() []GPUVertex {
	return append([]GPUVertex(nil), m.vertices...)
}

func (m *model) Indices() []uint32 {
	return append([]uint32(nil), m.indices...)
}

func (m *model) VertexData() []byte {
	return MarshalVertices(m.vertices)
}

func (m *model) IndexData() []byte {
	return MarshalIndices(m.indices)
}

func (m *model) IndexCount() int {
	return len(m.indices)
}
