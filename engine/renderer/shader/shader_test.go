package shader

import (
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-cube/engine/camera"
	"github.com/Carmen-Shannon/oxy-cube/engine/model"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCubeShaders(t *testing.T) {
	vert, frag, err := NewCubeShaders()
	require.NoError(t, err)

	assert.Equal(t, CubeVertexShaderKey, vert.Key())
	assert.Equal(t, ShaderTypeVertex, vert.ShaderType())
	assert.Equal(t, "vs_main", vert.EntryPoint())
	require.NotNil(t, vert.Module())
	assert.Equal(t, CubeVertexShaderKey, vert.Module().Label)
	assert.NotContains(t, vert.Source(), annotationPrefix)

	assert.Equal(t, CubeFragmentShaderKey, frag.Key())
	assert.Equal(t, ShaderTypeFragment, frag.ShaderType())
	assert.Equal(t, "fs_main", frag.EntryPoint())
	assert.Empty(t, frag.VertexLayouts())
	assert.Empty(t, frag.BindGroupLayoutDescriptors())
}

func TestCubeVertexLayoutMatchesGPUVertex(t *testing.T) {
	vert, _, err := NewCubeShaders()
	require.NoError(t, err)

	require.Len(t, vert.VertexLayouts(), 1)
	layouts := vert.VertexLayout(0)
	require.Len(t, layouts, 1)

	layout := layouts[0]
	var v model.GPUVertex
	assert.Equal(t, uint64(v.Size()), layout.ArrayStride)
	assert.Equal(t, wgpu.VertexStepModeVertex, layout.StepMode)
	require.Len(t, layout.Attributes, 2)

	assert.Equal(t, wgpu.VertexFormatFloat32x3, layout.Attributes[0].Format)
	assert.Equal(t, uint64(0), layout.Attributes[0].Offset)
	assert.Equal(t, uint32(0), layout.Attributes[0].ShaderLocation)

	assert.Equal(t, wgpu.VertexFormatFloat32x4, layout.Attributes[1].Format)
	assert.Equal(t, uint64(12), layout.Attributes[1].Offset)
	assert.Equal(t, uint32(1), layout.Attributes[1].ShaderLocation)
}

func TestCubeBindGroupLayoutMatchesTransformUniform(t *testing.T) {
	vert, _, err := NewCubeShaders()
	require.NoError(t, err)

	desc := vert.BindGroupLayoutDescriptor(0)
	require.Len(t, desc.Entries, 1)

	entry := desc.Entries[0]
	var u camera.GPUTransformUniform
	assert.Equal(t, uint32(0), entry.Binding)
	assert.Equal(t, wgpu.ShaderStageVertex, entry.Visibility)
	assert.Equal(t, wgpu.BufferBindingTypeUniform, entry.Buffer.Type)
	assert.Equal(t, uint64(u.Size()), entry.Buffer.MinBindingSize)
	assert.Equal(t, "transforms", vert.BindGroupVarName(0, 0))
	assert.Equal(t, "", vert.BindGroupVarName(1, 0))

	decls := vert.Declarations()
	require.Len(t, decls, 1)
	assert.Equal(t, AnnotationTypeBindingGroup, decls[0].Type)
	assert.Equal(t, AnnotationArgTransforms, decls[0].Args[2])
}

func TestNewShaderErrors(t *testing.T) {
	_, err := NewShader("empty", ShaderTypeVertex, "")
	assert.Error(t, err)

	_, err = NewShader("no_entry", ShaderTypeVertex, cubeFragmentSource)
	assert.ErrorContains(t, err, "no vertex entry point")

	_, err = NewShader("bad_include", ShaderTypeFragment, "//@oxy:include lights\n"+cubeFragmentSource)
	assert.ErrorContains(t, err, "unknown struct type")
}

func TestPreProcessorGroup(t *testing.T) {
	pp := NewPreProcessor()
	out, err := pp.Process("//@oxy:include transforms\n//@oxy:group 1 2 storage_read xforms transforms\n")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, camera.GPUTransformUniformSource))
	assert.Contains(t, out, "@group(1) @binding(2) var<storage, read> xforms: Transforms;")

	decls := pp.Declarations()
	require.Len(t, decls, 1)
	assert.Equal(t, 1, *decls[0].Group)
	assert.Equal(t, 2, *decls[0].Binding)

	// Declarations reset per call.
	_, err = pp.Process("// plain comment\n")
	require.NoError(t, err)
	assert.Empty(t, pp.Declarations())
}

func TestParseAnnotation(t *testing.T) {
	cases := []struct {
		name    string
		line    string
		wantNil bool
		wantErr string
	}{
		{name: "not a comment", line: "let x = 1.0;", wantNil: true},
		{name: "plain comment", line: "// just text", wantNil: true},
		{name: "include", line: "//@oxy:include vertex"},
		{name: "empty", line: "//@oxy:", wantErr: "empty"},
		{name: "include arity", line: "//@oxy:include", wantErr: "exactly one"},
		{name: "group arity", line: "//@oxy:group 0 0 storage_uniform", wantErr: "exactly five"},
		{name: "group number", line: "//@oxy:group x 0 storage_uniform t transforms", wantErr: "invalid group"},
		{name: "binding number", line: "//@oxy:group 0 y storage_uniform t transforms", wantErr: "invalid binding"},
		{name: "address space", line: "//@oxy:group 0 0 private t transforms", wantErr: "unknown address space"},
		{name: "unknown type", line: "//@oxy:provider 0 0 material", wantErr: "unknown @oxy annotation type"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := parseAnnotation(tc.line, 7)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				assert.Contains(t, err.Error(), "line 7")
				return
			}
			require.NoError(t, err)
			if tc.wantNil {
				assert.Nil(t, a)
			} else {
				assert.NotNil(t, a)
			}
		})
	}
}

func TestResolveTypeLayout(t *testing.T) {
	structs := parseStructBlocks(stripComments(`
struct Inner { a: vec3<f32>, b: f32, }
/* block /* nested */ comment */
struct Outer {
    m: mat4x4<f32>, // trailing
    items: array<Inner, 3>,
    u: u32,
}
`))
	sizes := computeStructSizes(structs)

	require.Contains(t, sizes, "Inner")
	assert.Equal(t, wgslTypeLayout{16, 16}, sizes["Inner"])
	require.Contains(t, sizes, "Outer")
	assert.Equal(t, wgslTypeLayout{64 + 48 + 16, 16}, sizes["Outer"])

	_, ok := resolveTypeLayout("array<Inner>", sizes)
	assert.False(t, ok)
	_, ok = resolveTypeLayout("texture_2d<f32>", sizes)
	assert.False(t, ok)
}

func TestShaderTypeString(t *testing.T) {
	assert.Equal(t, "vertex", ShaderTypeVertex.String())
	assert.Equal(t, "fragment", ShaderTypeFragment.String())
	assert.Equal(t, "shader_type(9)", ShaderType(9).String())
}
