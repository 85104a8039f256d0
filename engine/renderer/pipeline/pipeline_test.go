package pipeline

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-cube/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPipelineDefaults(t *testing.T) {
	p := NewPipeline("cube")
	assert.Equal(t, "cube", p.PipelineKey())
	assert.True(t, p.DepthTestEnabled())
	assert.True(t, p.DepthWriteEnabled())
	assert.False(t, p.BlendEnabled())
	assert.Nil(t, p.BlendState())
	assert.Equal(t, wgpu.CullModeBack, p.CullMode())
	assert.Equal(t, wgpu.FrontFaceCW, p.FrontFace())
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, p.Topology())
	assert.Equal(t, wgpu.ColorWriteMaskAll, p.WriteMask())
	assert.Nil(t, p.RenderPipeline())
}

func TestPipelineOptions(t *testing.T) {
	p := NewPipeline("custom",
		WithDepthTestEnabled(false),
		WithDepthWriteEnabled(false),
		WithBlendEnabled(true),
		WithCullMode(wgpu.CullModeNone),
		WithFrontFace(wgpu.FrontFaceCCW),
		WithTopology(wgpu.PrimitiveTopologyLineList),
		WithWriteMask(wgpu.ColorWriteMaskRed),
	)
	assert.False(t, p.DepthTestEnabled())
	assert.False(t, p.DepthWriteEnabled())
	assert.True(t, p.BlendEnabled())
	require.NotNil(t, p.BlendState())
	assert.Equal(t, wgpu.BlendFactorSrcAlpha, p.BlendState().Color.SrcFactor)
	assert.Equal(t, wgpu.CullModeNone, p.CullMode())
	assert.Equal(t, wgpu.FrontFaceCCW, p.FrontFace())
	assert.Equal(t, wgpu.PrimitiveTopologyLineList, p.Topology())
	assert.Equal(t, wgpu.ColorWriteMaskRed, p.WriteMask())
}

func TestValidate(t *testing.T) {
	vert, frag, err := shader.NewCubeShaders()
	require.NoError(t, err)

	assert.ErrorIs(t, NewPipeline("none").Validate(), ErrMissingShader)
	assert.ErrorIs(t, NewPipeline("vert_only", WithVertexShader(vert)).Validate(), ErrMissingShader)

	p := NewPipeline("cube", WithVertexShader(vert), WithFragmentShader(frag))
	require.NoError(t, p.Validate())
	assert.Same(t, vert, p.Shader(shader.ShaderTypeVertex))
	assert.Same(t, frag, p.Shader(shader.ShaderTypeFragment))
	assert.Nil(t, p.Shader(shader.ShaderType(42)))
}

func TestReleaseWithoutPipeline(t *testing.T) {
	p := NewPipeline("cube")
	assert.NotPanics(t, func() {
		p.Release()
		p.Release()
	})
}
