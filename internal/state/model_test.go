package state

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTool(t *testing.T) {
	for _, tool := range []Tool{ToolPen, ToolEraser, ToolRectangle, ToolCircle, ToolLine} {
		got, err := ParseTool(tool.String())
		require.NoError(t, err)
		assert.Equal(t, tool, got)
	}

	got, err := ParseTool("  Circle ")
	require.NoError(t, err)
	assert.Equal(t, ToolCircle, got)

	_, err = ParseTool("spray")
	assert.Error(t, err)
}

func TestToolKinds(t *testing.T) {
	assert.True(t, ToolPen.Freehand())
	assert.True(t, ToolEraser.Freehand())
	assert.False(t, ToolLine.Freehand())

	assert.True(t, ToolRectangle.Shape())
	assert.True(t, ToolCircle.Shape())
	assert.True(t, ToolLine.Shape())
	assert.False(t, ToolPen.Shape())

	assert.False(t, Tool(42).Freehand())
	assert.False(t, Tool(42).Shape())
	assert.Equal(t, "Tool(42)", Tool(42).String())
}

func TestToolConfigValid(t *testing.T) {
	cfg := DefaultToolConfig()
	assert.True(t, cfg.Valid())

	cfg.StrokeWidth = 0
	assert.False(t, cfg.Valid())

	cfg = DefaultToolConfig()
	cfg.Tool = Tool(-1)
	assert.False(t, cfg.Valid())
}

func TestLayerIDs(t *testing.T) {
	a, b := NewLayerID(), NewLayerID()
	assert.NotEqual(t, a, b)
	_, err := uuid.Parse(a)
	assert.NoError(t, err)
	assert.Equal(t, "Layer 3", LayerName(3))
}
