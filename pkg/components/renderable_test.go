package components_test

import (
	"testing"

	"github.com/stratobyte/flightcore/pkg/components"
	"github.com/stretchr/testify/assert"
)

// TEST: GIVEN DefaultRenderable WHEN inspected THEN handles are sentinel and it is invisible
func TestDefaultRenderable(t *testing.T) {
	r := components.DefaultRenderable()
	assert.Equal(t, components.InvalidMeshHandle, r.Mesh)
	assert.Equal(t, components.InvalidMaterialHandle, r.Material)
	assert.False(t, r.Visible)
}
