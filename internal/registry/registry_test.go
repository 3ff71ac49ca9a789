package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"station-generator/internal/gen"
	"station-generator/internal/schema"
)

type stubComponent struct{}

func (stubComponent) Schema() *schema.Schema                       { return schema.New() }
func (stubComponent) Priority() gen.SetupPriority                  { return gen.PrioritySensor }
func (stubComponent) ToCode(*gen.TaskContext, schema.Config) error { return nil }

func TestComponentRegistration(t *testing.T) {
	RegisterComponent("uart", stubComponent{})

	c, ok := LookupComponent("uart")
	require.True(t, ok)
	assert.NotNil(t, c)

	_, ok = LookupComponent("i2c")
	assert.False(t, ok)

	assert.Panics(t, func() { RegisterComponent("uart", stubComponent{}) })
	assert.Panics(t, func() { RegisterComponent("", stubComponent{}) })
}

func TestPlatformRegistration(t *testing.T) {
	RegisterPlatform("switch", "gpio", stubComponent{})

	p, ok := LookupPlatform("switch", "gpio")
	require.True(t, ok)
	assert.NotNil(t, p)

	assert.True(t, IsPlatformDomain("switch"))
	assert.False(t, IsPlatformDomain("uart"))

	assert.Panics(t, func() { RegisterPlatform("switch", "gpio", stubComponent{}) })
}

func TestSuggestionLists(t *testing.T) {
	RegisterComponent("wifi", stubComponent{})
	RegisterPlatform("switch", "template", stubComponent{})

	assert.Contains(t, Domains(), "wifi")
	assert.Contains(t, Domains(), "switch")
	assert.Contains(t, Platforms("switch"), "template")
	assert.IsIncreasing(t, Platforms("switch"))
	assert.Empty(t, Platforms("nothing"))
}
