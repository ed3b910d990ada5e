package layoutconfig

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	d := Default()
	assert.Equal(t, float32(16), d.ScrollbarSize)
	assert.Equal(t, 100, d.MaxFixPointAttempts)
	assert.Equal(t, float32(0.01), d.Epsilon)
	assert.Equal(t, float32(25), d.DefaultTableCellHeight)
	assert.Equal(t, float32(16), d.DefaultFontSize)
}

func TestFlagsRegistersDefaults(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	Flags(fs)

	for _, name := range []string{
		"scrollbar-size", "max-fix-point-attempts", "epsilon",
		"default-table-cell-height", "default-font-size",
	} {
		assert.NotNil(t, fs.Lookup(name), "flag %q not registered", name)
	}
}

func TestLoadWithNoOverridesMatchesDefault(t *testing.T) {
	cfg, err := Load(nil, "")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
