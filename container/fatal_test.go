package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFatalPanicsWithFatalError(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r, "Fatal should panic")
		fe, ok := r.(*FatalError)
		require.True(t, ok, "panic value is %T, want *FatalError", r)
		assert.Equal(t, KindNegativeSize, fe.Kind)
		assert.NotEmpty(t, fe.Error())
	}()
	Fatal(KindNegativeSize, "size %d is negative", -1)
}

func TestFatalKindString(t *testing.T) {
	assert.Equal(t, "MissingRootSize", KindMissingRootSize.String())
	assert.Equal(t, "Unknown", FatalKind(999).String())
}
