package fontmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTrueTypeRejectsInvalidFont(t *testing.T) {
	_, err := NewTrueType([]byte("not a font file"))
	assert.Error(t, err)
}
