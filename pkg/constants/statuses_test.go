package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestConstantsDistinct guards against accidental duplicate labels.
func TestConstantsDistinct(t *testing.T) {
	assert.NotEqual(t, StatusActive, StatusInactive)
	assert.NotEqual(t, IconActive, IconInactive)
	assert.NotEqual(t, IconSortAsc, IconSortDesc)
	assert.Equal(t, ".creatordash.yml", ConfigFileName)
}
