package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	err := New(TypeInput, "row count must be positive")
	assert.Equal(t, "[INPUT_ERROR] row count must be positive", err.Error())

	wrapped := Wrap(TypeConfig, "cannot load config", fmt.Errorf("permission denied"))
	assert.Equal(t, "[CONFIG_ERROR] cannot load config: permission denied", wrapped.Error())
}

func TestIsTypeFollowsWrapping(t *testing.T) {
	inner := UnknownColumn("Bogus")
	outer := Generation("row 3 failed", inner)
	stdWrapped := fmt.Errorf("generate: %w", outer)

	assert.True(t, IsType(stdWrapped, TypeGeneration))
	assert.True(t, IsType(stdWrapped, TypeUnknownColumn))
	assert.False(t, IsType(stdWrapped, TypeValidation))
	assert.False(t, IsType(fmt.Errorf("plain"), TypeInput))
}

func TestUnknownColumnCarriesContext(t *testing.T) {
	err := UnknownColumn("SkuFoo")
	require.NotNil(t, err.Context)
	assert.Equal(t, "SkuFoo", err.Context["column"])
	assert.True(t, err.Is(TypeUnknownColumn))
}
