package validation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/travel-companion/internal/validation"
)

type sample struct {
	Name  string `validate:"required"`
	Price int    `validate:"gt=0"`
	Kind  string `validate:"oneof=a b"`
}

func TestStruct_Valid(t *testing.T) {
	require.NoError(t, validation.Struct(sample{Name: "x", Price: 1, Kind: "a"}))
}

func TestStruct_CollectsAllFields(t *testing.T) {
	err := validation.Struct(sample{Kind: "c"})
	require.Error(t, err)

	var verr *validation.Error
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 3)
	assert.Equal(t, "sample.Name", verr.Fields[0].Field)
	assert.Equal(t, "required", verr.Fields[0].Tag)
	assert.Equal(t, "gt", verr.Fields[1].Tag)
	assert.Equal(t, "0", verr.Fields[1].Param)
	assert.Contains(t, err.Error(), "sample.Kind failed oneof=a b")
}

func TestStruct_NonStruct(t *testing.T) {
	err := validation.Struct(42)
	require.Error(t, err)

	var verr *validation.Error
	assert.False(t, errors.As(err, &verr))
}
