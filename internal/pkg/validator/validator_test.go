package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "notes", Message: "Notes must be at most 500 characters"},
		{Field: "date", Message: "Date is required"},
	}

	assert.Equal(t, "notes: Notes must be at most 500 characters; date: Date is required", errs.Error())
}

func TestValidationErrors_ToMap(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "notes", Message: "too long"},
	}

	m := errs.ToMap()
	assert.Equal(t, map[string]string{"notes": "too long"}, m)
}

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   \t\n"))
	assert.False(t, IsEmpty("x"))
}

func TestItoa(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "500", Itoa(500))
}
