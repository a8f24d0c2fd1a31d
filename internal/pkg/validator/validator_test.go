package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2026-03-02")
	assert.True(t, ok)
	assert.Equal(t, 2026, date.Year())

	_, ok = IsValidDate("02-03-2026")
	assert.False(t, ok)

	_, ok = IsValidDate("2026-13-01")
	assert.False(t, ok)
}

func TestIsValidMonth(t *testing.T) {
	month, ok := IsValidMonth("2026-03")
	assert.True(t, ok)
	assert.Equal(t, 3, int(month.Month()))

	_, ok = IsValidMonth("2026-3")
	assert.False(t, ok)
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "month", Message: "month must be between 1 and 12"},
		{Field: "employee_id", Message: "employee_id is required"},
	}

	assert.Contains(t, errs.Error(), "month: month must be between 1 and 12")
	assert.Len(t, errs.ToMap(), 2)
}

func TestIsInSlice(t *testing.T) {
	assert.True(t, IsInSlice("pending", []string{"pending", "approved"}))
	assert.False(t, IsInSlice("rejected", []string{"pending", "approved"}))
}
