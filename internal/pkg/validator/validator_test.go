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

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"nurse@careplan.example",
		"first.last+tag@sub.domain.co",
		"UPPER@EXAMPLE.COM",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@no-local.example",
		"no-domain@",
		"spaces in@example.com",
		"missing@tld",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("0198c8b2-58a4-7def-8123-456789abcdef"))
	assert.True(t, IsValidUUID("0198C8B2-58A4-7DEF-8123-456789ABCDEF"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID(""))
	assert.False(t, IsValidUUID("0198c8b2-58a4-7def-8123-456789abcde"))
}

func TestIsValidDate(t *testing.T) {
	d, ok := IsValidDate("2026-03-02")
	assert.True(t, ok)
	assert.Equal(t, 2026, d.Year())

	_, ok = IsValidDate("2026-02-30")
	assert.False(t, ok)
	_, ok = IsValidDate("02/03/2026")
	assert.False(t, ok)
	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsValidEmployeeCode(t *testing.T) {
	assert.True(t, IsValidEmployeeCode("CP-0042"))
	assert.True(t, IsValidEmployeeCode("CARE-1234"))
	assert.False(t, IsValidEmployeeCode("cp-0042"))
	assert.False(t, IsValidEmployeeCode("C-0042"))
	assert.False(t, IsValidEmployeeCode("CP-42"))
	assert.False(t, IsValidEmployeeCode("CP0042"))
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "Invalid email format"},
		{Field: "start_date", Message: "Invalid date format"},
	}

	m := errs.ToMap()
	assert.Equal(t, "Invalid email format", m["email"])
	assert.Equal(t, "Invalid date format", m["start_date"])
	assert.Contains(t, errs.Error(), "email: Invalid email format")
}
