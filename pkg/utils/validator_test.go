package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type signup struct {
	Name  string  `json:"name" validate:"required"`
	Email string  `json:"email" validate:"required,email"`
	Role  *string `json:"role,omitempty" validate:"omitempty,oneof=user admin"`
	Age   int     `json:"age" validate:"gte=18"`
}

func TestValidateStruct(t *testing.T) {
	assert.Nil(t, ValidateStruct(&signup{Name: "Ann", Email: "ann@example.com", Age: 20}))

	role := "root"
	errs := ValidateStruct(&signup{Email: "ann", Role: &role, Age: 3})
	assert.Equal(t, map[string]string{
		"name":  "This field is required",
		"email": "Invalid email format",
		"role":  "Must be one of: user, admin",
		"age":   "Must be greater than or equal to 18",
	}, errs)
}

func TestPagination(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(0, 10))
	assert.Equal(t, 3, CalculateTotalPages(21, 10))
	assert.Equal(t, 0, CalculateTotalPages(5, 0))

	assert.Equal(t, 0, CalculateOffset(0, 10))
	assert.Equal(t, 20, CalculateOffset(3, 10))

	assert.Equal(t, 7, ParseInt("7", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 1, ParseInt("x", 1))
	assert.Equal(t, 1, ParseInt("-4", 1))
}

func TestGenerateImageKey(t *testing.T) {
	key := GenerateImageKey("/foods/", "Photo.JPG")
	assert.Regexp(t, `^foods/[0-9a-f-]{36}\.jpg$`, key)
	assert.NotEqual(t, key, GenerateImageKey("foods", "Photo.JPG"))

	assert.Regexp(t, `^[0-9a-f-]{36}$`, GenerateImageKey("", "noext"))
}
