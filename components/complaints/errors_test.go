package complaints

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTaxonomyHelpers(t *testing.T) {
	transport := fmt.Errorf("wrap: %w", &TransportError{Op: "list complaints", Err: errors.New("connection refused")})
	assert.True(t, IsTransport(transport))
	assert.False(t, IsValidation(transport))

	server := fmt.Errorf("wrap: %w", &ServerError{Status: 400, Detail: "Email already registered"})
	detail, ok := ServerDetail(server)
	assert.True(t, ok)
	assert.Equal(t, "Email already registered", detail)

	_, ok = ServerDetail(&ServerError{Status: 500})
	assert.False(t, ok)

	validation := &ValidationError{Field: "email", Message: "Enter an email"}
	assert.True(t, IsValidation(validation))
	assert.Contains(t, validation.Error(), "email")
}
