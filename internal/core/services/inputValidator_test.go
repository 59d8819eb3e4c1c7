package services

import (
	"strings"
	"testing"

	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	got, err := SanitizeName("  Mary Ann  ")
	require.NoError(t, err)
	assert.Equal(t, "Mary Ann", got)

	got, err = SanitizeName(strings.Repeat("a", 100))
	require.NoError(t, err)
	assert.Len(t, got, 100)

	for _, in := range []string{"", "   ", "J", "J0hn", "O'Neil", "Anne-Marie", strings.Repeat("a", 101)} {
		_, err := SanitizeName(in)
		assert.ErrorIs(t, err, domain.ErrInputValidation, "input %q", in)
	}
}

func TestSanitizeID(t *testing.T) {
	got, err := SanitizeID(" 123-abc ")
	require.NoError(t, err)
	assert.Equal(t, "123abc", got)

	got, err = SanitizeID("1011jkl")
	require.NoError(t, err)
	assert.Equal(t, "1011jkl", got)

	got, err = SanitizeID(strings.Repeat("9", 64) + "--")
	require.NoError(t, err)
	assert.Len(t, got, 64)

	for _, in := range []string{"", "  ", "--!", strings.Repeat("x", 65)} {
		_, err := SanitizeID(in)
		assert.ErrorIs(t, err, domain.ErrInputValidation, "input %q", in)
	}
}
