package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Address string `validate:"required,eth_addr"`
	Hash    string `validate:"omitempty,len=66,hexadecimal"`
}

func TestValidate(t *testing.T) {
	Init()

	t.Run("passes for a valid struct", func(t *testing.T) {
		err := Validate(sample{
			Address: "0x1111111111111111111111111111111111111111",
			Hash:    "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		})
		assert.NoError(t, err)
	})

	t.Run("fails with ErrValidation for a missing required field", func(t *testing.T) {
		err := Validate(sample{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), "Address")
	})

	t.Run("fails for a malformed address", func(t *testing.T) {
		err := Validate(sample{Address: "0x123"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), "eth_addr")
	})

	t.Run("reports every violated field", func(t *testing.T) {
		err := Validate(sample{Address: "nope", Hash: "0x12"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Address")
		assert.Contains(t, err.Error(), "Hash")
	})
}
