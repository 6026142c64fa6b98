package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCartID(t *testing.T) {
	assert.Equal(t, "cons_662f1d4e9b3c1a2b3c4d5e6f", GenerateCartID("662f1d4e9b3c1a2b3c4d5e6f"))
}

func TestParseCartID(t *testing.T) {
	t.Run("roundtrip", func(t *testing.T) {
		id, err := ParseCartID(GenerateCartID("662f1d4e9b3c1a2b3c4d5e6f"))
		assert.NoError(t, err)
		assert.Equal(t, "662f1d4e9b3c1a2b3c4d5e6f", id)
	})

	t.Run("id containing underscores is preserved", func(t *testing.T) {
		id, err := ParseCartID("cons_abc_def")
		assert.NoError(t, err)
		assert.Equal(t, "abc_def", id)
	})

	for _, malformed := range []string{"", "cons", "cons_", "cart_abc", "662f1d4e9b3c"} {
		t.Run("rejects "+malformed, func(t *testing.T) {
			_, err := ParseCartID(malformed)
			assert.Error(t, err)
		})
	}
}
