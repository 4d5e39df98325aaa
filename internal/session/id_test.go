package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	seen := map[string]bool{}

	for i := 0; i < 100; i++ {
		id, err := GenerateID()
		require.NoError(t, err)
		assert.Len(t, id, 43) // 32 bytes, base64 raw-url
		assert.False(t, seen[id], "duplicate session id")
		seen[id] = true
	}
}
