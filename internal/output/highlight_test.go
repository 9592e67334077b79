package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecorateTokens(t *testing.T) {
	t.Run("keeps all original text", func(t *testing.T) {
		msg := `loaded C:\Game\Saved\Logs\demo.log in 42 ms for 550e8400-e29b-41d4-a716-446655440000`
		out := DecorateTokens(msg)

		assert.Contains(t, out, `C:\Game\Saved\Logs\demo.log`)
		assert.Contains(t, out, "42")
		assert.Contains(t, out, "550e8400-e29b-41d4-a716-446655440000")
	})

	t.Run("no tokens returns input unchanged", func(t *testing.T) {
		msg := "nothing to see here"
		assert.Equal(t, msg, DecorateTokens(msg))
	})

	t.Run("unc path", func(t *testing.T) {
		out := DecorateTokens(`mounting \\server\share\pak`)
		assert.Contains(t, out, `\\server\share\pak`)
	})
}
