package delivery

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCompiledQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		query, ok := parseCompiledQuery([]byte(`{"sql":"SELECT id FROM User WHERE id = ?","parameters":[7]}`))
		require.True(t, ok)
		require.Equal(t, "SELECT id FROM User WHERE id = ?", query.SQL)
		require.Len(t, query.Parameters, 1)
	})

	t.Run("no parameters", func(t *testing.T) {
		query, ok := parseCompiledQuery([]byte(`{"sql":"SHOW TABLES"}`))
		require.True(t, ok)
		require.Empty(t, query.Parameters)
	})

	t.Run("not json", func(t *testing.T) {
		_, ok := parseCompiledQuery([]byte("SELECT 1"))
		require.False(t, ok)
	})

	t.Run("missing sql", func(t *testing.T) {
		_, ok := parseCompiledQuery([]byte(`{"parameters":[]}`))
		require.False(t, ok)
	})

	t.Run("empty body", func(t *testing.T) {
		_, ok := parseCompiledQuery(nil)
		require.False(t, ok)
	})
}
