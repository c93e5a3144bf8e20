package urlparser_test

import (
	"testing"

	"shopapi/pkg/lib/urlparser"

	"github.com/stretchr/testify/assert"
)

func TestParseUserPath(t *testing.T) {
	t.Run("by id", func(t *testing.T) {
		params, err := urlparser.ParseUserPath("/api/user/id/42")
		assert.NoError(t, err)
		assert.True(t, params.ById)
		assert.Equal(t, 42, params.Id)
	})

	t.Run("by username", func(t *testing.T) {
		params, err := urlparser.ParseUserPath("/api/user/superman")
		assert.NoError(t, err)
		assert.False(t, params.ById)
		assert.Equal(t, "superman", params.Username)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := urlparser.ParseUserPath("/api/user/id/abc")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, urlparser.ErrUnknownPath)
	})

	t.Run("unknown shape", func(t *testing.T) {
		_, err := urlparser.ParseUserPath("/api/user/id/1/extra")
		assert.ErrorIs(t, err, urlparser.ErrUnknownPath)
	})
}

func TestParseItemPath(t *testing.T) {
	t.Run("by id", func(t *testing.T) {
		params, err := urlparser.ParseItemPath("/api/item/7")
		assert.NoError(t, err)
		assert.False(t, params.ByName)
		assert.Equal(t, 7, params.Id)
	})

	t.Run("by name", func(t *testing.T) {
		params, err := urlparser.ParseItemPath("/api/item/name/book")
		assert.NoError(t, err)
		assert.True(t, params.ByName)
		assert.Equal(t, "book", params.Name)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := urlparser.ParseItemPath("/api/item/abc")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, urlparser.ErrUnknownPath)
	})
}

func TestParseOrderPath(t *testing.T) {
	t.Run("submit", func(t *testing.T) {
		params, err := urlparser.ParseOrderPath("/api/order/submit/superman")
		assert.NoError(t, err)
		assert.True(t, params.Submit)
		assert.Equal(t, "superman", params.Username)
	})

	t.Run("history", func(t *testing.T) {
		params, err := urlparser.ParseOrderPath("/api/order/history/superman")
		assert.NoError(t, err)
		assert.False(t, params.Submit)
		assert.Equal(t, "superman", params.Username)
	})

	t.Run("unknown action", func(t *testing.T) {
		_, err := urlparser.ParseOrderPath("/api/order/cancel/superman")
		assert.ErrorIs(t, err, urlparser.ErrUnknownPath)
	})

	t.Run("missing username", func(t *testing.T) {
		_, err := urlparser.ParseOrderPath("/api/order/submit/")
		assert.ErrorIs(t, err, urlparser.ErrUnknownPath)
	})
}
