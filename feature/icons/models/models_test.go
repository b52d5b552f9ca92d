package models

import (
	"encoding/json"
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIcon_AlternativesOmittedWhenEmpty(t *testing.T) {
	icon := Icon{ID: "lucide-box", Name: "Box", Tags: []string{}, Categories: []string{}}

	data, err := json.Marshal(icon)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "alternatives")
	assert.Contains(t, string(data), `"tags":[]`)
	assert.Contains(t, string(data), `"categories":[]`)
	assert.False(t, icon.Alternatives.Present())
}

func TestIcon_AlternativesPresent(t *testing.T) {
	icon := Icon{ID: "a", Alternatives: Alternatives{"b"}}

	data, err := json.Marshal(icon)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"alternatives":["b"]`)
	assert.True(t, icon.Alternatives.Present())
}

func TestErrors(t *testing.T) {
	t.Run("MalformedCatalogError", func(t *testing.T) {
		err := error(&MalformedCatalogError{Path: "lucide-icons.json", Err: errors.New("bad tags")})
		var target *MalformedCatalogError
		require.ErrorAs(t, err, &target)
		assert.Equal(t, "lucide-icons.json", target.Path)
		assert.Contains(t, err.Error(), "bad tags")
	})

	t.Run("SnapshotParseError", func(t *testing.T) {
		err := &SnapshotParseError{File: "1.7.7.json", Icon: "lucide-box", Err: errors.New(`missing "svg"`)}
		assert.Equal(t, `snapshot 1.7.7.json: icon "lucide-box": missing "svg"`, err.Error())

		whole := &SnapshotParseError{File: "1.7.7.json", Err: errors.New("unexpected EOF")}
		assert.Equal(t, "snapshot 1.7.7.json: unexpected EOF", whole.Error())
	})

	t.Run("FilesystemError", func(t *testing.T) {
		err := error(&FilesystemError{Op: "read dir", Path: "icon-data", Err: fs.ErrNotExist})
		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.Equal(t, "read dir icon-data: file does not exist", err.Error())
	})
}
