package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestID_ZeroValueIsUnsaved(t *testing.T) {
	var id ID
	assert.True(t, id.IsNew())
	assert.Equal(t, Unsaved(), id)

	v, ok := id.Value()
	assert.False(t, ok)
	assert.Equal(t, 0, v)
	assert.Equal(t, "new", id.String())
}

func TestID_Persisted(t *testing.T) {
	id := Persisted(7)
	assert.False(t, id.IsNew())

	v, ok := id.Value()
	assert.True(t, ok)
	assert.Equal(t, 7, v)
	assert.Equal(t, 7, id.Int())
	assert.Equal(t, "7", id.String())
}

func TestID_NonPositiveIsUnsaved(t *testing.T) {
	assert.True(t, Persisted(0).IsNew())
	assert.True(t, Persisted(-3).IsNew())
}

func TestID_Equal(t *testing.T) {
	assert.True(t, Persisted(1).Equal(Persisted(1)))
	assert.False(t, Persisted(1).Equal(Persisted(2)))
	assert.False(t, Unsaved().Equal(Unsaved()))
	assert.False(t, Unsaved().Equal(Persisted(1)))
}
