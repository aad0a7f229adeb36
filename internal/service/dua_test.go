package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuaService(t *testing.T) {
	svc := NewDuaService(NewSearchMatcher())

	assert.NotEmpty(t, svc.List())

	d := svc.Random()
	got, ok := svc.Get(d.ID)
	require.True(t, ok)
	assert.Equal(t, d, got)

	_, ok = svc.Get("missing")
	assert.False(t, ok)

	found := svc.Search("বিপদ")
	require.Len(t, found, 1)
	assert.Equal(t, "2", found[0].ID)

	assert.Len(t, svc.Search(""), len(svc.List()))
}
