package registry

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_GetPutRemove(t *testing.T) {
	reg := New()

	_, ok := reg.Get("m")
	assert.False(t, ok)

	reg.Put(Record{Name: "m", Path: "/a"})
	rec, ok := reg.Get("m")
	require.True(t, ok)
	assert.Equal(t, "/a", rec.Path)

	removed, ok := reg.Remove("m")
	require.True(t, ok)
	assert.Equal(t, "m", removed.Name)
	assert.Equal(t, 0, reg.Len())

	_, ok = reg.Remove("m")
	assert.False(t, ok)
}

func TestRegistry_Update(t *testing.T) {
	reg := New()
	reg.Put(Record{Name: "m", Path: "/a"})

	ok := reg.Update("m", func(r *Record) { r.Path = "/b" })
	require.True(t, ok)

	rec, _ := reg.Get("m")
	assert.Equal(t, "/b", rec.Path)

	called := false
	ok = reg.Update("absent", func(*Record) { called = true })
	assert.False(t, ok)
	assert.False(t, called)
}

func TestRegistry_RecordsSorted(t *testing.T) {
	reg := New()
	for _, name := range []string{"zeta", "alpha", "mu"} {
		reg.Put(Record{Name: name, Path: "/" + name})
	}

	var names []string
	for _, rec := range reg.Records() {
		names = append(names, rec.Name)
	}
	assert.Equal(t, []string{"alpha", "mu", "zeta"}, names)
}

func TestRegistry_UnmarshalFillsMissingName(t *testing.T) {
	reg := New()
	require.NoError(t, json.Unmarshal([]byte(`{"m": {"path": "/a"}}`), reg))

	rec, ok := reg.Get("m")
	require.True(t, ok)
	assert.Equal(t, "m", rec.Name)
	assert.Equal(t, "/a", rec.Path)
}

func TestRegistry_UnmarshalNull(t *testing.T) {
	reg := New()
	require.NoError(t, json.Unmarshal([]byte(`null`), reg))

	reg.Put(Record{Name: "m", Path: "/a"})
	assert.Equal(t, 1, reg.Len())
}
