package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelscout/cli/internal/catalog"
)

func TestAddIsIdempotent(t *testing.T) {
	r := New()

	m := catalog.Normalize("gpt-4", 100, "src-1")
	r.Add(m)
	r.Add(m)
	r.Add(m)

	assert.Equal(t, 1, r.Len())

	got, ok := r.Get("src-1-gpt-4")
	require.True(t, ok)
	assert.Equal(t, m, got)
}

func TestAddOverwritesByID(t *testing.T) {
	r := New()

	r.Add(catalog.Normalize("gpt-4", 100, "src-1"))
	r.Add(catalog.Normalize("gpt-4", 200, "src-1"))

	got, ok := r.Get("src-1-gpt-4")
	require.True(t, ok)
	assert.EqualValues(t, 200, got.CreatedAt)
	assert.Equal(t, 1, r.Len())
}

func TestListFiltersHidden(t *testing.T) {
	r := New()
	r.Add(
		catalog.Normalize("gpt-4", 1, "src-1"),
		catalog.Normalize("gpt-4-0314", 2, "src-1"),
		catalog.Normalize("gpt-3.5-turbo", 3, "src-1"),
	)

	visible := r.List(false)
	require.Len(t, visible, 2)
	for _, m := range visible {
		assert.False(t, m.Hidden)
	}

	all := r.List(true)
	assert.Len(t, all, 3)
}

func TestListIsSortedByID(t *testing.T) {
	r := New()
	r.Add(
		catalog.Normalize("gpt-4", 1, "zzz"),
		catalog.Normalize("gpt-4", 1, "aaa"),
		catalog.Normalize("gpt-3.5-turbo", 1, "aaa"),
	)

	models := r.List(true)
	require.Len(t, models, 3)
	assert.Equal(t, "aaa-gpt-3.5-turbo", models[0].ID)
	assert.Equal(t, "aaa-gpt-4", models[1].ID)
	assert.Equal(t, "zzz-gpt-4", models[2].ID)
}

func TestRemoveSource(t *testing.T) {
	r := New()
	r.Add(
		catalog.Normalize("gpt-4", 1, "src-1"),
		catalog.Normalize("gpt-4-0314", 1, "src-1"),
		catalog.Normalize("gpt-4", 1, "src-2"),
	)

	removed := r.RemoveSource("src-1")
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, r.Len())

	_, ok := r.Get("src-2-gpt-4")
	assert.True(t, ok)
}

func TestDistinctSourcesDoNotCollide(t *testing.T) {
	r := New()
	r.Add(
		catalog.Normalize("gpt-4", 1, "src-1"),
		catalog.Normalize("gpt-4", 1, "src-2"),
	)
	assert.Equal(t, 2, r.Len())
}
