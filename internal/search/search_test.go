package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmunix/vidplay/internal/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]*catalog.Video{
		catalog.NewVideo("Funny Dogs", "funny_dogs_video_id", []string{"#dog", "#animal"}),
		catalog.NewVideo("Amazing Cats", "amazing_cats_video_id", []string{"#cat", "#animal"}),
		catalog.NewVideo("Another Cat Video", "another_cat_video_id", []string{"#cat", "#animal"}),
		catalog.NewVideo("Life at Google", "life_at_google_video_id", []string{"#google", "#career"}),
		catalog.NewVideo("Video about nothing", "nothing_video_id", nil),
	})
	require.NoError(t, err)
	return cat
}

func ids(r *Results) []string {
	var out []string
	for _, v := range r.Videos {
		out = append(out, v.ID())
	}
	return out
}

func TestEngine_ByTitle(t *testing.T) {
	e := NewEngine(testCatalog(t))

	tests := []struct {
		name string
		term string
		want []string
	}{
		{"substring sorted by title", "cat", []string{"amazing_cats_video_id", "another_cat_video_id"}},
		{"case insensitive", "VIDEO", []string{"another_cat_video_id", "nothing_video_id"}},
		{"single match", "google", []string{"life_at_google_video_id"}},
		{"mixed case term", "aMaZiNg", []string{"amazing_cats_video_id"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := e.ByTitle(tt.term)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(res))
			assert.Equal(t, tt.term, res.Term)
			assert.Equal(t, ModeTitle, res.Mode)
		})
	}
}

func TestEngine_ByTag(t *testing.T) {
	e := NewEngine(testCatalog(t))

	res, err := e.ByTag("#ANIMAL")
	require.NoError(t, err)
	assert.Equal(t, []string{"amazing_cats_video_id", "another_cat_video_id", "funny_dogs_video_id"}, ids(res))

	_, err = e.ByTag("#anim")
	require.ErrorIs(t, err, ErrNoResults, "tags match exactly, not by prefix")
}

func TestEngine_ExcludesFlagged(t *testing.T) {
	cat := testCatalog(t)
	e := NewEngine(cat)

	res, err := e.ByTitle("cat")
	require.NoError(t, err)
	require.Len(t, res.Videos, 2)

	v, _ := cat.Get("amazing_cats_video_id")
	require.NoError(t, v.Flag("dont_like_cats"))

	res, err = e.ByTitle("cat")
	require.NoError(t, err)
	assert.Equal(t, []string{"another_cat_video_id"}, ids(res))

	v, _ = cat.Get("another_cat_video_id")
	require.NoError(t, v.Flag(""))
	_, err = e.ByTag("#cat")
	require.ErrorIs(t, err, ErrNoResults)
}

func TestEngine_TieBreakByID(t *testing.T) {
	cat, err := catalog.New([]*catalog.Video{
		catalog.NewVideo("Same", "b", nil),
		catalog.NewVideo("Same", "a", nil),
	})
	require.NoError(t, err)

	res, err := NewEngine(cat).ByTitle("same")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids(res))
}

func TestEngine_EmptyCatalog(t *testing.T) {
	cat, err := catalog.New(nil)
	require.NoError(t, err)

	_, err = NewEngine(cat).ByTitle("anything")
	require.ErrorIs(t, err, ErrNoVideos)
}

func TestEngine_NoResults(t *testing.T) {
	_, err := NewEngine(testCatalog(t)).ByTitle("blah")
	require.ErrorIs(t, err, ErrNoResults)
	assert.Contains(t, err.Error(), "blah")
}

func TestResults_Select(t *testing.T) {
	res, err := NewEngine(testCatalog(t)).ByTitle("cat")
	require.NoError(t, err)

	tests := []struct {
		answer string
		want   string
		ok     bool
	}{
		{"1", "amazing_cats_video_id", true},
		{" 2 ", "another_cat_video_id", true},
		{"0", "", false},
		{"-1", "", false},
		{"3", "", false},
		{"no", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			v, ok := res.Select(tt.answer)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, v.ID())
			}
		})
	}
}
