package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaylistName(t *testing.T) {
	assert.Equal(t, "name is required", Playlist(PlaylistInput{}, ForCreate).First())
	assert.True(t, Playlist(PlaylistInput{}, ForUpdate).Valid())

	errs := Playlist(PlaylistInput{Name: strptr("  ")}, ForCreate)
	assert.Equal(t, "name", errs[0].Field)

	// trimmed length is what counts
	padded := "  " + strings.Repeat("x", 200) + "  "
	assert.True(t, Playlist(PlaylistInput{Name: &padded}, ForCreate).Valid())

	long := strings.Repeat("x", 201)
	assert.False(t, Playlist(PlaylistInput{Name: &long}, ForCreate).Valid())
}

func TestPlaylistStatusEnum(t *testing.T) {
	for _, s := range []string{"visible", "hidden", "in_progress", "archived"} {
		in := PlaylistInput{Name: strptr("Concert set"), Status: strptr(s)}
		assert.True(t, Playlist(in, ForCreate).Valid(), s)
	}

	errs := Playlist(PlaylistInput{Status: strptr("draft")}, ForUpdate)
	assert.False(t, errs.Valid())
	assert.Equal(t, "status", errs[0].Field)
}

func TestPlaylistDescriptionCap(t *testing.T) {
	desc := strings.Repeat("x", 2001)
	errs := Playlist(PlaylistInput{Description: &desc}, ForUpdate)
	assert.False(t, errs.Valid())
	assert.Equal(t, "description", errs[0].Field)
}
