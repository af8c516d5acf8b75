package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSongCreateRequiresTitleAndLyrics(t *testing.T) {
	errs := Song(SongInput{}, ForCreate)
	assert.Len(t, errs, 2)
	assert.Equal(t, "title is required", errs.First())

	errs = Song(SongInput{Title: strptr("   "), Lyrics: strptr("la la")}, ForCreate)
	assert.False(t, errs.Valid())
	assert.Equal(t, "title", errs[0].Field)
}

func TestSongUpdateSkipsMissingFields(t *testing.T) {
	assert.True(t, Song(SongInput{}, ForUpdate).Valid())

	// present fields still constrained on update
	errs := Song(SongInput{Lyrics: strptr("")}, ForUpdate)
	assert.False(t, errs.Valid())
	assert.Equal(t, "lyrics", errs[0].Field)
}

func TestSongYearRange(t *testing.T) {
	maxYear := time.Now().Year() + 10

	valid := SongInput{Title: strptr("Amazing Grace"), Lyrics: strptr("Amazing grace..."), Year: intptr(1779)}
	assert.True(t, Song(valid, ForCreate).Valid())

	assert.False(t, Song(SongInput{Year: intptr(999)}, ForUpdate).Valid())
	assert.False(t, Song(SongInput{Year: intptr(maxYear + 1)}, ForUpdate).Valid())
	assert.True(t, Song(SongInput{Year: intptr(maxYear)}, ForUpdate).Valid())
}
