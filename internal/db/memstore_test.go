package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chorale-cms/chorale/internal/model"
)

func addSong(t *testing.T, s Store, title string) model.Song {
	t.Helper()
	song, err := s.CreateSong(CreateSongParams{Title: title, Lyrics: "la la"})
	require.NoError(t, err)
	return song
}

func addPlaylist(t *testing.T, s Store, name string) model.Playlist {
	t.Helper()
	pl, err := s.CreatePlaylist(CreatePlaylistParams{Name: name})
	require.NoError(t, err)
	return pl
}

func positions(items []model.PlaylistSong) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.Position
	}
	return out
}

func TestAddSongAppendsPositions(t *testing.T) {
	s := NewMemStore()
	pl := addPlaylist(t, s, "Concert set")

	for i, title := range []string{"First", "Second", "Third"} {
		song := addSong(t, s, title)
		ps, err := s.AddSongToPlaylist(pl.ID, song.ID)
		require.NoError(t, err)
		assert.Equal(t, i+1, ps.Position)
	}

	items, err := s.ListPlaylistSongs(pl.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, positions(items))
}

func TestAddSongTwiceConflicts(t *testing.T) {
	s := NewMemStore()
	pl := addPlaylist(t, s, "Concert set")
	song := addSong(t, s, "Only once")

	ps, err := s.AddSongToPlaylist(pl.ID, song.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, ps.Position)

	_, err = s.AddSongToPlaylist(pl.ID, song.ID)
	assert.ErrorIs(t, err, ErrSongInPlaylist)

	items, err := s.ListPlaylistSongs(pl.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestRemoveLeavesGapsUntilReorder(t *testing.T) {
	s := NewMemStore()
	pl := addPlaylist(t, s, "Concert set")

	a := addSong(t, s, "A")
	b := addSong(t, s, "B")
	c := addSong(t, s, "C")
	for _, song := range []model.Song{a, b, c} {
		_, err := s.AddSongToPlaylist(pl.ID, song.ID)
		require.NoError(t, err)
	}

	require.NoError(t, s.RemovePlaylistSong(pl.ID, b.ID))

	items, err := s.ListPlaylistSongs(pl.ID)
	require.NoError(t, err)
	// no automatic compaction: 1 and 3 remain
	assert.Equal(t, []int{1, 3}, positions(items))

	require.NoError(t, s.ReorderPlaylistSongs(pl.ID, []int{c.ID, a.ID}))
	items, err = s.ListPlaylistSongs(pl.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, positions(items))
	assert.Equal(t, c.ID, items[0].SongID)
	assert.Equal(t, a.ID, items[1].SongID)
}

func TestReorderRequiresPermutation(t *testing.T) {
	s := NewMemStore()
	pl := addPlaylist(t, s, "Concert set")
	a := addSong(t, s, "A")
	b := addSong(t, s, "B")
	for _, song := range []model.Song{a, b} {
		_, err := s.AddSongToPlaylist(pl.ID, song.ID)
		require.NoError(t, err)
	}

	assert.ErrorIs(t, s.ReorderPlaylistSongs(pl.ID, []int{a.ID}), ErrReorderMismatch)
	assert.ErrorIs(t, s.ReorderPlaylistSongs(pl.ID, []int{a.ID, a.ID}), ErrReorderMismatch)

	// swap [A, B] -> [B, A]
	require.NoError(t, s.ReorderPlaylistSongs(pl.ID, []int{b.ID, a.ID}))
	items, err := s.ListPlaylistSongs(pl.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, items[0].SongID)
	assert.Equal(t, 1, items[0].Position)
	assert.Equal(t, a.ID, items[1].SongID)
	assert.Equal(t, 2, items[1].Position)
}

func TestReorderEmptyMembershipIsNoop(t *testing.T) {
	s := NewMemStore()
	pl := addPlaylist(t, s, "Empty set")
	assert.NoError(t, s.ReorderPlaylistSongs(pl.ID, nil))
}

func TestVisibleMembershipFiltering(t *testing.T) {
	s := NewMemStore()
	pl := addPlaylist(t, s, "Concert set")

	visible := addSong(t, s, "Visible")
	hidden, err := s.CreateSong(CreateSongParams{Title: "Hidden", Lyrics: "x", Visible: new(bool)})
	require.NoError(t, err)
	archived := addSong(t, s, "Archived")
	require.NoError(t, s.ArchiveSong(archived.ID))

	for _, id := range []int{visible.ID, hidden.ID, archived.ID} {
		_, err := s.AddSongToPlaylist(pl.ID, id)
		require.NoError(t, err)
	}

	all, err := s.ListPlaylistSongs(pl.ID)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	public, err := s.ListVisiblePlaylistSongs(pl.ID)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, visible.ID, public[0].SongID)
}

func TestEventPlaylistMembership(t *testing.T) {
	s := NewMemStore()
	e, err := s.CreateEvent(CreateEventParams{Name: "Concert", EventDate: "2030-06-01"})
	require.NoError(t, err)

	shown := addPlaylist(t, s, "Main program")
	_, err = s.UpdatePlaylist(shown.ID, UpdatePlaylistParams{Status: strPtr(model.PlaylistStatusVisible)})
	require.NoError(t, err)
	draft := addPlaylist(t, s, "Backup set")

	ep, err := s.AddPlaylistToEvent(e.ID, shown.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, ep.Position)

	_, err = s.AddPlaylistToEvent(e.ID, draft.ID)
	require.NoError(t, err)

	_, err = s.AddPlaylistToEvent(e.ID, shown.ID)
	assert.ErrorIs(t, err, ErrPlaylistInEvent)

	public, err := s.ListVisibleEventPlaylists(e.ID)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, shown.ID, public[0].PlaylistID)
}

func TestPlaylistRestoreAlwaysHidden(t *testing.T) {
	s := NewMemStore()
	pl, err := s.CreatePlaylist(CreatePlaylistParams{
		Name:   "Tour set",
		Status: strPtr(model.PlaylistStatusVisible),
	})
	require.NoError(t, err)

	require.NoError(t, s.ArchivePlaylist(pl.ID))
	got, err := s.GetPlaylistByID(pl.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PlaylistStatusArchived, got.Status)

	// default listings exclude archived playlists
	listed, err := s.ListPlaylists(PlaylistFilter{})
	require.NoError(t, err)
	assert.Empty(t, listed)

	require.NoError(t, s.RestorePlaylist(pl.ID))
	got, err = s.GetPlaylistByID(pl.ID)
	require.NoError(t, err)
	// restore lands on hidden, not on the prior status
	assert.Equal(t, model.PlaylistStatusHidden, got.Status)
}

func TestArchiveNotFoundFails(t *testing.T) {
	s := NewMemStore()
	assert.ErrorIs(t, s.ArchiveSong(1), ErrNotFound)
	assert.ErrorIs(t, s.RestoreSong(1), ErrNotFound)
	assert.ErrorIs(t, s.DeleteSong(1), ErrNotFound)
	assert.ErrorIs(t, s.ArchiveEvent(1), ErrNotFound)
	assert.ErrorIs(t, s.ArchivePlaylist(1), ErrNotFound)
	assert.ErrorIs(t, s.DeletePhoto(1), ErrNotFound)
}

func strPtr(s string) *string { return &s }
