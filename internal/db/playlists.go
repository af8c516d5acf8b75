package db

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/chorale-cms/chorale/internal/model"
)

// PlaylistFilter composes with AND. An explicit Status wins; otherwise a nil
// Archived excludes status "archived" by default, same as the song filter.
type PlaylistFilter struct {
	Search   string
	Status   *string
	Archived *bool
}

type CreatePlaylistParams struct {
	Name        string
	Description *string
	Status      *string // defaults to "hidden"
}

type UpdatePlaylistParams struct {
	Name        *string
	Description *string
	Status      *string
}

const playlistColumns = `id, name, description, status, created_at, updated_at`

func playlistWhere(f PlaylistFilter) (string, []any) {
	var clauses []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Search != "" {
		clauses = append(clauses, "name ILIKE "+arg("%"+f.Search+"%"))
	}
	switch {
	case f.Status != nil:
		clauses = append(clauses, "status = "+arg(*f.Status))
	case f.Archived != nil && *f.Archived:
		clauses = append(clauses, "status = "+arg(model.PlaylistStatusArchived))
	default:
		clauses = append(clauses, "status <> "+arg(model.PlaylistStatusArchived))
	}

	return "WHERE " + strings.Join(clauses, " AND "), args
}

func (s *pgStore) ListPlaylists(f PlaylistFilter) ([]model.Playlist, error) {
	where, args := playlistWhere(f)
	q := `SELECT ` + playlistColumns + ` FROM playlists ` + where + ` ORDER BY name, id;`

	out := []model.Playlist{}
	if err := s.db.Select(&out, q, args...); err != nil {
		log.Error().Err(err).Msg("[db] ListPlaylists: select failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) CountPlaylists(f PlaylistFilter) (int, error) {
	where, args := playlistWhere(f)
	var n int
	if err := s.db.Get(&n, `SELECT COUNT(*) FROM playlists `+where+`;`, args...); err != nil {
		log.Error().Err(err).Msg("[db] CountPlaylists: count failed")
		return 0, err
	}
	return n, nil
}

func (s *pgStore) GetPlaylistByID(id int) (model.Playlist, error) {
	var p model.Playlist
	q := `SELECT ` + playlistColumns + ` FROM playlists WHERE id = $1;`
	if err := s.db.Get(&p, q, id); err != nil {
		return model.Playlist{}, asNotFound(err)
	}
	return p, nil
}

func (s *pgStore) GetVisiblePlaylistByID(id int) (model.Playlist, error) {
	var p model.Playlist
	q := `SELECT ` + playlistColumns + ` FROM playlists WHERE id = $1 AND status = $2;`
	if err := s.db.Get(&p, q, id, model.PlaylistStatusVisible); err != nil {
		return model.Playlist{}, asNotFound(err)
	}
	return p, nil
}

func (s *pgStore) CreatePlaylist(p CreatePlaylistParams) (model.Playlist, error) {
	status := model.PlaylistStatusHidden
	if p.Status != nil {
		status = *p.Status
	}

	var pl model.Playlist
	q := `
	INSERT INTO playlists (name, description, status, created_at, updated_at)
	VALUES ($1, $2, $3, now(), now())
	RETURNING ` + playlistColumns + `;`
	if err := s.db.Get(&pl, q, p.Name, p.Description, status); err != nil {
		log.Error().Err(err).Msg("[db] CreatePlaylist: insert failed")
		return model.Playlist{}, err
	}
	return pl, nil
}

func (s *pgStore) UpdatePlaylist(id int, p UpdatePlaylistParams) (model.Playlist, error) {
	var pl model.Playlist
	q := `
	UPDATE playlists SET
		name        = COALESCE($2, name),
		description = COALESCE($3, description),
		status      = COALESCE($4, status),
		updated_at  = now()
	WHERE id = $1
	RETURNING ` + playlistColumns + `;`
	if err := s.db.Get(&pl, q, id, p.Name, p.Description, p.Status); err != nil {
		return model.Playlist{}, asNotFound(err)
	}
	return pl, nil
}

func (s *pgStore) ArchivePlaylist(id int) error {
	return mustAffect(s.db.Exec(
		`UPDATE playlists SET status = $2, updated_at = now() WHERE id = $1;`,
		id, model.PlaylistStatusArchived))
}

// RestorePlaylist always lands on "hidden", never on the pre-archive status.
func (s *pgStore) RestorePlaylist(id int) error {
	return mustAffect(s.db.Exec(
		`UPDATE playlists SET status = $2, updated_at = now() WHERE id = $1;`,
		id, model.PlaylistStatusHidden))
}

func (s *pgStore) DeletePlaylist(id int) error {
	return mustAffect(s.db.Exec(`DELETE FROM playlists WHERE id = $1;`, id))
}

// @ MEMBERSHIP

// AddSongToPlaylist appends at MAX(position)+1. The unique constraint on
// (playlist_id, song_id) turns double-adds into ErrSongInPlaylist.
func (s *pgStore) AddSongToPlaylist(playlistID, songID int) (model.PlaylistSong, error) {
	var ps model.PlaylistSong
	q := `
	INSERT INTO playlist_songs (playlist_id, song_id, position, created_at)
	VALUES (
		$1, $2,
		COALESCE((SELECT MAX(position) + 1 FROM playlist_songs WHERE playlist_id = $1), 1),
		now()
	)
	RETURNING id, playlist_id, song_id, position, created_at;`
	if err := s.db.Get(&ps, q, playlistID, songID); err != nil {
		if isUniqueViolation(err) {
			return model.PlaylistSong{}, ErrSongInPlaylist
		}
		log.Error().Err(err).Msg("[db] AddSongToPlaylist: insert failed")
		return model.PlaylistSong{}, err
	}
	return ps, nil
}

// RemovePlaylistSong deletes the row and leaves the remaining positions
// untouched; only an explicit reorder renumbers them.
func (s *pgStore) RemovePlaylistSong(playlistID, songID int) error {
	return mustAffect(s.db.Exec(
		`DELETE FROM playlist_songs WHERE playlist_id = $1 AND song_id = $2;`,
		playlistID, songID))
}

func (s *pgStore) ReorderPlaylistSongs(playlistID int, songIDs []int) error {
	return s.reorderMembership(reorderSpec{
		table:    "playlist_songs",
		parent:   "playlist_id",
		child:    "song_id",
		parentID: playlistID,
		childIDs: songIDs,
	})
}

func (s *pgStore) ListPlaylistSongs(playlistID int) ([]model.PlaylistSong, error) {
	return s.listPlaylistSongs(playlistID, false)
}

func (s *pgStore) ListVisiblePlaylistSongs(playlistID int) ([]model.PlaylistSong, error) {
	return s.listPlaylistSongs(playlistID, true)
}

func (s *pgStore) listPlaylistSongs(playlistID int, visibleOnly bool) ([]model.PlaylistSong, error) {
	type row struct {
		model.PlaylistSong
		Joined model.Song `db:"song"`
	}

	q := `
	SELECT
		ps.id, ps.playlist_id, ps.song_id, ps.position, ps.created_at,
		s.id              AS "song.id",
		s.title           AS "song.title",
		s.lyrics          AS "song.lyrics",
		s.artist_composer AS "song.artist_composer",
		s.language        AS "song.language",
		s.genre           AS "song.genre",
		s.year            AS "song.year",
		s.is_visible      AS "song.is_visible",
		s.is_archived     AS "song.is_archived",
		s.created_at      AS "song.created_at",
		s.updated_at      AS "song.updated_at"
	FROM playlist_songs ps
	JOIN songs s ON s.id = ps.song_id
	WHERE ps.playlist_id = $1`
	if visibleOnly {
		q += ` AND s.is_visible = TRUE AND s.is_archived = FALSE`
	}
	q += ` ORDER BY ps.position;`

	var rows []row
	if err := s.db.Select(&rows, q, playlistID); err != nil {
		log.Error().Err(err).Msg("[db] ListPlaylistSongs: select failed")
		return nil, err
	}

	out := make([]model.PlaylistSong, len(rows))
	for i := range rows {
		out[i] = rows[i].PlaylistSong
		song := rows[i].Joined
		out[i].Song = &song
	}
	return out, nil
}
