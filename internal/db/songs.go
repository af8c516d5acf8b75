package db

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/chorale-cms/chorale/internal/model"
)

// SongFilter composes with AND. A nil Archived means "not archived":
// archived songs never leak into default listings or counts.
type SongFilter struct {
	Search   string
	Visible  *bool
	Archived *bool
	Language *string
	Genre    *string
}

type CreateSongParams struct {
	Title          string
	Lyrics         string
	ArtistComposer *string
	Language       *string
	Genre          *string
	Year           *int
	Visible        *bool // defaults to true
}

type UpdateSongParams struct {
	Title          *string
	Lyrics         *string
	ArtistComposer *string
	Language       *string
	Genre          *string
	Year           *int
	Visible        *bool
}

const songColumns = `id, title, lyrics, artist_composer, language, genre, year,
	is_visible, is_archived, created_at, updated_at`

func songWhere(f SongFilter) (string, []any) {
	var clauses []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Search != "" {
		clauses = append(clauses, "title ILIKE "+arg("%"+f.Search+"%"))
	}
	if f.Visible != nil {
		clauses = append(clauses, "is_visible = "+arg(*f.Visible))
	}
	archived := false
	if f.Archived != nil {
		archived = *f.Archived
	}
	clauses = append(clauses, "is_archived = "+arg(archived))
	if f.Language != nil {
		clauses = append(clauses, "language = "+arg(*f.Language))
	}
	if f.Genre != nil {
		clauses = append(clauses, "genre = "+arg(*f.Genre))
	}

	return "WHERE " + strings.Join(clauses, " AND "), args
}

func (s *pgStore) ListSongs(f SongFilter) ([]model.Song, error) {
	where, args := songWhere(f)
	q := `SELECT ` + songColumns + ` FROM songs ` + where + ` ORDER BY title, id;`

	out := []model.Song{}
	if err := s.db.Select(&out, q, args...); err != nil {
		log.Error().Err(err).Msg("[db] ListSongs: select failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) CountSongs(f SongFilter) (int, error) {
	where, args := songWhere(f)
	var n int
	if err := s.db.Get(&n, `SELECT COUNT(*) FROM songs `+where+`;`, args...); err != nil {
		log.Error().Err(err).Msg("[db] CountSongs: count failed")
		return 0, err
	}
	return n, nil
}

// ListRecentSongs feeds the "recently updated" dashboard panel.
func (s *pgStore) ListRecentSongs(limit int) ([]model.Song, error) {
	out := []model.Song{}
	q := `SELECT ` + songColumns + ` FROM songs
		WHERE is_archived = FALSE
		ORDER BY updated_at DESC
		LIMIT $1;`
	if err := s.db.Select(&out, q, limit); err != nil {
		log.Error().Err(err).Msg("[db] ListRecentSongs: select failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) GetSongByID(id int) (model.Song, error) {
	var song model.Song
	q := `SELECT ` + songColumns + ` FROM songs WHERE id = $1;`
	if err := s.db.Get(&song, q, id); err != nil {
		return model.Song{}, asNotFound(err)
	}
	return song, nil
}

func (s *pgStore) GetVisibleSongByID(id int) (model.Song, error) {
	var song model.Song
	q := `SELECT ` + songColumns + ` FROM songs
		WHERE id = $1 AND is_visible = TRUE AND is_archived = FALSE;`
	if err := s.db.Get(&song, q, id); err != nil {
		return model.Song{}, asNotFound(err)
	}
	return song, nil
}

func (s *pgStore) CreateSong(p CreateSongParams) (model.Song, error) {
	visible := true
	if p.Visible != nil {
		visible = *p.Visible
	}

	var song model.Song
	q := `
	INSERT INTO songs (title, lyrics, artist_composer, language, genre, year, is_visible, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
	RETURNING ` + songColumns + `;`
	if err := s.db.Get(&song, q,
		p.Title, p.Lyrics, p.ArtistComposer, p.Language, p.Genre, p.Year, visible,
	); err != nil {
		log.Error().Err(err).Msg("[db] CreateSong: insert failed")
		return model.Song{}, err
	}
	return song, nil
}

func (s *pgStore) UpdateSong(id int, p UpdateSongParams) (model.Song, error) {
	var song model.Song
	q := `
	UPDATE songs SET
		title           = COALESCE($2, title),
		lyrics          = COALESCE($3, lyrics),
		artist_composer = COALESCE($4, artist_composer),
		language        = COALESCE($5, language),
		genre           = COALESCE($6, genre),
		year            = COALESCE($7, year),
		is_visible      = COALESCE($8, is_visible),
		updated_at      = now()
	WHERE id = $1
	RETURNING ` + songColumns + `;`
	if err := s.db.Get(&song, q,
		id, p.Title, p.Lyrics, p.ArtistComposer, p.Language, p.Genre, p.Year, p.Visible,
	); err != nil {
		return model.Song{}, asNotFound(err)
	}
	return song, nil
}

func (s *pgStore) ArchiveSong(id int) error {
	return mustAffect(s.db.Exec(
		`UPDATE songs SET is_archived = TRUE, updated_at = now() WHERE id = $1;`, id))
}

func (s *pgStore) RestoreSong(id int) error {
	return mustAffect(s.db.Exec(
		`UPDATE songs SET is_archived = FALSE, updated_at = now() WHERE id = $1;`, id))
}

func (s *pgStore) DeleteSong(id int) error {
	return mustAffect(s.db.Exec(`DELETE FROM songs WHERE id = $1;`, id))
}
