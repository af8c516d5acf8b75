package db

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/chorale-cms/chorale/internal/model"
)

// EventFilter composes with AND; nil Archived means "not archived".
type EventFilter struct {
	Search   string
	Visible  *bool
	Archived *bool
}

type CreateEventParams struct {
	Name              string
	Description       *string
	EventDate         string // YYYY-MM-DD
	EventTime         *string
	Place             *string
	Latitude          *float64
	Longitude         *float64
	Visible           *bool // defaults to false
	Current           *bool // defaults to false
	AutoArchiveExempt *bool // defaults to false
}

type UpdateEventParams struct {
	Name              *string
	Description       *string
	EventDate         *string
	EventTime         *string
	Place             *string
	Latitude          *float64
	Longitude         *float64
	Visible           *bool
	Current           *bool
	AutoArchiveExempt *bool
}

// dates and times travel as strings ("YYYY-MM-DD", "HH:MM:SS")
const eventColumns = `id, name, description,
	to_char(event_date, 'YYYY-MM-DD') AS event_date,
	to_char(event_time, 'HH24:MI:SS') AS event_time,
	place, latitude, longitude,
	is_visible, is_current, is_archived, auto_archive_exempt,
	created_at, updated_at`

func eventWhere(f EventFilter) (string, []any) {
	var clauses []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Search != "" {
		clauses = append(clauses, "name ILIKE "+arg("%"+f.Search+"%"))
	}
	if f.Visible != nil {
		clauses = append(clauses, "is_visible = "+arg(*f.Visible))
	}
	archived := false
	if f.Archived != nil {
		archived = *f.Archived
	}
	clauses = append(clauses, "is_archived = "+arg(archived))

	return "WHERE " + strings.Join(clauses, " AND "), args
}

func (s *pgStore) ListEvents(f EventFilter) ([]model.Event, error) {
	where, args := eventWhere(f)
	q := `SELECT ` + eventColumns + ` FROM events ` + where + ` ORDER BY event_date DESC, id;`

	out := []model.Event{}
	if err := s.db.Select(&out, q, args...); err != nil {
		log.Error().Err(err).Msg("[db] ListEvents: select failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) CountEvents(f EventFilter) (int, error) {
	where, args := eventWhere(f)
	var n int
	if err := s.db.Get(&n, `SELECT COUNT(*) FROM events `+where+`;`, args...); err != nil {
		log.Error().Err(err).Msg("[db] CountEvents: count failed")
		return 0, err
	}
	return n, nil
}

func (s *pgStore) GetEventByID(id int) (model.Event, error) {
	var e model.Event
	q := `SELECT ` + eventColumns + ` FROM events WHERE id = $1;`
	if err := s.db.Get(&e, q, id); err != nil {
		return model.Event{}, asNotFound(err)
	}
	return e, nil
}

func (s *pgStore) GetVisibleEventByID(id int) (model.Event, error) {
	var e model.Event
	q := `SELECT ` + eventColumns + ` FROM events
		WHERE id = $1 AND is_visible = TRUE AND is_archived = FALSE;`
	if err := s.db.Get(&e, q, id); err != nil {
		return model.Event{}, asNotFound(err)
	}
	return e, nil
}

func (s *pgStore) CreateEvent(p CreateEventParams) (event model.Event, err error) {
	tx, err := s.db.Beginx()
	if err != nil {
		return model.Event{}, err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("[db] CreateEvent: rollback failed")
			}
			return
		}
		err = tx.Commit()
	}()

	current := p.Current != nil && *p.Current
	if current {
		// clear first so the partial unique index never sees two
		if _, err = tx.Exec(`UPDATE events SET is_current = FALSE WHERE is_current;`); err != nil {
			return model.Event{}, err
		}
	}

	q := `
	INSERT INTO events (name, description, event_date, event_time, place,
		latitude, longitude, is_visible, is_current, auto_archive_exempt,
		created_at, updated_at)
	VALUES ($1, $2, $3::date, $4::time, $5, $6, $7,
		COALESCE($8, FALSE), $9, COALESCE($10, FALSE), now(), now())
	RETURNING ` + eventColumns + `;`
	if err = tx.Get(&event, q,
		p.Name, p.Description, p.EventDate, p.EventTime, p.Place,
		p.Latitude, p.Longitude, p.Visible, current, p.AutoArchiveExempt,
	); err != nil {
		log.Error().Err(err).Msg("[db] CreateEvent: insert failed")
		return model.Event{}, err
	}
	return event, nil
}

func (s *pgStore) UpdateEvent(id int, p UpdateEventParams) (event model.Event, err error) {
	tx, err := s.db.Beginx()
	if err != nil {
		return model.Event{}, err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("[db] UpdateEvent: rollback failed")
			}
			return
		}
		err = tx.Commit()
	}()

	if p.Current != nil && *p.Current {
		if _, err = tx.Exec(`UPDATE events SET is_current = FALSE WHERE is_current AND id <> $1;`, id); err != nil {
			return model.Event{}, err
		}
	}

	q := `
	UPDATE events SET
		name                = COALESCE($2, name),
		description         = COALESCE($3, description),
		event_date          = COALESCE($4::date, event_date),
		event_time          = COALESCE($5::time, event_time),
		place               = COALESCE($6, place),
		latitude            = COALESCE($7, latitude),
		longitude           = COALESCE($8, longitude),
		is_visible          = COALESCE($9, is_visible),
		is_current          = COALESCE($10, is_current),
		auto_archive_exempt = COALESCE($11, auto_archive_exempt),
		updated_at          = now()
	WHERE id = $1
	RETURNING ` + eventColumns + `;`
	if err = tx.Get(&event, q,
		id, p.Name, p.Description, p.EventDate, p.EventTime, p.Place,
		p.Latitude, p.Longitude, p.Visible, p.Current, p.AutoArchiveExempt,
	); err != nil {
		err = asNotFound(err)
		return model.Event{}, err
	}
	return event, nil
}

// ArchiveEvent also clears is_current: an archived event is never current.
func (s *pgStore) ArchiveEvent(id int) error {
	return mustAffect(s.db.Exec(
		`UPDATE events SET is_archived = TRUE, is_current = FALSE, updated_at = now() WHERE id = $1;`, id))
}

func (s *pgStore) RestoreEvent(id int) error {
	return mustAffect(s.db.Exec(
		`UPDATE events SET is_archived = FALSE, updated_at = now() WHERE id = $1;`, id))
}

func (s *pgStore) DeleteEvent(id int) error {
	return mustAffect(s.db.Exec(`DELETE FROM events WHERE id = $1;`, id))
}

// SetCurrentEvent clears every other flag then sets the target, in one
// transaction. Clear-then-set means a reader may briefly see zero current
// events but never two.
func (s *pgStore) SetCurrentEvent(id int) (err error) {
	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("[db] SetCurrentEvent: rollback failed")
			}
			return
		}
		err = tx.Commit()
	}()

	if _, err = tx.Exec(`UPDATE events SET is_current = FALSE WHERE is_current AND id <> $1;`, id); err != nil {
		return err
	}
	err = mustAffect(tx.Exec(
		`UPDATE events SET is_current = TRUE, updated_at = now() WHERE id = $1 AND is_archived = FALSE;`, id))
	return err
}

func (s *pgStore) GetCurrentFlaggedEvent() (model.Event, error) {
	var e model.Event
	q := `SELECT ` + eventColumns + ` FROM events
		WHERE is_current = TRUE AND is_archived = FALSE
		LIMIT 1;`
	if err := s.db.Get(&e, q); err != nil {
		return model.Event{}, asNotFound(err)
	}
	return e, nil
}

// GetClosestUpcomingEvent backs the current-event fallback: the visible,
// non-archived event with the earliest today-or-future date.
func (s *pgStore) GetClosestUpcomingEvent(today string) (model.Event, error) {
	var e model.Event
	q := `SELECT ` + eventColumns + ` FROM events
		WHERE is_archived = FALSE AND is_visible = TRUE AND event_date >= $1::date
		ORDER BY event_date, id
		LIMIT 1;`
	if err := s.db.Get(&e, q, today); err != nil {
		return model.Event{}, asNotFound(err)
	}
	return e, nil
}

func (s *pgStore) ListUpcomingVisibleEvents(today string) ([]model.Event, error) {
	out := []model.Event{}
	q := `SELECT ` + eventColumns + ` FROM events
		WHERE is_archived = FALSE AND is_visible = TRUE AND event_date >= $1::date
		ORDER BY event_date, id;`
	if err := s.db.Select(&out, q, today); err != nil {
		log.Error().Err(err).Msg("[db] ListUpcomingVisibleEvents: select failed")
		return nil, err
	}
	return out, nil
}

// ListStaleEvents returns sweeper candidates: past, not archived, not exempt.
func (s *pgStore) ListStaleEvents(today string) ([]model.Event, error) {
	out := []model.Event{}
	q := `SELECT ` + eventColumns + ` FROM events
		WHERE is_archived = FALSE AND auto_archive_exempt = FALSE AND event_date < $1::date
		ORDER BY event_date, id;`
	if err := s.db.Select(&out, q, today); err != nil {
		log.Error().Err(err).Msg("[db] ListStaleEvents: select failed")
		return nil, err
	}
	return out, nil
}

// @ MEMBERSHIP

func (s *pgStore) AddPlaylistToEvent(eventID, playlistID int) (model.EventPlaylist, error) {
	var ep model.EventPlaylist
	q := `
	INSERT INTO event_playlists (event_id, playlist_id, position, created_at)
	VALUES (
		$1, $2,
		COALESCE((SELECT MAX(position) + 1 FROM event_playlists WHERE event_id = $1), 1),
		now()
	)
	RETURNING id, event_id, playlist_id, position, created_at;`
	if err := s.db.Get(&ep, q, eventID, playlistID); err != nil {
		if isUniqueViolation(err) {
			return model.EventPlaylist{}, ErrPlaylistInEvent
		}
		log.Error().Err(err).Msg("[db] AddPlaylistToEvent: insert failed")
		return model.EventPlaylist{}, err
	}
	return ep, nil
}

func (s *pgStore) RemoveEventPlaylist(eventID, playlistID int) error {
	return mustAffect(s.db.Exec(
		`DELETE FROM event_playlists WHERE event_id = $1 AND playlist_id = $2;`,
		eventID, playlistID))
}

func (s *pgStore) ReorderEventPlaylists(eventID int, playlistIDs []int) error {
	return s.reorderMembership(reorderSpec{
		table:    "event_playlists",
		parent:   "event_id",
		child:    "playlist_id",
		parentID: eventID,
		childIDs: playlistIDs,
	})
}

func (s *pgStore) ListEventPlaylists(eventID int) ([]model.EventPlaylist, error) {
	return s.listEventPlaylists(eventID, false)
}

// ListVisibleEventPlaylists keeps only playlists the public may see.
func (s *pgStore) ListVisibleEventPlaylists(eventID int) ([]model.EventPlaylist, error) {
	return s.listEventPlaylists(eventID, true)
}

func (s *pgStore) listEventPlaylists(eventID int, visibleOnly bool) ([]model.EventPlaylist, error) {
	type row struct {
		model.EventPlaylist
		Joined model.Playlist `db:"playlist"`
	}

	q := `
	SELECT
		ep.id, ep.event_id, ep.playlist_id, ep.position, ep.created_at,
		p.id          AS "playlist.id",
		p.name        AS "playlist.name",
		p.description AS "playlist.description",
		p.status      AS "playlist.status",
		p.created_at  AS "playlist.created_at",
		p.updated_at  AS "playlist.updated_at"
	FROM event_playlists ep
	JOIN playlists p ON p.id = ep.playlist_id
	WHERE ep.event_id = $1`
	if visibleOnly {
		q += ` AND p.status = '` + model.PlaylistStatusVisible + `'`
	}
	q += ` ORDER BY ep.position;`

	var rows []row
	if err := s.db.Select(&rows, q, eventID); err != nil {
		log.Error().Err(err).Msg("[db] ListEventPlaylists: select failed")
		return nil, err
	}

	out := make([]model.EventPlaylist, len(rows))
	for i := range rows {
		out[i] = rows[i].EventPlaylist
		pl := rows[i].Joined
		out[i].Playlist = &pl
	}
	return out, nil
}
