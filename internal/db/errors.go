package db

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned for any operation targeting a row that
	// does not exist.
	ErrNotFound = errors.New("not found")

	// Membership conflicts are distinct from generic constraint
	// violations so handlers can answer 409 with a useful message.
	ErrSongInPlaylist  = errors.New("song is already in this playlist")
	ErrPlaylistInEvent = errors.New("playlist is already in this event")

	// ErrReorderMismatch means the supplied ordering is not a permutation
	// of the current members, so no positions were changed.
	ErrReorderMismatch = errors.New("reorder list must contain exactly the current members")
)

// asNotFound maps sql.ErrNoRows onto the package sentinel.
func asNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

const pqUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

// mustAffect converts a zero-row UPDATE/DELETE into ErrNotFound so archive,
// restore and delete never silently succeed on a missing id.
func mustAffect(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
