package db

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// reorderSpec names the join table columns so playlist_songs and
// event_playlists share one reorder implementation.
type reorderSpec struct {
	table    string
	parent   string
	child    string
	parentID int
	childIDs []int
}

// reorderMembership rewrites every membership row's position to its 1-based
// index in childIDs, inside a single transaction. The supplied list must be
// a permutation of the parent's current children; a mismatch fails before
// any row is touched. Row locks on the membership set serialize concurrent
// reorders of the same parent.
func (s *pgStore) reorderMembership(spec reorderSpec) (err error) {
	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Str("table", spec.table).Msg("[db] reorder: rollback failed")
			}
			return
		}
		err = tx.Commit()
	}()

	var current []int
	q := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 FOR UPDATE;`,
		spec.child, spec.table, spec.parent)
	if err = tx.Select(&current, q, spec.parentID); err != nil {
		return err
	}

	// empty reorder of an empty membership set is a no-op success
	if len(current) == 0 && len(spec.childIDs) == 0 {
		return nil
	}

	if !samePermutation(current, spec.childIDs) {
		err = ErrReorderMismatch
		return err
	}

	// bump everything out of the way so the unique positions never collide
	// while the new ordering is written
	q = fmt.Sprintf(`UPDATE %s SET position = position + $1 WHERE %s = $2;`,
		spec.table, spec.parent)
	if _, err = tx.Exec(q, len(spec.childIDs), spec.parentID); err != nil {
		return err
	}

	q = fmt.Sprintf(`UPDATE %s SET position = $1 WHERE %s = $2 AND %s = $3;`,
		spec.table, spec.parent, spec.child)
	for idx, childID := range spec.childIDs {
		if _, err = tx.Exec(q, idx+1, spec.parentID, childID); err != nil {
			return err
		}
	}

	return nil
}

func samePermutation(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[int]int, len(a))
	for _, v := range a {
		seen[v]++
	}
	for _, v := range b {
		seen[v]--
		if seen[v] < 0 {
			return false
		}
	}
	return true
}
