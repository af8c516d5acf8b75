package choir

import (
	"github.com/rs/zerolog/log"

	"github.com/chorale-cms/chorale/internal/model"
)

// SetCurrentEvent makes eventID the only current event.
func (s *Service) SetCurrentEvent(eventID int) error {
	return s.store.SetCurrentEvent(eventID)
}

// CurrentEvent returns the explicitly flagged event, or falls back to the
// closest upcoming visible one. The fallback is recomputed on every call;
// it is never stored.
func (s *Service) CurrentEvent() (model.Event, error) {
	e, err := s.store.GetCurrentFlaggedEvent()
	if err == nil {
		return e, nil
	}
	return s.store.GetClosestUpcomingEvent(s.today())
}

// SweepResult reports what a sweeper run archived.
type SweepResult struct {
	ArchivedIDs []int       `json:"archived_ids"`
	Failed      []BulkError `json:"failed,omitempty"`
}

func (r SweepResult) ArchivedCount() int { return len(r.ArchivedIDs) }

// SweepStaleEvents archives every non-exempt event dated strictly before
// today. Idempotent: a second run finds nothing left to archive. One event
// failing does not stop the sweep.
func (s *Service) SweepStaleEvents() (SweepResult, error) {
	stale, err := s.store.ListStaleEvents(s.today())
	if err != nil {
		return SweepResult{}, err
	}

	res := SweepResult{ArchivedIDs: []int{}}
	for _, e := range stale {
		if err := s.store.ArchiveEvent(e.ID); err != nil {
			log.Error().Err(err).Int("event_id", e.ID).Msg("[choir] sweep: archive failed")
			res.Failed = append(res.Failed, BulkError{ID: e.ID, Message: err.Error()})
			continue
		}
		res.ArchivedIDs = append(res.ArchivedIDs, e.ID)
	}

	if len(res.ArchivedIDs) > 0 {
		log.Info().Ints("event_ids", res.ArchivedIDs).Msg("[choir] sweep: archived stale events")
	}
	return res, nil
}

// UpcomingEvents lists the public calendar: visible, not archived, dated
// today or later.
func (s *Service) UpcomingEvents() ([]model.Event, error) {
	return s.store.ListUpcomingVisibleEvents(s.today())
}
