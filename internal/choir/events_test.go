package choir

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chorale-cms/chorale/internal/db"
)

func newTestService() (*Service, *db.MemStore) {
	store := db.NewMemStore()
	svc := NewService(store, nil)
	return svc, store
}

func boolptr(b bool) *bool { return &b }

func date(daysFromNow int) string {
	return time.Now().AddDate(0, 0, daysFromNow).Format("2006-01-02")
}

func mustCreateEvent(t *testing.T, store db.Store, p db.CreateEventParams) int {
	t.Helper()
	e, err := store.CreateEvent(p)
	require.NoError(t, err)
	return e.ID
}

func countCurrent(t *testing.T, store db.Store) int {
	t.Helper()
	n := 0
	for _, archived := range []bool{false, true} {
		events, err := store.ListEvents(db.EventFilter{Archived: boolptr(archived)})
		require.NoError(t, err)
		for _, e := range events {
			if e.IsCurrent && !e.IsArchived {
				n++
			}
		}
	}
	return n
}

func TestSetCurrentEventClearsOthers(t *testing.T) {
	svc, store := newTestService()

	a := mustCreateEvent(t, store, db.CreateEventParams{Name: "Spring concert", EventDate: date(5)})
	b := mustCreateEvent(t, store, db.CreateEventParams{Name: "Summer concert", EventDate: date(30)})

	require.NoError(t, svc.SetCurrentEvent(a))
	require.NoError(t, svc.SetCurrentEvent(b))

	assert.Equal(t, 1, countCurrent(t, store))
	e, err := store.GetEventByID(b)
	require.NoError(t, err)
	assert.True(t, e.IsCurrent)
}

func TestCreateAndUpdateWithCurrentFlag(t *testing.T) {
	svc, store := newTestService()

	a := mustCreateEvent(t, store, db.CreateEventParams{
		Name: "Advent concert", EventDate: date(10), Current: boolptr(true),
	})
	assert.Equal(t, 1, countCurrent(t, store))

	b := mustCreateEvent(t, store, db.CreateEventParams{
		Name: "New year concert", EventDate: date(40), Current: boolptr(true),
	})
	assert.Equal(t, 1, countCurrent(t, store))

	_, err := store.UpdateEvent(a, db.UpdateEventParams{Current: boolptr(true)})
	require.NoError(t, err)
	assert.Equal(t, 1, countCurrent(t, store))

	got, err := svc.CurrentEvent()
	require.NoError(t, err)
	assert.Equal(t, a, got.ID)
	_ = b
}

func TestSetCurrentEventNotFound(t *testing.T) {
	svc, _ := newTestService()
	assert.ErrorIs(t, svc.SetCurrentEvent(99), db.ErrNotFound)
}

func TestArchivedEventCannotStayCurrent(t *testing.T) {
	svc, store := newTestService()

	id := mustCreateEvent(t, store, db.CreateEventParams{Name: "Gala", EventDate: date(3)})
	require.NoError(t, svc.SetCurrentEvent(id))
	require.NoError(t, store.ArchiveEvent(id))

	assert.Equal(t, 0, countCurrent(t, store))
	assert.ErrorIs(t, svc.SetCurrentEvent(id), db.ErrNotFound)
}

func TestCurrentEventFallbackClosestUpcoming(t *testing.T) {
	svc, store := newTestService()

	soon := mustCreateEvent(t, store, db.CreateEventParams{
		Name: "Rehearsal evening", EventDate: date(1), Visible: boolptr(true),
	})
	mustCreateEvent(t, store, db.CreateEventParams{
		Name: "Season opening", EventDate: date(7), Visible: boolptr(true),
	})

	got, err := svc.CurrentEvent()
	require.NoError(t, err)
	assert.Equal(t, soon, got.ID)
}

func TestCurrentEventFallbackIgnoresHiddenAndPast(t *testing.T) {
	svc, store := newTestService()

	mustCreateEvent(t, store, db.CreateEventParams{
		Name: "Past concert", EventDate: date(-3), Visible: boolptr(true), AutoArchiveExempt: boolptr(true),
	})
	mustCreateEvent(t, store, db.CreateEventParams{
		Name: "Hidden concert", EventDate: date(3),
	})

	_, err := svc.CurrentEvent()
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestCurrentEventNoneAtAll(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.CurrentEvent()
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestSweepArchivesStaleEvents(t *testing.T) {
	svc, store := newTestService()

	past := mustCreateEvent(t, store, db.CreateEventParams{Name: "Old concert", EventDate: date(-10)})
	exempt := mustCreateEvent(t, store, db.CreateEventParams{
		Name: "Founding concert", EventDate: date(-100), AutoArchiveExempt: boolptr(true),
	})
	future := mustCreateEvent(t, store, db.CreateEventParams{Name: "Next concert", EventDate: date(10)})

	res, err := svc.SweepStaleEvents()
	require.NoError(t, err)
	assert.Equal(t, []int{past}, res.ArchivedIDs)
	assert.Empty(t, res.Failed)

	archived, err := store.GetEventByID(past)
	require.NoError(t, err)
	assert.True(t, archived.IsArchived)

	for _, id := range []int{exempt, future} {
		e, err := store.GetEventByID(id)
		require.NoError(t, err)
		assert.False(t, e.IsArchived)
	}
}

func TestSweepIsIdempotent(t *testing.T) {
	svc, store := newTestService()
	mustCreateEvent(t, store, db.CreateEventParams{Name: "Old concert", EventDate: date(-1)})

	first, err := svc.SweepStaleEvents()
	require.NoError(t, err)
	assert.Equal(t, 1, first.ArchivedCount())

	second, err := svc.SweepStaleEvents()
	require.NoError(t, err)
	assert.Equal(t, 0, second.ArchivedCount())
}

func TestSweepUnflagsCurrentOnArchive(t *testing.T) {
	svc, store := newTestService()

	id := mustCreateEvent(t, store, db.CreateEventParams{Name: "Old concert", EventDate: date(-1)})
	require.NoError(t, svc.SetCurrentEvent(id))

	_, err := svc.SweepStaleEvents()
	require.NoError(t, err)
	assert.Equal(t, 0, countCurrent(t, store))
}
