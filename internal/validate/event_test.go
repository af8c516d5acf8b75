package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }
func intptr(i int) *int       { return &i }

func TestEventCreateRequiresNameAndDate(t *testing.T) {
	errs := Event(EventInput{}, ForCreate)
	assert.False(t, errs.Valid())
	assert.Equal(t, "name is required", errs.First())

	fields := make([]string, 0, len(errs))
	for _, fe := range errs {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "event_date")
}

func TestEventUpdateAllowsMissingFields(t *testing.T) {
	errs := Event(EventInput{}, ForUpdate)
	assert.True(t, errs.Valid())
}

func TestEventDateMustBeRealCalendarDate(t *testing.T) {
	ok := EventInput{Name: strptr("Spring concert"), EventDate: strptr("2024-05-11")}
	assert.True(t, Event(ok, ForCreate).Valid())

	// matches the regex but is not a real date
	bad := EventInput{Name: strptr("Spring concert"), EventDate: strptr("2024-02-30")}
	errs := Event(bad, ForCreate)
	assert.False(t, errs.Valid())
	assert.Equal(t, "event_date", errs[0].Field)

	assert.False(t, ValidDate("11.05.2024"))
	assert.False(t, ValidDate("2024-13-01"))
	assert.False(t, ValidDate(""))
}

func TestEventTimeRanges(t *testing.T) {
	assert.True(t, ValidTime("09:30"))
	assert.True(t, ValidTime("23:59:59"))
	assert.False(t, ValidTime("24:00:00"))
	assert.False(t, ValidTime("12:60"))
	assert.False(t, ValidTime("12:00:61"))
	assert.False(t, ValidTime("9:30"))
}

func TestEventLengthCaps(t *testing.T) {
	long := strings.Repeat("x", 201)
	errs := Event(EventInput{Name: &long, EventDate: strptr("2030-01-01")}, ForCreate)
	assert.False(t, errs.Valid())
	assert.Equal(t, "name", errs[0].Field)

	desc := strings.Repeat("x", 5001)
	errs = Event(EventInput{Description: &desc}, ForUpdate)
	assert.False(t, errs.Valid())
	assert.Equal(t, "description", errs[0].Field)

	place := strings.Repeat("x", 501)
	errs = Event(EventInput{Place: &place}, ForUpdate)
	assert.False(t, errs.Valid())
	assert.Equal(t, "place", errs[0].Field)
}
