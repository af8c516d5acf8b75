package validate

import (
	"regexp"
	"time"
)

const (
	eventNameMax        = 200
	eventDescriptionMax = 5000
	eventPlaceMax       = 500
)

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?$`)
)

// EventInput carries candidate event fields; nil means "not supplied".
type EventInput struct {
	Name        *string
	Description *string
	EventDate   *string
	EventTime   *string
	Place       *string
}

func Event(in EventInput, mode Mode) Errors {
	var errs Errors

	if in.Name == nil {
		if mode == ForCreate {
			errs.add("name", "name is required")
		}
	} else if *in.Name == "" {
		errs.add("name", "name must not be empty")
	} else if len(*in.Name) > eventNameMax {
		errs.add("name", "name must be at most 200 characters")
	}

	if in.Description != nil && len(*in.Description) > eventDescriptionMax {
		errs.add("description", "description must be at most 5000 characters")
	}

	if in.EventDate == nil {
		if mode == ForCreate {
			errs.add("event_date", "event date is required")
		}
	} else if !ValidDate(*in.EventDate) {
		errs.add("event_date", "event date must be a valid date in YYYY-MM-DD format")
	}

	if in.EventTime != nil && !ValidTime(*in.EventTime) {
		errs.add("event_time", "event time must be a valid time in HH:MM or HH:MM:SS format")
	}

	if in.Place != nil && len(*in.Place) > eventPlaceMax {
		errs.add("place", "place must be at most 500 characters")
	}

	return errs
}

// ValidDate accepts YYYY-MM-DD strings naming real calendar dates.
// time.Parse rejects impossible days such as 2024-02-30.
func ValidDate(s string) bool {
	if !dateRe.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// ValidTime accepts HH:MM or HH:MM:SS with in-range components.
func ValidTime(s string) bool {
	if !timeRe.MatchString(s) {
		return false
	}
	layout := "15:04"
	if len(s) == 8 {
		layout = "15:04:05"
	}
	_, err := time.Parse(layout, s)
	return err == nil
}
