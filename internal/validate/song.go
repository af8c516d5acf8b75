package validate

import (
	"fmt"
	"strings"
	"time"
)

const (
	songYearMin          = 1000
	songYearMaxLookAhead = 10
)

// SongInput carries candidate song fields; nil means "not supplied".
type SongInput struct {
	Title  *string
	Lyrics *string
	Year   *int
}

func Song(in SongInput, mode Mode) Errors {
	var errs Errors

	if in.Title == nil {
		if mode == ForCreate {
			errs.add("title", "title is required")
		}
	} else if strings.TrimSpace(*in.Title) == "" {
		errs.add("title", "title must not be empty")
	}

	if in.Lyrics == nil {
		if mode == ForCreate {
			errs.add("lyrics", "lyrics are required")
		}
	} else if strings.TrimSpace(*in.Lyrics) == "" {
		errs.add("lyrics", "lyrics must not be empty")
	}

	if in.Year != nil {
		maxYear := time.Now().Year() + songYearMaxLookAhead
		if *in.Year < songYearMin || *in.Year > maxYear {
			errs.add("year", fmt.Sprintf("year must be between %d and %d", songYearMin, maxYear))
		}
	}

	return errs
}
