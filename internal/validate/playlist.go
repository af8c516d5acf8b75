package validate

import (
	"strings"

	"github.com/chorale-cms/chorale/internal/model"
)

const (
	playlistNameMax        = 200
	playlistDescriptionMax = 2000
)

// PlaylistInput carries candidate playlist fields; nil means "not supplied".
type PlaylistInput struct {
	Name        *string
	Description *string
	Status      *string
}

func Playlist(in PlaylistInput, mode Mode) Errors {
	var errs Errors

	if in.Name == nil {
		if mode == ForCreate {
			errs.add("name", "name is required")
		}
	} else {
		trimmed := strings.TrimSpace(*in.Name)
		if trimmed == "" {
			errs.add("name", "name must not be empty")
		} else if len(trimmed) > playlistNameMax {
			errs.add("name", "name must be at most 200 characters")
		}
	}

	if in.Description != nil && len(*in.Description) > playlistDescriptionMax {
		errs.add("description", "description must be at most 2000 characters")
	}

	if in.Status != nil && !model.ValidPlaylistStatus(*in.Status) {
		errs.add("status", "status must be one of visible, hidden, in_progress, archived")
	}

	return errs
}
