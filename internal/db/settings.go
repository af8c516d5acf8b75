package db

import (
	"github.com/rs/zerolog/log"

	"github.com/chorale-cms/chorale/internal/model"
)

// choir_settings is a singleton row with id = 1, pre-seeded by migrations;
// the application only ever reads and updates it.
const settingsID = 1

type UpdateSettingsParams struct {
	Tagline      *string
	AboutText    *string
	FacebookURL  *string
	InstagramURL *string
	YoutubeURL   *string
	ContactEmail *string
}

const settingsColumns = `id, tagline, about_text, facebook_url, instagram_url,
	youtube_url, contact_email, updated_at`

func (s *pgStore) GetSettings() (model.ChoirSettings, error) {
	var cs model.ChoirSettings
	q := `SELECT ` + settingsColumns + ` FROM choir_settings WHERE id = $1;`
	if err := s.db.Get(&cs, q, settingsID); err != nil {
		return model.ChoirSettings{}, asNotFound(err)
	}
	return cs, nil
}

func (s *pgStore) UpdateSettings(p UpdateSettingsParams) (model.ChoirSettings, error) {
	var cs model.ChoirSettings
	q := `
	UPDATE choir_settings SET
		tagline       = COALESCE($2, tagline),
		about_text    = COALESCE($3, about_text),
		facebook_url  = COALESCE($4, facebook_url),
		instagram_url = COALESCE($5, instagram_url),
		youtube_url   = COALESCE($6, youtube_url),
		contact_email = COALESCE($7, contact_email),
		updated_at    = now()
	WHERE id = $1
	RETURNING ` + settingsColumns + `;`
	if err := s.db.Get(&cs, q,
		settingsID, p.Tagline, p.AboutText, p.FacebookURL, p.InstagramURL,
		p.YoutubeURL, p.ContactEmail,
	); err != nil {
		log.Error().Err(err).Msg("[db] UpdateSettings: update failed")
		return model.ChoirSettings{}, asNotFound(err)
	}
	return cs, nil
}
