package choir

import (
	"github.com/rs/zerolog/log"

	"github.com/chorale-cms/chorale/internal/db"
	"github.com/chorale-cms/chorale/internal/model"
)

// DuplicateSong copies every content field of the source song into a new
// row titled "<title> (Copy)", hidden from the public until reviewed.
func (s *Service) DuplicateSong(id int) (model.Song, error) {
	src, err := s.store.GetSongByID(id)
	if err != nil {
		return model.Song{}, err
	}

	hidden := false
	return s.store.CreateSong(db.CreateSongParams{
		Title:          src.Title + " (Copy)",
		Lyrics:         src.Lyrics,
		ArtistComposer: src.ArtistComposer,
		Language:       src.Language,
		Genre:          src.Genre,
		Year:           src.Year,
		Visible:        &hidden,
	})
}

// BulkDuplicateSongs runs sequentially: each duplicate re-reads its source,
// and one failing id must not abort the rest.
func (s *Service) BulkDuplicateSongs(ids []int) BulkResult {
	var res BulkResult
	for _, id := range ids {
		if _, err := s.DuplicateSong(id); err != nil {
			log.Warn().Err(err).Int("song_id", id).Msg("[choir] bulk duplicate: item failed")
			res.fail(id, err)
			continue
		}
		res.ok(id)
	}
	return res
}

func (s *Service) BulkArchiveSongs(ids []int) BulkResult {
	return s.bulkSongs(ids, s.store.ArchiveSong)
}

func (s *Service) BulkRestoreSongs(ids []int) BulkResult {
	return s.bulkSongs(ids, s.store.RestoreSong)
}

func (s *Service) BulkSetSongVisibility(ids []int, visible bool) BulkResult {
	return s.bulkSongs(ids, func(id int) error {
		_, err := s.store.UpdateSong(id, db.UpdateSongParams{Visible: &visible})
		return err
	})
}

func (s *Service) bulkSongs(ids []int, op func(int) error) BulkResult {
	var res BulkResult
	for _, id := range ids {
		if err := op(id); err != nil {
			log.Warn().Err(err).Int("song_id", id).Msg("[choir] bulk song op: item failed")
			res.fail(id, err)
			continue
		}
		res.ok(id)
	}
	return res
}
