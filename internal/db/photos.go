package db

import (
	"github.com/rs/zerolog/log"

	"github.com/chorale-cms/chorale/internal/model"
)

const photoColumns = `id, image_url, caption, display_order, created_at`

func (s *pgStore) ListPhotos() ([]model.Photo, error) {
	out := []model.Photo{}
	q := `SELECT ` + photoColumns + ` FROM choir_photos ORDER BY display_order, id;`
	if err := s.db.Select(&out, q); err != nil {
		log.Error().Err(err).Msg("[db] ListPhotos: select failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) GetPhotoByID(id int) (model.Photo, error) {
	var p model.Photo
	q := `SELECT ` + photoColumns + ` FROM choir_photos WHERE id = $1;`
	if err := s.db.Get(&p, q, id); err != nil {
		return model.Photo{}, asNotFound(err)
	}
	return p, nil
}

// CreatePhoto appends at the end of the gallery: display_order is dense
// across the whole collection.
func (s *pgStore) CreatePhoto(imageURL string, caption *string) (model.Photo, error) {
	var p model.Photo
	q := `
	INSERT INTO choir_photos (image_url, caption, display_order, created_at)
	VALUES (
		$1, $2,
		COALESCE((SELECT MAX(display_order) + 1 FROM choir_photos), 1),
		now()
	)
	RETURNING ` + photoColumns + `;`
	if err := s.db.Get(&p, q, imageURL, caption); err != nil {
		log.Error().Err(err).Msg("[db] CreatePhoto: insert failed")
		return model.Photo{}, err
	}
	return p, nil
}

func (s *pgStore) DeletePhoto(id int) error {
	return mustAffect(s.db.Exec(`DELETE FROM choir_photos WHERE id = $1;`, id))
}

// ReorderPhotos rewrites display_order from the supplied permutation of all
// photo ids, reusing the membership reorder machinery with the gallery as a
// single implicit parent.
func (s *pgStore) ReorderPhotos(photoIDs []int) (err error) {
	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("[db] ReorderPhotos: rollback failed")
			}
			return
		}
		err = tx.Commit()
	}()

	var current []int
	if err = tx.Select(&current, `SELECT id FROM choir_photos FOR UPDATE;`); err != nil {
		return err
	}
	if len(current) == 0 && len(photoIDs) == 0 {
		return nil
	}
	if !samePermutation(current, photoIDs) {
		err = ErrReorderMismatch
		return err
	}

	if _, err = tx.Exec(`UPDATE choir_photos SET display_order = display_order + $1;`, len(photoIDs)); err != nil {
		return err
	}
	for idx, id := range photoIDs {
		if _, err = tx.Exec(`UPDATE choir_photos SET display_order = $1 WHERE id = $2;`, idx+1, id); err != nil {
			return err
		}
	}
	return nil
}
