package choir

import (
	"errors"
	"mime/multipart"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/chorale-cms/chorale/internal/model"
)

const maxPhotoBytes = 5 << 20 // 5 MB

var (
	ErrPhotoTooLarge = errors.New("photo must be at most 5 MB")
	ErrPhotoType     = errors.New("photo must be a JPEG, PNG or WebP image")
)

var allowedPhotoTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// UploadPhoto validates the file before any I/O, stores the blob, then
// inserts the gallery row at the end of the display order.
func (s *Service) UploadPhoto(fileHeader *multipart.FileHeader, caption *string) (model.Photo, error) {
	if fileHeader.Size > maxPhotoBytes {
		return model.Photo{}, ErrPhotoTooLarge
	}
	contentType := strings.ToLower(strings.TrimSpace(
		strings.SplitN(fileHeader.Header.Get("Content-Type"), ";", 2)[0]))
	if !allowedPhotoTypes[contentType] {
		return model.Photo{}, ErrPhotoType
	}

	url, err := s.storage.SaveFile(fileHeader, fileHeader.Filename)
	if err != nil {
		return model.Photo{}, err
	}

	photo, err := s.store.CreatePhoto(url, caption)
	if err != nil {
		// the blob exists but the row failed; clean up so the gallery
		// never references a photo the database does not know about
		if delErr := s.storage.DeleteFile(url); delErr != nil {
			log.Warn().Err(delErr).Str("url", url).Msg("[choir] upload: orphan blob left behind")
		}
		return model.Photo{}, err
	}
	return photo, nil
}

// DeletePhoto removes the row first, then best-effort deletes the blob.
// An orphan blob is acceptable; an orphan row pointing at a missing blob
// is not.
func (s *Service) DeletePhoto(id int) error {
	photo, err := s.store.GetPhotoByID(id)
	if err != nil {
		return err
	}
	if err := s.store.DeletePhoto(id); err != nil {
		return err
	}
	if err := s.storage.DeleteFile(photo.ImageURL); err != nil {
		log.Warn().Err(err).Str("url", photo.ImageURL).Msg("[choir] delete photo: blob removal failed")
	}
	return nil
}

func (s *Service) ReorderPhotos(photoIDs []int) error {
	return s.store.ReorderPhotos(photoIDs)
}
