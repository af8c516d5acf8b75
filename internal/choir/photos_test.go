package choir

import (
	"errors"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chorale-cms/chorale/internal/db"
)

// fakeStorage records calls; SaveFile never touches the file contents.
type fakeStorage struct {
	saved     []string
	deleted   []string
	deleteErr error
}

func (f *fakeStorage) SaveFile(fileHeader *multipart.FileHeader, filename string) (string, error) {
	url := "/uploads/" + filename
	f.saved = append(f.saved, url)
	return url, nil
}

func (f *fakeStorage) DeleteFile(fileURL string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, fileURL)
	return nil
}

func photoHeader(name, contentType string, size int64) *multipart.FileHeader {
	h := textproto.MIMEHeader{}
	h.Set("Content-Type", contentType)
	return &multipart.FileHeader{Filename: name, Header: h, Size: size}
}

func TestUploadPhotoRejectsBeforeIO(t *testing.T) {
	store := db.NewMemStore()
	fs := &fakeStorage{}
	svc := NewService(store, fs)

	_, err := svc.UploadPhoto(photoHeader("big.jpg", "image/jpeg", 6<<20), nil)
	assert.ErrorIs(t, err, ErrPhotoTooLarge)

	_, err = svc.UploadPhoto(photoHeader("notes.pdf", "application/pdf", 100), nil)
	assert.ErrorIs(t, err, ErrPhotoType)

	// nothing reached the blob store or the database
	assert.Empty(t, fs.saved)
	photos, _ := store.ListPhotos()
	assert.Empty(t, photos)
}

func TestUploadPhotoAppendsDisplayOrder(t *testing.T) {
	store := db.NewMemStore()
	svc := NewService(store, &fakeStorage{})

	first, err := svc.UploadPhoto(photoHeader("a.png", "image/png", 1024), strptr("Rehearsal"))
	require.NoError(t, err)
	second, err := svc.UploadPhoto(photoHeader("b.webp", "image/webp", 1024), nil)
	require.NoError(t, err)

	assert.Equal(t, 1, first.DisplayOrder)
	assert.Equal(t, 2, second.DisplayOrder)
}

func TestDeletePhotoRowWinsOverBlob(t *testing.T) {
	store := db.NewMemStore()
	fs := &fakeStorage{deleteErr: errors.New("bucket unreachable")}
	svc := NewService(store, fs)

	photo, err := store.CreatePhoto("/uploads/a.jpg", nil)
	require.NoError(t, err)

	// blob deletion failing must not resurrect the row or fail the call
	require.NoError(t, svc.DeletePhoto(photo.ID))

	_, err = store.GetPhotoByID(photo.ID)
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestDeletePhotoNotFound(t *testing.T) {
	svc := NewService(db.NewMemStore(), &fakeStorage{})
	assert.ErrorIs(t, svc.DeletePhoto(7), db.ErrNotFound)
}

func TestReorderPhotos(t *testing.T) {
	store := db.NewMemStore()
	svc := NewService(store, &fakeStorage{})

	a, _ := store.CreatePhoto("/uploads/a.jpg", nil)
	b, _ := store.CreatePhoto("/uploads/b.jpg", nil)
	c, _ := store.CreatePhoto("/uploads/c.jpg", nil)

	require.NoError(t, svc.ReorderPhotos([]int{c.ID, a.ID, b.ID}))

	photos, err := store.ListPhotos()
	require.NoError(t, err)
	require.Len(t, photos, 3)
	assert.Equal(t, c.ID, photos[0].ID)
	assert.Equal(t, a.ID, photos[1].ID)
	assert.Equal(t, b.ID, photos[2].ID)

	assert.ErrorIs(t, svc.ReorderPhotos([]int{a.ID}), db.ErrReorderMismatch)
}
