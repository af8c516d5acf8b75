package db

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/chorale-cms/chorale/internal/model"
)

// MemStore is an in-memory Store used by tests and local development
// without a database. It mirrors pgStore semantics: default archived
// exclusion, append-at-MAX+1 positions, membership conflicts, the
// single-current-event invariant and permutation-checked reorders.
type MemStore struct {
	mu sync.Mutex

	songs     map[int]model.Song
	playlists map[int]model.Playlist
	events    map[int]model.Event
	photos    map[int]model.Photo
	settings  model.ChoirSettings

	playlistSongs  map[int]model.PlaylistSong
	eventPlaylists map[int]model.EventPlaylist

	nextID int
}

var _ Store = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{
		songs:          make(map[int]model.Song),
		playlists:      make(map[int]model.Playlist),
		events:         make(map[int]model.Event),
		photos:         make(map[int]model.Photo),
		playlistSongs:  make(map[int]model.PlaylistSong),
		eventPlaylists: make(map[int]model.EventPlaylist),
		settings:       model.ChoirSettings{ID: settingsID},
	}
}

func (m *MemStore) id() int {
	m.nextID++
	return m.nextID
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// @ SONGS

func (m *MemStore) matchSong(s model.Song, f SongFilter) bool {
	if f.Search != "" && !containsFold(s.Title, f.Search) {
		return false
	}
	if f.Visible != nil && s.IsVisible != *f.Visible {
		return false
	}
	archived := false
	if f.Archived != nil {
		archived = *f.Archived
	}
	if s.IsArchived != archived {
		return false
	}
	if f.Language != nil && (s.Language == nil || *s.Language != *f.Language) {
		return false
	}
	if f.Genre != nil && (s.Genre == nil || *s.Genre != *f.Genre) {
		return false
	}
	return true
}

func (m *MemStore) ListSongs(f SongFilter) ([]model.Song, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []model.Song{}
	for _, s := range m.songs {
		if m.matchSong(s, f) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Title != out[j].Title {
			return out[i].Title < out[j].Title
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *MemStore) CountSongs(f SongFilter) (int, error) {
	songs, _ := m.ListSongs(f)
	return len(songs), nil
}

func (m *MemStore) ListRecentSongs(limit int) ([]model.Song, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []model.Song{}
	for _, s := range m.songs {
		if !s.IsArchived {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemStore) GetSongByID(id int) (model.Song, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.songs[id]
	if !ok {
		return model.Song{}, ErrNotFound
	}
	return s, nil
}

func (m *MemStore) GetVisibleSongByID(id int) (model.Song, error) {
	s, err := m.GetSongByID(id)
	if err != nil || !s.IsVisible || s.IsArchived {
		return model.Song{}, ErrNotFound
	}
	return s, nil
}

func (m *MemStore) CreateSong(p CreateSongParams) (model.Song, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	visible := true
	if p.Visible != nil {
		visible = *p.Visible
	}
	now := time.Now()
	s := model.Song{
		ID:             m.id(),
		Title:          p.Title,
		Lyrics:         p.Lyrics,
		ArtistComposer: p.ArtistComposer,
		Language:       p.Language,
		Genre:          p.Genre,
		Year:           p.Year,
		IsVisible:      visible,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	m.songs[s.ID] = s
	return s, nil
}

func (m *MemStore) UpdateSong(id int, p UpdateSongParams) (model.Song, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.songs[id]
	if !ok {
		return model.Song{}, ErrNotFound
	}
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Lyrics != nil {
		s.Lyrics = *p.Lyrics
	}
	if p.ArtistComposer != nil {
		s.ArtistComposer = p.ArtistComposer
	}
	if p.Language != nil {
		s.Language = p.Language
	}
	if p.Genre != nil {
		s.Genre = p.Genre
	}
	if p.Year != nil {
		s.Year = p.Year
	}
	if p.Visible != nil {
		s.IsVisible = *p.Visible
	}
	s.UpdatedAt = time.Now()
	m.songs[id] = s
	return s, nil
}

func (m *MemStore) ArchiveSong(id int) error { return m.setSongArchived(id, true) }
func (m *MemStore) RestoreSong(id int) error { return m.setSongArchived(id, false) }

func (m *MemStore) setSongArchived(id int, archived bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.songs[id]
	if !ok {
		return ErrNotFound
	}
	s.IsArchived = archived
	s.UpdatedAt = time.Now()
	m.songs[id] = s
	return nil
}

func (m *MemStore) DeleteSong(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.songs[id]; !ok {
		return ErrNotFound
	}
	delete(m.songs, id)
	for mid, ps := range m.playlistSongs {
		if ps.SongID == id {
			delete(m.playlistSongs, mid)
		}
	}
	return nil
}

// @ PLAYLISTS

func (m *MemStore) matchPlaylist(p model.Playlist, f PlaylistFilter) bool {
	if f.Search != "" && !containsFold(p.Name, f.Search) {
		return false
	}
	switch {
	case f.Status != nil:
		return p.Status == *f.Status
	case f.Archived != nil && *f.Archived:
		return p.Status == model.PlaylistStatusArchived
	default:
		return p.Status != model.PlaylistStatusArchived
	}
}

func (m *MemStore) ListPlaylists(f PlaylistFilter) ([]model.Playlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []model.Playlist{}
	for _, p := range m.playlists {
		if m.matchPlaylist(p, f) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *MemStore) CountPlaylists(f PlaylistFilter) (int, error) {
	pls, _ := m.ListPlaylists(f)
	return len(pls), nil
}

func (m *MemStore) GetPlaylistByID(id int) (model.Playlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.playlists[id]
	if !ok {
		return model.Playlist{}, ErrNotFound
	}
	return p, nil
}

func (m *MemStore) GetVisiblePlaylistByID(id int) (model.Playlist, error) {
	p, err := m.GetPlaylistByID(id)
	if err != nil || p.Status != model.PlaylistStatusVisible {
		return model.Playlist{}, ErrNotFound
	}
	return p, nil
}

func (m *MemStore) CreatePlaylist(p CreatePlaylistParams) (model.Playlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	status := model.PlaylistStatusHidden
	if p.Status != nil {
		status = *p.Status
	}
	now := time.Now()
	pl := model.Playlist{
		ID:          m.id(),
		Name:        p.Name,
		Description: p.Description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	m.playlists[pl.ID] = pl
	return pl, nil
}

func (m *MemStore) UpdatePlaylist(id int, p UpdatePlaylistParams) (model.Playlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	pl, ok := m.playlists[id]
	if !ok {
		return model.Playlist{}, ErrNotFound
	}
	if p.Name != nil {
		pl.Name = *p.Name
	}
	if p.Description != nil {
		pl.Description = p.Description
	}
	if p.Status != nil {
		pl.Status = *p.Status
	}
	pl.UpdatedAt = time.Now()
	m.playlists[id] = pl
	return pl, nil
}

func (m *MemStore) ArchivePlaylist(id int) error {
	return m.setPlaylistStatus(id, model.PlaylistStatusArchived)
}

func (m *MemStore) RestorePlaylist(id int) error {
	return m.setPlaylistStatus(id, model.PlaylistStatusHidden)
}

func (m *MemStore) setPlaylistStatus(id int, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	pl, ok := m.playlists[id]
	if !ok {
		return ErrNotFound
	}
	pl.Status = status
	pl.UpdatedAt = time.Now()
	m.playlists[id] = pl
	return nil
}

func (m *MemStore) DeletePlaylist(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.playlists[id]; !ok {
		return ErrNotFound
	}
	delete(m.playlists, id)
	for mid, ps := range m.playlistSongs {
		if ps.PlaylistID == id {
			delete(m.playlistSongs, mid)
		}
	}
	for mid, ep := range m.eventPlaylists {
		if ep.PlaylistID == id {
			delete(m.eventPlaylists, mid)
		}
	}
	return nil
}

func (m *MemStore) AddSongToPlaylist(playlistID, songID int) (model.PlaylistSong, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	maxPos := 0
	for _, ps := range m.playlistSongs {
		if ps.PlaylistID == playlistID {
			if ps.SongID == songID {
				return model.PlaylistSong{}, ErrSongInPlaylist
			}
			if ps.Position > maxPos {
				maxPos = ps.Position
			}
		}
	}
	ps := model.PlaylistSong{
		ID:         m.id(),
		PlaylistID: playlistID,
		SongID:     songID,
		Position:   maxPos + 1,
		CreatedAt:  time.Now(),
	}
	m.playlistSongs[ps.ID] = ps
	return ps, nil
}

func (m *MemStore) RemovePlaylistSong(playlistID, songID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for mid, ps := range m.playlistSongs {
		if ps.PlaylistID == playlistID && ps.SongID == songID {
			// no renumbering: gaps persist until an explicit reorder
			delete(m.playlistSongs, mid)
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemStore) ReorderPlaylistSongs(playlistID int, songIDs []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current := []int{}
	for _, ps := range m.playlistSongs {
		if ps.PlaylistID == playlistID {
			current = append(current, ps.SongID)
		}
	}
	if len(current) == 0 && len(songIDs) == 0 {
		return nil
	}
	if !samePermutation(current, songIDs) {
		return ErrReorderMismatch
	}
	pos := make(map[int]int, len(songIDs))
	for idx, sid := range songIDs {
		pos[sid] = idx + 1
	}
	for mid, ps := range m.playlistSongs {
		if ps.PlaylistID == playlistID {
			ps.Position = pos[ps.SongID]
			m.playlistSongs[mid] = ps
		}
	}
	return nil
}

func (m *MemStore) ListPlaylistSongs(playlistID int) ([]model.PlaylistSong, error) {
	return m.listPlaylistSongs(playlistID, false)
}

func (m *MemStore) ListVisiblePlaylistSongs(playlistID int) ([]model.PlaylistSong, error) {
	return m.listPlaylistSongs(playlistID, true)
}

func (m *MemStore) listPlaylistSongs(playlistID int, visibleOnly bool) ([]model.PlaylistSong, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []model.PlaylistSong{}
	for _, ps := range m.playlistSongs {
		if ps.PlaylistID != playlistID {
			continue
		}
		song, ok := m.songs[ps.SongID]
		if !ok {
			continue
		}
		if visibleOnly && (!song.IsVisible || song.IsArchived) {
			continue
		}
		cp := song
		ps.Song = &cp
		out = append(out, ps)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

// @ EVENTS

func (m *MemStore) matchEvent(e model.Event, f EventFilter) bool {
	if f.Search != "" && !containsFold(e.Name, f.Search) {
		return false
	}
	if f.Visible != nil && e.IsVisible != *f.Visible {
		return false
	}
	archived := false
	if f.Archived != nil {
		archived = *f.Archived
	}
	return e.IsArchived == archived
}

func (m *MemStore) ListEvents(f EventFilter) ([]model.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []model.Event{}
	for _, e := range m.events {
		if m.matchEvent(e, f) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].EventDate != out[j].EventDate {
			return out[i].EventDate > out[j].EventDate
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *MemStore) CountEvents(f EventFilter) (int, error) {
	events, _ := m.ListEvents(f)
	return len(events), nil
}

func (m *MemStore) GetEventByID(id int) (model.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.events[id]
	if !ok {
		return model.Event{}, ErrNotFound
	}
	return e, nil
}

func (m *MemStore) GetVisibleEventByID(id int) (model.Event, error) {
	e, err := m.GetEventByID(id)
	if err != nil || !e.IsVisible || e.IsArchived {
		return model.Event{}, ErrNotFound
	}
	return e, nil
}

func (m *MemStore) clearCurrentLocked(exceptID int) {
	for id, e := range m.events {
		if e.IsCurrent && id != exceptID {
			e.IsCurrent = false
			m.events[id] = e
		}
	}
}

func (m *MemStore) CreateEvent(p CreateEventParams) (model.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current := p.Current != nil && *p.Current
	if current {
		m.clearCurrentLocked(0)
	}
	now := time.Now()
	e := model.Event{
		ID:                m.id(),
		Name:              p.Name,
		Description:       p.Description,
		EventDate:         p.EventDate,
		EventTime:         p.EventTime,
		Place:             p.Place,
		Latitude:          p.Latitude,
		Longitude:         p.Longitude,
		IsVisible:         p.Visible != nil && *p.Visible,
		IsCurrent:         current,
		AutoArchiveExempt: p.AutoArchiveExempt != nil && *p.AutoArchiveExempt,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	m.events[e.ID] = e
	return e, nil
}

func (m *MemStore) UpdateEvent(id int, p UpdateEventParams) (model.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.events[id]
	if !ok {
		return model.Event{}, ErrNotFound
	}
	if p.Current != nil && *p.Current {
		m.clearCurrentLocked(id)
	}
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Description != nil {
		e.Description = p.Description
	}
	if p.EventDate != nil {
		e.EventDate = *p.EventDate
	}
	if p.EventTime != nil {
		e.EventTime = p.EventTime
	}
	if p.Place != nil {
		e.Place = p.Place
	}
	if p.Latitude != nil {
		e.Latitude = p.Latitude
	}
	if p.Longitude != nil {
		e.Longitude = p.Longitude
	}
	if p.Visible != nil {
		e.IsVisible = *p.Visible
	}
	if p.Current != nil {
		e.IsCurrent = *p.Current
	}
	if p.AutoArchiveExempt != nil {
		e.AutoArchiveExempt = *p.AutoArchiveExempt
	}
	e.UpdatedAt = time.Now()
	m.events[id] = e
	return e, nil
}

func (m *MemStore) ArchiveEvent(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.events[id]
	if !ok {
		return ErrNotFound
	}
	e.IsArchived = true
	e.IsCurrent = false
	e.UpdatedAt = time.Now()
	m.events[id] = e
	return nil
}

func (m *MemStore) RestoreEvent(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.events[id]
	if !ok {
		return ErrNotFound
	}
	e.IsArchived = false
	e.UpdatedAt = time.Now()
	m.events[id] = e
	return nil
}

func (m *MemStore) DeleteEvent(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.events[id]; !ok {
		return ErrNotFound
	}
	delete(m.events, id)
	for mid, ep := range m.eventPlaylists {
		if ep.EventID == id {
			delete(m.eventPlaylists, mid)
		}
	}
	return nil
}

func (m *MemStore) SetCurrentEvent(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.events[id]
	if !ok || e.IsArchived {
		return ErrNotFound
	}
	m.clearCurrentLocked(id)
	e.IsCurrent = true
	e.UpdatedAt = time.Now()
	m.events[id] = e
	return nil
}

func (m *MemStore) GetCurrentFlaggedEvent() (model.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, e := range m.events {
		if e.IsCurrent && !e.IsArchived {
			return e, nil
		}
	}
	return model.Event{}, ErrNotFound
}

func (m *MemStore) GetClosestUpcomingEvent(today string) (model.Event, error) {
	events, _ := m.ListUpcomingVisibleEvents(today)
	if len(events) == 0 {
		return model.Event{}, ErrNotFound
	}
	return events[0], nil
}

func (m *MemStore) ListUpcomingVisibleEvents(today string) ([]model.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []model.Event{}
	for _, e := range m.events {
		// ISO dates compare lexicographically
		if !e.IsArchived && e.IsVisible && e.EventDate >= today {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].EventDate != out[j].EventDate {
			return out[i].EventDate < out[j].EventDate
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *MemStore) ListStaleEvents(today string) ([]model.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []model.Event{}
	for _, e := range m.events {
		if !e.IsArchived && !e.AutoArchiveExempt && e.EventDate < today {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].EventDate != out[j].EventDate {
			return out[i].EventDate < out[j].EventDate
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *MemStore) AddPlaylistToEvent(eventID, playlistID int) (model.EventPlaylist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	maxPos := 0
	for _, ep := range m.eventPlaylists {
		if ep.EventID == eventID {
			if ep.PlaylistID == playlistID {
				return model.EventPlaylist{}, ErrPlaylistInEvent
			}
			if ep.Position > maxPos {
				maxPos = ep.Position
			}
		}
	}
	ep := model.EventPlaylist{
		ID:         m.id(),
		EventID:    eventID,
		PlaylistID: playlistID,
		Position:   maxPos + 1,
		CreatedAt:  time.Now(),
	}
	m.eventPlaylists[ep.ID] = ep
	return ep, nil
}

func (m *MemStore) RemoveEventPlaylist(eventID, playlistID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for mid, ep := range m.eventPlaylists {
		if ep.EventID == eventID && ep.PlaylistID == playlistID {
			delete(m.eventPlaylists, mid)
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemStore) ReorderEventPlaylists(eventID int, playlistIDs []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current := []int{}
	for _, ep := range m.eventPlaylists {
		if ep.EventID == eventID {
			current = append(current, ep.PlaylistID)
		}
	}
	if len(current) == 0 && len(playlistIDs) == 0 {
		return nil
	}
	if !samePermutation(current, playlistIDs) {
		return ErrReorderMismatch
	}
	pos := make(map[int]int, len(playlistIDs))
	for idx, pid := range playlistIDs {
		pos[pid] = idx + 1
	}
	for mid, ep := range m.eventPlaylists {
		if ep.EventID == eventID {
			ep.Position = pos[ep.PlaylistID]
			m.eventPlaylists[mid] = ep
		}
	}
	return nil
}

func (m *MemStore) ListEventPlaylists(eventID int) ([]model.EventPlaylist, error) {
	return m.listEventPlaylists(eventID, false)
}

func (m *MemStore) ListVisibleEventPlaylists(eventID int) ([]model.EventPlaylist, error) {
	return m.listEventPlaylists(eventID, true)
}

func (m *MemStore) listEventPlaylists(eventID int, visibleOnly bool) ([]model.EventPlaylist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []model.EventPlaylist{}
	for _, ep := range m.eventPlaylists {
		if ep.EventID != eventID {
			continue
		}
		pl, ok := m.playlists[ep.PlaylistID]
		if !ok {
			continue
		}
		if visibleOnly && pl.Status != model.PlaylistStatusVisible {
			continue
		}
		cp := pl
		ep.Playlist = &cp
		out = append(out, ep)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

// @ PHOTOS

func (m *MemStore) ListPhotos() ([]model.Photo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []model.Photo{}
	for _, p := range m.photos {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *MemStore) GetPhotoByID(id int) (model.Photo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.photos[id]
	if !ok {
		return model.Photo{}, ErrNotFound
	}
	return p, nil
}

func (m *MemStore) CreatePhoto(imageURL string, caption *string) (model.Photo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	maxOrder := 0
	for _, p := range m.photos {
		if p.DisplayOrder > maxOrder {
			maxOrder = p.DisplayOrder
		}
	}
	p := model.Photo{
		ID:           m.id(),
		ImageURL:     imageURL,
		Caption:      caption,
		DisplayOrder: maxOrder + 1,
		CreatedAt:    time.Now(),
	}
	m.photos[p.ID] = p
	return p, nil
}

func (m *MemStore) DeletePhoto(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.photos[id]; !ok {
		return ErrNotFound
	}
	delete(m.photos, id)
	return nil
}

func (m *MemStore) ReorderPhotos(photoIDs []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current := []int{}
	for id := range m.photos {
		current = append(current, id)
	}
	if len(current) == 0 && len(photoIDs) == 0 {
		return nil
	}
	if !samePermutation(current, photoIDs) {
		return ErrReorderMismatch
	}
	for idx, id := range photoIDs {
		p := m.photos[id]
		p.DisplayOrder = idx + 1
		m.photos[id] = p
	}
	return nil
}

// @ SETTINGS

func (m *MemStore) GetSettings() (model.ChoirSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings, nil
}

func (m *MemStore) UpdateSettings(p UpdateSettingsParams) (model.ChoirSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p.Tagline != nil {
		m.settings.Tagline = *p.Tagline
	}
	if p.AboutText != nil {
		m.settings.AboutText = *p.AboutText
	}
	if p.FacebookURL != nil {
		m.settings.FacebookURL = *p.FacebookURL
	}
	if p.InstagramURL != nil {
		m.settings.InstagramURL = *p.InstagramURL
	}
	if p.YoutubeURL != nil {
		m.settings.YoutubeURL = *p.YoutubeURL
	}
	if p.ContactEmail != nil {
		m.settings.ContactEmail = *p.ContactEmail
	}
	m.settings.UpdatedAt = time.Now()
	return m.settings, nil
}
