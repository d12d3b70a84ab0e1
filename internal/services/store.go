package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/dimitrije/sendit/internal/models"
	"github.com/dimitrije/sendit/internal/storage"
	"github.com/google/uuid"
)

// DefaultStorageKey is the key the library blob lives under.
const DefaultStorageKey = "@send_it_data"

var (
	ErrVideoNotFound      = errors.New("video not found")
	ErrCollectionNotFound = errors.New("collection not found")
	ErrDefaultCollection  = errors.New("cannot delete default collection")
	ErrEmptyCollection    = errors.New("collection has no videos")
	ErrRevisionConflict   = errors.New("revision conflict: library has been modified")
	ErrPersistence        = errors.New("failed to save library")
)

// LoadStatus tells how the last snapshot was obtained.
type LoadStatus int

const (
	LoadStatusLoaded LoadStatus = iota
	LoadStatusSeeded
	LoadStatusRecovered
)

func (s LoadStatus) String() string {
	switch s {
	case LoadStatusLoaded:
		return "loaded"
	case LoadStatusSeeded:
		return "seeded"
	case LoadStatusRecovered:
		return "recovered"
	default:
		return fmt.Sprintf("LoadStatus(%d)", int(s))
	}
}

const (
	EventVideoAdded        = "video_added"
	EventVideoUpdated      = "video_updated"
	EventVideoDeleted      = "video_deleted"
	EventCollectionAdded   = "collection_added"
	EventCollectionUpdated = "collection_updated"
	EventCollectionDeleted = "collection_deleted"
	EventLibraryRepaired   = "library_repaired"
)

// Publisher receives an event after every successful write.
type Publisher interface {
	Publish(eventType string, data any)
}

type StoreConfig struct {
	// Key defaults to DefaultStorageKey.
	Key          string
	RepairOnLoad bool
	Publisher    Publisher
	Now          func() time.Time
	NewID        func() string
}

type NewVideo struct {
	URL          string
	Title        string
	Platform     models.Platform
	CollectionID string
	ThumbnailURL string
}

// VideoUpdate is a shallow patch; nil fields are left untouched.
type VideoUpdate struct {
	URL          *string
	Title        *string
	Platform     *models.Platform
	CollectionID *string
	ThumbnailURL *string
}

type NewCollection struct {
	Name  string
	Color string
	Icon  string
}

// CollectionUpdate is a shallow patch; nil fields are left untouched.
type CollectionUpdate struct {
	Name  *string
	Color *string
	Icon  *string
}

// Store is the record store for the whole library. It keeps the last snapshot in
// memory and writes the complete snapshot back on every mutation, guarded by a
// mutex in-process and by the backend revision across processes.
type Store struct {
	kv           storage.KV
	key          string
	repairOnLoad bool
	publisher    Publisher
	now          func() time.Time
	newID        func() string

	mu         sync.Mutex
	data       *models.StorageData
	revision   int64
	unverified bool
	lastStatus LoadStatus
	recoveries int
}

func NewStore(kv storage.KV, cfg StoreConfig) *Store {
	s := &Store{
		kv:           kv,
		key:          cfg.Key,
		repairOnLoad: cfg.RepairOnLoad,
		publisher:    cfg.Publisher,
		now:          cfg.Now,
		newID:        cfg.NewID,
	}
	if s.key == "" {
		s.key = DefaultStorageKey
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = func() string { return uuid.Must(uuid.NewV7()).String() }
	}
	return s
}

func (s *Store) nowMillis() int64 {
	return s.now().UnixMilli()
}

// Load reads the library from the backend, replacing the cached snapshot. It never
// fails: a missing blob yields the seed state and an unreadable or malformed blob
// yields the seed state with LoadStatusRecovered.
func (s *Store) Load(ctx context.Context) (models.StorageData, LoadStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := s.load(ctx)
	return s.data.Clone(), status
}

// Reload drops the cached snapshot so the next operation reads the backend.
func (s *Store) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
}

// Flush persists the cached snapshot, creating the blob if it does not exist yet.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	s.ensureLoaded(ctx)
	return s.persist(ctx, *s.data)
}

// LastLoadStatus reports how the current snapshot was obtained.
func (s *Store) LastLoadStatus() LoadStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastStatus
}

// Recoveries counts loads that fell back to the seed state because of a read error
// or a malformed blob.
func (s *Store) Recoveries() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recoveries
}

func (s *Store) load(ctx context.Context) LoadStatus {
	entry, err := s.kv.Get(ctx, s.key)
	s.unverified = false
	switch {
	case errors.Is(err, storage.ErrNotFound):
		s.setSeed(0)
		s.lastStatus = LoadStatusSeeded

	case err != nil:
		// Revision 0 makes a write a create, which conflicts if the blob is
		// actually there. The seed serves this operation only; the next one
		// reads the backend again.
		log.Printf("WARN library %q unreadable, using empty library: %v", s.key, err)
		s.setSeed(0)
		s.unverified = true
		s.recoveries++
		s.lastStatus = LoadStatusRecovered

	default:
		data, err := decodeLibrary(entry.Value)
		if err != nil {
			log.Printf("WARN library %q is malformed, replacing with empty library: %v", s.key, err)
			s.setSeed(entry.Revision)
			s.recoveries++
			s.lastStatus = LoadStatusRecovered
			break
		}
		s.data = &data
		s.revision = entry.Revision
		s.lastStatus = LoadStatusLoaded
	}

	if s.repairOnLoad {
		if report := repair(s.data, s.nowMillis()); report.Changed() {
			log.Printf("Repaired library on load: %s", report)
		}
	}
	return s.lastStatus
}

func (s *Store) setSeed(revision int64) {
	seed := models.InitialData(s.nowMillis())
	s.data = &seed
	s.revision = revision
}

func (s *Store) ensureLoaded(ctx context.Context) {
	if s.data == nil || s.unverified {
		s.load(ctx)
	}
}

type libraryDocument struct {
	Videos      *[]models.Video      `json:"videos"`
	Collections *[]models.Collection `json:"collections"`
}

func decodeLibrary(b []byte) (models.StorageData, error) {
	var doc libraryDocument
	if err := json.Unmarshal(b, &doc); err != nil {
		return models.StorageData{}, err
	}
	if doc.Videos == nil || doc.Collections == nil {
		return models.StorageData{}, errors.New("missing videos or collections")
	}
	data := models.StorageData{Videos: *doc.Videos, Collections: *doc.Collections}
	if data.Videos == nil {
		data.Videos = []models.Video{}
	}
	if data.Collections == nil {
		data.Collections = []models.Collection{}
	}
	return data, nil
}

// persist writes next with compare-and-set against the cached revision and, on
// success, makes it the cached snapshot. Caller holds s.mu.
func (s *Store) persist(ctx context.Context, next models.StorageData) error {
	b, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	rev, err := s.kv.Put(ctx, s.key, b, s.revision)
	if err != nil {
		if errors.Is(err, storage.ErrRevisionConflict) {
			s.data = nil
			return fmt.Errorf("%w: %w", ErrRevisionConflict, err)
		}
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	s.data = &next
	s.revision = rev
	s.unverified = false
	return nil
}

// mutate runs fn against a copy of the snapshot and persists the copy when fn
// reports a change.
func (s *Store) mutate(ctx context.Context, fn func(d *models.StorageData) (bool, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	s.ensureLoaded(ctx)

	next := s.data.Clone()
	changed, err := fn(&next)
	if err != nil || !changed {
		return err
	}
	return s.persist(ctx, next)
}

func (s *Store) snapshot(ctx context.Context) (models.StorageData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return models.StorageData{}, err
	}
	s.ensureLoaded(ctx)
	return s.data.Clone(), nil
}

func (s *Store) publish(eventType string, data any) {
	if s.publisher != nil {
		s.publisher.Publish(eventType, data)
	}
}

func (s *Store) AddVideo(ctx context.Context, in NewVideo) (*models.Video, error) {
	video := models.Video{
		ID:           s.newID(),
		URL:          in.URL,
		Title:        in.Title,
		Platform:     in.Platform,
		CollectionID: in.CollectionID,
		AddedAt:      s.nowMillis(),
		ThumbnailURL: in.ThumbnailURL,
	}

	err := s.mutate(ctx, func(d *models.StorageData) (bool, error) {
		d.Videos = append(d.Videos, video)
		if c := d.FindCollection(video.CollectionID); c != nil {
			c.VideoCount++
		} else {
			log.Printf("WARN video %s filed under unknown collection %q, count not updated", video.ID, video.CollectionID)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(EventVideoAdded, video)
	return &video, nil
}

func (s *Store) UpdateVideo(ctx context.Context, videoID string, upd VideoUpdate) error {
	var updated models.VideoChange
	err := s.mutate(ctx, func(d *models.StorageData) (bool, error) {
		i := d.FindVideo(videoID)
		if i == -1 {
			return false, ErrVideoNotFound
		}

		old := d.Videos[i]
		v := old
		if upd.URL != nil {
			v.URL = *upd.URL
		}
		if upd.Title != nil {
			v.Title = *upd.Title
		}
		if upd.Platform != nil {
			v.Platform = *upd.Platform
		}
		if upd.ThumbnailURL != nil {
			v.ThumbnailURL = *upd.ThumbnailURL
		}
		if upd.CollectionID != nil && *upd.CollectionID != "" && *upd.CollectionID != old.CollectionID {
			v.CollectionID = *upd.CollectionID
			if c := d.FindCollection(old.CollectionID); c != nil {
				c.VideoCount--
			}
			if c := d.FindCollection(v.CollectionID); c != nil {
				c.VideoCount++
			} else {
				log.Printf("WARN video %s moved to unknown collection %q, count not updated", v.ID, v.CollectionID)
			}
		}

		d.Videos[i] = v
		updated = models.VideoChange{Video: v}
		if v.CollectionID != old.CollectionID {
			updated.PreviousCollectionID = old.CollectionID
		}
		return true, nil
	})
	if err != nil {
		return err
	}

	s.publish(EventVideoUpdated, updated)
	return nil
}

// DeleteVideo removes a video. Deleting an unknown id is not an error and writes nothing.
func (s *Store) DeleteVideo(ctx context.Context, videoID string) error {
	deleted := false
	err := s.mutate(ctx, func(d *models.StorageData) (bool, error) {
		i := d.FindVideo(videoID)
		if i == -1 {
			return false, nil
		}

		if c := d.FindCollection(d.Videos[i].CollectionID); c != nil {
			c.VideoCount--
		}
		d.Videos = append(d.Videos[:i], d.Videos[i+1:]...)
		deleted = true
		return true, nil
	})
	if err != nil {
		return err
	}

	if deleted {
		s.publish(EventVideoDeleted, map[string]string{"id": videoID})
	}
	return nil
}

func (s *Store) GetVideos(ctx context.Context) ([]models.Video, error) {
	data, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return data.Videos, nil
}

func (s *Store) GetVideo(ctx context.Context, videoID string) (*models.Video, error) {
	data, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	i := data.FindVideo(videoID)
	if i == -1 {
		return nil, ErrVideoNotFound
	}
	return &data.Videos[i], nil
}

func (s *Store) GetVideosByCollection(ctx context.Context, collectionID string) ([]models.Video, error) {
	data, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	videos := []models.Video{}
	for _, v := range data.Videos {
		if v.CollectionID == collectionID {
			videos = append(videos, v)
		}
	}
	return videos, nil
}

func (s *Store) AddCollection(ctx context.Context, in NewCollection) (*models.Collection, error) {
	collection := models.Collection{
		ID:         s.newID(),
		Name:       in.Name,
		Color:      in.Color,
		Icon:       in.Icon,
		CreatedAt:  s.nowMillis(),
		VideoCount: 0,
	}

	err := s.mutate(ctx, func(d *models.StorageData) (bool, error) {
		d.Collections = append(d.Collections, collection)
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(EventCollectionAdded, collection)
	return &collection, nil
}

// UpdateCollection patches name, color and icon. The default collection may be
// edited; only its deletion is refused.
func (s *Store) UpdateCollection(ctx context.Context, collectionID string, upd CollectionUpdate) error {
	var updated models.Collection
	err := s.mutate(ctx, func(d *models.StorageData) (bool, error) {
		c := d.FindCollection(collectionID)
		if c == nil {
			return false, ErrCollectionNotFound
		}
		if upd.Name != nil {
			c.Name = *upd.Name
		}
		if upd.Color != nil {
			c.Color = *upd.Color
		}
		if upd.Icon != nil {
			c.Icon = *upd.Icon
		}
		updated = *c
		return true, nil
	})
	if err != nil {
		return err
	}

	s.publish(EventCollectionUpdated, updated)
	return nil
}

// DeleteCollection moves the collection's videos to the default collection,
// recounts the default collection and removes the collection.
func (s *Store) DeleteCollection(ctx context.Context, collectionID string) error {
	if collectionID == models.DefaultCollectionID {
		return ErrDefaultCollection
	}

	moved := 0
	err := s.mutate(ctx, func(d *models.StorageData) (bool, error) {
		for i := range d.Videos {
			if d.Videos[i].CollectionID == collectionID {
				d.Videos[i].CollectionID = models.DefaultCollectionID
				moved++
			}
		}

		if def := d.FindCollection(models.DefaultCollectionID); def != nil {
			def.VideoCount = d.CountVideos(models.DefaultCollectionID)
		}

		kept := d.Collections[:0]
		for _, c := range d.Collections {
			if c.ID != collectionID {
				kept = append(kept, c)
			}
		}
		removed := len(kept) != len(d.Collections)
		d.Collections = kept

		return removed || moved > 0, nil
	})
	if err != nil {
		return err
	}

	s.publish(EventCollectionDeleted, map[string]any{"id": collectionID, "movedVideos": moved})
	return nil
}

func (s *Store) GetCollections(ctx context.Context) ([]models.Collection, error) {
	data, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return data.Collections, nil
}

func (s *Store) GetCollection(ctx context.Context, collectionID string) (*models.Collection, error) {
	data, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	c := data.FindCollection(collectionID)
	if c == nil {
		return nil, ErrCollectionNotFound
	}
	return c, nil
}

// RecountAll repairs the library (see repair) and persists it if anything changed.
func (s *Store) RecountAll(ctx context.Context) (RepairReport, error) {
	var report RepairReport
	err := s.mutate(ctx, func(d *models.StorageData) (bool, error) {
		report = repair(d, s.nowMillis())
		return report.Changed(), nil
	})
	if err != nil {
		return RepairReport{}, err
	}

	if report.Changed() {
		s.publish(EventLibraryRepaired, report)
	}
	return report, nil
}
