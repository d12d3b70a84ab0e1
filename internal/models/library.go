package models

// StorageData is the root aggregate persisted as a single blob.
type StorageData struct {
	Videos      []Video      `json:"videos"`
	Collections []Collection `json:"collections"`
}

// InitialData returns the seed state: no videos and the default collection.
func InitialData(now int64) StorageData {
	return StorageData{
		Videos:      []Video{},
		Collections: []Collection{DefaultCollection(now)},
	}
}

// Clone returns a deep copy so callers never share slices with a cached snapshot.
func (d StorageData) Clone() StorageData {
	out := StorageData{
		Videos:      make([]Video, len(d.Videos)),
		Collections: make([]Collection, len(d.Collections)),
	}
	copy(out.Videos, d.Videos)
	copy(out.Collections, d.Collections)
	return out
}

func (d *StorageData) FindVideo(id string) int {
	for i := range d.Videos {
		if d.Videos[i].ID == id {
			return i
		}
	}
	return -1
}

func (d *StorageData) FindCollection(id string) *Collection {
	for i := range d.Collections {
		if d.Collections[i].ID == id {
			return &d.Collections[i]
		}
	}
	return nil
}

// CountVideos returns how many videos reference collectionID.
func (d *StorageData) CountVideos(collectionID string) int {
	n := 0
	for _, v := range d.Videos {
		if v.CollectionID == collectionID {
			n++
		}
	}
	return n
}
