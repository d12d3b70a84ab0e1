package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/dimitrije/sendit/internal/models"
)

type CountCorrection struct {
	CollectionID string `json:"collectionId"`
	Was          int    `json:"was"`
	Now          int    `json:"now"`
}

// RepairReport lists what a repair pass changed.
type RepairReport struct {
	DefaultRestored  bool              `json:"defaultRestored"`
	ReassignedVideos []string          `json:"reassignedVideos"`
	Corrections      []CountCorrection `json:"corrections"`
}

func (r RepairReport) Changed() bool {
	return r.DefaultRestored || len(r.ReassignedVideos) > 0 || len(r.Corrections) > 0
}

func (r RepairReport) String() string {
	if !r.Changed() {
		return "no changes"
	}
	var parts []string
	if r.DefaultRestored {
		parts = append(parts, "default collection restored")
	}
	if n := len(r.ReassignedVideos); n > 0 {
		parts = append(parts, fmt.Sprintf("%d video(s) moved to default", n))
	}
	for _, c := range r.Corrections {
		parts = append(parts, fmt.Sprintf("%s count %d -> %d", c.CollectionID, c.Was, c.Now))
	}
	return strings.Join(parts, ", ")
}

// repair restores the default collection, files videos that point at missing
// collections under it and recomputes every videoCount from membership.
func repair(d *models.StorageData, now int64) RepairReport {
	report := RepairReport{
		ReassignedVideos: []string{},
		Corrections:      []CountCorrection{},
	}

	if d.FindCollection(models.DefaultCollectionID) == nil {
		def := models.DefaultCollection(now)
		d.Collections = append([]models.Collection{def}, d.Collections...)
		report.DefaultRestored = true
	}

	known := make(map[string]bool, len(d.Collections))
	for _, c := range d.Collections {
		known[c.ID] = true
	}
	for i := range d.Videos {
		if !known[d.Videos[i].CollectionID] {
			d.Videos[i].CollectionID = models.DefaultCollectionID
			report.ReassignedVideos = append(report.ReassignedVideos, d.Videos[i].ID)
		}
	}

	counts := make(map[string]int, len(d.Collections))
	for _, v := range d.Videos {
		counts[v.CollectionID]++
	}
	for i := range d.Collections {
		c := &d.Collections[i]
		if c.VideoCount != counts[c.ID] {
			report.Corrections = append(report.Corrections, CountCorrection{
				CollectionID: c.ID,
				Was:          c.VideoCount,
				Now:          counts[c.ID],
			})
			c.VideoCount = counts[c.ID]
		}
	}

	return report
}

// Diagnose reports what repair would change without touching data.
func Diagnose(data models.StorageData, now time.Time) RepairReport {
	c := data.Clone()
	return repair(&c, now.UnixMilli())
}
