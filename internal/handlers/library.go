package handlers

import (
	"log"
	"time"

	"github.com/dimitrije/sendit/internal/classifier"
	"github.com/dimitrije/sendit/internal/models"
	"github.com/dimitrije/sendit/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

// LibraryHandler serves the endpoints that are not tied to a single record.
type LibraryHandler struct {
	library LibraryServiceInterface
	now     func() time.Time
}

func NewLibraryHandler(library LibraryServiceInterface) *LibraryHandler {
	return &LibraryHandler{library: library, now: time.Now}
}

// Classify never fails on a bad link; it reports valid=false instead.
func (h *LibraryHandler) Classify(c *drift.Context) {
	var req dto.ClassifyRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	a := classifier.Analyze(req.URL)

	_ = c.JSON(200, dto.ClassifyResponse{
		URL:            a.URL,
		Valid:          a.Valid,
		Platform:       string(a.Platform),
		PlatformName:   a.PlatformName,
		PlatformIcon:   classifier.PlatformIcon(a.Platform),
		Title:          a.Title,
		Hashtags:       a.Hashtags,
		SuggestedTitle: a.SuggestedTitle,
	})
}

func (h *LibraryHandler) Stats(c *drift.Context) {
	stats, err := h.library.Stats(c.Request.Context(), h.now())
	if err != nil {
		writeStoreError(c, err, "failed to compute stats")
		return
	}

	_ = c.JSON(200, stats)
}

func (h *LibraryHandler) Palette(c *drift.Context) {
	_ = c.JSON(200, dto.PaletteResponse{
		Colors: models.CollectionColors,
		Icons:  models.CollectionIcons,
	})
}

func (h *LibraryHandler) Recount(c *drift.Context) {
	report, err := h.library.RecountAll(c.Request.Context())
	if err != nil {
		writeStoreError(c, err, "failed to repair library")
		return
	}

	if report.Changed() {
		log.Printf("Library repaired: %s", report)
	}

	_ = c.JSON(200, report)
}
