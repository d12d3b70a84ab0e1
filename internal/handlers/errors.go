package handlers

import (
	"errors"
	"log"

	"github.com/dimitrije/sendit/internal/services"
	"github.com/dimitrije/sendit/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

// writeStoreError maps store errors onto HTTP responses. Anything unrecognized is
// logged and reported as fallback.
func writeStoreError(c *drift.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrVideoNotFound):
		c.NotFound("video not found")
	case errors.Is(err, services.ErrCollectionNotFound):
		c.NotFound("collection not found")
	case errors.Is(err, services.ErrDefaultCollection):
		c.Forbidden("cannot delete default collection")
	case errors.Is(err, services.ErrEmptyCollection):
		c.BadRequest("collection has no videos")
	case errors.Is(err, services.ErrRevisionConflict):
		_ = c.JSON(409, dto.ErrorResponse{
			Code:    "REVISION_CONFLICT",
			Message: "library has been modified by another writer",
		})
	default:
		log.Printf("%s: %v", fallback, err)
		c.InternalServerError(fallback)
	}
}
