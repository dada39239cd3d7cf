package handlers

import (
	"errors"
	"net/http"

	"timeboard/internal/service"

	"github.com/gin-gonic/gin"
)

const errLoadSnapshot = "failed to load snapshot"

// @Summary      Save panel snapshot
// @Description  Stores the panel under key and hides the board. Storage failures are reported as persisted=false, not as an error.
// @Tags         snapshots
// @Produce      json
// @Param        key  path      string  true  "Snapshot key"
// @Success      200  {object}  service.SaveResult
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/snapshots/{key} [post]
// @Security     BearerAuth
func (h *Handler) saveSnapshot(c *gin.Context) {
	key := c.Param("key")
	res, err := h.services.Snapshots.SaveSnapshot(c.Request.Context(), key)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to save snapshot", "snapshot_save_failed", err, "key", key)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusSaved, "result": res})
}

// @Summary      Get panel snapshot
// @Tags         snapshots
// @Produce      json
// @Param        key  path      string  true  "Snapshot key"
// @Success      200  {object}  models.Snapshot
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/snapshots/{key} [get]
// @Security     BearerAuth
func (h *Handler) getSnapshot(c *gin.Context) {
	key := c.Param("key")
	snap, err := h.services.Snapshots.GetSnapshot(c.Request.Context(), key)
	if err != nil {
		h.snapshotError(c, err, key)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// @Summary      Restore panel snapshot
// @Tags         snapshots
// @Produce      json
// @Param        key  path      string  true  "Snapshot key"
// @Success      200  {object}  map[string]interface{}  "status, panel"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/snapshots/{key}/restore [post]
// @Security     BearerAuth
func (h *Handler) restoreSnapshot(c *gin.Context) {
	key := c.Param("key")
	pv, err := h.services.Snapshots.RestoreSnapshot(c.Request.Context(), key)
	if err != nil {
		h.snapshotError(c, err, key)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusRestored, "panel": pv})
}

func (h *Handler) snapshotError(c *gin.Context, err error, key string) {
	if errors.Is(err, service.ErrSnapshotNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	h.logAndJSONError(c, http.StatusInternalServerError, errLoadSnapshot, "snapshot_load_failed", err, "key", key)
}
