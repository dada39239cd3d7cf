package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK       = "ok"
	statusLoaded   = "loaded"
	statusToggled  = "toggled"
	statusSaved    = "saved"
	statusRestored = "restored"

	errGetState        = "failed to load state"
	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// Respond with a status and include current state if available (best-effort).
func (h *Handler) respondWithStatusAndState(c *gin.Context, status string, extra gin.H) {
	ctx := c.Request.Context()
	resp := gin.H{"status": status}
	for k, v := range extra {
		resp[k] = v
	}
	st, err := h.services.Monitoring.GetState(ctx)
	if err == nil {
		resp["state"] = st
	}
	c.JSON(http.StatusOK, resp)
}

// LoadTimerRequest is the optional payload of POST /timer/load.
type LoadTimerRequest struct {
	// Duration to load in milliseconds. Omit to load the set-time panel.
	DurationMs *int64 `json:"duration_ms,omitempty" example:"90000"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Load countdown
// @Description  Loads duration_ms, or the set-time panel when the body is empty. Always stops the countdown.
// @Tags         timer
// @Accept       json
// @Produce      json
// @Param        body  body      LoadTimerRequest  false  "Duration payload"
// @Success      200   {object}  map[string]interface{}  "status, state"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/timer/load [post]
// @Security     BearerAuth
func (h *Handler) loadTimer(c *gin.Context) {
	var req LoadTimerRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	ctx := c.Request.Context()
	source := "panel"
	if req.DurationMs != nil {
		h.services.Countdown.Load(ctx, *req.DurationMs)
		source = "duration"
	} else {
		h.services.Countdown.LoadFromPanel(ctx)
	}
	h.respondWithStatusAndState(c, statusLoaded, gin.H{"source": source})
}

// @Summary      Start or pause countdown
// @Description  Armed starts, Running pauses, Idle is a no-op (or loads the panel when autoload_on_start is set).
// @Tags         timer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/timer/toggle [post]
// @Security     BearerAuth
func (h *Handler) toggleTimer(c *gin.Context) {
	st := h.services.Countdown.Toggle(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"status": statusToggled, "state": st})
}

// @Summary      Get timer state
// @Tags         timer
// @Produce      json
// @Success      200  {object}  models.TimerState
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/timer/state [get]
// @Security     BearerAuth
func (h *Handler) getState(c *gin.Context) {
	ctx := c.Request.Context()
	st, err := h.services.Monitoring.GetState(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetState, "timer_get_state_failed", err)
		return
	}
	c.JSON(http.StatusOK, st)
}
