package handlers

import (
	"errors"
	"net/http"

	"timeboard/internal/service"

	"github.com/gin-gonic/gin"
)

// @Summary      Dispatch an input event
// @Description  Same discrete events the terminal front end sends.
// @Tags         input
// @Produce      json
// @Param        event  path      string  true  "Event"  Enums(hour+,hour-,minute+,minute-,second+,second-,toggle,load,save,restore,board)
// @Success      200    {object}  models.TimerState
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /api/v1/input/{event} [post]
// @Security     BearerAuth
func (h *Handler) dispatchInput(c *gin.Context) {
	ev, err := service.ParseInputEvent(c.Param("event"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	st, err := h.services.Input.Dispatch(c.Request.Context(), ev)
	switch {
	case errors.Is(err, service.ErrSnapshotNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnknownInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to dispatch input", "input_dispatch_failed", err, "event", ev)
	default:
		c.JSON(http.StatusOK, st)
	}
}
