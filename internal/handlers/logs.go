package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"timeboard/internal/service"

	"github.com/gin-gonic/gin"
)

// Accepted forms for the from/to query parameters. A date-only 'to' covers
// the whole day.
var logTimeLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

// queryTime reads an optional time parameter. dateOnly is set when the value
// carried no clock part.
func queryTime(c *gin.Context, name string) (t time.Time, dateOnly bool, err error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return time.Time{}, false, nil
	}
	for _, layout := range logTimeLayouts {
		if t, err = time.Parse(layout, raw); err == nil {
			return t.UTC(), !strings.ContainsAny(raw, "T "), nil
		}
	}
	return time.Time{}, false, errors.New("invalid '" + name + "' time; use RFC3339, 'YYYY-MM-DD HH:MM:SS' or YYYY-MM-DD")
}

// @Summary      List timer events
// @Description  Timer history, oldest first. A date-only 'to' is inclusive of the whole day. 'key' narrows SAVE and RESTORE events to one snapshot; 'limit' keeps the most recent N. by_type tallies the returned events per lifecycle type.
// @Tags         logs
// @Produce      json
// @Param        from   query   string  false  "Start of range (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD')"  example(2025-08-01)
// @Param        to     query   string  false  "End of range, same forms as 'from'"  example(2025-08-31)
// @Param        type   query   string  false  "Event type"  Enums(LOAD,START,PAUSE,EXPIRED,SAVE,RESTORE)
// @Param        key    query   string  false  "Snapshot key"
// @Param        limit  query   int     false  "Most recent N events (max 1000)"
// @Success      200   {object}  map[string]interface{}  "count, by_type, events"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/logs [get]
// @Security     BearerAuth
func (h *Handler) getLogs(c *gin.Context) {
	from, _, err := queryTime(c, "from")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	to, dateOnly, err := queryTime(c, "to")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if dateOnly {
		to = to.Add(24*time.Hour - time.Nanosecond)
	}

	f := service.LogFilter{From: from, To: to, Type: c.Query("type"), Key: c.Query("key")}
	if raw := c.Query("limit"); raw != "" {
		if f.Limit, err = strconv.Atoi(raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
	}

	events, err := h.services.EventLog.List(c.Request.Context(), f)
	switch {
	case errors.Is(err, service.ErrUnknownEventType),
		errors.Is(err, service.ErrInvalidTimeRange),
		errors.Is(err, service.ErrInvalidLimit):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		if h.log != nil {
			h.log.Errorw("logs_list_failed", "err", err, "type", f.Type, "key", f.Key)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load logs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":   len(events),
		"by_type": service.CountByType(events),
		"events":  events,
	})
}
