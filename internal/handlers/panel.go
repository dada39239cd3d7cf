package handlers

import (
	"net/http"

	"timeboard/internal/service"

	"github.com/gin-gonic/gin"
)

// SetPanelRequest carries the panel fields as displayed text. Fields that
// are not non-negative integers read as 0; overflow carries upward.
type SetPanelRequest struct {
	Hours   string `json:"hours" example:"01"`
	Minutes string `json:"minutes" example:"30"`
	Seconds string `json:"seconds" example:"00"`
}

// @Summary      Get set-time panel
// @Tags         panel
// @Produce      json
// @Success      200  {object}  models.PanelValue
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/panel [get]
// @Security     BearerAuth
func (h *Handler) getPanel(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Panel.PanelValue())
}

// @Summary      Set panel
// @Tags         panel
// @Accept       json
// @Produce      json
// @Param        body  body      SetPanelRequest  true  "Panel text"
// @Success      200   {object}  models.PanelValue
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/panel [put]
// @Security     BearerAuth
func (h *Handler) setPanel(c *gin.Context) {
	var req SetPanelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.services.Panel.SetPanelText(req.Hours, req.Minutes, req.Seconds))
}

// @Summary      Press a panel button
// @Description  Moves one field by one step with carry into the next field.
// @Tags         panel
// @Produce      json
// @Param        field      path      string  true  "Field"      Enums(hour,minute,second)
// @Param        direction  path      string  true  "Direction"  Enums(increment,decrement)
// @Success      200        {object}  models.PanelValue
// @Failure      400        {object}  map[string]string
// @Failure      401        {object}  map[string]string
// @Router       /api/v1/panel/{field}/{direction} [post]
// @Security     BearerAuth
func (h *Handler) adjustPanel(c *gin.Context) {
	field, err := service.ParsePanelField(c.Param("field"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	dir, err := service.ParseDirection(c.Param("direction"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.services.Panel.Adjust(field, dir))
}

// @Summary      Show or hide the board
// @Tags         board
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/board/toggle [post]
// @Security     BearerAuth
func (h *Handler) toggleBoard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"visible": h.services.Board.ToggleBoard()})
}
