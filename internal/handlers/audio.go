package handlers

import (
	"net/http"

	"tabata_timer/internal/service"

	"github.com/gin-gonic/gin"
)

// @Summary      Get audio settings
// @Tags         audio
// @Produce      json
// @Success      200  {object}  models.AudioSettings
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/audio [get]
// @Security     BearerAuth
func (h *Handler) getAudio(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Audio.Get())
}

// @Summary      Update audio settings
// @Description  Omitted fields keep their value; volume is clamped to [0,1]
// @Tags         audio
// @Accept       json
// @Produce      json
// @Param        body  body   service.AudioUpdate  true  "Partial settings"
// @Success      200   {object}  models.AudioSettings
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/audio [put]
// @Security     BearerAuth
func (h *Handler) updateAudio(c *gin.Context) {
	var u service.AudioUpdate
	if ok := h.bindJSONOrBadRequest(c, &u); !ok {
		return
	}
	c.JSON(http.StatusOK, h.services.Audio.Update(c.Request.Context(), u))
}

// @Summary      Play test cue
// @Description  Pushes a work-start cue to connected shells
// @Tags         audio
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/audio/test [post]
// @Security     BearerAuth
func (h *Handler) testAudio(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sent": h.services.Session.TestCue()})
}
