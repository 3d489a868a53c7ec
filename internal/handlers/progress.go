package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Progress summary
// @Tags         progress
// @Produce      json
// @Success      200  {object}  service.ProgressSummary
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/progress [get]
// @Security     BearerAuth
func (h *Handler) getProgress(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Progress.Summary())
}

// @Summary      Workout progress
// @Tags         progress
// @Produce      json
// @Param        id   path   string  true  "Workout id"
// @Success      200  {object}  models.WorkoutProgress
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/progress/{id} [get]
// @Security     BearerAuth
func (h *Handler) getWorkoutProgress(c *gin.Context) {
	rec, ok := h.services.Progress.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no progress recorded"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// @Summary      Reset workout progress
// @Tags         progress
// @Param        id   path   string  true  "Workout id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/progress/{id} [delete]
// @Security     BearerAuth
func (h *Handler) resetWorkoutProgress(c *gin.Context) {
	h.services.Progress.ResetProgress(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}

// @Summary      Clear all progress
// @Tags         progress
// @Success      204
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/progress [delete]
// @Security     BearerAuth
func (h *Handler) clearProgress(c *gin.Context) {
	h.services.Progress.ClearAll(c.Request.Context())
	c.Status(http.StatusNoContent)
}
