package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

const maxImportBytes = 1 << 20 // 1 MB

// @Summary      List workouts
// @Description  Optional case-insensitive search over names and exercises, sorted by name or duration
// @Tags         workouts
// @Produce      json
// @Param        q     query   string  false  "Search text"
// @Param        sort  query   string  false  "Sort key"  Enums(name,duration)
// @Success      200   {object}  map[string]interface{}  "count, workouts"
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/workouts [get]
// @Security     BearerAuth
func (h *Handler) listWorkouts(c *gin.Context) {
	ws := h.services.Workouts.List(c.Query("q"), c.Query("sort"))
	c.JSON(http.StatusOK, gin.H{
		"count":    len(ws),
		"workouts": ws,
	})
}

// @Summary      Get workout
// @Tags         workouts
// @Produce      json
// @Param        id   path   string  true  "Workout id"
// @Success      200  {object}  service.WorkoutSummary
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/workouts/{id} [get]
// @Security     BearerAuth
func (h *Handler) getWorkout(c *gin.Context) {
	id := c.Param("id")
	w, err := h.services.Workouts.Get(id)
	if err != nil {
		h.respondServiceError(c, "workout_get_failed", err, "workout_id", id)
		return
	}
	c.JSON(http.StatusOK, w)
}

// @Summary      Export workout
// @Description  Downloads the workout as indented JSON, suitable for import
// @Tags         workouts
// @Produce      json
// @Param        id   path   string  true  "Workout id"
// @Success      200  {object}  models.Workout
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/workouts/{id}/export [get]
// @Security     BearerAuth
func (h *Handler) exportWorkout(c *gin.Context) {
	id := c.Param("id")
	data, err := h.services.Workouts.Export(id)
	if err != nil {
		h.respondServiceError(c, "workout_export_failed", err, "workout_id", id)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", id+".json"))
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// @Summary      Import workout
// @Description  Accepts an exported workout; a new id is assigned
// @Tags         workouts
// @Accept       json
// @Produce      json
// @Param        body  body   models.Workout  true  "Exported workout"
// @Success      201   {object}  service.WorkoutSummary
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/workouts/import [post]
// @Security     BearerAuth
func (h *Handler) importWorkout(c *gin.Context) {
	data, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxImportBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	w, err := h.services.Workouts.Import(data)
	if err != nil {
		h.respondServiceError(c, "workout_import_failed", err)
		return
	}
	c.JSON(http.StatusCreated, w)
}
