package handlers

import (
	"context"
	"errors"
	"net/http"

	"tabata_timer/internal/catalog"
	"tabata_timer/internal/service"
	"tabata_timer/internal/timer"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK       = "ok"
	statusSelected = "selected"
	statusStarted  = "started"
	statusPaused   = "paused"
	statusStopped  = "stopped"
	statusReset    = "reset"
	statusResynced = "resynced"

	errInvalidBodyPref = "invalid body: "
	errInternal        = "internal error"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// statusFor maps service errors onto HTTP codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, catalog.ErrInvalidWorkout),
		errors.Is(err, timer.ErrInvalidConfig),
		errors.Is(err, service.ErrInvalidTimeRange),
		errors.Is(err, service.ErrInvalidLimit):
		return http.StatusBadRequest
	case errors.Is(err, catalog.ErrWorkoutNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrNoSession),
		errors.Is(err, catalog.ErrDuplicateWorkout):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondServiceError writes the mapped code; only unexpected errors are
// logged at error level.
func (h *Handler) respondServiceError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		h.logAndJSONError(c, code, errInternal, logKey, err, kv...)
		return
	}
	if h.log != nil {
		h.log.Infow(logKey, append([]interface{}{"err", err}, kv...)...)
	}
	c.JSON(code, gin.H{"error": err.Error()})
}

type selectRequest struct {
	WorkoutID string        `json:"workout_id" binding:"required"`
	Config    *timer.Config `json:"config,omitempty"`
	Resume    bool          `json:"resume"`
}

// SelectSessionRequest is an exported model for Swagger docs of the select payload.
type SelectSessionRequest struct {
	// Workout to run
	WorkoutID string `json:"workout_id" example:"quick-blast"`
	// Phase lengths in seconds; omitted means server defaults with the workout's pair rest
	Config *timer.Config `json:"config,omitempty"`
	// Continue from the saved position of an unfinished workout
	Resume bool `json:"resume" example:"true"`
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

// @Summary      Select workout
// @Description  Replaces the active session with a fresh one for the workout
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body   SelectSessionRequest  true  "Selection payload"
// @Success      200   {object}  map[string]interface{}  "status, session"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/session [post]
// @Security     BearerAuth
func (h *Handler) selectWorkout(c *gin.Context) {
	var req selectRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	snap, err := h.services.Session.Select(c.Request.Context(), service.SelectParams{
		WorkoutID: req.WorkoutID,
		Config:    req.Config,
		Resume:    req.Resume,
	})
	if err != nil {
		h.respondServiceError(c, "session_select_failed", err, "workout_id", req.WorkoutID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusSelected, "session": snap})
}

// sessionCommand runs cmd and responds with the status and resulting session.
func (h *Handler) sessionCommand(c *gin.Context, status, logKey string, cmd func(context.Context) (service.SessionSnapshot, error)) {
	snap, err := cmd(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, logKey, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": status, "session": snap})
}

// @Summary      Start or resume session
// @Tags         session
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, session"
// @Failure      401  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/v1/session/start [post]
// @Security     BearerAuth
func (h *Handler) startSession(c *gin.Context) {
	h.sessionCommand(c, statusStarted, "session_start_failed", h.services.Session.Start)
}

// @Summary      Pause session
// @Tags         session
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, session"
// @Failure      401  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/v1/session/pause [post]
// @Security     BearerAuth
func (h *Handler) pauseSession(c *gin.Context) {
	h.sessionCommand(c, statusPaused, "session_pause_failed", h.services.Session.Pause)
}

// @Summary      Stop session
// @Description  Saves the position and halts the timer; a later start continues from it
// @Tags         session
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, session"
// @Failure      401  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/v1/session/stop [post]
// @Security     BearerAuth
func (h *Handler) stopSession(c *gin.Context) {
	h.sessionCommand(c, statusStopped, "session_stop_failed", h.services.Session.Stop)
}

// @Summary      Reset session
// @Tags         session
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, session"
// @Failure      401  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/v1/session/reset [post]
// @Security     BearerAuth
func (h *Handler) resetSession(c *gin.Context) {
	h.sessionCommand(c, statusReset, "session_reset_failed", h.services.Session.Reset)
}

// @Summary      Resync session clock
// @Description  Called when the shell becomes visible again; time spent hidden is not counted
// @Tags         session
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, session"
// @Failure      401  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/v1/session/resync [post]
// @Security     BearerAuth
func (h *Handler) resyncSession(c *gin.Context) {
	h.sessionCommand(c, statusResynced, "session_resync_failed", h.services.Session.Resync)
}

// @Summary      Get session state
// @Tags         session
// @Produce      json
// @Success      200  {object}  service.SessionSnapshot
// @Failure      401  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/v1/session/state [get]
// @Security     BearerAuth
func (h *Handler) getSessionState(c *gin.Context) {
	snap, err := h.services.Session.Snapshot()
	if err != nil {
		h.respondServiceError(c, "session_get_state_failed", err)
		return
	}
	c.JSON(http.StatusOK, snap)
}
