package handlers

import (
	"errors"
	"net/http"

	"tabata_timer/internal/service"

	"github.com/gin-gonic/gin"
)

type pinCredentials struct {
	Pin string `json:"pin" binding:"required"`
}

// TokenRequest is an exported model for Swagger docs of the token payload.
type TokenRequest struct {
	// Controller PIN
	Pin string `json:"pin" example:"4321"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return false
	}
	return true
}

// @Summary      Issue controller token
// @Description  Exchanges the controller PIN for a bearer token. Returns 404 when no PIN is configured.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body   TokenRequest  true  "PIN payload"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /auth/token [post]
func (h *Handler) issueToken(c *gin.Context) {
	var input pinCredentials
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.Authorization.GenerateToken(input.Pin)
	if err != nil {
		if errors.Is(err, service.ErrAuthDisabled) {
			c.JSON(http.StatusNotFound, gin.H{"error": "authorization is not enabled"})
			return
		}
		if h.log != nil {
			h.log.Infow("auth_token_failed", "err", err)
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid pin"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
