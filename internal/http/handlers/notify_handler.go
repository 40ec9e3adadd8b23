// License-notify HTTP handler.
//
// This file exposes the internal license-delivery endpoint:
//   - POST /api/license-notify
//
// The endpoint is gated by a shared-secret token carried in the body; it is
// the sole authentication mechanism (no signature, no rate budget of its
// own, no replay protection). On success the request has been forwarded to
// the mailing-list provider, which owns the actual email send.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/OmidAcu/acutrader-web/internal/kit"
	"github.com/OmidAcu/acutrader-web/internal/services"
)

// LicenseNotifyRequest is the JSON payload of the internal notify contract.
type LicenseNotifyRequest struct {
	Token      string `json:"token" example:"shared-secret"`
	Email      string `json:"email" example:"trader@example.com"`
	LicenseKey string `json:"license_key" example:"XK7mPq2RtYw9nCfH4dGb8ZsV"`
	Platform   string `json:"platform" example:"nt"`
}

// LicenseNotify godoc
// @ID          licenseNotify
// @Summary     Forward a license-delivery email request
// @Description Validates the shared token and subscribes the customer on the mailing-list provider with license key and platform attached.
// @Tags        Notify
// @Accept      json
// @Produce     plain
// @Param       body body handlers.LicenseNotifyRequest true "Delivery request"
// @Success     200 {string} string "ok"
// @Failure     400 {string} string "missing fields"
// @Failure     401 {string} string "unauthorized"
// @Failure     502 {string} string "kit error"
// @Router      /license-notify [post]
func (h *Handlers) LicenseNotify(c *gin.Context) {
	var req LicenseNotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "invalid json")
		return
	}

	err := h.notifySvc.Deliver(c.Request.Context(), services.NotifyRequest{
		Token:      req.Token,
		Email:      req.Email,
		LicenseKey: req.LicenseKey,
		Platform:   req.Platform,
	})
	if err == nil {
		c.String(http.StatusOK, "ok")
		return
	}

	switch {
	case errors.Is(err, services.ErrUnauthorized):
		c.String(http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, services.ErrMissingFields):
		c.String(http.StatusBadRequest, "missing fields")
	default:
		// Downstream failure: embed the provider's own error text.
		var upstream *kit.UpstreamError
		if errors.As(err, &upstream) {
			c.String(http.StatusBadGateway, "kit error: %s", upstream.Body)
			return
		}
		c.String(http.StatusBadGateway, "kit error: %s", err.Error())
	}
}
