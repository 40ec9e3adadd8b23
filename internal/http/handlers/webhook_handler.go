// Paddle webhook HTTP handler.
//
// This file exposes the inbound payment-provider endpoint:
//   - POST /api/paddle-webhook
//
// The endpoint never rejects a request because optional fields are missing;
// the only client error is an unparseable body. Response bodies are the
// short plain-text strings the provider integration was built against.
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/OmidAcu/acutrader-web/internal/paddle"
	"github.com/OmidAcu/acutrader-web/internal/services"
)

// PaddleWebhook godoc
// @ID          paddleWebhook
// @Summary     Ingest a Paddle webhook event
// @Description Records the raw event, upserts customer/subscription state, and provisions a license on success-like statuses.
// @Tags        Webhook
// @Accept      json
// @Produce     plain
// @Success     200 {string} string "ok"
// @Failure     400 {string} string "invalid json"
// @Failure     500 {string} string "customer upsert failed"
// @Router      /paddle-webhook [post]
func (h *Handlers) PaddleWebhook(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		raw = nil
	}

	// An empty body is treated as an empty event, not an error.
	payload := paddle.Payload{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &payload); err != nil {
			h.webhookSvc.RecordInvalid(c.Request.Context(), "invalid json")
			c.String(http.StatusBadRequest, "invalid json")
			return
		}
	}

	outcome, err := h.webhookSvc.Process(c.Request.Context(), payload)
	if err != nil {
		if errors.Is(err, services.ErrCustomerUpsert) {
			c.String(http.StatusInternalServerError, "customer upsert failed")
			return
		}
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	if outcome == services.OutcomeNoEmail {
		c.String(http.StatusOK, "ok (no email)")
		return
	}
	c.String(http.StatusOK, "ok")
}
