// Audit utility HTTP handlers.
//
// This file exposes two small endpoints that write straight to the audit
// log:
//   - GET /api/selftest   liveness probe that proves the events table is
//     writable
//   - ANY /api/event      generic recorder for unclassified provider
//     callbacks
package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/OmidAcu/acutrader-web/internal/paddle"
)

// Selftest godoc
// @ID          selftest
// @Summary     Liveness probe with a database write
// @Tags        Ops
// @Produce     plain
// @Success     200 {string} string "selftest ok"
// @Router      /selftest [get]
func (h *Handlers) Selftest(c *gin.Context) {
	h.audit.Record(c.Request.Context(), "selftest", map[string]bool{"ping": true})
	c.String(http.StatusOK, "selftest ok")
}

// RecordEvent accepts any method and body, infers a best-effort event-type
// label from the JSON payload, records it, and always answers 200 "ok".
// Used for provider callbacks the system has no specific handler for.
func (h *Handlers) RecordEvent(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		raw = nil
	}

	typ := "unclassified"
	var body any = map[string]any{}
	if len(raw) > 0 {
		payload := paddle.Payload{}
		if err := json.Unmarshal(raw, &payload); err == nil {
			typ = payload.EventType()
			body = payload
		} else {
			body = map[string]string{"raw": string(raw)}
		}
	}

	h.audit.Record(c.Request.Context(), typ, body)
	c.String(http.StatusOK, "ok")
}
