package gateway

import (
	"crypto/subtle"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/johann95ko/covid19-telegram-bot/internal/bot"
	"github.com/johann95ko/covid19-telegram-bot/internal/telegram"
)

// maxBodyBytes bounds webhook payload reads. Telegram updates are small.
const maxBodyBytes = 1 << 20

// webhookResponse is the body returned for every webhook call. The
// endpoint answers HTTP 200 unconditionally and signals the outcome in
// the success flag; Telegram retries non-2xx responses, which would
// replay permanently failing updates.
type webhookResponse struct {
	Success bool `json:"success"`
}

// handleWebhook returns the handler for POST /webhook.
func (g *Gateway) handleWebhook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()

		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
		if err != nil {
			g.logger.Warn("webhook body read failed", "error", err)
			g.respond(w, false, "parse_error", started)
			return
		}

		if g.secret != "" {
			token := r.Header.Get("X-Telegram-Bot-Api-Secret-Token")
			if subtle.ConstantTimeCompare([]byte(g.secret), []byte(token)) != 1 {
				g.logger.Warn("webhook secret token mismatch", "remote", r.RemoteAddr)
				g.respond(w, false, "bad_secret", started)
				return
			}
		}

		var update telegram.Update
		if err := json.Unmarshal(body, &update); err != nil {
			g.logger.Warn("webhook payload not valid JSON", "error", err)
			g.respond(w, false, "parse_error", started)
			return
		}

		in, ok := bot.ParseUpdate(&update)
		if !ok {
			// Non-text updates are a normal no-op, not a failure.
			g.logger.Debug("webhook update carries no text", "update_id", update.UpdateID)
			g.respond(w, true, "no_text", started)
			return
		}

		res := g.session.Handle(r.Context(), in)
		g.metrics.RecordRequest(res.Intent.String(), res.Outcome.String())
		g.respond(w, res.Outcome != bot.Failed, res.Outcome.String(), started)
	}
}

func (g *Gateway) respond(w http.ResponseWriter, success bool, disposition string, started time.Time) {
	g.metrics.ObserveDuration(disposition, time.Since(started))
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(webhookResponse{Success: success})
}
