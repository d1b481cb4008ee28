package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/blast-campaigns/internal/bundle"
	"github.com/slack-go/slack"
)

// slackTableLimit caps the rows shown in a slash command reply.
const slackTableLimit = 10

// respondWithSlackMsg is a helper to format and write a Slack message as an HTTP response.
func respondWithSlackMsg(w http.ResponseWriter, msg slack.Message) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		log.Error("Failed to encode slack message to JSON", "error", err)
	}
}

// parseLeaderboardText reads "[division_key] [round_key]" from the command text.
func parseLeaderboardText(text string) (divisionKey, roundKey string) {
	parts := strings.Fields(text)
	if len(parts) > 0 {
		divisionKey = parts[0]
	}
	if len(parts) > 1 {
		roundKey = parts[1]
	}
	return divisionKey, roundKey
}

// LeaderboardCommandHandler answers /leaderboard with the ranked table of the
// requested division, using the default event and season.
func (s *Server) LeaderboardCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cmd, err := slack.SlashCommandParse(r)
		if err != nil {
			log.Error("Failed to parse slash command", "error", err)
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			s.Metrics.IncSlackCommands("invalid")
			return
		}
		divisionKey, roundKey := parseLeaderboardText(cmd.Text)
		log.Info("Received leaderboard command", "user", cmd.UserName, "division", divisionKey, "round", roundKey)

		b, err := s.Bundles.Get(r.Context(), bundle.Query{DivisionKey: divisionKey, RoundKey: roundKey})
		if err != nil {
			log.Error("Failed to assemble bundle for slash command", "error", err)
			s.Metrics.IncSlackCommands("failed")
			s.respondSlack(w, func() (any, error) { return s.Notifier.FormatErrorResponse("Campaign data is unavailable right now.") })
			return
		}

		s.Metrics.IncSlackCommands("ok")
		s.respondSlack(w, func() (any, error) { return s.Notifier.FormatLeaderboardResponse(b, slackTableLimit) })
	}
}

func (s *Server) respondSlack(w http.ResponseWriter, format func() (any, error)) {
	msg, err := format()
	if err != nil {
		http.Error(w, "Failed to format message", http.StatusInternalServerError)
		log.Error("Failed to format slack message", "error", err)
		return
	}
	slackMsg, ok := msg.(slack.Message)
	if !ok {
		http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
		log.Error("Failed to cast message to slack.Message")
		return
	}
	respondWithSlackMsg(w, slackMsg)
}

// slackVerifyMiddleware rejects requests that are not signed with the
// configured signing secret. Verification is skipped when no secret is set.
func (s *Server) slackVerifyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		secret := s.Cfg.Slack.SigningSecret
		if secret == "" {
			log.Warn("Slack signing secret not configured, skipping verification")
			next.ServeHTTP(w, r)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		verifier, err := slack.NewSecretsVerifier(r.Header, secret)
		if err != nil {
			log.Warn("Missing Slack signature headers", "error", err)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		if _, err := verifier.Write(body); err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		if err := verifier.Ensure(); err != nil {
			log.Warn("Invalid Slack signature", "error", err)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
