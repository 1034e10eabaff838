package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"airport-nav-service/internal/domain"
	"airport-nav-service/internal/ports"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("response encode failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// decodeJSON decodes exactly one JSON object from the body, rejecting
// unknown fields and trailing content.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errTrailingBody
	}
	return nil
}

type bodyError string

func (e bodyError) Error() string { return string(e) }

const errTrailingBody = bodyError("body must contain only one JSON object")

// parseFloatParam reads a required float query parameter. The second
// return value reports whether the parameter was present and valid.
func parseFloatParam(r *http.Request, name string) (float64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// facilitySummaries prepares domain records for notification tables.
func facilitySummaries(fs []*domain.Facility) []ports.FacilitySummary {
	out := make([]ports.FacilitySummary, 0, len(fs))
	for _, f := range fs {
		out = append(out, ports.FacilitySummary{
			ID:          strconv.FormatInt(f.ID, 10),
			Name:        f.Name,
			Category:    f.Category,
			Coordinates: f.Coordinates,
			Description: f.Description,
			CreatedAt:   f.CreatedAtDisplay(),
		})
	}
	return out
}

// notifySuccess sends a success notification; delivery problems are
// logged, never surfaced to the API client.
func notifySuccess(ctx context.Context, n ports.Notifier, subject, body string, facilities []ports.FacilitySummary, count int) {
	if n == nil {
		return
	}
	if err := n.NotifySuccess(ctx, subject, body, facilities, count); err != nil {
		zap.L().Warn("success notification failed",
			zap.String("subject", subject),
			zap.Error(err),
		)
	}
}

// notifyFailure sends a failure notification to the error-handling group;
// delivery problems are logged, never surfaced to the API client.
func notifyFailure(ctx context.Context, n ports.Notifier, subject, details string) {
	if n == nil {
		return
	}
	if err := n.NotifyFailure(ctx, subject, details, ""); err != nil {
		zap.L().Warn("failure notification failed",
			zap.String("subject", subject),
			zap.Error(err),
		)
	}
}
