// Package api serves the HTTP JSON interface.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ayush/idea-to-launch/backend/internal/middleware"
	"github.com/ayush/idea-to-launch/backend/internal/models"
)

const statusSuccess = "success"

// Generator runs the generation stages. *pipeline.Pipeline implements it.
type Generator interface {
	AnalyzeTrends(ctx context.Context, topic string) models.TrendsAnalysis
	DiscoverProducts(ctx context.Context, topic string, trends []string) []models.Product
	GenerateOffer(ctx context.Context, topic string, product models.Product) models.Offer
	GenerateAds(ctx context.Context, topic string, offer models.Offer) []models.Ad
}

// ServiceInfo is what /health reports and what offer metadata names.
type ServiceInfo struct {
	OpenAIConfigured   bool
	DatabaseConfigured bool
	Environment        string
	Model              string
}

// Handler holds the HTTP handlers.
type Handler struct {
	gen  Generator
	info ServiceInfo
	log  logrus.FieldLogger
	now  func() time.Time
}

func NewHandler(gen Generator, info ServiceInfo, log logrus.FieldLogger) *Handler {
	return &Handler{gen: gen, info: info, log: log, now: time.Now}
}

// statusError is an error with its own HTTP status and client message.
type statusError struct {
	status int
	detail string
}

func (e *statusError) Error() string { return e.detail }

func invalid(format string, args ...any) error {
	return &statusError{status: http.StatusUnprocessableEntity, detail: fmt.Sprintf(format, args...)}
}

// validation maps model validation errors to 422 and passes others through.
func validation(err error) error {
	if errors.Is(err, models.ErrInvalidTopic) || errors.Is(err, models.ErrInvalidRequest) {
		return invalid("%s", err.Error())
	}
	return err
}

type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// handle adapts fn to http.HandlerFunc. Errors without their own status are
// reported as 500 {"detail": "<prefix>: <error>"}.
func (h *Handler) handle(prefix string, fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		var se *statusError
		if errors.As(err, &se) {
			writeDetail(w, se.status, se.detail)
			return
		}

		h.log.WithFields(logrus.Fields{
			"request_id": middleware.GetRequestID(r.Context()),
			"path":       r.URL.Path,
		}).WithError(err).Error(prefix)
		writeDetail(w, http.StatusInternalServerError, prefix+": "+err.Error())
	}
}

// writeJSON encodes v before touching w so an encoding failure can still be
// reported as an error response.
func writeJSON(w http.ResponseWriter, status int, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
	return nil
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return invalid("invalid request body: %v", err)
	}
	return nil
}

func queryBool(q url.Values, key string, fallback bool) (bool, error) {
	v := q.Get(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, invalid("%s must be a boolean", key)
	}
	return b, nil
}

func queryInt(q url.Values, key string, fallback, lo, hi int) (int, error) {
	v := q.Get(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < lo || n > hi {
		return 0, invalid("%s must be an integer between %d and %d", key, lo, hi)
	}
	return n, nil
}
