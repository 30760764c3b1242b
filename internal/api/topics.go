package api

import (
	"net/http"
	"time"

	"github.com/ayush/idea-to-launch/backend/internal/catalog"
	"github.com/ayush/idea-to-launch/backend/internal/models"
)

const (
	prefixTrends       = "Error analyzing trends"
	prefixTrendingList = "Error fetching trending topics"
	dataFreshness      = "24h"
)

type topicSearchResponse struct {
	Topic          string                `json:"topic"`
	TrendsAnalysis models.TrendsAnalysis `json:"trends_analysis"`
	ExternalData   map[string]any        `json:"external_data"`
	Status         string                `json:"status"`
}

// SearchTopics handles GET /api/topics/search.
func (h *Handler) SearchTopics(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	topic, err := models.ValidateTopic(q.Get("topic"))
	if err != nil {
		return validation(err)
	}

	var sources models.SourceToggles
	if sources.GoogleTrends, err = queryBool(q, "include_google_trends", true); err != nil {
		return err
	}
	if sources.Reddit, err = queryBool(q, "include_reddit", true); err != nil {
		return err
	}
	if sources.SERP, err = queryBool(q, "include_serp", true); err != nil {
		return err
	}

	return h.searchTopics(w, r, topic, sources, nil)
}

// SearchTopicsPost handles POST /api/topics/search.
func (h *Handler) SearchTopicsPost(w http.ResponseWriter, r *http.Request) error {
	var req models.TopicSearchRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}
	topic, err := models.ValidateTopic(req.Topic)
	if err != nil {
		return validation(err)
	}
	return h.searchTopics(w, r, topic, req.Sources(), req.Parameters())
}

func (h *Handler) searchTopics(w http.ResponseWriter, r *http.Request, topic string,
	sources models.SourceToggles, params map[string]any) error {
	analysis := h.gen.AnalyzeTrends(r.Context(), topic)
	external := catalog.ExternalData(topic, sources)

	fields := map[string]any{
		"external_sources": external,
		"search_timestamp": h.now().UTC().Format(time.RFC3339),
		"data_freshness":   dataFreshness,
	}
	if params != nil {
		fields["request_parameters"] = params
	}

	return writeJSON(w, http.StatusOK, topicSearchResponse{
		Topic:          topic,
		TrendsAnalysis: analysis.With(fields),
		ExternalData:   external,
		Status:         statusSuccess,
	})
}

// TrendingTopics handles GET /api/topics/trending.
func (h *Handler) TrendingTopics(w http.ResponseWriter, r *http.Request) error {
	limit, err := queryInt(r.URL.Query(), "limit", 10, 1, 50)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, map[string]any{
		"trending_topics": catalog.TrendingTopics(limit),
		"last_updated":    catalog.LastUpdated,
		"source":          "aggregated_data",
	})
}
