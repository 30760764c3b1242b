package api

import (
	"net/http"

	"github.com/ayush/idea-to-launch/backend/internal/catalog"
	"github.com/ayush/idea-to-launch/backend/internal/models"
	"github.com/ayush/idea-to-launch/backend/internal/postprocess"
)

const (
	prefixOffer     = "Error generating offer"
	prefixAds       = "Error generating ads"
	prefixTemplates = "Error fetching offer templates"
	prefixPlatforms = "Error fetching ad platforms"
)

type offerResponse struct {
	Topic   string         `json:"topic"`
	Product models.Product `json:"product"`
	Offer   models.Offer   `json:"offer"`
	Status  string         `json:"status"`
}

type adsResponse struct {
	Topic  string       `json:"topic"`
	Offer  models.Offer `json:"offer"`
	Ads    []models.Ad  `json:"ads"`
	Status string       `json:"status"`
}

// GenerateOffer handles POST /api/generate/offer.
func (h *Handler) GenerateOffer(w http.ResponseWriter, r *http.Request) error {
	var req models.GenerateOfferRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}
	if err := req.Normalize(); err != nil {
		return validation(err)
	}

	offer := h.gen.GenerateOffer(r.Context(), req.Topic, req.Product)
	offer = postprocess.EnrichOffer(offer, postprocess.OfferParams{
		TargetAudience:       req.TargetAudience,
		Tone:                 req.Tone,
		IncludeLandingPage:   *req.IncludeLandingPage,
		IncludeEmailSequence: *req.IncludeEmailSequence,
		GeneratedAt:          h.now(),
		Model:                h.info.Model,
	})

	return writeJSON(w, http.StatusOK, offerResponse{
		Topic:   req.Topic,
		Product: req.Product,
		Offer:   offer,
		Status:  statusSuccess,
	})
}

// GenerateAds handles POST /api/generate/ads.
func (h *Handler) GenerateAds(w http.ResponseWriter, r *http.Request) error {
	var req models.GenerateAdsRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}
	if err := req.Normalize(); err != nil {
		return validation(err)
	}

	ads := h.gen.GenerateAds(r.Context(), req.Topic, req.Offer)
	ads = postprocess.FilterAdsByPlatforms(ads, req.Platforms)
	ads = postprocess.EnrichAds(ads, postprocess.AdParams{
		TargetAudience: req.TargetAudience,
		BudgetRange:    req.BudgetRange,
		Platforms:      req.Platforms,
	})

	return writeJSON(w, http.StatusOK, adsResponse{
		Topic:  req.Topic,
		Offer:  req.Offer,
		Ads:    ads,
		Status: statusSuccess,
	})
}

// OfferTemplates handles GET /api/generate/offer/templates.
func (h *Handler) OfferTemplates(w http.ResponseWriter, r *http.Request) error {
	templates := catalog.OfferTemplates()
	return writeJSON(w, http.StatusOK, map[string]any{
		"templates":       templates,
		"total_templates": len(templates),
		"usage_notes":     catalog.OfferTemplatesNote,
	})
}

// AdPlatforms handles GET /api/generate/ads/platforms.
func (h *Handler) AdPlatforms(w http.ResponseWriter, r *http.Request) error {
	platforms := catalog.AdPlatforms()
	return writeJSON(w, http.StatusOK, map[string]any{
		"platforms":       platforms,
		"total_platforms": len(platforms),
		"recommendations": catalog.PlatformRecommendations(),
	})
}
