package postprocess

import (
	"fmt"
	"time"

	"github.com/ayush/idea-to-launch/backend/internal/models"
)

const metadataVersion = "1.0"

// OfferParams are the request parameters and generation facts attached to
// an offer.
type OfferParams struct {
	TargetAudience       *string
	Tone                 string
	IncludeLandingPage   bool
	IncludeEmailSequence bool
	GeneratedAt          time.Time
	Model                string
}

// EnrichOffer attaches generation_parameters and metadata to offer, plus a
// tone_adaptation note when the tone is not the default.
func EnrichOffer(offer models.Offer, params OfferParams) models.Offer {
	fields := map[string]any{
		"generation_parameters": map[string]any{
			"target_audience":        params.TargetAudience,
			"tone":                   params.Tone,
			"include_landing_page":   params.IncludeLandingPage,
			"include_email_sequence": params.IncludeEmailSequence,
		},
		"metadata": map[string]any{
			"generated_at": params.GeneratedAt.UTC().Format(time.RFC3339),
			"version":      metadataVersion,
			"ai_model":     params.Model,
		},
	}
	if params.Tone != models.DefaultTone {
		fields["tone_adaptation"] = fmt.Sprintf("Adapted for a %s tone", params.Tone)
	}
	return offer.With(fields)
}
