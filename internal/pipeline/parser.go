package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ayush/idea-to-launch/backend/internal/models"
)

// ErrParse marks model output that is not the JSON shape a stage expects.
var ErrParse = errors.New("parse failure")

// ParseTrends decodes the trends stage output.
func ParseTrends(raw string) (models.TrendsAnalysis, error) {
	var ta models.TrendsAnalysis
	if err := decodeObject(StageTrends, raw, &ta); err != nil {
		return models.TrendsAnalysis{}, err
	}
	if err := ta.Validate(); err != nil {
		return models.TrendsAnalysis{}, parseErr(StageTrends, err)
	}
	return ta, nil
}

// ParseProducts decodes the products stage output. The object must hold a
// non-empty "products" list and every product must validate.
func ParseProducts(raw string) ([]models.Product, error) {
	var env struct {
		Products *[]models.Product `json:"products"`
	}
	if err := decodeObject(StageProducts, raw, &env); err != nil {
		return nil, err
	}
	if env.Products == nil {
		return nil, parseErr(StageProducts, errors.New(`missing "products" list`))
	}
	products := *env.Products
	if len(products) == 0 {
		return nil, parseErr(StageProducts, errors.New("no products"))
	}
	for i := range products {
		if err := products[i].Validate(); err != nil {
			return nil, parseErr(StageProducts, fmt.Errorf("product %d: %w", i, err))
		}
	}
	return products, nil
}

// ParseOffer decodes the offer stage output.
func ParseOffer(raw string) (models.Offer, error) {
	var o models.Offer
	if err := decodeObject(StageOffer, raw, &o); err != nil {
		return models.Offer{}, err
	}
	if err := o.Validate(); err != nil {
		return models.Offer{}, parseErr(StageOffer, err)
	}
	return o, nil
}

// ParseAds decodes the ads stage output. The object must hold a non-empty
// "ads" list and every ad must validate.
func ParseAds(raw string) ([]models.Ad, error) {
	var env struct {
		Ads *[]models.Ad `json:"ads"`
	}
	if err := decodeObject(StageAds, raw, &env); err != nil {
		return nil, err
	}
	if env.Ads == nil {
		return nil, parseErr(StageAds, errors.New(`missing "ads" list`))
	}
	ads := *env.Ads
	if len(ads) == 0 {
		return nil, parseErr(StageAds, errors.New("no ads"))
	}
	for i, a := range ads {
		if err := a.Validate(); err != nil {
			return nil, parseErr(StageAds, fmt.Errorf("ad %d: %w", i, err))
		}
	}
	return ads, nil
}

// decodeObject unmarshals a JSON object from model output into dst. Markdown
// code fences are removed first; if that still fails, the outermost {...}
// span is tried so leading or trailing prose is tolerated.
func decodeObject(stage Stage, raw string, dst any) error {
	text := stripFence(raw)
	if !json.Valid([]byte(text)) {
		start, end := strings.Index(text, "{"), strings.LastIndex(text, "}")
		if start >= 0 && end > start && json.Valid([]byte(text[start:end+1])) {
			text = text[start : end+1]
		}
	}
	if !strings.HasPrefix(text, "{") {
		return parseErr(stage, errors.New("output is not a JSON object"))
	}
	if err := json.Unmarshal([]byte(text), dst); err != nil {
		return parseErr(stage, err)
	}
	return nil
}

func stripFence(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func parseErr(stage Stage, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrParse, stage, err)
}
