package postprocess

import (
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/ayush/idea-to-launch/backend/internal/models"
)

// BudgetMultipliers scale suggested budgets by requested range. Any other
// range uses 1.0.
var BudgetMultipliers = map[string]float64{
	"low":    0.5,
	"medium": 1.0,
	"high":   2.0,
}

var budgetPattern = regexp.MustCompile(`^\$(\d+(?:\.\d+)?)/day$`)

// CanonicalPlatforms maps request keys to the platform names ads carry.
// Unknown keys are kept as given.
func CanonicalPlatforms(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if name, ok := models.PlatformNames[strings.ToLower(k)]; ok {
			out = append(out, name)
			continue
		}
		out = append(out, k)
	}
	return out
}

// FilterAdsByPlatforms keeps the ads whose platform is one of the requested
// platforms, in their original order.
func FilterAdsByPlatforms(ads []models.Ad, platforms []string) []models.Ad {
	wanted := CanonicalPlatforms(platforms)
	out := make([]models.Ad, 0, len(ads))
	for _, a := range ads {
		if slices.Contains(wanted, a.Platform) {
			out = append(out, a)
		}
	}
	return out
}

// RescaleBudget multiplies the amount of a "$<amount>/day" budget by the
// range multiplier and rounds it to whole dollars. Strings of any other shape
// and a multiplier of 1.0 leave budget unchanged.
func RescaleBudget(budget, budgetRange string) string {
	mult, ok := BudgetMultipliers[budgetRange]
	if !ok || mult == 1.0 {
		return budget
	}
	m := budgetPattern.FindStringSubmatch(budget)
	if m == nil {
		return budget
	}
	amount, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return budget
	}
	return "$" + strconv.FormatFloat(math.Round(amount*mult), 'f', 0, 64) + "/day"
}

// AdParams are the request parameters echoed on every ad.
type AdParams struct {
	TargetAudience *string  `json:"target_audience"`
	BudgetRange    string   `json:"budget_range"`
	Platforms      []string `json:"platforms"`
}

// EnrichAds rescales each ad's budget and attaches generation_parameters.
func EnrichAds(ads []models.Ad, params AdParams) []models.Ad {
	out := make([]models.Ad, 0, len(ads))
	for _, a := range ads {
		if a.SuggestedBudget != "" {
			a.SuggestedBudget = RescaleBudget(a.SuggestedBudget, params.BudgetRange)
		}
		out = append(out, a.With(map[string]any{"generation_parameters": params}))
	}
	return out
}
