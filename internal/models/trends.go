package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

var trendsKeys = []string{
	"trending_topics", "market_opportunities", "challenges",
	"competition_level", "technical_feasibility", "market_potential",
}

// TrendsAnalysis is the output of the trends stage.
type TrendsAnalysis struct {
	TrendingTopics       []string `json:"trending_topics"`
	MarketOpportunities  []string `json:"market_opportunities"`
	Challenges           []string `json:"challenges"`
	CompetitionLevel     string   `json:"competition_level"`
	TechnicalFeasibility int      `json:"technical_feasibility"`
	MarketPotential      string   `json:"market_potential"`

	Extra Extra `json:"-"`
}

func (t *TrendsAnalysis) UnmarshalJSON(data []byte) error {
	type plain TrendsAnalysis
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	extra, err := extraFields(data, trendsKeys)
	if err != nil {
		return err
	}
	*t = TrendsAnalysis(v)
	t.Extra = extra
	return nil
}

func (t TrendsAnalysis) MarshalJSON() ([]byte, error) {
	type plain TrendsAnalysis
	return mergeObject(plain(t), extraMap(t.Extra), false)
}

// Validate checks required fields and lowercases the two level fields.
func (t *TrendsAnalysis) Validate() error {
	var errs []error
	if t.TrendingTopics == nil {
		errs = append(errs, errors.New("trending_topics is required"))
	}
	if t.MarketOpportunities == nil {
		errs = append(errs, errors.New("market_opportunities is required"))
	}
	if t.Challenges == nil {
		errs = append(errs, errors.New("challenges is required"))
	}
	if lvl, ok := NormalizeLevel(t.CompetitionLevel); ok {
		t.CompetitionLevel = lvl
	} else {
		errs = append(errs, fmt.Errorf("competition_level %q is not low/medium/high", t.CompetitionLevel))
	}
	if lvl, ok := NormalizeLevel(t.MarketPotential); ok {
		t.MarketPotential = lvl
	} else {
		errs = append(errs, fmt.Errorf("market_potential %q is not low/medium/high", t.MarketPotential))
	}
	if t.TechnicalFeasibility < 1 || t.TechnicalFeasibility > 10 {
		errs = append(errs, fmt.Errorf("technical_feasibility %d is outside 1-10", t.TechnicalFeasibility))
	}
	return errors.Join(errs...)
}

// With returns a copy carrying the additional fields. Typed fields are never
// touched.
func (t TrendsAnalysis) With(fields map[string]any) TrendsAnalysis {
	t.Extra = copyExtra(t.Extra, fields)
	return t
}
