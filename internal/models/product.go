package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Product types.
const (
	ProductSaaS    = "saas"
	ProductInfo    = "info"
	ProductService = "service"
)

// ProductTypes lists every product type in prompt order.
var ProductTypes = []string{ProductSaaS, ProductInfo, ProductService}

const (
	DefaultDifficulty       = 5
	DefaultRevenuePotential = LevelMedium
)

var productKeys = []string{
	"name", "type", "description", "suggested_price", "difficulty",
	"revenue_potential", "technologies", "development_time", "target_audience",
}

// Product is one candidate digital product from the products stage.
type Product struct {
	Name             string   `json:"name,omitempty"`
	Type             string   `json:"type,omitempty"`
	Description      string   `json:"description,omitempty"`
	SuggestedPrice   string   `json:"suggested_price,omitempty"`
	Difficulty       *int     `json:"difficulty,omitempty"`
	RevenuePotential string   `json:"revenue_potential,omitempty"`
	Technologies     []string `json:"technologies,omitempty"`
	DevelopmentTime  string   `json:"development_time,omitempty"`
	TargetAudience   string   `json:"target_audience,omitempty"`

	Extra Extra `json:"-"`
}

func (p *Product) UnmarshalJSON(data []byte) error {
	type plain Product
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	extra, err := extraFields(data, productKeys)
	if err != nil {
		return err
	}
	*p = Product(v)
	p.Extra = extra
	return nil
}

func (p Product) MarshalJSON() ([]byte, error) {
	type plain Product
	return mergeObject(plain(p), extraMap(p.Extra), false)
}

// DifficultyOrDefault returns the difficulty, or 5 when the model omitted it.
func (p Product) DifficultyOrDefault() int {
	if p.Difficulty == nil {
		return DefaultDifficulty
	}
	return *p.Difficulty
}

// RevenueOrDefault returns the lowercased revenue potential, or "medium"
// when the model omitted it.
func (p Product) RevenueOrDefault() string {
	if p.RevenuePotential == "" {
		return DefaultRevenuePotential
	}
	return strings.ToLower(p.RevenuePotential)
}

// Validate checks the fields a generated product must carry and lowercases
// Type in place. Optional fields are only checked when present.
func (p *Product) Validate() error {
	var errs []error
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, errors.New("name is required"))
	}
	p.Type = strings.ToLower(strings.TrimSpace(p.Type))
	if !IsProductType(p.Type) {
		errs = append(errs, fmt.Errorf("type %q is not saas/info/service", p.Type))
	}
	if strings.TrimSpace(p.Description) == "" {
		errs = append(errs, errors.New("description is required"))
	}
	if p.Difficulty != nil && (*p.Difficulty < 1 || *p.Difficulty > 10) {
		errs = append(errs, fmt.Errorf("difficulty %d is outside 1-10", *p.Difficulty))
	}
	if p.RevenuePotential != "" {
		if _, ok := NormalizeLevel(p.RevenuePotential); !ok {
			errs = append(errs, fmt.Errorf("revenue_potential %q is not low/medium/high", p.RevenuePotential))
		}
	}
	return errors.Join(errs...)
}

// IsProductType reports whether t is saas, info or service.
func IsProductType(t string) bool {
	switch t {
	case ProductSaaS, ProductInfo, ProductService:
		return true
	}
	return false
}

// IntPtr is a helper for optional integer fields.
func IntPtr(n int) *int { return &n }

// With returns a copy carrying the additional fields. Typed fields are never
// touched.
func (p Product) With(fields map[string]any) Product {
	p.Extra = copyExtra(p.Extra, fields)
	return p
}
