package models

import (
	"encoding/json"
	"errors"
	"strings"
)

var offerKeys = []string{
	"title", "value_proposition", "benefits", "landing_page_text",
	"welcome_email", "cta_primary", "seo_keywords",
}

// Email is the welcome email attached to an offer.
type Email struct {
	Subject string `json:"subject"`
	Content string `json:"content"`
}

// Offer is the marketing offer produced for a topic and product.
type Offer struct {
	Title            string   `json:"title,omitempty"`
	ValueProposition string   `json:"value_proposition,omitempty"`
	Benefits         []string `json:"benefits,omitempty"`
	LandingPageText  string   `json:"landing_page_text,omitempty"`
	WelcomeEmail     *Email   `json:"welcome_email,omitempty"`
	CTAPrimary       string   `json:"cta_primary,omitempty"`
	SEOKeywords      []string `json:"seo_keywords,omitempty"`

	Extra Extra `json:"-"`
}

func (o *Offer) UnmarshalJSON(data []byte) error {
	type plain Offer
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	extra, err := extraFields(data, offerKeys)
	if err != nil {
		return err
	}
	*o = Offer(v)
	o.Extra = extra
	return nil
}

func (o Offer) MarshalJSON() ([]byte, error) {
	type plain Offer
	return mergeObject(plain(o), extraMap(o.Extra), false)
}

// Validate checks the fields a generated offer must carry. Offers supplied by
// clients as input to the ads stage are not validated.
func (o Offer) Validate() error {
	var errs []error
	if strings.TrimSpace(o.Title) == "" {
		errs = append(errs, errors.New("title is required"))
	}
	if strings.TrimSpace(o.ValueProposition) == "" {
		errs = append(errs, errors.New("value_proposition is required"))
	}
	if len(o.Benefits) == 0 {
		errs = append(errs, errors.New("benefits is required"))
	}
	if strings.TrimSpace(o.CTAPrimary) == "" {
		errs = append(errs, errors.New("cta_primary is required"))
	}
	return errors.Join(errs...)
}

// With returns a copy carrying the additional fields.
func (o Offer) With(fields map[string]any) Offer {
	o.Extra = copyExtra(o.Extra, fields)
	return o
}
