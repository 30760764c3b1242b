package models

import (
	"encoding/json"
	"errors"
	"strings"
)

// Canonical platform names as they appear in generated ads.
const (
	PlatformFacebook  = "Facebook"
	PlatformGoogleAds = "Google Ads"
	PlatformLinkedIn  = "LinkedIn"
	PlatformTwitter   = "Twitter"
	PlatformTikTok    = "TikTok"
)

// DefaultPlatforms are the lowercase platform keys requested when a client
// does not choose any.
var DefaultPlatforms = []string{"facebook", "google", "linkedin", "twitter", "tiktok"}

// PlatformNames maps lowercase request keys to canonical platform names.
var PlatformNames = map[string]string{
	"facebook": PlatformFacebook,
	"google":   PlatformGoogleAds,
	"linkedin": PlatformLinkedIn,
	"twitter":  PlatformTwitter,
	"tiktok":   PlatformTikTok,
}

var adKeys = []string{
	"platform", "headline", "description", "cta", "keywords",
	"target_audience", "suggested_budget",
}

// Ad is one platform-specific ad draft.
type Ad struct {
	Platform        string   `json:"platform"`
	Headline        string   `json:"headline"`
	Description     string   `json:"description"`
	CTA             string   `json:"cta"`
	Keywords        []string `json:"keywords,omitempty"`
	TargetAudience  string   `json:"target_audience,omitempty"`
	SuggestedBudget string   `json:"suggested_budget,omitempty"`

	Extra Extra `json:"-"`
}

func (a *Ad) UnmarshalJSON(data []byte) error {
	type plain Ad
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	extra, err := extraFields(data, adKeys)
	if err != nil {
		return err
	}
	*a = Ad(v)
	a.Extra = extra
	return nil
}

func (a Ad) MarshalJSON() ([]byte, error) {
	type plain Ad
	return mergeObject(plain(a), extraMap(a.Extra), false)
}

// Validate checks the fields a generated ad must carry. The platform is not
// restricted to the canonical names.
func (a Ad) Validate() error {
	var errs []error
	if strings.TrimSpace(a.Platform) == "" {
		errs = append(errs, errors.New("platform is required"))
	}
	if strings.TrimSpace(a.Headline) == "" {
		errs = append(errs, errors.New("headline is required"))
	}
	if strings.TrimSpace(a.Description) == "" {
		errs = append(errs, errors.New("description is required"))
	}
	if strings.TrimSpace(a.CTA) == "" {
		errs = append(errs, errors.New("cta is required"))
	}
	return errors.Join(errs...)
}

// With returns a copy carrying the additional fields.
func (a Ad) With(fields map[string]any) Ad {
	a.Extra = copyExtra(a.Extra, fields)
	return a
}
