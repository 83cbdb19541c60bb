package domain

import "time"

// ServiceContent is the structured copy for one service detail page,
// addressed by its service ID rather than a generated record ID.
type ServiceContent struct {
	ID          string           `json:"id"`
	ServiceID   string           `json:"service_id"`
	ServiceName string           `json:"service_name"`
	Hero        Hero             `json:"hero"`
	Features    []ServiceFeature `json:"features"`
	Benefits    []ServiceBenefit `json:"benefits"`
	Outcomes    []ServiceOutcome `json:"outcomes"`
	CTA         ServiceCTA       `json:"cta"`
	SEO         ServiceSEO       `json:"seo"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ServiceFeature is a capability block on a service page.
type ServiceFeature struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Items       []string `json:"items,omitempty"`
	Order       int      `json:"order"`
}

// ServiceBenefit is a one-liner in the benefits list.
type ServiceBenefit struct {
	Text  string `json:"text"`
	Order int    `json:"order"`
}

// ServiceOutcome is a metric/label pair in the outcomes strip.
type ServiceOutcome struct {
	Metric string `json:"metric,omitempty"`
	Label  string `json:"label"`
	Order  int    `json:"order"`
}

// ServiceCTA is the closing call-to-action block.
type ServiceCTA struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	ButtonText  string `json:"button_text"`
}

// ServiceSEO holds per-service meta tags.
type ServiceSEO struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Keywords    string `json:"keywords,omitempty"`
}

// ValidServiceIDs contains the service pages that can carry content.
var ValidServiceIDs = []string{
	"devops",
	"cybersecurity",
	"compliance",
	"cost-optimization",
	"re-architecture",
	"managed-support",
	"vpn-firewall",
}

// IsValidServiceID checks if a service ID is valid.
func IsValidServiceID(id string) bool {
	for _, s := range ValidServiceIDs {
		if s == id {
			return true
		}
	}
	return false
}
