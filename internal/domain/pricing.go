package domain

import "time"

// PricingPlan represents a pricing tier on the public pricing page.
type PricingPlan struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Price       float64       `json:"price"`
	Currency    string        `json:"currency"`
	Period      string        `json:"period"`
	Features    []PlanFeature `json:"features"`
	Popular     bool          `json:"popular"`
	Badge       string        `json:"badge,omitempty"`
	CTAText     string        `json:"cta_text"`
	Order       int           `json:"order"`
	Enabled     bool          `json:"enabled"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// PlanFeature is one line item on a pricing card.
type PlanFeature struct {
	Text     string `json:"text"`
	Included bool   `json:"included"`
	Order    int    `json:"order"`
}

// PlanPeriodMonthly is the default billing period.
const PlanPeriodMonthly = "monthly"

// ValidPlanPeriods contains the accepted billing periods.
var ValidPlanPeriods = []string{PlanPeriodMonthly, "yearly", "one-time"}

// IsValidPlanPeriod checks if a billing period is valid.
func IsValidPlanPeriod(period string) bool {
	for _, p := range ValidPlanPeriods {
		if p == period {
			return true
		}
	}
	return false
}
