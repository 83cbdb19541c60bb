package domain

import "time"

// HomepageContent is the singleton document backing the homepage. It is
// lazily created with defaults on first read, so a GET never 404s.
type HomepageContent struct {
	ID        string        `json:"id"`
	Hero      Hero          `json:"hero"`
	Stats     []Stat        `json:"stats"`
	Services  []ServiceCard `json:"services"`
	HowWeWork HowWeWork     `json:"how_we_work"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Hero is the headline block at the top of a page.
type Hero struct {
	Badge        string `json:"badge"`
	MainHeading  string `json:"main_heading"`
	SubHeading   string `json:"sub_heading"`
	Description  string `json:"description"`
	PrimaryCTA   string `json:"primary_cta"`
	SecondaryCTA string `json:"secondary_cta"`
}

// Stat is one entry in the homepage stats strip.
type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Order int    `json:"order"`
}

// ServiceCard is one tile in the homepage services overview.
type ServiceCard struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Gradient    string `json:"gradient"`
	Path        string `json:"path"`
	Enabled     bool   `json:"enabled"`
	Order       int    `json:"order"`
}

// HowWeWork is the process section of the homepage.
type HowWeWork struct {
	Title    string     `json:"title"`
	Subtitle string     `json:"subtitle"`
	Steps    []WorkStep `json:"steps"`
}

// WorkStep is a single numbered step in the process section.
type WorkStep struct {
	Number      string `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

// DefaultHomepageContent returns the content created on first access.
func DefaultHomepageContent() HomepageContent {
	return HomepageContent{
		Hero: Hero{
			Badge:        "Enterprise Cloud Services",
			MainHeading:  "Build, Secure & Optimize",
			SubHeading:   "Your Cloud Infrastructure",
			Description:  "Enterprise-grade DevOps, Security, Compliance, and Cost Optimization services for cloud-native businesses.",
			PrimaryCTA:   "Get Free Assessment",
			SecondaryCTA: "Contact Us",
		},
		Stats: []Stat{
			{Value: "30-60%", Label: "Cost Reduction", Order: 0},
			{Value: "99.99%", Label: "Uptime SLA", Order: 1},
			{Value: "24/7", Label: "Support", Order: 2},
			{Value: "50+", Label: "Clients", Order: 3},
		},
		Services: []ServiceCard{},
		HowWeWork: HowWeWork{
			Title:    "How We Work",
			Subtitle: "Our proven process",
			Steps:    []WorkStep{},
		},
	}
}
