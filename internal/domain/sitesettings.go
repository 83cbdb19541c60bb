package domain

import "time"

// SiteSettings is the singleton document holding site-wide configuration
// shown in headers, footers and the contact page.
type SiteSettings struct {
	ID                 string        `json:"id"`
	CompanyName        string        `json:"company_name"`
	CompanyTagline     string        `json:"company_tagline"`
	CompanyDescription string        `json:"company_description"`
	Logo               string        `json:"logo,omitempty"`
	Favicon            string        `json:"favicon,omitempty"`
	ContactEmail       string        `json:"contact_email"`
	SupportEmail       string        `json:"support_email"`
	SalesEmail         string        `json:"sales_email"`
	Phone              string        `json:"phone"`
	Address            Address       `json:"address"`
	SocialMedia        SocialMedia   `json:"social_media"`
	BusinessHours      BusinessHours `json:"business_hours"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

// Address is the company mailing address.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// SocialMedia holds the footer social links.
type SocialMedia struct {
	LinkedIn  string `json:"linkedin"`
	Twitter   string `json:"twitter"`
	GitHub    string `json:"github"`
	Facebook  string `json:"facebook"`
	YouTube   string `json:"youtube"`
	Instagram string `json:"instagram"`
}

// BusinessHours describes availability shown on the contact page.
type BusinessHours struct {
	Timezone            string `json:"timezone"`
	Hours               string `json:"hours"`
	SupportAvailability string `json:"support_availability"`
}

// DefaultSiteSettings returns the settings created on first access.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		CompanyName:        "CloudPillers",
		CompanyTagline:     "Build, Secure & Optimize Your Cloud Infrastructure",
		CompanyDescription: "Enterprise-grade DevOps, Security, Compliance, and Cost Optimization services for cloud-native businesses.",
		ContactEmail:       "contact@cloudpillers.com",
		SupportEmail:       "support@cloudpillers.com",
		SalesEmail:         "sales@cloudpillers.com",
		Phone:              "+1 (555) 123-4567",
		Address: Address{
			City:    "San Francisco",
			State:   "CA",
			Country: "USA",
		},
		BusinessHours: BusinessHours{
			Timezone:            "America/Los_Angeles",
			Hours:               "Monday - Friday: 9:00 AM - 6:00 PM PST",
			SupportAvailability: "24/7",
		},
	}
}
