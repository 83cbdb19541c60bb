package domain

import "time"

// Assessment represents a free-assessment form submission.
type Assessment struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Company           string    `json:"company,omitempty"`
	CompanySize       string    `json:"company_size,omitempty"`
	CurrentCloudSpend string    `json:"current_cloud_spend,omitempty"`
	PrimaryChallenges []string  `json:"primary_challenges,omitempty"`
	Services          []string  `json:"services,omitempty"`
	Timeline          string    `json:"timeline,omitempty"`
	Budget            string    `json:"budget,omitempty"`
	AdditionalInfo    string    `json:"additional_info,omitempty"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// AssessmentStatusNew is the status assigned to fresh submissions. No
// route mutates assessment status; the field exists for schema parity
// with the lead pipeline.
const AssessmentStatusNew = "new"

// ValidAssessmentStatuses contains the lead-pipeline statuses for assessments.
var ValidAssessmentStatuses = []string{AssessmentStatusNew, "reviewed", "contacted", "qualified"}

// ValidCompanySizes contains the accepted company-size brackets.
var ValidCompanySizes = []string{"1-10", "11-50", "51-200", "201-1000", "1000+"}

// ValidCloudSpends contains the accepted monthly cloud-spend brackets.
var ValidCloudSpends = []string{"<$1k", "$1k-$10k", "$10k-$50k", "$50k-$100k", "$100k+"}

// ValidAssessmentServices contains the services an assessment can request.
var ValidAssessmentServices = []string{
	"devops",
	"cybersecurity",
	"compliance",
	"finops",
	"re-architecture",
	"managed-support",
	"vpn-firewall",
}

// ValidTimelines contains the accepted project timelines.
var ValidTimelines = []string{"immediate", "1-3 months", "3-6 months", "6+ months"}

// ValidBudgets contains the accepted budget brackets.
var ValidBudgets = []string{"<$10k", "$10k-$50k", "$50k-$100k", "$100k+"}
