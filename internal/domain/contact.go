package domain

import "time"

// Contact represents a contact-form submission.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	Service   string    `json:"service"`
	Source    string    `json:"source,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContactServiceGeneral is the default service when the form does not
// pick one.
const ContactServiceGeneral = "general"

// ValidContactServices contains the services a contact form can reference.
var ValidContactServices = []string{
	"devops",
	"cybersecurity",
	"compliance",
	"finops",
	"re-architecture",
	"managed-support",
	"vpn-firewall",
	ContactServiceGeneral,
}

// ContactStatusNew is the status assigned to fresh submissions.
const ContactStatusNew = "new"

// ValidContactStatuses contains the lead-pipeline statuses for contacts.
var ValidContactStatuses = []string{ContactStatusNew, "contacted", "qualified", "closed"}

// IsValidContactService checks if a service value is valid.
func IsValidContactService(service string) bool {
	for _, s := range ValidContactServices {
		if s == service {
			return true
		}
	}
	return false
}

// IsValidContactStatus checks if a contact status is valid.
func IsValidContactStatus(status string) bool {
	for _, s := range ValidContactStatuses {
		if s == status {
			return true
		}
	}
	return false
}
