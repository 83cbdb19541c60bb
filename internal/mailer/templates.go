package mailer

import (
	"html"
	"strings"

	"cloudpillers-api/internal/domain"
)

func esc(s string) string {
	return html.EscapeString(s)
}

func fieldRow(label, value string) string {
	if value == "" {
		return ""
	}
	return `<p><strong>` + esc(label) + `:</strong> ` + esc(value) + `</p>`
}

// ContactNotification builds the internal alert sent when a contact form
// is submitted.
func ContactNotification(to string, c *domain.Contact) Message {
	var b strings.Builder
	b.WriteString(`<h2>New Contact Form Submission</h2>`)
	b.WriteString(fieldRow("Name", c.Name))
	b.WriteString(`<p><strong>Email:</strong> <a href="mailto:` + esc(c.Email) + `">` + esc(c.Email) + `</a></p>`)
	b.WriteString(fieldRow("Phone", c.Phone))
	b.WriteString(fieldRow("Company", c.Company))
	b.WriteString(fieldRow("Service Interest", c.Service))
	b.WriteString(`<p><strong>Message:</strong><br>` + strings.ReplaceAll(esc(c.Message), "\n", "<br>") + `</p>`)

	return Message{
		To:      []string{to},
		Subject: "New Contact Form Submission from " + c.Name,
		HTML:    b.String(),
	}
}

// AssessmentNotification builds the internal alert sent when an
// assessment request is submitted.
func AssessmentNotification(to string, a *domain.Assessment) Message {
	var b strings.Builder
	b.WriteString(`<h2>New Assessment Request</h2>`)
	b.WriteString(fieldRow("Name", a.Name))
	b.WriteString(`<p><strong>Email:</strong> <a href="mailto:` + esc(a.Email) + `">` + esc(a.Email) + `</a></p>`)
	b.WriteString(fieldRow("Company", a.Company))
	b.WriteString(fieldRow("Company Size", a.CompanySize))
	b.WriteString(fieldRow("Current Cloud Spend", a.CurrentCloudSpend))
	if len(a.Services) > 0 {
		b.WriteString(fieldRow("Services", strings.Join(a.Services, ", ")))
	}
	if len(a.PrimaryChallenges) > 0 {
		b.WriteString(fieldRow("Primary Challenges", strings.Join(a.PrimaryChallenges, ", ")))
	}
	b.WriteString(fieldRow("Timeline", a.Timeline))
	b.WriteString(fieldRow("Budget", a.Budget))
	if a.AdditionalInfo != "" {
		b.WriteString(`<p><strong>Additional Info:</strong><br>` + strings.ReplaceAll(esc(a.AdditionalInfo), "\n", "<br>") + `</p>`)
	}

	subject := "New Assessment Request from " + a.Name
	if a.Company != "" {
		subject += " - " + a.Company
	}
	return Message{
		To:      []string{to},
		Subject: subject,
		HTML:    b.String(),
	}
}

// Confirmation builds the thank-you email sent back to the lead.
// leadKind is "contact" or "assessment".
func Confirmation(to, name, leadKind, clientURL string) Message {
	subject := "Thank you for your assessment request"
	received := "assessment request"
	if leadKind == "contact" {
		subject = "Thank you for contacting CloudPillers"
		received = "message"
	}
	if clientURL == "" {
		clientURL = "https://cloudpillers.com"
	}

	var b strings.Builder
	b.WriteString(`<h1>Thank You, ` + esc(name) + `!</h1>`)
	b.WriteString(`<p>We've received your ` + received + ` and our team will get back to you within 24 hours.</p>`)
	b.WriteString(`<p>In the meantime, feel free to explore our resources or contact us if you have any urgent questions.</p>`)
	b.WriteString(`<p><a href="` + esc(clientURL) + `">Visit Our Website</a></p>`)

	return Message{
		To:      []string{to},
		Subject: subject,
		HTML:    b.String(),
	}
}
