package validator

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"cloudpillers-api/internal/domain"
)

func anySlice(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

var (
	contactServices    = anySlice(domain.ValidContactServices)
	contactStatuses    = anySlice(domain.ValidContactStatuses)
	companySizes       = anySlice(domain.ValidCompanySizes)
	cloudSpends        = anySlice(domain.ValidCloudSpends)
	assessmentServices = anySlice(domain.ValidAssessmentServices)
	timelines          = anySlice(domain.ValidTimelines)
	budgets            = anySlice(domain.ValidBudgets)
	blogCategories     = anySlice(domain.ValidBlogCategories)
	faqCategories      = anySlice(domain.ValidFAQCategories)
	planPeriods        = anySlice(domain.ValidPlanPeriods)
	serviceIDs         = anySlice(domain.ValidServiceIDs)
	userRoles          = anySlice(domain.ValidRoles)
)

// Validator provides validation methods for domain entities.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateContact validates a contact-form submission. Optional enum
// fields are only checked when present.
func (v *Validator) ValidateContact(c *domain.Contact) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Name,
			validation.Required.Error("name_required"),
		),
		validation.Field(&c.Email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
		validation.Field(&c.Message,
			validation.Required.Error("message_required"),
		),
		validation.Field(&c.Service,
			validation.In(contactServices...).Error("invalid_service"),
		),
		validation.Field(&c.Status,
			validation.In(contactStatuses...).Error("invalid_status"),
		),
	)
}

// ValidateContactStatus validates a status transition on a contact lead.
func (v *Validator) ValidateContactStatus(status string) error {
	return validation.Validate(status,
		validation.Required.Error("status_required"),
		validation.In(contactStatuses...).Error("invalid_status"),
	)
}

// ValidateAssessment validates a free-assessment submission.
func (v *Validator) ValidateAssessment(a *domain.Assessment) error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Name,
			validation.Required.Error("name_required"),
		),
		validation.Field(&a.Email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
		validation.Field(&a.CompanySize,
			validation.In(companySizes...).Error("invalid_company_size"),
		),
		validation.Field(&a.CurrentCloudSpend,
			validation.In(cloudSpends...).Error("invalid_cloud_spend"),
		),
		validation.Field(&a.Services,
			validation.Each(validation.In(assessmentServices...).Error("invalid_service")),
		),
		validation.Field(&a.Timeline,
			validation.In(timelines...).Error("invalid_timeline"),
		),
		validation.Field(&a.Budget,
			validation.In(budgets...).Error("invalid_budget"),
		),
	)
}

// ValidateUser validates an admin-panel account.
func (v *Validator) ValidateUser(u *domain.User) error {
	return validation.ValidateStruct(u,
		validation.Field(&u.Name,
			validation.Required.Error("name_required"),
		),
		validation.Field(&u.Email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
		validation.Field(&u.Role,
			validation.In(userRoles...).Error("invalid_role"),
		),
	)
}

// ValidatePassword validates a plaintext password before hashing.
func (v *Validator) ValidatePassword(password string) error {
	return validation.Validate(password,
		validation.Required.Error("password_required"),
		validation.Length(6, 72).Error("password_too_short"),
	)
}

// ValidateBlogPost validates a blog post payload.
func (v *Validator) ValidateBlogPost(p *domain.BlogPost) error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Title,
			validation.Required.Error("title_required"),
		),
		validation.Field(&p.Content,
			validation.Required.Error("content_required"),
		),
		validation.Field(&p.Category,
			validation.In(blogCategories...).Error("invalid_category"),
		),
	)
}

// ValidateFAQ validates an FAQ entry.
func (v *Validator) ValidateFAQ(f *domain.FAQ) error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Question,
			validation.Required.Error("question_required"),
		),
		validation.Field(&f.Answer,
			validation.Required.Error("answer_required"),
		),
		validation.Field(&f.Category,
			validation.In(faqCategories...).Error("invalid_category"),
		),
	)
}

// ValidatePricingPlan validates a pricing tier.
func (v *Validator) ValidatePricingPlan(p *domain.PricingPlan) error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Name,
			validation.Required.Error("name_required"),
		),
		validation.Field(&p.Price,
			validation.Min(0.0).Error("invalid_price"),
		),
		validation.Field(&p.Period,
			validation.In(planPeriods...).Error("invalid_period"),
		),
	)
}

// ValidateTeamMember validates a team page entry.
func (v *Validator) ValidateTeamMember(m *domain.TeamMember) error {
	return validation.ValidateStruct(m,
		validation.Field(&m.Name,
			validation.Required.Error("name_required"),
		),
		validation.Field(&m.Role,
			validation.Required.Error("role_required"),
		),
	)
}

// ValidateTestimonial validates a customer testimonial.
func (v *Validator) ValidateTestimonial(t *domain.Testimonial) error {
	return validation.ValidateStruct(t,
		validation.Field(&t.Name,
			validation.Required.Error("name_required"),
		),
		validation.Field(&t.Company,
			validation.Required.Error("company_required"),
		),
		validation.Field(&t.Testimonial,
			validation.Required.Error("testimonial_required"),
		),
		validation.Field(&t.Rating,
			validation.Required.Error("rating_required"),
			validation.Min(1).Error("invalid_rating"),
			validation.Max(5).Error("invalid_rating"),
		),
	)
}

// ValidateServiceContent validates service page content.
func (v *Validator) ValidateServiceContent(c *domain.ServiceContent) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ServiceID,
			validation.Required.Error("service_id_required"),
			validation.In(serviceIDs...).Error("invalid_service_id"),
		),
		validation.Field(&c.ServiceName,
			validation.Required.Error("service_name_required"),
		),
	)
}

// ValidateSEOSettings validates a per-page SEO entry.
func (v *Validator) ValidateSEOSettings(s *domain.SEOSettings) error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Page,
			validation.Required.Error("page_required"),
		),
	)
}

// ValidateSubscriber validates a newsletter subscription payload.
func (v *Validator) ValidateSubscriber(s *domain.Subscriber) error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
	)
}
