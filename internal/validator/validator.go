package validator

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/ejikes/blogApi/internal/domain"
)

var validStates = []interface{}{domain.StateDraft, domain.StatePublished}

// Validator provides validation methods for caller-supplied input. It runs
// before the service layer, which assumes shape constraints already hold.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateArticleInput validates the fields for creating an article.
func (v *Validator) ValidateArticleInput(in *domain.ArticleInput) error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Title,
			validation.Required.Error("title_required"),
			validation.Length(3, 0).Error("title_too_short"),
		),
		validation.Field(&in.Body,
			validation.Required.Error("body_required"),
			validation.Length(20, 0).Error("body_too_short"),
		),
	)
}

// ValidateArticlePatch validates an update patch. Absent fields are skipped;
// present fields must satisfy the same bounds as on create.
func (v *Validator) ValidateArticlePatch(p *domain.ArticlePatch) error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Title,
			validation.Length(3, 0).Error("title_too_short"),
		),
		validation.Field(&p.Body,
			validation.Length(20, 0).Error("body_too_short"),
		),
		validation.Field(&p.State,
			validation.In(validStates...).Error("invalid_state"),
		),
	)
}

// ValidateSignup validates a signup request.
func (v *Validator) ValidateSignup(in *domain.SignupInput) error {
	return validation.ValidateStruct(in,
		validation.Field(&in.FirstName,
			validation.Required.Error("first_name_required"),
		),
		validation.Field(&in.LastName,
			validation.Required.Error("last_name_required"),
		),
		validation.Field(&in.Email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
		validation.Field(&in.Password,
			validation.Required.Error("password_required"),
			validation.Length(8, 0).Error("password_too_short"),
		),
	)
}
