package validator

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"blog-api/internal/domain"
)

const (
	maxTitleLength    = 255
	maxNameLength     = 255
	minPasswordLength = 8
	// bcrypt ignores everything past 72 bytes.
	maxPasswordLength = 72
)

// Validator provides validation methods for domain entities and inputs.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidatePost validates a post about to be created. Every required field must be present.
func (v *Validator) ValidatePost(p *domain.Post) error {
	return toValidationError(validation.ValidateStruct(p,
		validation.Field(&p.Title,
			validation.Required.Error("title_required"),
			validation.RuneLength(0, maxTitleLength).Error("title_too_long"),
		),
		validation.Field(&p.Content,
			validation.Required.Error("content_required"),
		),
		validation.Field(&p.UserID,
			validation.Required.Error("user_id_required"),
		),
	))
}

// ValidatePostPatch validates a partial update. Absent fields are skipped; present ones
// must satisfy the same rules as on create.
func (v *Validator) ValidatePostPatch(pp *domain.PostPatch) error {
	return toValidationError(validation.Errors{
		"title": validation.Validate(pp.Title,
			validation.NilOrNotEmpty.Error("title_required"),
			validation.RuneLength(0, maxTitleLength).Error("title_too_long"),
		),
		"content": validation.Validate(pp.Content,
			validation.NilOrNotEmpty.Error("content_required"),
		),
	}.Filter())
}

// ValidateRegistration validates the fields of a new account.
func (v *Validator) ValidateRegistration(name, email, password string) error {
	return toValidationError(validation.Errors{
		"name": validation.Validate(name,
			validation.Required.Error("name_required"),
			validation.RuneLength(0, maxNameLength).Error("name_too_long"),
		),
		"email": validation.Validate(email,
			validation.Required.Error("email_required"),
			is.EmailFormat.Error("invalid_email_format"),
		),
		"password": validation.Validate(password,
			validation.Required.Error("password_required"),
			validation.Length(minPasswordLength, maxPasswordLength).Error("password_length_8_to_72"),
		),
	}.Filter())
}

// ValidateCredentials validates a login attempt before it reaches the store.
func (v *Validator) ValidateCredentials(email, password string) error {
	return toValidationError(validation.Errors{
		"email": validation.Validate(email,
			validation.Required.Error("email_required"),
		),
		"password": validation.Validate(password,
			validation.Required.Error("password_required"),
		),
	}.Filter())
}

// toValidationError converts ozzo validation errors to a domain.ValidationError.
// Internal rule errors pass through unchanged.
func toValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ie validation.InternalError
	if errors.As(err, &ie) {
		return err
	}

	var ve validation.Errors
	if !errors.As(err, &ve) {
		return domain.NewValidationError(map[string]string{"unknown": err.Error()})
	}

	fields := make(map[string]string, len(ve))
	for field, fieldErr := range ve {
		if fieldErr == nil {
			continue
		}
		fields[field] = fieldErr.Error()
	}
	if len(fields) == 0 {
		return nil
	}
	return domain.NewValidationError(fields)
}
