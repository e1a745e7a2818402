// Package entity defines the JSON shapes returned by the web layer.
package entity

// Msg is the standard response envelope.
type Msg struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg,omitempty"`
	Obj     any    `json:"obj,omitempty"`
}

// FieldErrors carries per-field validation messages for note forms. A nil
// field means the field passed validation.
type FieldErrors struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
}

// CredentialErrors carries per-field validation messages for login and
// registration forms.
type CredentialErrors struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

func fieldError(msg string) *string {
	return &msg
}

// TitleRequired builds the validation result for a missing title.
func TitleRequired() FieldErrors {
	return FieldErrors{Title: fieldError("Title is required")}
}

// BodyRequired builds the validation result for a missing body.
func BodyRequired() FieldErrors {
	return FieldErrors{Body: fieldError("Body is required")}
}

// EmailInvalid builds the validation result for a malformed email.
func EmailInvalid() CredentialErrors {
	return CredentialErrors{Email: fieldError("Email is invalid")}
}

// PasswordRequired builds the validation result for a missing password.
func PasswordRequired() CredentialErrors {
	return CredentialErrors{Password: fieldError("Password is required")}
}

// PasswordTooShort builds the validation result for a short password.
func PasswordTooShort() CredentialErrors {
	return CredentialErrors{Password: fieldError("Password is too short")}
}

// InvalidCredentials builds the validation result for a failed login.
func InvalidCredentials() CredentialErrors {
	return CredentialErrors{Email: fieldError("Invalid email or password")}
}

// EmailTaken builds the validation result for a duplicate registration.
func EmailTaken() CredentialErrors {
	return CredentialErrors{Email: fieldError("A user already exists with this email")}
}
