// internal/model/template.go
package model

// Template is a reusable phishing email. Body is raw HTML and may carry the
// {{name}}, {{email}}, {{click_url}} and {{report_url}} placeholders, which
// the backend fills in at send time.
type Template struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Subject     string     `json:"subject"`
	Body        string     `json:"body"`
	SenderEmail string     `json:"sender_email"`
	SenderName  string     `json:"sender_name"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   *Timestamp `json:"created_at,omitempty"`
	UpdatedAt   *Timestamp `json:"updated_at,omitempty"`
}

// TemplateInput is the create/update payload.
type TemplateInput struct {
	Name        string `json:"name" validate:"required"`
	Subject     string `json:"subject" validate:"required"`
	Body        string `json:"body" validate:"required"`
	SenderEmail string `json:"sender_email" validate:"omitempty,email"`
	SenderName  string `json:"sender_name"`
	IsActive    bool   `json:"is_active"`
}

// Input returns the editable fields of t.
func (t Template) Input() TemplateInput {
	return TemplateInput{
		Name:        t.Name,
		Subject:     t.Subject,
		Body:        t.Body,
		SenderEmail: t.SenderEmail,
		SenderName:  t.SenderName,
		IsActive:    t.IsActive,
	}
}
