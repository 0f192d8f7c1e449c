// internal/service/template_service.go
package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/unclebandit/anything-security-console/internal/client"
	"github.com/unclebandit/anything-security-console/internal/model"
)

// Placeholders are the variables the backend substitutes per recipient at
// send time.
var Placeholders = []string{"{{name}}", "{{email}}", "{{click_url}}", "{{report_url}}"}

var placeholderPattern = regexp.MustCompile(`\{\{\s*(\w+)\s*\}\}`)

// DetectPlaceholders lists the known placeholders body uses, in Placeholders
// order. The body itself is never rewritten.
func DetectPlaceholders(body string) []string {
	seen := map[string]bool{}
	for _, m := range placeholderPattern.FindAllStringSubmatch(body, -1) {
		seen["{{"+m[1]+"}}"] = true
	}
	return lo.Filter(Placeholders, func(p string, _ int) bool { return seen[p] })
}

type TemplateService struct {
	Templates client.TemplateAPI
	Validator *Validator
	Auditor   Auditor
	Logger    *zap.Logger
}

type TemplatesPage struct {
	Templates []model.Template

	ShowForm bool
	// EditID is zero for a new template.
	EditID int
	Form   model.TemplateInput
	Used   []string
}

// NewTemplateForm is the blank create form.
func NewTemplateForm() model.TemplateInput {
	return model.TemplateInput{IsActive: true}
}

// Page lists templates. With editID set the form is prefilled from that
// template; with showForm alone it is blank.
func (s *TemplateService) Page(ctx context.Context, editID int, showForm bool) (*TemplatesPage, error) {
	templates, err := s.Templates.ListTemplates(ctx)
	if err != nil {
		loggerOrNop(s.Logger).Error("failed to load templates", zap.Error(err))
		return nil, errors.Wrap(err, "list templates")
	}

	page := &TemplatesPage{Templates: templates}
	if editID > 0 {
		if t, ok := lo.Find(templates, func(t model.Template) bool { return t.ID == editID }); ok {
			page.ShowForm = true
			page.EditID = t.ID
			page.Form = t.Input()
		}
	}
	if !page.ShowForm && showForm {
		page.ShowForm = true
		page.Form = NewTemplateForm()
	}
	page.Used = DetectPlaceholders(page.Form.Body)
	return page, nil
}

// Save creates the template when id is zero and updates it otherwise.
func (s *TemplateService) Save(ctx context.Context, id int, in model.TemplateInput) (*model.Template, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.SenderEmail = strings.TrimSpace(in.SenderEmail)
	if err := s.Validator.Struct(in); err != nil {
		return nil, err
	}

	var (
		t      *model.Template
		err    error
		action = model.ActionCreate
	)
	if id > 0 {
		action = model.ActionUpdate
		t, err = s.Templates.UpdateTemplate(ctx, id, in)
	} else {
		t, err = s.Templates.CreateTemplate(ctx, in)
	}
	if err != nil {
		loggerOrNop(s.Logger).Error("failed to save template", zap.Int("template_id", id), zap.Error(err))
		return nil, errors.Wrap(err, "save template")
	}

	auditOrNop(s.Auditor).Record(ctx, model.AuditEvent{
		Action:     action,
		Resource:   model.ResourceTemplate,
		ResourceID: t.ID,
		Detail:     in.Name,
	})
	return t, nil
}

func (s *TemplateService) Delete(ctx context.Context, id int) error {
	if err := s.Templates.DeleteTemplate(ctx, id); err != nil {
		loggerOrNop(s.Logger).Error("failed to delete template", zap.Int("template_id", id), zap.Error(err))
		return errors.Wrap(err, "delete template")
	}
	auditOrNop(s.Auditor).Record(ctx, model.AuditEvent{
		Action:     model.ActionDelete,
		Resource:   model.ResourceTemplate,
		ResourceID: id,
	})
	return nil
}
