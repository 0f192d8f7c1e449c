package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/unclebandit/anything-security-console/internal/errors"
	"github.com/unclebandit/anything-security-console/internal/model"
	"github.com/unclebandit/anything-security-console/internal/service"
)

func templateService(api *MockAPI, auditor service.Auditor) *service.TemplateService {
	return &service.TemplateService{Templates: api, Validator: service.NewValidator(), Auditor: auditor}
}

func TestDetectPlaceholders(t *testing.T) {
	body := `<p>Hi {{ name }},</p><a href="{{click_url}}">open</a> {{unknown}} {{name}}`
	assert.Equal(t, []string{"{{name}}", "{{click_url}}"}, service.DetectPlaceholders(body))
	assert.Empty(t, service.DetectPlaceholders("<p>plain</p>"))
}

func TestTemplateSaveCreatesOrUpdates(t *testing.T) {
	api := &MockAPI{}
	auditor := &RecordingAuditor{}
	svc := templateService(api, auditor)
	in := model.TemplateInput{Name: "Reset", Subject: "Password reset", Body: `<b>{{name}}</b>`, IsActive: true}

	created, err := svc.Save(context.Background(), 0, in)
	require.NoError(t, err)
	assert.Equal(t, 100, created.ID)

	updated, err := svc.Save(context.Background(), 7, in)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.ID)

	assert.Equal(t, []string{"CreateTemplate", "UpdateTemplate"}, api.Calls())
	// body goes out untouched
	assert.Equal(t, `<b>{{name}}</b>`, api.TemplatesIn[1].Body)
	require.Len(t, auditor.Events, 2)
	assert.Equal(t, model.ActionCreate, auditor.Events[0].Action)
	assert.Equal(t, model.ActionUpdate, auditor.Events[1].Action)
}

func TestTemplateValidation(t *testing.T) {
	api := &MockAPI{}
	_, err := templateService(api, nil).Save(context.Background(), 0, model.TemplateInput{Name: "x", SenderEmail: "bad"})
	vErr, ok := appErrors.AsValidation(err)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"subject", "body", "sender_email"}, vErr.Fields)
	assert.Empty(t, api.Calls())
}

func TestTemplatePageEditPrefills(t *testing.T) {
	api := &MockAPI{Templates: []model.Template{
		{ID: 4, Name: "Invoice", Subject: "Overdue", Body: "{{report_url}}", SenderName: "Billing"},
	}}
	svc := templateService(api, nil)

	page, err := svc.Page(context.Background(), 4, false)
	require.NoError(t, err)
	assert.True(t, page.ShowForm)
	assert.Equal(t, 4, page.EditID)
	assert.Equal(t, "Invoice", page.Form.Name)
	assert.Equal(t, []string{"{{report_url}}"}, page.Used)

	page, err = svc.Page(context.Background(), 0, true)
	require.NoError(t, err)
	assert.True(t, page.ShowForm)
	assert.Zero(t, page.EditID)
	assert.True(t, page.Form.IsActive)

	page, err = svc.Page(context.Background(), 0, false)
	require.NoError(t, err)
	assert.False(t, page.ShowForm)
}

func TestTemplateDeleteFailure(t *testing.T) {
	api := &MockAPI{ErrMutate: errBackend}
	auditor := &RecordingAuditor{}
	assert.Error(t, templateService(api, auditor).Delete(context.Background(), 1))
	assert.Empty(t, auditor.Events)
}
