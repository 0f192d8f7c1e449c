package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/unclebandit/anything-security-console/internal/errors"
	"github.com/unclebandit/anything-security-console/internal/model"
	"github.com/unclebandit/anything-security-console/internal/service"
)

func campaignService(api *MockAPI, auditor service.Auditor) *service.CampaignService {
	return &service.CampaignService{Campaigns: api, Templates: api, Validator: service.NewValidator(), Auditor: auditor}
}

func TestParseRecipients(t *testing.T) {
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, service.ParseRecipients("a@x.com, , b@x.com "))
	assert.Equal(t, []string{"a@x.com", "b@x.com", "c@x.com"}, service.ParseRecipients("a@x.com\nb@x.com,\r\nc@x.com"))
	assert.Empty(t, service.ParseRecipients(" , ,\n"))
	assert.NotNil(t, service.ParseRecipients(""))
}

func TestCreateCampaignDefaultsTargetURL(t *testing.T) {
	api := &MockAPI{}
	auditor := &RecordingAuditor{}

	campaign, err := campaignService(api, auditor).Create(context.Background(), service.CampaignForm{
		Name:       " Q1 drill ",
		TemplateID: 2,
		Recipients: "a@x.com, , b@x.com ",
	})
	require.NoError(t, err)
	assert.Equal(t, 50, campaign.ID)

	require.Len(t, api.Created, 1)
	assert.Equal(t, model.NewCampaign{
		Name:            "Q1 drill",
		TemplateID:      2,
		RecipientEmails: []string{"a@x.com", "b@x.com"},
		TargetURL:       service.DefaultTargetURL,
	}, api.Created[0])

	require.Len(t, auditor.Events, 1)
	assert.Equal(t, model.ActionCreate, auditor.Events[0].Action)
	assert.Equal(t, model.ResourceCampaign, auditor.Events[0].Resource)
	assert.Equal(t, 50, auditor.Events[0].ResourceID)
}

func TestCreateCampaignKeepsTargetURL(t *testing.T) {
	api := &MockAPI{}
	_, err := campaignService(api, nil).Create(context.Background(), service.CampaignForm{
		Name: "x", TemplateID: 1, Recipients: "a@x.com", TargetURL: "https://intranet.example.org/login",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://intranet.example.org/login", api.Created[0].TargetURL)
}

func TestCreateCampaignValidation(t *testing.T) {
	cases := []struct {
		name   string
		form   service.CampaignForm
		fields []string
	}{
		{"missing everything", service.CampaignForm{}, []string{"name", "template_id", "recipient_emails"}},
		{"blank recipients", service.CampaignForm{Name: "x", TemplateID: 1, Recipients: " , "}, []string{"recipient_emails"}},
		{"bad email", service.CampaignForm{Name: "x", TemplateID: 1, Recipients: "a@x.com, not-an-email"}, []string{"recipient_emails"}},
		{"bad url", service.CampaignForm{Name: "x", TemplateID: 1, Recipients: "a@x.com", TargetURL: "nope"}, []string{"target_url"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := &MockAPI{}
			_, err := campaignService(api, nil).Create(context.Background(), tc.form)
			vErr, ok := appErrors.AsValidation(err)
			require.True(t, ok, "expected validation error, got %v", err)
			assert.ElementsMatch(t, tc.fields, vErr.Fields)
			assert.Empty(t, api.Calls(), "nothing is sent on invalid input")
		})
	}
}

func TestCreateCampaignBackendFailureNotAudited(t *testing.T) {
	api := &MockAPI{ErrMutate: errBackend}
	auditor := &RecordingAuditor{}
	_, err := campaignService(api, auditor).Create(context.Background(), service.CampaignForm{Name: "x", TemplateID: 1, Recipients: "a@x.com"})
	assert.True(t, errors.Is(err, errBackend))
	assert.Empty(t, auditor.Events)
}

func TestCampaignPageOnlyActiveTemplates(t *testing.T) {
	api := &MockAPI{Templates: []model.Template{
		{ID: 1, Name: "on", IsActive: true},
		{ID: 2, Name: "off"},
	}}
	page, err := campaignService(api, nil).Page(context.Background(), 0, true)
	require.NoError(t, err)
	require.Len(t, page.Templates, 1)
	assert.Equal(t, "on", page.Templates[0].Name)
	assert.True(t, page.ShowForm)
	assert.Nil(t, page.Selected)
	assert.Zero(t, count(api.Calls(), "GetCampaignStats"))
}

func TestCampaignPageSelectedDetail(t *testing.T) {
	api := &MockAPI{
		Campaigns:  []model.Campaign{{ID: 3, Name: "Q1", Status: model.CampaignSent}},
		Stats:      map[int]*model.CampaignStats{3: {TotalRecipients: 4, Opened: 1, OpenRate: 99}},
		Recipients: map[int][]model.Recipient{3: {{ID: 1, Email: "a@x.com"}}},
	}
	page, err := campaignService(api, nil).Page(context.Background(), 3, false)
	require.NoError(t, err)
	require.NotNil(t, page.Selected)
	assert.Equal(t, "Q1", page.Selected.Name)
	require.NotNil(t, page.Stats)
	assert.InDelta(t, 25.0, page.Stats.OpenRate, 0.001)
	assert.Len(t, page.Recipients, 1)
}

func TestCampaignPageDetailPartialFailure(t *testing.T) {
	api := &MockAPI{
		Campaigns:     []model.Campaign{{ID: 3}},
		Stats:         map[int]*model.CampaignStats{3: {TotalRecipients: 2}},
		ErrRecipients: errBackend,
	}
	page, err := campaignService(api, nil).Page(context.Background(), 3, false)
	require.NoError(t, err)
	assert.NotNil(t, page.Selected)
	assert.NotNil(t, page.Stats)
	assert.Nil(t, page.Recipients)
}

func TestCampaignPageUnknownSelection(t *testing.T) {
	api := &MockAPI{Campaigns: []model.Campaign{{ID: 3}}}
	page, err := campaignService(api, nil).Page(context.Background(), 99, false)
	require.NoError(t, err)
	assert.Nil(t, page.Selected)
}

func TestCloseClearsOnlyTheSelectedCampaign(t *testing.T) {
	api := &MockAPI{}
	auditor := &RecordingAuditor{}
	svc := campaignService(api, auditor)

	selected, err := svc.Close(context.Background(), 3, 3)
	require.NoError(t, err)
	assert.Zero(t, selected)

	selected, err = svc.Close(context.Background(), 4, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, selected)

	require.Len(t, auditor.Events, 2)
	assert.Equal(t, model.ActionClose, auditor.Events[1].Action)
	assert.Equal(t, 4, auditor.Events[1].ResourceID)
}

func TestCloseFailureKeepsSelection(t *testing.T) {
	api := &MockAPI{ErrMutate: errBackend}
	selected, err := campaignService(api, nil).Close(context.Background(), 3, 3)
	assert.Error(t, err)
	assert.Equal(t, 3, selected)
}

func TestCampaignDetail(t *testing.T) {
	api := &MockAPI{Campaigns: []model.Campaign{{ID: 8, Name: "x"}}}
	svc := campaignService(api, nil)

	detail, err := svc.Detail(context.Background(), 8)
	require.NoError(t, err)
	assert.Equal(t, "x", detail.Campaign.Name)
	assert.NotNil(t, detail.Stats)

	_, err = svc.Detail(context.Background(), 9)
	assert.True(t, appErrors.IsNotFound(err))
}
