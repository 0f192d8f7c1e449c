package service_test

import (
	"context"
	"errors"
	"sync"

	appErrors "github.com/unclebandit/anything-security-console/internal/errors"
	"github.com/unclebandit/anything-security-console/internal/model"
)

var errBackend = errors.New("backend down")

// MockAPI is an in-memory stand-in for the backend. Err* fields force
// failures; calls records every method invoked.
type MockAPI struct {
	mu    sync.Mutex
	calls []string

	Campaigns  []model.Campaign
	Templates  []model.Template
	Assets     []model.Asset
	Alerts     []model.CVEAlert
	Stats      map[int]*model.CampaignStats
	Recipients map[int][]model.Recipient

	ErrList       error
	ErrStats      map[int]error
	ErrRecipients error
	ErrMutate     error

	Created     []model.NewCampaign
	TemplatesIn []model.TemplateInput
	AssetsIn    []model.AssetInput
	AlertFilter model.AlertFilter
	AssetFilter model.AssetFilter
}

func (m *MockAPI) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

func (m *MockAPI) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func notFound(path string) error {
	return appErrors.NewAPIError("GET", path, 404, "not found")
}

func (m *MockAPI) ListTemplates(context.Context) ([]model.Template, error) {
	m.record("ListTemplates")
	return m.Templates, m.ErrList
}

func (m *MockAPI) GetTemplate(_ context.Context, id int) (*model.Template, error) {
	m.record("GetTemplate")
	for _, t := range m.Templates {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, notFound("/api/phishing/templates")
}

func (m *MockAPI) CreateTemplate(_ context.Context, in model.TemplateInput) (*model.Template, error) {
	m.record("CreateTemplate")
	if m.ErrMutate != nil {
		return nil, m.ErrMutate
	}
	m.TemplatesIn = append(m.TemplatesIn, in)
	return &model.Template{ID: 100, Name: in.Name}, nil
}

func (m *MockAPI) UpdateTemplate(_ context.Context, id int, in model.TemplateInput) (*model.Template, error) {
	m.record("UpdateTemplate")
	if m.ErrMutate != nil {
		return nil, m.ErrMutate
	}
	m.TemplatesIn = append(m.TemplatesIn, in)
	return &model.Template{ID: id, Name: in.Name}, nil
}

func (m *MockAPI) DeleteTemplate(context.Context, int) error {
	m.record("DeleteTemplate")
	return m.ErrMutate
}

func (m *MockAPI) ListCampaigns(context.Context) ([]model.Campaign, error) {
	m.record("ListCampaigns")
	return m.Campaigns, m.ErrList
}

func (m *MockAPI) GetCampaign(_ context.Context, id int) (*model.Campaign, error) {
	m.record("GetCampaign")
	for _, c := range m.Campaigns {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, notFound("/api/phishing/campaigns")
}

func (m *MockAPI) CreateCampaign(_ context.Context, in model.NewCampaign) (*model.Campaign, error) {
	m.record("CreateCampaign")
	if m.ErrMutate != nil {
		return nil, m.ErrMutate
	}
	m.Created = append(m.Created, in)
	return &model.Campaign{ID: 50, Name: in.Name, TemplateID: in.TemplateID, Status: model.CampaignSent}, nil
}

func (m *MockAPI) GetCampaignStats(_ context.Context, id int) (*model.CampaignStats, error) {
	m.record("GetCampaignStats")
	if err := m.ErrStats[id]; err != nil {
		return nil, err
	}
	if s, ok := m.Stats[id]; ok {
		return s, nil
	}
	return &model.CampaignStats{}, nil
}

func (m *MockAPI) GetCampaignRecipients(_ context.Context, id int) ([]model.Recipient, error) {
	m.record("GetCampaignRecipients")
	if m.ErrRecipients != nil {
		return nil, m.ErrRecipients
	}
	return m.Recipients[id], nil
}

func (m *MockAPI) CloseCampaign(context.Context, int) error {
	m.record("CloseCampaign")
	return m.ErrMutate
}

func (m *MockAPI) ListAssets(_ context.Context, filter model.AssetFilter) ([]model.Asset, error) {
	m.record("ListAssets")
	m.mu.Lock()
	m.AssetFilter = filter
	m.mu.Unlock()
	if m.ErrList != nil {
		return nil, m.ErrList
	}
	if filter.IsActive == nil {
		return m.Assets, nil
	}
	out := []model.Asset{}
	for _, a := range m.Assets {
		if a.IsActive == *filter.IsActive {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *MockAPI) GetAsset(_ context.Context, id int) (*model.Asset, error) {
	m.record("GetAsset")
	for _, a := range m.Assets {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, notFound("/api/assets/")
}

func (m *MockAPI) CreateAsset(_ context.Context, in model.AssetInput) (*model.Asset, error) {
	m.record("CreateAsset")
	if m.ErrMutate != nil {
		return nil, m.ErrMutate
	}
	m.AssetsIn = append(m.AssetsIn, in)
	return &model.Asset{ID: 200, Name: in.Name}, nil
}

func (m *MockAPI) UpdateAsset(_ context.Context, id int, in model.AssetInput) (*model.Asset, error) {
	m.record("UpdateAsset")
	if m.ErrMutate != nil {
		return nil, m.ErrMutate
	}
	m.AssetsIn = append(m.AssetsIn, in)
	return &model.Asset{ID: id, Name: in.Name}, nil
}

func (m *MockAPI) DeleteAsset(context.Context, int) error {
	m.record("DeleteAsset")
	return m.ErrMutate
}

func (m *MockAPI) ListCVEAlerts(_ context.Context, filter model.AlertFilter) ([]model.CVEAlert, error) {
	m.record("ListCVEAlerts")
	m.mu.Lock()
	m.AlertFilter = filter
	m.mu.Unlock()
	return m.Alerts, m.ErrList
}

func (m *MockAPI) GetCVEAlert(_ context.Context, id int) (*model.CVEAlert, error) {
	m.record("GetCVEAlert")
	return nil, notFound("/api/cve/alerts")
}

func (m *MockAPI) ScanAsset(_ context.Context, assetID int) (*model.ScanResponse, error) {
	m.record("ScanAsset")
	if m.ErrMutate != nil {
		return nil, m.ErrMutate
	}
	return &model.ScanResponse{Message: "CVE scan started", AssetID: assetID}, nil
}

func (m *MockAPI) ScanAllAssets(context.Context) (*model.ScanResponse, error) {
	m.record("ScanAllAssets")
	if m.ErrMutate != nil {
		return nil, m.ErrMutate
	}
	return &model.ScanResponse{Message: "CVE scan started for all assets", Count: len(m.Assets)}, nil
}

// RecordingAuditor keeps every recorded event.
type RecordingAuditor struct {
	mu     sync.Mutex
	Events []model.AuditEvent
}

func (a *RecordingAuditor) Record(_ context.Context, e model.AuditEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Events = append(a.Events, e)
}

func count(calls []string, name string) int {
	n := 0
	for _, c := range calls {
		if c == name {
			n++
		}
	}
	return n
}
