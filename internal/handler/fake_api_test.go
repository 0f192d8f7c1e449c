package handler_test

import (
	"context"
	"sync"

	appErrors "github.com/unclebandit/anything-security-console/internal/errors"
	"github.com/unclebandit/anything-security-console/internal/model"
)

// fakeAPI is a canned backend. fail makes every mutation fail.
type fakeAPI struct {
	mu    sync.Mutex
	calls []string

	campaigns  []model.Campaign
	templates  []model.Template
	assets     []model.Asset
	alerts     []model.CVEAlert
	stats      map[int]*model.CampaignStats
	recipients map[int][]model.Recipient
	fail       error

	created []model.NewCampaign
}

func (f *fakeAPI) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeAPI) called(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (f *fakeAPI) ListTemplates(context.Context) ([]model.Template, error) {
	f.record("ListTemplates")
	return f.templates, nil
}

func (f *fakeAPI) GetTemplate(_ context.Context, id int) (*model.Template, error) {
	return nil, appErrors.NewAPIError("GET", "/api/phishing/templates", 404, "Template not found")
}

func (f *fakeAPI) CreateTemplate(_ context.Context, in model.TemplateInput) (*model.Template, error) {
	f.record("CreateTemplate")
	if f.fail != nil {
		return nil, f.fail
	}
	return &model.Template{ID: 1, Name: in.Name}, nil
}

func (f *fakeAPI) UpdateTemplate(_ context.Context, id int, in model.TemplateInput) (*model.Template, error) {
	f.record("UpdateTemplate")
	if f.fail != nil {
		return nil, f.fail
	}
	return &model.Template{ID: id, Name: in.Name}, nil
}

func (f *fakeAPI) DeleteTemplate(context.Context, int) error {
	f.record("DeleteTemplate")
	return f.fail
}

func (f *fakeAPI) ListCampaigns(context.Context) ([]model.Campaign, error) {
	f.record("ListCampaigns")
	return f.campaigns, nil
}

func (f *fakeAPI) GetCampaign(_ context.Context, id int) (*model.Campaign, error) {
	f.record("GetCampaign")
	for _, c := range f.campaigns {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, appErrors.NewAPIError("GET", "/api/phishing/campaigns", 404, "Campaign not found")
}

func (f *fakeAPI) CreateCampaign(_ context.Context, in model.NewCampaign) (*model.Campaign, error) {
	f.record("CreateCampaign")
	if f.fail != nil {
		return nil, f.fail
	}
	f.mu.Lock()
	f.created = append(f.created, in)
	f.mu.Unlock()
	return &model.Campaign{ID: 9, Name: in.Name, Status: model.CampaignSent}, nil
}

func (f *fakeAPI) GetCampaignStats(_ context.Context, id int) (*model.CampaignStats, error) {
	f.record("GetCampaignStats")
	if s, ok := f.stats[id]; ok {
		return s, nil
	}
	return &model.CampaignStats{}, nil
}

func (f *fakeAPI) GetCampaignRecipients(_ context.Context, id int) ([]model.Recipient, error) {
	f.record("GetCampaignRecipients")
	return f.recipients[id], nil
}

func (f *fakeAPI) CloseCampaign(context.Context, int) error {
	f.record("CloseCampaign")
	return f.fail
}

func (f *fakeAPI) ListAssets(_ context.Context, filter model.AssetFilter) ([]model.Asset, error) {
	f.record("ListAssets")
	if filter.IsActive == nil {
		return f.assets, nil
	}
	var out []model.Asset
	for _, a := range f.assets {
		if a.IsActive == *filter.IsActive {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAPI) GetAsset(_ context.Context, id int) (*model.Asset, error) {
	f.record("GetAsset")
	for _, a := range f.assets {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, appErrors.NewAPIError("GET", "/api/assets/", 404, "Asset not found")
}

func (f *fakeAPI) CreateAsset(_ context.Context, in model.AssetInput) (*model.Asset, error) {
	f.record("CreateAsset")
	if f.fail != nil {
		return nil, f.fail
	}
	return &model.Asset{ID: 1, Name: in.Name}, nil
}

func (f *fakeAPI) UpdateAsset(_ context.Context, id int, in model.AssetInput) (*model.Asset, error) {
	f.record("UpdateAsset")
	if f.fail != nil {
		return nil, f.fail
	}
	return &model.Asset{ID: id, Name: in.Name}, nil
}

func (f *fakeAPI) DeleteAsset(context.Context, int) error {
	f.record("DeleteAsset")
	return f.fail
}

func (f *fakeAPI) ListCVEAlerts(context.Context, model.AlertFilter) ([]model.CVEAlert, error) {
	f.record("ListCVEAlerts")
	return f.alerts, nil
}

func (f *fakeAPI) GetCVEAlert(context.Context, int) (*model.CVEAlert, error) {
	return nil, appErrors.NewAPIError("GET", "/api/cve/alerts", 404, "Alert not found")
}

func (f *fakeAPI) ScanAsset(_ context.Context, assetID int) (*model.ScanResponse, error) {
	f.record("ScanAsset")
	if f.fail != nil {
		return nil, f.fail
	}
	return &model.ScanResponse{Message: "CVE scan started", AssetID: assetID}, nil
}

func (f *fakeAPI) ScanAllAssets(context.Context) (*model.ScanResponse, error) {
	f.record("ScanAllAssets")
	if f.fail != nil {
		return nil, f.fail
	}
	return &model.ScanResponse{Message: "CVE scan started for all assets"}, nil
}
