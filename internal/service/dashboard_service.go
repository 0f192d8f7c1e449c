// internal/service/dashboard_service.go
package service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/unclebandit/anything-security-console/internal/client"
	"github.com/unclebandit/anything-security-console/internal/model"
)

const (
	defaultRecentCampaigns = 5
	defaultAlertLimit      = 10
)

type DashboardService struct {
	Campaigns client.CampaignAPI
	Assets    client.AssetAPI
	Alerts    client.CVEAPI
	Templates client.TemplateAPI
	Logger    *zap.Logger

	// RecentLimit is how many campaigns, from the head of the list, feed the
	// aggregate stats. AlertLimit caps the alert fetch.
	RecentLimit int
	AlertLimit  int
}

// Totals sums the stats of the sampled campaigns.
type Totals struct {
	Recipients int `json:"recipients"`
	Opened     int `json:"opened"`
	Clicked    int `json:"clicked"`
	Reported   int `json:"reported"`
}

type DashboardSummary struct {
	TotalCampaigns  int `json:"total_campaigns"`
	ActiveCampaigns int `json:"active_campaigns"`

	Totals     Totals  `json:"totals"`
	OpenRate   float64 `json:"open_rate"`
	ClickRate  float64 `json:"click_rate"`
	ReportRate float64 `json:"report_rate"`

	TotalAssets    int `json:"total_assets"`
	ActiveAssets   int `json:"active_assets"`
	CVEAlerts      int `json:"cve_alerts"`
	TotalTemplates int `json:"total_templates"`

	RecentCampaigns []model.Campaign `json:"recent_campaigns"`
}

// Load fetches campaigns, assets, alerts and templates in parallel. Any of
// those failing fails the load. Stats for the recent campaigns are then
// fetched one at a time and failures there only cost that campaign's numbers.
func (s *DashboardService) Load(ctx context.Context) (*DashboardSummary, error) {
	var (
		campaigns []model.Campaign
		assets    []model.Asset
		alerts    []model.CVEAlert
		templates []model.Template
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		campaigns, err = s.Campaigns.ListCampaigns(gctx)
		return errors.Wrap(err, "list campaigns")
	})
	g.Go(func() error {
		var err error
		assets, err = s.Assets.ListAssets(gctx, model.AssetFilter{})
		return errors.Wrap(err, "list assets")
	})
	g.Go(func() error {
		var err error
		alerts, err = s.Alerts.ListCVEAlerts(gctx, model.AlertFilter{Limit: s.alertLimit()})
		return errors.Wrap(err, "list cve alerts")
	})
	g.Go(func() error {
		var err error
		templates, err = s.Templates.ListTemplates(gctx)
		return errors.Wrap(err, "list templates")
	})
	if err := g.Wait(); err != nil {
		loggerOrNop(s.Logger).Error("failed to load dashboard", zap.Error(err))
		return nil, err
	}

	recent := lo.Slice(campaigns, 0, s.recentLimit())
	totals := s.Aggregate(ctx, recent)

	return &DashboardSummary{
		TotalCampaigns:  len(campaigns),
		ActiveCampaigns: lo.CountBy(campaigns, func(c model.Campaign) bool { return c.Status.IsActive() }),
		Totals:          totals,
		OpenRate:        Rate(totals.Opened, totals.Recipients),
		ClickRate:       Rate(totals.Clicked, totals.Recipients),
		ReportRate:      Rate(totals.Reported, totals.Recipients),
		TotalAssets:     len(assets),
		ActiveAssets:    lo.CountBy(assets, func(a model.Asset) bool { return a.IsActive }),
		CVEAlerts:       len(alerts),
		TotalTemplates:  len(templates),
		RecentCampaigns: recent,
	}, nil
}

// Aggregate fetches stats for each campaign in order, one request at a time.
// A campaign whose stats cannot be fetched contributes zero.
func (s *DashboardService) Aggregate(ctx context.Context, campaigns []model.Campaign) Totals {
	var t Totals
	for _, c := range campaigns {
		stats, err := s.Campaigns.GetCampaignStats(ctx, c.ID)
		if err != nil {
			loggerOrNop(s.Logger).Warn("failed to fetch campaign stats", zap.Int("campaign_id", c.ID), zap.Error(err))
			continue
		}
		t.Recipients += stats.TotalRecipients
		t.Opened += stats.Opened
		t.Clicked += stats.Clicked
		t.Reported += stats.Reported
	}
	return t
}

func (s *DashboardService) recentLimit() int {
	if s.RecentLimit > 0 {
		return s.RecentLimit
	}
	return defaultRecentCampaigns
}

func (s *DashboardService) alertLimit() int {
	if s.AlertLimit > 0 {
		return s.AlertLimit
	}
	return defaultAlertLimit
}
