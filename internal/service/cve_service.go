// internal/service/cve_service.go
package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/unclebandit/anything-security-console/internal/client"
	appErrors "github.com/unclebandit/anything-security-console/internal/errors"
	"github.com/unclebandit/anything-security-console/internal/model"
)

const (
	defaultScanRefresh    = 3 * time.Second
	defaultScanAllRefresh = 5 * time.Second
)

// Badge is how a severity renders: a CSS class and a label.
type Badge struct {
	Class string
	Label string
}

// SeverityBadge maps a CVE severity, case-insensitively, to its badge.
// Empty severities render as a neutral N/A and unknown ones as a neutral
// badge carrying the text as given.
func SeverityBadge(severity string) Badge {
	if strings.TrimSpace(severity) == "" {
		return Badge{Class: "badge", Label: "N/A"}
	}
	switch lower := strings.ToLower(strings.TrimSpace(severity)); lower {
	case "critical", "high", "medium", "low":
		return Badge{Class: "badge badge-" + lower, Label: strings.ToUpper(lower)}
	}
	return Badge{Class: "badge", Label: severity}
}

type CVEService struct {
	Alerts  client.CVEAPI
	Assets  client.AssetAPI
	Auditor Auditor
	Logger  *zap.Logger

	// ScanRefresh and ScanAllRefresh are how long after a scan request the
	// page reloads the alert list.
	ScanRefresh    time.Duration
	ScanAllRefresh time.Duration
}

type AlertRow struct {
	model.CVEAlert
	Badge Badge
}

type CVEPage struct {
	// Assets are the active assets offered for scanning and filtering.
	Assets        []model.Asset
	Alerts        []AlertRow
	FilterAssetID int
	// Partial is set when the alert or asset fetch failed.
	Partial bool
}

// ScanResult tells the page when to reload the alerts.
type ScanResult struct {
	Response     *model.ScanResponse
	RefreshAfter time.Duration
}

// Page fetches the alert list (filtered by asset when filterAssetID is set)
// and the active assets concurrently. Either failing leaves its list empty.
func (s *CVEService) Page(ctx context.Context, filterAssetID int) *CVEPage {
	logger := loggerOrNop(s.Logger)
	page := &CVEPage{FilterAssetID: filterAssetID, Assets: []model.Asset{}, Alerts: []AlertRow{}}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		alerts, err := s.Alerts.ListCVEAlerts(ctx, model.AlertFilter{AssetID: filterAssetID})
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			logger.Warn("failed to load cve alerts", zap.Int("asset_id", filterAssetID), zap.Error(err))
			page.Partial = true
			return
		}
		page.Alerts = lo.Map(alerts, func(a model.CVEAlert, _ int) AlertRow {
			return AlertRow{CVEAlert: a, Badge: SeverityBadge(a.Severity)}
		})
	}()
	go func() {
		defer wg.Done()
		active := true
		assets, err := s.Assets.ListAssets(ctx, model.AssetFilter{IsActive: &active})
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			logger.Warn("failed to load assets", zap.Error(err))
			page.Partial = true
			return
		}
		page.Assets = assets
	}()
	wg.Wait()
	return page
}

// ScanAsset requests a scan of one asset. An asset without vendor, product
// and version is refused before any scan request goes out.
func (s *CVEService) ScanAsset(ctx context.Context, assetID int) (*ScanResult, error) {
	asset, err := s.Assets.GetAsset(ctx, assetID)
	if err != nil {
		return nil, errors.Wrap(err, "get asset")
	}
	if !asset.Scannable() {
		return nil, appErrors.ErrIncompleteAsset
	}

	resp, err := s.Alerts.ScanAsset(ctx, assetID)
	if err != nil {
		loggerOrNop(s.Logger).Error("failed to scan asset", zap.Int("asset_id", assetID), zap.Error(err))
		return nil, errors.Wrap(err, "scan asset")
	}
	auditOrNop(s.Auditor).Record(ctx, model.AuditEvent{
		Action:     model.ActionScan,
		Resource:   model.ResourceCVEScan,
		ResourceID: assetID,
		Detail:     asset.Name,
	})
	return &ScanResult{Response: resp, RefreshAfter: durationOr(s.ScanRefresh, defaultScanRefresh)}, nil
}

// ScanAll requests a scan of every asset.
func (s *CVEService) ScanAll(ctx context.Context) (*ScanResult, error) {
	resp, err := s.Alerts.ScanAllAssets(ctx)
	if err != nil {
		loggerOrNop(s.Logger).Error("failed to scan all assets", zap.Error(err))
		return nil, errors.Wrap(err, "scan all assets")
	}
	auditOrNop(s.Auditor).Record(ctx, model.AuditEvent{
		Action:   model.ActionScan,
		Resource: model.ResourceCVEScan,
		Detail:   "all",
	})
	return &ScanResult{Response: resp, RefreshAfter: durationOr(s.ScanAllRefresh, defaultScanAllRefresh)}, nil
}

func durationOr(d, def time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return def
}
