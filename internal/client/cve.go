package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/unclebandit/anything-security-console/internal/model"
)

const (
	alertsPath = "/api/cve/alerts"
	scanPath   = "/api/cve/scan"
)

func (c *HTTPClient) ListCVEAlerts(ctx context.Context, filter model.AlertFilter) ([]model.CVEAlert, error) {
	query := url.Values{}
	if filter.AssetID > 0 {
		query.Set("asset_id", strconv.Itoa(filter.AssetID))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Notified != nil {
		query.Set("notified", strconv.FormatBool(*filter.Notified))
	}
	return list[model.CVEAlert](ctx, c, alertsPath, query)
}

func (c *HTTPClient) GetCVEAlert(ctx context.Context, id int) (*model.CVEAlert, error) {
	var alert model.CVEAlert
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", alertsPath, id), nil, nil, &alert); err != nil {
		return nil, err
	}
	return &alert, nil
}

// ScanAsset starts an asynchronous scan; it does not wait for results.
func (c *HTTPClient) ScanAsset(ctx context.Context, assetID int) (*model.ScanResponse, error) {
	var resp model.ScanResponse
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("%s/%d", scanPath, assetID), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) ScanAllAssets(ctx context.Context) (*model.ScanResponse, error) {
	var resp model.ScanResponse
	if err := c.do(ctx, http.MethodPost, scanPath+"/all", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
