package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/unclebandit/anything-security-console/internal/model"
)

const campaignsPath = "/api/phishing/campaigns"

func (c *HTTPClient) ListCampaigns(ctx context.Context) ([]model.Campaign, error) {
	return list[model.Campaign](ctx, c, campaignsPath, nil)
}

func (c *HTTPClient) GetCampaign(ctx context.Context, id int) (*model.Campaign, error) {
	var campaign model.Campaign
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", campaignsPath, id), nil, nil, &campaign); err != nil {
		return nil, err
	}
	return &campaign, nil
}

// CreateCampaign creates the campaign and its recipients; the backend sends
// or schedules the emails itself.
func (c *HTTPClient) CreateCampaign(ctx context.Context, in model.NewCampaign) (*model.Campaign, error) {
	var campaign model.Campaign
	if err := c.do(ctx, http.MethodPost, campaignsPath, nil, in, &campaign); err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (c *HTTPClient) GetCampaignStats(ctx context.Context, id int) (*model.CampaignStats, error) {
	var stats model.CampaignStats
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d/stats", campaignsPath, id), nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *HTTPClient) GetCampaignRecipients(ctx context.Context, id int) ([]model.Recipient, error) {
	return list[model.Recipient](ctx, c, fmt.Sprintf("%s/%d/recipients", campaignsPath, id), nil)
}

func (c *HTTPClient) CloseCampaign(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("%s/%d/close", campaignsPath, id), nil, nil, nil)
}
