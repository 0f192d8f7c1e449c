package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/unclebandit/anything-security-console/internal/model"
)

// The backend mounts the asset collection with a trailing slash.
const assetsPath = "/api/assets/"

func (c *HTTPClient) ListAssets(ctx context.Context, filter model.AssetFilter) ([]model.Asset, error) {
	query := url.Values{}
	if filter.IsActive != nil {
		query.Set("is_active", strconv.FormatBool(*filter.IsActive))
	}
	return list[model.Asset](ctx, c, assetsPath, query)
}

func (c *HTTPClient) GetAsset(ctx context.Context, id int) (*model.Asset, error) {
	var a model.Asset
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s%d", assetsPath, id), nil, nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *HTTPClient) CreateAsset(ctx context.Context, in model.AssetInput) (*model.Asset, error) {
	var a model.Asset
	if err := c.do(ctx, http.MethodPost, assetsPath, nil, in, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *HTTPClient) UpdateAsset(ctx context.Context, id int, in model.AssetInput) (*model.Asset, error) {
	var a model.Asset
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s%d", assetsPath, id), nil, in, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *HTTPClient) DeleteAsset(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s%d", assetsPath, id), nil, nil, nil)
}
