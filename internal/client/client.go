// Package client is the REST client for the security platform backend.
// Every method issues exactly one HTTP request; there is no retry, caching or
// batching, and deadlines come from the caller's context.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	appErrors "github.com/unclebandit/anything-security-console/internal/errors"
	"github.com/unclebandit/anything-security-console/internal/model"
)

type TemplateAPI interface {
	ListTemplates(ctx context.Context) ([]model.Template, error)
	GetTemplate(ctx context.Context, id int) (*model.Template, error)
	CreateTemplate(ctx context.Context, in model.TemplateInput) (*model.Template, error)
	UpdateTemplate(ctx context.Context, id int, in model.TemplateInput) (*model.Template, error)
	DeleteTemplate(ctx context.Context, id int) error
}

type CampaignAPI interface {
	ListCampaigns(ctx context.Context) ([]model.Campaign, error)
	GetCampaign(ctx context.Context, id int) (*model.Campaign, error)
	CreateCampaign(ctx context.Context, in model.NewCampaign) (*model.Campaign, error)
	GetCampaignStats(ctx context.Context, id int) (*model.CampaignStats, error)
	GetCampaignRecipients(ctx context.Context, id int) ([]model.Recipient, error)
	CloseCampaign(ctx context.Context, id int) error
}

type AssetAPI interface {
	ListAssets(ctx context.Context, filter model.AssetFilter) ([]model.Asset, error)
	GetAsset(ctx context.Context, id int) (*model.Asset, error)
	CreateAsset(ctx context.Context, in model.AssetInput) (*model.Asset, error)
	UpdateAsset(ctx context.Context, id int, in model.AssetInput) (*model.Asset, error)
	DeleteAsset(ctx context.Context, id int) error
}

type CVEAPI interface {
	ListCVEAlerts(ctx context.Context, filter model.AlertFilter) ([]model.CVEAlert, error)
	GetCVEAlert(ctx context.Context, id int) (*model.CVEAlert, error)
	ScanAsset(ctx context.Context, assetID int) (*model.ScanResponse, error)
	ScanAllAssets(ctx context.Context) (*model.ScanResponse, error)
}

// API is the whole backend surface the console consumes.
type API interface {
	TemplateAPI
	CampaignAPI
	AssetAPI
	CVEAPI
}

type HTTPClient struct {
	BaseURL string
	HTTP    *http.Client
}

var _ API = (*HTTPClient)(nil)

// New returns a client for the backend at baseURL. A nil httpClient means
// http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *HTTPClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    httpClient,
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	raw, err := c.send(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "decode %s %s", method, path)
	}
	return nil
}

func (c *HTTPClient) send(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrapf(err, "encode %s %s", method, path)
		}
		reader = bytes.NewReader(b)
	}

	target := c.BaseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, errors.Wrapf(err, "build %s %s", method, path)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s %s", method, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, appErrors.NewAPIError(method, path, resp.StatusCode, errorDetail(raw))
	}
	return raw, nil
}

// list decodes a JSON array body. Anything that is not an array (null, an
// object) yields an empty list.
func list[T any](ctx context.Context, c *HTTPClient, path string, query url.Values) ([]T, error) {
	raw, err := c.send(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return []T{}, nil
	}
	items := []T{}
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, errors.Wrapf(err, "decode GET %s", path)
	}
	return items, nil
}

// errorDetail pulls FastAPI's {"detail": ...} out of an error body.
func errorDetail(raw []byte) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Detail) == 0 {
		return strings.TrimSpace(string(raw))
	}
	var msg string
	if err := json.Unmarshal(body.Detail, &msg); err == nil {
		return msg
	}
	return string(body.Detail)
}
