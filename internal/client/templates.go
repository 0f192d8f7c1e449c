package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/unclebandit/anything-security-console/internal/model"
)

const templatesPath = "/api/phishing/templates"

func (c *HTTPClient) ListTemplates(ctx context.Context) ([]model.Template, error) {
	return list[model.Template](ctx, c, templatesPath, nil)
}

func (c *HTTPClient) GetTemplate(ctx context.Context, id int) (*model.Template, error) {
	var t model.Template
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", templatesPath, id), nil, nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *HTTPClient) CreateTemplate(ctx context.Context, in model.TemplateInput) (*model.Template, error) {
	var t model.Template
	if err := c.do(ctx, http.MethodPost, templatesPath, nil, in, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *HTTPClient) UpdateTemplate(ctx context.Context, id int, in model.TemplateInput) (*model.Template, error) {
	var t model.Template
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", templatesPath, id), nil, in, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *HTTPClient) DeleteTemplate(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", templatesPath, id), nil, nil, nil)
}
