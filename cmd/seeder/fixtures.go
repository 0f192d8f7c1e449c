package main

import (
	"context"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	"github.com/unclebandit/anything-security-console/internal/client"
	"github.com/unclebandit/anything-security-console/internal/model"
	"github.com/unclebandit/anything-security-console/internal/service"
)

// Fixtures is the layout of the seed file.
type Fixtures struct {
	Templates []TemplateFixture `yaml:"templates"`
	Assets    []AssetFixture    `yaml:"assets"`
}

type TemplateFixture struct {
	Name        string `yaml:"name"`
	Subject     string `yaml:"subject"`
	Body        string `yaml:"body"`
	SenderEmail string `yaml:"sender_email,omitempty"`
	SenderName  string `yaml:"sender_name,omitempty"`
	IsActive    bool   `yaml:"is_active"`
}

type AssetFixture struct {
	Name        string `yaml:"name"`
	AssetType   string `yaml:"asset_type"`
	Vendor      string `yaml:"vendor,omitempty"`
	Product     string `yaml:"product,omitempty"`
	Version     string `yaml:"version,omitempty"`
	Description string `yaml:"description,omitempty"`
	Location    string `yaml:"location,omitempty"`
	Owner       string `yaml:"owner,omitempty"`
	IsActive    bool   `yaml:"is_active"`
}

func (f TemplateFixture) input() model.TemplateInput {
	return model.TemplateInput{
		Name:        f.Name,
		Subject:     f.Subject,
		Body:        f.Body,
		SenderEmail: f.SenderEmail,
		SenderName:  f.SenderName,
		IsActive:    f.IsActive,
	}
}

func (f AssetFixture) input() model.AssetInput {
	return model.AssetInput{
		Name:        f.Name,
		AssetType:   model.AssetType(f.AssetType),
		Vendor:      f.Vendor,
		Product:     f.Product,
		Version:     f.Version,
		Description: f.Description,
		Location:    f.Location,
		Owner:       f.Owner,
		IsActive:    f.IsActive,
	}
}

// LoadFixtures reads and parses the seed file
func LoadFixtures(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return ParseFixtures(data)
}

func ParseFixtures(data []byte) (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "parse fixtures")
	}
	return &f, nil
}

// Result counts what one seeding run did.
type Result struct {
	Created int
	Skipped int
	Failed  int
}

// Seeder creates fixtures through the console services, skipping names the
// backend already has.
type Seeder struct {
	API       client.API
	Templates *service.TemplateService
	Assets    *service.AssetService
	Logger    *zap.Logger
}

func NewSeeder(api client.API, logger *zap.Logger) *Seeder {
	validator := service.NewValidator()
	return &Seeder{
		API:       api,
		Templates: &service.TemplateService{Templates: api, Validator: validator, Logger: logger},
		Assets:    &service.AssetService{Assets: api, Validator: validator, Logger: logger},
		Logger:    logger,
	}
}

func (s *Seeder) Seed(ctx context.Context, f *Fixtures) (Result, error) {
	var res Result

	templates, err := s.API.ListTemplates(ctx)
	if err != nil {
		return res, errors.Wrap(err, "list templates")
	}
	existing := lo.Map(templates, func(t model.Template, _ int) string { return key(t.Name) })
	for _, tf := range f.Templates {
		if lo.Contains(existing, key(tf.Name)) {
			res.Skipped++
			continue
		}
		if _, err := s.Templates.Save(ctx, 0, tf.input()); err != nil {
			s.Logger.Error("failed to seed template", zap.String("name", tf.Name), zap.Error(err))
			res.Failed++
			continue
		}
		s.Logger.Info("seeded template", zap.String("name", tf.Name))
		existing = append(existing, key(tf.Name))
		res.Created++
	}

	assets, err := s.API.ListAssets(ctx, model.AssetFilter{})
	if err != nil {
		return res, errors.Wrap(err, "list assets")
	}
	existing = lo.Map(assets, func(a model.Asset, _ int) string { return key(a.Name) })
	for _, af := range f.Assets {
		if lo.Contains(existing, key(af.Name)) {
			res.Skipped++
			continue
		}
		if _, err := s.Assets.Save(ctx, 0, af.input()); err != nil {
			s.Logger.Error("failed to seed asset", zap.String("name", af.Name), zap.Error(err))
			res.Failed++
			continue
		}
		s.Logger.Info("seeded asset", zap.String("name", af.Name))
		existing = append(existing, key(af.Name))
		res.Created++
	}

	return res, nil
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
