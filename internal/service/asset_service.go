// internal/service/asset_service.go
package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/unclebandit/anything-security-console/internal/client"
	"github.com/unclebandit/anything-security-console/internal/model"
)

type AssetService struct {
	Assets    client.AssetAPI
	Validator *Validator
	Auditor   Auditor
	Logger    *zap.Logger
}

type AssetsPage struct {
	Assets []model.Asset

	ShowForm bool
	EditID   int
	Form     model.AssetInput
}

// NewAssetForm is the blank registration form.
func NewAssetForm() model.AssetInput {
	return model.AssetInput{IsActive: true}
}

func (s *AssetService) Page(ctx context.Context, editID int, showForm bool) (*AssetsPage, error) {
	assets, err := s.Assets.ListAssets(ctx, model.AssetFilter{})
	if err != nil {
		loggerOrNop(s.Logger).Error("failed to load assets", zap.Error(err))
		return nil, errors.Wrap(err, "list assets")
	}

	page := &AssetsPage{Assets: assets}
	if editID > 0 {
		if a, ok := lo.Find(assets, func(a model.Asset) bool { return a.ID == editID }); ok {
			page.ShowForm = true
			page.EditID = a.ID
			page.Form = a.Input()
		}
	}
	if !page.ShowForm && showForm {
		page.ShowForm = true
		page.Form = NewAssetForm()
	}
	return page, nil
}

// Save registers the asset when id is zero and updates it otherwise.
func (s *AssetService) Save(ctx context.Context, id int, in model.AssetInput) (*model.Asset, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Vendor = strings.TrimSpace(in.Vendor)
	in.Product = strings.TrimSpace(in.Product)
	in.Version = strings.TrimSpace(in.Version)
	if err := s.Validator.Struct(in); err != nil {
		return nil, err
	}

	var (
		a      *model.Asset
		err    error
		action = model.ActionCreate
	)
	if id > 0 {
		action = model.ActionUpdate
		a, err = s.Assets.UpdateAsset(ctx, id, in)
	} else {
		a, err = s.Assets.CreateAsset(ctx, in)
	}
	if err != nil {
		loggerOrNop(s.Logger).Error("failed to save asset", zap.Int("asset_id", id), zap.Error(err))
		return nil, errors.Wrap(err, "save asset")
	}

	auditOrNop(s.Auditor).Record(ctx, model.AuditEvent{
		Action:     action,
		Resource:   model.ResourceAsset,
		ResourceID: a.ID,
		Detail:     in.Name,
	})
	return a, nil
}

func (s *AssetService) Delete(ctx context.Context, id int) error {
	if err := s.Assets.DeleteAsset(ctx, id); err != nil {
		loggerOrNop(s.Logger).Error("failed to delete asset", zap.Int("asset_id", id), zap.Error(err))
		return errors.Wrap(err, "delete asset")
	}
	auditOrNop(s.Auditor).Record(ctx, model.AuditEvent{
		Action:     model.ActionDelete,
		Resource:   model.ResourceAsset,
		ResourceID: id,
	})
	return nil
}
