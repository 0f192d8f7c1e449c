// internal/model/asset.go
package model

import "strings"

type AssetType string

const (
	AssetSoftware AssetType = "software"
	AssetHardware AssetType = "hardware"
	AssetService  AssetType = "service"
)

// AssetTypes lists the selectable asset types in display order.
var AssetTypes = []AssetType{AssetSoftware, AssetHardware, AssetService}

func (t AssetType) Valid() bool {
	switch t {
	case AssetSoftware, AssetHardware, AssetService:
		return true
	}
	return false
}

type Asset struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	AssetType   AssetType  `json:"asset_type"`
	Vendor      string     `json:"vendor"`
	Product     string     `json:"product"`
	Version     string     `json:"version"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	Owner       string     `json:"owner"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   *Timestamp `json:"created_at,omitempty"`
	UpdatedAt   *Timestamp `json:"updated_at,omitempty"`
}

// Scannable reports whether the vendor/product/version triple a CVE lookup
// keys on is complete.
func (a Asset) Scannable() bool {
	return strings.TrimSpace(a.Vendor) != "" &&
		strings.TrimSpace(a.Product) != "" &&
		strings.TrimSpace(a.Version) != ""
}

// Input returns the editable fields of a.
func (a Asset) Input() AssetInput {
	return AssetInput{
		Name:        a.Name,
		AssetType:   a.AssetType,
		Vendor:      a.Vendor,
		Product:     a.Product,
		Version:     a.Version,
		Description: a.Description,
		Location:    a.Location,
		Owner:       a.Owner,
		IsActive:    a.IsActive,
	}
}

type AssetInput struct {
	Name        string    `json:"name" validate:"required"`
	AssetType   AssetType `json:"asset_type" validate:"omitempty,asset_type"`
	Vendor      string    `json:"vendor"`
	Product     string    `json:"product"`
	Version     string    `json:"version"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Owner       string    `json:"owner"`
	IsActive    bool      `json:"is_active"`
}

// AssetFilter narrows the asset list. Nil fields are not sent.
type AssetFilter struct {
	IsActive *bool
}
