// internal/model/cve_alert.go
package model

const nvdDetailURL = "https://nvd.nist.gov/vuln/detail/"

type CVEAlert struct {
	ID            int        `json:"id"`
	AssetID       int        `json:"asset_id"`
	CVEID         string     `json:"cve_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Severity      string     `json:"severity"`
	CVSSScore     *float64   `json:"cvss_score,omitempty"`
	PublishedDate *Timestamp `json:"published_date,omitempty"`
	Notified      bool       `json:"notified"`
	NotifiedAt    *Timestamp `json:"notified_at,omitempty"`
	CreatedAt     *Timestamp `json:"created_at,omitempty"`
	Asset         *Asset     `json:"asset,omitempty"`
}

// NVDURL links the alert to its NVD entry.
func (a CVEAlert) NVDURL() string {
	return nvdDetailURL + a.CVEID
}

// AssetName is the joined asset's name, empty when the backend omitted it.
func (a CVEAlert) AssetName() string {
	if a.Asset == nil {
		return ""
	}
	return a.Asset.Name
}

// AlertFilter narrows the alert list. Zero values are not sent.
type AlertFilter struct {
	AssetID  int
	Limit    int
	Notified *bool
}

// ScanResponse acknowledges a scan request; results arrive later as alerts.
type ScanResponse struct {
	Message string `json:"message"`
	AssetID int    `json:"asset_id,omitempty"`
	Count   int    `json:"count,omitempty"`
}
