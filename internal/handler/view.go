// internal/handler/view.go
package handler

import (
	"net/http"
	"time"

	"github.com/unclebandit/anything-security-console/internal/i18n"
	"github.com/unclebandit/anything-security-console/internal/model"
)

type navItem struct {
	Path  string
	Icon  string
	Label string
}

// menu is the sidebar, in display order.
var menu = []navItem{
	{Path: "/", Icon: "📊", Label: "nav.dashboard"},
	{Path: "/campaigns", Icon: "📧", Label: "nav.campaigns"},
	{Path: "/users", Icon: "👥", Label: "nav.users"},
	{Path: "/email-templates", Icon: "✉️", Label: "nav.email_templates"},
	{Path: "/landing-pages", Icon: "🌐", Label: "nav.landing_pages"},
	{Path: "/sending-profiles", Icon: "⚙️", Label: "nav.sending_profiles"},
	{Path: "/assets", Icon: "💻", Label: "nav.assets"},
	{Path: "/cve", Icon: "🔒", Label: "nav.cve"},
	{Path: "/activity", Icon: "📝", Label: "nav.activity"},
}

// view is what every page template receives.
type view struct {
	Lang   i18n.Lang
	Title  string
	Active string
	Nav    []navItem
	Flash  *flash

	// Refresh, when positive, reloads RefreshURL once after that many
	// seconds.
	Refresh    int
	RefreshURL string

	Data any
}

func newView(r *http.Request, active, title string, data any) *view {
	return &view{
		Lang:   langFrom(r.Context()),
		Title:  title,
		Active: active,
		Nav:    menu,
		Flash:  flashFrom(r),
		Data:   data,
	}
}

func (v *view) T(key string) string {
	return i18n.T(v.Lang, key)
}

func (v *view) StatusLabel(s model.CampaignStatus) string {
	if s.Rank() < 0 {
		return string(s)
	}
	return v.T("status." + string(s))
}

// StatusClass is the badge colour of a campaign status.
func (v *view) StatusClass(s model.CampaignStatus) string {
	switch s {
	case model.CampaignClosed:
		return "badge badge-low"
	case model.CampaignSent:
		return "badge badge-high"
	case model.CampaignScheduled:
		return "badge badge-medium"
	}
	return "badge"
}

func (v *view) AssetTypeLabel(t model.AssetType) string {
	if t == "" {
		return "-"
	}
	if !t.Valid() {
		return string(t)
	}
	return v.T("asset_type." + string(t))
}

func (v *view) AssetTypes() []model.AssetType {
	return model.AssetTypes
}

func (v *view) Date(ts *model.Timestamp) string {
	if ts == nil || ts.IsZero() {
		return "-"
	}
	return v.format(ts.Time, "2006. 1. 2.", "Jan 2, 2006")
}

func (v *view) DateTime(ts *model.Timestamp) string {
	if ts == nil || ts.IsZero() {
		return ""
	}
	return v.format(ts.Time, "2006. 1. 2. 15:04:05", "Jan 2, 2006 15:04:05")
}

func (v *view) Time(t time.Time) string {
	return v.DateTime(model.NewTimestamp(t))
}

func (v *view) format(t time.Time, ko, en string) string {
	if v.Lang == i18n.English {
		return t.Format(en)
	}
	return t.Format(ko)
}
