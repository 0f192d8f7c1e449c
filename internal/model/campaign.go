// internal/model/campaign.go
package model

type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignScheduled CampaignStatus = "scheduled"
	CampaignSent      CampaignStatus = "sent"
	CampaignCompleted CampaignStatus = "completed"
	CampaignClosed    CampaignStatus = "closed"
)

var campaignStatusRank = map[CampaignStatus]int{
	CampaignDraft:     0,
	CampaignScheduled: 1,
	CampaignSent:      2,
	CampaignCompleted: 3,
	CampaignClosed:    4,
}

// Rank orders statuses along the campaign lifecycle. Unknown statuses rank -1.
func (s CampaignStatus) Rank() int {
	if r, ok := campaignStatusRank[s]; ok {
		return r
	}
	return -1
}

// CanTransition reports whether a campaign in status s may move to status to.
// Status only moves forward; nothing returns to draft and closed is final.
func (s CampaignStatus) CanTransition(to CampaignStatus) bool {
	if s.Rank() < 0 || to.Rank() < 0 {
		return false
	}
	if s == CampaignClosed || to == CampaignDraft {
		return false
	}
	return to.Rank() > s.Rank()
}

// IsActive is true while emails are out or about to go out.
func (s CampaignStatus) IsActive() bool {
	return s == CampaignSent || s == CampaignScheduled
}

type Campaign struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	TemplateID  int            `json:"template_id"`
	Status      CampaignStatus `json:"status"`
	TargetURL   string         `json:"target_url,omitempty"`
	ScheduledAt *Timestamp     `json:"scheduled_at,omitempty"`
	CreatedAt   *Timestamp     `json:"created_at,omitempty"`
	UpdatedAt   *Timestamp     `json:"updated_at,omitempty"`
}

// Closable reports whether the console offers the close action.
func (c Campaign) Closable() bool {
	return c.Status != CampaignClosed
}

// NewCampaign is the create payload. Recipients are fixed at creation.
type NewCampaign struct {
	Name            string   `json:"name" validate:"required"`
	TemplateID      int      `json:"template_id" validate:"required,gt=0"`
	RecipientEmails []string `json:"recipient_emails" validate:"required,min=1,dive,email"`
	TargetURL       string   `json:"target_url" validate:"omitempty,url"`
}

// CampaignStats is the aggregate tracking view of one campaign.
type CampaignStats struct {
	TotalRecipients int     `json:"total_recipients"`
	Opened          int     `json:"opened"`
	OpenRate        float64 `json:"open_rate"`
	Clicked         int     `json:"clicked"`
	ClickRate       float64 `json:"click_rate"`
	Reported        int     `json:"reported"`
	ReportRate      float64 `json:"report_rate"`
}
