// internal/model/recipient.go
package model

// Recipient is the per-address tracking row of a campaign. Each event
// timestamp is set once by the backend and never cleared.
type Recipient struct {
	ID         int        `json:"id"`
	CampaignID int        `json:"campaign_id"`
	Email      string     `json:"email"`
	Name       string     `json:"name"`
	SentAt     *Timestamp `json:"sent_at,omitempty"`
	Opened     bool       `json:"opened"`
	OpenedAt   *Timestamp `json:"opened_at,omitempty"`
	Clicked    bool       `json:"clicked"`
	ClickedAt  *Timestamp `json:"clicked_at,omitempty"`
	Reported   bool       `json:"reported"`
	ReportedAt *Timestamp `json:"reported_at,omitempty"`
	CreatedAt  *Timestamp `json:"created_at,omitempty"`
}
