// internal/service/rates.go
package service

import "github.com/unclebandit/anything-security-console/internal/model"

// Rate is count as a percentage of total. It is 0 when total is 0 and never
// exceeds 100.
func Rate(count, total int) float64 {
	if total <= 0 || count <= 0 {
		return 0
	}
	r := float64(count) / float64(total) * 100
	if r > 100 {
		return 100
	}
	return r
}

// normalizeStats recomputes the rates from the counts.
func normalizeStats(s model.CampaignStats) model.CampaignStats {
	s.OpenRate = Rate(s.Opened, s.TotalRecipients)
	s.ClickRate = Rate(s.Clicked, s.TotalRecipients)
	s.ReportRate = Rate(s.Reported, s.TotalRecipients)
	return s
}
