// internal/service/campaign_service.go
package service

import (
	"context"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/unclebandit/anything-security-console/internal/client"
	"github.com/unclebandit/anything-security-console/internal/model"
)

// DefaultTargetURL is where a clicked phishing link lands when the campaign
// names no target.
const DefaultTargetURL = "https://example.com"

type CampaignService struct {
	Campaigns client.CampaignAPI
	Templates client.TemplateAPI
	Validator *Validator
	Auditor   Auditor
	Logger    *zap.Logger
}

// CampaignForm is the raw campaign creation form.
type CampaignForm struct {
	Name       string
	TemplateID int
	Recipients string
	TargetURL  string
}

type CampaignsPage struct {
	Campaigns []model.Campaign
	// Templates holds only active templates, the ones a campaign may use.
	Templates []model.Template

	ShowForm bool
	Form     CampaignForm

	Selected   *model.Campaign
	Stats      *model.CampaignStats
	Recipients []model.Recipient
}

// CampaignDetail is one campaign with its tracking data. Stats or Recipients
// is nil when its fetch failed.
type CampaignDetail struct {
	Campaign   *model.Campaign      `json:"campaign"`
	Stats      *model.CampaignStats `json:"stats"`
	Recipients []model.Recipient    `json:"recipients"`
}

// ParseRecipients splits a comma or newline separated address list, trimming
// each entry and dropping blanks.
func ParseRecipients(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})
	out := []string{}
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// Create validates the form and creates the campaign. The backend sends or
// schedules the emails.
func (s *CampaignService) Create(ctx context.Context, form CampaignForm) (*model.Campaign, error) {
	in := model.NewCampaign{
		Name:            strings.TrimSpace(form.Name),
		TemplateID:      form.TemplateID,
		RecipientEmails: ParseRecipients(form.Recipients),
		TargetURL:       strings.TrimSpace(form.TargetURL),
	}
	if err := s.Validator.Struct(in); err != nil {
		return nil, err
	}
	if in.TargetURL == "" {
		in.TargetURL = DefaultTargetURL
	}

	campaign, err := s.Campaigns.CreateCampaign(ctx, in)
	if err != nil {
		loggerOrNop(s.Logger).Error("failed to create campaign", zap.String("name", in.Name), zap.Error(err))
		return nil, errors.Wrap(err, "create campaign")
	}

	auditOrNop(s.Auditor).Record(ctx, model.AuditEvent{
		Action:     model.ActionCreate,
		Resource:   model.ResourceCampaign,
		ResourceID: campaign.ID,
		Detail:     in.Name,
	})
	return campaign, nil
}

// Page loads the campaign list and the template picker, plus the detail of
// the selected campaign when selectedID is set.
func (s *CampaignService) Page(ctx context.Context, selectedID int, showForm bool) (*CampaignsPage, error) {
	var (
		campaigns []model.Campaign
		templates []model.Template
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		campaigns, err = s.Campaigns.ListCampaigns(gctx)
		return errors.Wrap(err, "list campaigns")
	})
	g.Go(func() error {
		var err error
		templates, err = s.Templates.ListTemplates(gctx)
		return errors.Wrap(err, "list templates")
	})
	if err := g.Wait(); err != nil {
		loggerOrNop(s.Logger).Error("failed to load campaigns", zap.Error(err))
		return nil, err
	}

	page := &CampaignsPage{
		Campaigns: campaigns,
		Templates: lo.Filter(templates, func(t model.Template, _ int) bool { return t.IsActive }),
		ShowForm:  showForm,
	}
	if selectedID > 0 {
		if selected, found := lo.Find(campaigns, func(c model.Campaign) bool { return c.ID == selectedID }); found {
			page.Selected = &selected
			page.Stats, page.Recipients = s.tracking(ctx, selectedID)
		}
	}
	return page, nil
}

// Detail fetches the campaign with its tracking data.
func (s *CampaignService) Detail(ctx context.Context, id int) (*CampaignDetail, error) {
	campaign, err := s.Campaigns.GetCampaign(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "get campaign")
	}
	detail := &CampaignDetail{Campaign: campaign}
	detail.Stats, detail.Recipients = s.tracking(ctx, id)
	return detail, nil
}

// tracking fetches stats and recipients concurrently. A failure is logged and
// leaves that part empty.
func (s *CampaignService) tracking(ctx context.Context, id int) (*model.CampaignStats, []model.Recipient) {
	logger := loggerOrNop(s.Logger)
	var (
		stats      *model.CampaignStats
		recipients []model.Recipient
		wg         sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		st, err := s.Campaigns.GetCampaignStats(ctx, id)
		if err != nil {
			logger.Warn("failed to fetch campaign stats", zap.Int("campaign_id", id), zap.Error(err))
			return
		}
		normalized := normalizeStats(*st)
		stats = &normalized
	}()
	go func() {
		defer wg.Done()
		rs, err := s.Campaigns.GetCampaignRecipients(ctx, id)
		if err != nil {
			logger.Warn("failed to fetch campaign recipients", zap.Int("campaign_id", id), zap.Error(err))
			return
		}
		recipients = rs
	}()
	wg.Wait()
	return stats, recipients
}

// Close closes campaign id for good and returns the selection the page should
// keep: zero when the closed campaign was the selected one.
func (s *CampaignService) Close(ctx context.Context, id, selectedID int) (int, error) {
	if err := s.Campaigns.CloseCampaign(ctx, id); err != nil {
		loggerOrNop(s.Logger).Error("failed to close campaign", zap.Int("campaign_id", id), zap.Error(err))
		return selectedID, errors.Wrap(err, "close campaign")
	}
	auditOrNop(s.Auditor).Record(ctx, model.AuditEvent{
		Action:     model.ActionClose,
		Resource:   model.ResourceCampaign,
		ResourceID: id,
	})
	if id == selectedID {
		return 0, nil
	}
	return selectedID, nil
}
