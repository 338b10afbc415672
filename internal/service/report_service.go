package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Navin2k4/UrbanUplift-sub000/internal/cache"
	"github.com/Navin2k4/UrbanUplift-sub000/internal/errors"
	"github.com/Navin2k4/UrbanUplift-sub000/internal/mailer"
	"github.com/Navin2k4/UrbanUplift-sub000/internal/model"
	"github.com/Navin2k4/UrbanUplift-sub000/internal/repository"
)

const (
	statsCacheTTL    = 60 * time.Second
	recentLimit      = 5
	statsCachePrefix = "report_stats:"
)

// CreateReportInput carries a validated report submission.
type CreateReportInput struct {
	Description string
	Category    string
	Location    string
	Priority    model.Priority
	AIPriority  model.Priority
	Latitude    *float64
	Longitude   *float64
	Address     *string
	District    *string
	State       *string
	ImageURL    *string
	CreatedByID uuid.UUID
}

// UpdateReportInput carries a partial report update; nil fields are left as-is.
type UpdateReportInput struct {
	Description *string
	Category    *string
	Status      *model.ReportStatus
	Priority    *model.Priority
	Location    *string
	ImageURL    *string
}

// ReportStats is the per-user aggregation returned by Stats.
type ReportStats struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"in_progress"`
	Resolved   int64 `json:"resolved"`
}

// CreateReportOutput pairs the committed report with the outcome of the
// best-effort notification phase.
type CreateReportOutput struct {
	Report   *model.Report
	EmailErr error
}

// ReportService handles report CRUD, aggregation, and submission notification.
type ReportService interface {
	Create(ctx context.Context, input CreateReportInput) (*CreateReportOutput, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Report, error)
	List(ctx context.Context) ([]model.Report, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateReportInput) (*model.Report, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context, userID uuid.UUID) (*ReportStats, error)
	Recent(ctx context.Context, userID uuid.UUID) ([]model.Report, error)
	ListByStatus(ctx context.Context, status model.ReportStatus, userID uuid.UUID) ([]model.Report, error)
}

type reportService struct {
	reportRepo repository.ReportRepository
	userRepo   repository.UserRepository
	cache      *cache.Client
	mail       mailer.Sender
}

// NewReportService creates a new report service.
func NewReportService(
	reportRepo repository.ReportRepository,
	userRepo repository.UserRepository,
	cacheClient *cache.Client,
	mail mailer.Sender,
) ReportService {
	return &reportService{
		reportRepo: reportRepo,
		userRepo:   userRepo,
		cache:      cacheClient,
		mail:       mail,
	}
}

// Create persists the report, then sends a best-effort confirmation email.
// The two phases are deliberately non-transactional: a mail failure is
// captured in EmailErr next to the committed report, never returned as error.
func (s *reportService) Create(ctx context.Context, input CreateReportInput) (*CreateReportOutput, error) {
	creator, err := s.userRepo.FindByID(ctx, input.CreatedByID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find creator: %w", err)
	}

	report := &model.Report{
		Description: input.Description,
		Category:    input.Category,
		Status:      model.ReportStatusPending,
		Priority:    input.Priority,
		AIPriority:  input.AIPriority,
		Location:    input.Location,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Address:     input.Address,
		District:    input.District,
		State:       input.State,
		ImageURL:    input.ImageURL,
		CreatedByID: creator.ID,
	}

	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}

	s.invalidateStats(ctx, creator.ID)

	out := &CreateReportOutput{Report: report}
	if s.mail != nil {
		if out.EmailErr = s.mail.SendReportConfirmation(creator.Email, creator.Name, report); out.EmailErr != nil {
			log.Printf("confirmation email for report %s: %v", report.ID, out.EmailErr)
		}
	}

	return out, nil
}

// Get returns a report by ID.
func (s *reportService) Get(ctx context.Context, id uuid.UUID) (*model.Report, error) {
	report, err := s.reportRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrReportNotFound
		}
		return nil, fmt.Errorf("find report: %w", err)
	}
	return report, nil
}

// List returns all reports, newest first.
func (s *reportService) List(ctx context.Context) ([]model.Report, error) {
	return s.reportRepo.List(ctx)
}

// Update applies a partial update to a report.
func (s *reportService) Update(ctx context.Context, id uuid.UUID, input UpdateReportInput) (*model.Report, error) {
	report, err := s.reportRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrReportNotFound
		}
		return nil, fmt.Errorf("find report: %w", err)
	}

	if input.Description != nil {
		report.Description = *input.Description
	}
	if input.Category != nil {
		report.Category = *input.Category
	}
	if input.Status != nil {
		report.Status = *input.Status
	}
	if input.Priority != nil {
		report.Priority = *input.Priority
	}
	if input.Location != nil {
		report.Location = *input.Location
	}
	if input.ImageURL != nil {
		report.ImageURL = input.ImageURL
	}

	if err := s.reportRepo.Update(ctx, report); err != nil {
		return nil, fmt.Errorf("update report: %w", err)
	}

	s.invalidateStats(ctx, report.CreatedByID)
	return report, nil
}

// Delete soft-deletes a report.
func (s *reportService) Delete(ctx context.Context, id uuid.UUID) error {
	report, err := s.reportRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrReportNotFound
		}
		return fmt.Errorf("find report: %w", err)
	}

	if err := s.reportRepo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrReportNotFound
		}
		return fmt.Errorf("delete report: %w", err)
	}

	s.invalidateStats(ctx, report.CreatedByID)
	return nil
}

// Stats returns a user's per-status counts, cached for a short window.
func (s *reportService) Stats(ctx context.Context, userID uuid.UUID) (*ReportStats, error) {
	key := statsCachePrefix + userID.String()

	if data, _ := s.cache.Get(ctx, key); data != nil {
		var stats ReportStats
		if err := json.Unmarshal(data, &stats); err == nil {
			return &stats, nil
		}
	}

	counts, err := s.reportRepo.CountByStatus(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count by status: %w", err)
	}

	stats := &ReportStats{}
	for _, c := range counts {
		stats.Total += c.Count
		switch c.Status {
		case model.ReportStatusPending:
			stats.Pending = c.Count
		case model.ReportStatusInProgress:
			stats.InProgress = c.Count
		case model.ReportStatusResolved:
			stats.Resolved = c.Count
		}
	}

	if payload, err := json.Marshal(stats); err == nil {
		_ = s.cache.Set(ctx, key, payload, statsCacheTTL)
	}

	return stats, nil
}

// Recent returns a user's most recent reports.
func (s *reportService) Recent(ctx context.Context, userID uuid.UUID) ([]model.Report, error) {
	return s.reportRepo.RecentByUser(ctx, userID, recentLimit)
}

// ListByStatus returns a user's reports in one status.
func (s *reportService) ListByStatus(ctx context.Context, status model.ReportStatus, userID uuid.UUID) ([]model.Report, error) {
	return s.reportRepo.ListByStatusAndUser(ctx, status, userID)
}

func (s *reportService) invalidateStats(ctx context.Context, userID uuid.UUID) {
	_ = s.cache.Delete(ctx, statsCachePrefix+userID.String())
}
