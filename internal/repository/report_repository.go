package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Navin2k4/UrbanUplift-sub000/internal/model"
)

// StatusCount is one row of the per-status aggregation.
type StatusCount struct {
	Status model.ReportStatus `json:"status"`
	Count  int64              `json:"count"`
}

// ReportRepository defines report persistence operations.
type ReportRepository interface {
	Create(ctx context.Context, report *model.Report) error
	Update(ctx context.Context, report *model.Report) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Report, error)
	List(ctx context.Context) ([]model.Report, error)
	RecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]model.Report, error)
	ListByStatusAndUser(ctx context.Context, status model.ReportStatus, userID uuid.UUID) ([]model.Report, error)
	CountByStatus(ctx context.Context, userID uuid.UUID) ([]StatusCount, error)
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository.
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

// Create creates a new report record.
func (r *reportRepository) Create(ctx context.Context, report *model.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

// Update updates an existing report record.
func (r *reportRepository) Update(ctx context.Context, report *model.Report) error {
	return r.db.WithContext(ctx).Save(report).Error
}

// Delete soft-deletes a report.
func (r *reportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Report{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindByID finds a report by ID with its creator preloaded.
func (r *reportRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Report, error) {
	var report model.Report
	if err := r.db.WithContext(ctx).Preload("CreatedBy").
		Where("id = ?", id).First(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// List returns all reports, newest first.
func (r *reportRepository) List(ctx context.Context) ([]model.Report, error) {
	var reports []model.Report
	if err := r.db.WithContext(ctx).Preload("CreatedBy").
		Order("created_at DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// RecentByUser returns the most recent reports created by a user.
func (r *reportRepository) RecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]model.Report, error) {
	var reports []model.Report
	if err := r.db.WithContext(ctx).
		Where("created_by_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// ListByStatusAndUser returns a user's reports in a given status.
func (r *reportRepository) ListByStatusAndUser(ctx context.Context, status model.ReportStatus, userID uuid.UUID) ([]model.Report, error) {
	var reports []model.Report
	if err := r.db.WithContext(ctx).
		Where("created_by_id = ? AND status = ?", userID, status).
		Order("created_at DESC").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// CountByStatus aggregates a user's reports by status.
func (r *reportRepository) CountByStatus(ctx context.Context, userID uuid.UUID) ([]StatusCount, error) {
	var counts []StatusCount
	if err := r.db.WithContext(ctx).Model(&model.Report{}).
		Select("status, COUNT(*) as count").
		Where("created_by_id = ?", userID).
		Group("status").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}
