package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Navin2k4/UrbanUplift-sub000/internal/errors"
	"github.com/Navin2k4/UrbanUplift-sub000/internal/model"
	"github.com/Navin2k4/UrbanUplift-sub000/internal/repository"
)

// MockReportRepository is a mock implementation of ReportRepository.
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) Create(ctx context.Context, report *model.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportRepository) Update(ctx context.Context, report *model.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Report), args.Error(1)
}

func (m *MockReportRepository) List(ctx context.Context) ([]model.Report, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Report), args.Error(1)
}

func (m *MockReportRepository) RecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]model.Report, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Report), args.Error(1)
}

func (m *MockReportRepository) ListByStatusAndUser(ctx context.Context, status model.ReportStatus, userID uuid.UUID) ([]model.Report, error) {
	args := m.Called(ctx, status, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Report), args.Error(1)
}

func (m *MockReportRepository) CountByStatus(ctx context.Context, userID uuid.UUID) ([]repository.StatusCount, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.StatusCount), args.Error(1)
}

// MockMailer is a mock implementation of mailer.Sender.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendReportConfirmation(to, name string, report *model.Report) error {
	args := m.Called(to, name, report)
	return args.Error(0)
}

func validInput(creatorID uuid.UUID) CreateReportInput {
	return CreateReportInput{
		Description: "large pothole near the bus stop",
		Category:    "pothole",
		Location:    "MG Road",
		Priority:    model.PriorityMedium,
		AIPriority:  model.PriorityMedium,
		CreatedByID: creatorID,
	}
}

func TestReportService_Create(t *testing.T) {
	creator := &model.User{ID: uuid.New(), Name: "Asha", Email: "asha@example.com", Role: model.RoleCitizen}

	t.Run("creates report with pending status", func(t *testing.T) {
		reportRepo := new(MockReportRepository)
		userRepo := new(MockUserRepository)
		mailSender := new(MockMailer)

		userRepo.On("FindByID", mock.Anything, creator.ID).Return(creator, nil)
		reportRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Report")).Return(nil)
		mailSender.On("SendReportConfirmation", creator.Email, creator.Name, mock.Anything).Return(nil)

		svc := NewReportService(reportRepo, userRepo, nil, mailSender)
		out, err := svc.Create(context.Background(), validInput(creator.ID))

		require.NoError(t, err)
		assert.Equal(t, model.ReportStatusPending, out.Report.Status)
		assert.Equal(t, creator.ID, out.Report.CreatedByID)
		assert.NoError(t, out.EmailErr)
		reportRepo.AssertExpectations(t)
		mailSender.AssertExpectations(t)
	})

	t.Run("create succeeds even when email fails", func(t *testing.T) {
		reportRepo := new(MockReportRepository)
		userRepo := new(MockUserRepository)
		mailSender := new(MockMailer)

		userRepo.On("FindByID", mock.Anything, creator.ID).Return(creator, nil)
		reportRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Report")).Return(nil)
		mailSender.On("SendReportConfirmation", creator.Email, creator.Name, mock.Anything).
			Return(fmt.Errorf("smtp: connection refused"))

		svc := NewReportService(reportRepo, userRepo, nil, mailSender)
		out, err := svc.Create(context.Background(), validInput(creator.ID))

		require.NoError(t, err)
		assert.NotNil(t, out.Report)
		assert.Equal(t, model.ReportStatusPending, out.Report.Status)
		assert.Error(t, out.EmailErr)
	})

	t.Run("unknown creator", func(t *testing.T) {
		reportRepo := new(MockReportRepository)
		userRepo := new(MockUserRepository)

		ghost := uuid.New()
		userRepo.On("FindByID", mock.Anything, ghost).Return(nil, gorm.ErrRecordNotFound)

		svc := NewReportService(reportRepo, userRepo, nil, nil)
		out, err := svc.Create(context.Background(), validInput(ghost))

		assert.ErrorIs(t, err, errors.ErrUserNotFound)
		assert.Nil(t, out)
		reportRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestReportService_Get(t *testing.T) {
	reportRepo := new(MockReportRepository)
	id := uuid.New()
	reportRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	svc := NewReportService(reportRepo, new(MockUserRepository), nil, nil)
	report, err := svc.Get(context.Background(), id)

	assert.ErrorIs(t, err, errors.ErrReportNotFound)
	assert.Nil(t, report)
}

func TestReportService_Update(t *testing.T) {
	reportRepo := new(MockReportRepository)
	existing := &model.Report{
		ID:          uuid.New(),
		Description: "desc",
		Category:    "pothole",
		Status:      model.ReportStatusPending,
		CreatedByID: uuid.New(),
	}
	reportRepo.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
	reportRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Report")).Return(nil)

	status := model.ReportStatusResolved
	svc := NewReportService(reportRepo, new(MockUserRepository), nil, nil)
	updated, err := svc.Update(context.Background(), existing.ID, UpdateReportInput{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, model.ReportStatusResolved, updated.Status)
	assert.Equal(t, "pothole", updated.Category) // untouched fields preserved
}

func TestReportService_Stats(t *testing.T) {
	reportRepo := new(MockReportRepository)
	userID := uuid.New()
	reportRepo.On("CountByStatus", mock.Anything, userID).Return([]repository.StatusCount{
		{Status: model.ReportStatusPending, Count: 3},
		{Status: model.ReportStatusInProgress, Count: 1},
		{Status: model.ReportStatusResolved, Count: 6},
	}, nil)

	svc := NewReportService(reportRepo, new(MockUserRepository), nil, nil)
	stats, err := svc.Stats(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.Total)
	assert.Equal(t, int64(3), stats.Pending)
	assert.Equal(t, int64(1), stats.InProgress)
	assert.Equal(t, int64(6), stats.Resolved)
}
