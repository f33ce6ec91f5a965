package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/meridianfs/client_onboarding_app/internal/core/domain"
	"github.com/meridianfs/client_onboarding_app/internal/models"
)

// --- Mock ApplicationRepository ---

type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) CreateDraft(ctx context.Context, app *models.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockApplicationRepository) UpdateDraft(ctx context.Context, app *models.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockApplicationRepository) Submit(ctx context.Context, app *models.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockApplicationRepository) FindByID(ctx context.Context, applicationID string) (*models.Application, error) {
	args := m.Called(ctx, applicationID)
	var app *models.Application
	if args.Get(0) != nil {
		app = args.Get(0).(*models.Application)
	}
	return app, args.Error(1)
}

func (m *MockApplicationRepository) ListSubmitted(ctx context.Context) ([]models.ApplicationSummary, error) {
	args := m.Called(ctx)
	var summaries []models.ApplicationSummary
	if args.Get(0) != nil {
		summaries = args.Get(0).([]models.ApplicationSummary)
	}
	return summaries, args.Error(1)
}

func (m *MockApplicationRepository) UpdateReviewState(ctx context.Context, applicationID string, status *string, reviewedBy string) error {
	args := m.Called(ctx, applicationID, status, reviewedBy)
	return args.Error(0)
}

// --- Mock NoteRepository ---

type MockNoteRepository struct {
	mock.Mock
}

func (m *MockNoteRepository) AddNote(ctx context.Context, note *models.AccountingNote) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNoteRepository) FindByApplicationID(ctx context.Context, applicationID string) ([]models.AccountingNote, error) {
	args := m.Called(ctx, applicationID)
	var notes []models.AccountingNote
	if args.Get(0) != nil {
		notes = args.Get(0).([]models.AccountingNote)
	}
	return notes, args.Error(1)
}

// --- Mock AccessLogRepository ---

type MockAccessLogRepository struct {
	mock.Mock
}

func (m *MockAccessLogRepository) Append(ctx context.Context, entry *models.AccessLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAccessLogRepository) FindBySubject(ctx context.Context, subject string) ([]models.AccessLogEntry, error) {
	args := m.Called(ctx, subject)
	var entries []models.AccessLogEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]models.AccessLogEntry)
	}
	return entries, args.Error(1)
}

// --- Mock ReviewerRepository ---

type MockReviewerRepository struct {
	mock.Mock
}

func (m *MockReviewerRepository) FindByID(ctx context.Context, userID string) (*models.ReviewerUser, error) {
	args := m.Called(ctx, userID)
	var user *models.ReviewerUser
	if args.Get(0) != nil {
		user = args.Get(0).(*models.ReviewerUser)
	}
	return user, args.Error(1)
}

func (m *MockReviewerRepository) FindByEmail(ctx context.Context, email string) (*models.ReviewerUser, error) {
	args := m.Called(ctx, email)
	var user *models.ReviewerUser
	if args.Get(0) != nil {
		user = args.Get(0).(*models.ReviewerUser)
	}
	return user, args.Error(1)
}

func (m *MockReviewerRepository) UpdateLastLogin(ctx context.Context, userID string, at time.Time) error {
	args := m.Called(ctx, userID, at)
	return args.Error(0)
}

// --- Mock APIKeyRepository ---

type MockAPIKeyRepository struct {
	mock.Mock
}

func (m *MockAPIKeyRepository) Create(ctx context.Context, key *models.APIKey) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockAPIKeyRepository) FindByHash(ctx context.Context, keyHash string) (*models.APIKey, error) {
	args := m.Called(ctx, keyHash)
	var key *models.APIKey
	if args.Get(0) != nil {
		key = args.Get(0).(*models.APIKey)
	}
	return key, args.Error(1)
}

func (m *MockAPIKeyRepository) FindByUserID(ctx context.Context, userID string) ([]models.APIKey, error) {
	args := m.Called(ctx, userID)
	var keys []models.APIKey
	if args.Get(0) != nil {
		keys = args.Get(0).([]models.APIKey)
	}
	return keys, args.Error(1)
}

func (m *MockAPIKeyRepository) Deactivate(ctx context.Context, keyID, userID string) error {
	args := m.Called(ctx, keyID, userID)
	return args.Error(0)
}

func (m *MockAPIKeyRepository) UpdateLastUsed(ctx context.Context, keyID string, at time.Time) error {
	args := m.Called(ctx, keyID, at)
	return args.Error(0)
}

// --- Mock Notifier ---

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SubmissionReceived(ctx context.Context, app *domain.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockNotifier) ReviewTeamAlert(ctx context.Context, app *domain.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

// --- Mock AuditSvc ---

type MockAuditSvc struct {
	mock.Mock
}

func (m *MockAuditSvc) Record(ctx context.Context, subject, actorID, action string, meta domain.RequestMeta) {
	m.Called(ctx, subject, actorID, action, meta)
}

func (m *MockAuditSvc) ListForSubject(ctx context.Context, subject string) ([]domain.AccessLogEntry, error) {
	args := m.Called(ctx, subject)
	var entries []domain.AccessLogEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.AccessLogEntry)
	}
	return entries, args.Error(1)
}
