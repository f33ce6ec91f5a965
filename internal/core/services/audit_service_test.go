package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/meridianfs/client_onboarding_app/internal/core/domain"
	portssvc "github.com/meridianfs/client_onboarding_app/internal/core/ports/services"
	"github.com/meridianfs/client_onboarding_app/internal/core/services"
	"github.com/meridianfs/client_onboarding_app/internal/models"
)

type AuditServiceTestSuite struct {
	suite.Suite
	mockLogRepo *MockAccessLogRepository
	service     portssvc.AuditSvc
}

func (suite *AuditServiceTestSuite) SetupTest() {
	suite.mockLogRepo = new(MockAccessLogRepository)
	suite.service = services.NewAuditService(suite.mockLogRepo)
}

func (suite *AuditServiceTestSuite) TestRecord_AppendsEntry() {
	ctx := context.Background()
	var stored *models.AccessLogEntry
	suite.mockLogRepo.On("Append", ctx, mock.AnythingOfType("*models.AccessLogEntry")).Return(nil).Once().
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*models.AccessLogEntry)
		})

	meta := domain.RequestMeta{IP: "198.51.100.4", UserAgent: "Chrome 138.0 (Windows 10)"}
	suite.service.Record(ctx, "app-1", "reviewer-1", domain.ActionViewApplication, meta)

	suite.Require().NotNil(stored)
	suite.NotEmpty(stored.EntryID)
	suite.Equal("app-1", stored.Subject)
	suite.Equal("reviewer-1", stored.ActorID)
	suite.Equal(domain.ActionViewApplication, stored.Action)
	suite.Equal("198.51.100.4", stored.IP)
	suite.WithinDuration(time.Now(), stored.CreatedAt, time.Minute)
}

func (suite *AuditServiceTestSuite) TestRecord_FillsUnknownMeta() {
	ctx := context.Background()
	var stored *models.AccessLogEntry
	suite.mockLogRepo.On("Append", ctx, mock.Anything).Return(nil).Once().
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*models.AccessLogEntry)
		})

	suite.service.Record(ctx, "app-1", "reviewer-1", domain.ActionApprove, domain.RequestMeta{})

	suite.Require().NotNil(stored)
	suite.Equal("unknown", stored.IP)
	suite.Equal("unknown", stored.UserAgent)
}

func (suite *AuditServiceTestSuite) TestRecord_SwallowsAppendFailure() {
	ctx := context.Background()
	suite.mockLogRepo.On("Append", ctx, mock.Anything).Return(assert.AnError).Once()

	// Must not panic and has no error to return.
	suite.service.Record(ctx, "app-1", "reviewer-1", domain.ActionApprove, domain.RequestMeta{})
	suite.mockLogRepo.AssertExpectations(suite.T())
}

func (suite *AuditServiceTestSuite) TestListForSubject_MapsRows() {
	ctx := context.Background()
	now := time.Now()
	rows := []models.AccessLogEntry{
		{EntryID: "e2", Subject: "app-1", ActorID: "reviewer-1", Action: domain.ActionApprove, IP: "198.51.100.4", UserAgent: "curl", CreatedAt: now},
		{EntryID: "e1", Subject: "app-1", ActorID: "system", Action: domain.ActionSubmitApplication, IP: "203.0.113.9", UserAgent: "unknown", CreatedAt: now.Add(-time.Hour)},
	}
	suite.mockLogRepo.On("FindBySubject", ctx, "app-1").Return(rows, nil).Once()

	entries, err := suite.service.ListForSubject(ctx, "app-1")

	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	suite.Equal("e2", entries[0].EntryID)
	suite.Equal(domain.ActionSubmitApplication, entries[1].Action)
}

func TestAuditServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuditServiceTestSuite))
}
