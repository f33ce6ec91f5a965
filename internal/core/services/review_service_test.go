package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/meridianfs/client_onboarding_app/internal/apperrors"
	"github.com/meridianfs/client_onboarding_app/internal/core/domain"
	portssvc "github.com/meridianfs/client_onboarding_app/internal/core/ports/services"
	"github.com/meridianfs/client_onboarding_app/internal/core/services"
	"github.com/meridianfs/client_onboarding_app/internal/dto"
	"github.com/meridianfs/client_onboarding_app/internal/models"
	"github.com/meridianfs/client_onboarding_app/internal/platform/fieldcrypt"
)

type ReviewServiceTestSuite struct {
	suite.Suite
	mockAppRepo  *MockApplicationRepository
	mockNoteRepo *MockNoteRepository
	mockAudit    *MockAuditSvc
	mockNotifier *MockNotifier
	codec        *services.ApplicationCodec
	service      portssvc.ReviewSvc

	actorID string
	meta    domain.RequestMeta
}

func (suite *ReviewServiceTestSuite) SetupTest() {
	suite.mockAppRepo = new(MockApplicationRepository)
	suite.mockNoteRepo = new(MockNoteRepository)
	suite.mockAudit = new(MockAuditSvc)
	suite.mockNotifier = new(MockNotifier)

	cipher, err := fieldcrypt.New(testKeyHex)
	suite.Require().NoError(err)
	suite.codec = services.NewApplicationCodec(cipher)

	suite.service = services.NewReviewService(
		suite.mockAppRepo,
		suite.mockNoteRepo,
		suite.codec,
		suite.mockAudit,
		suite.mockNotifier,
	)

	suite.actorID = "reviewer-1"
	suite.meta = domain.RequestMeta{IP: "198.51.100.4", UserAgent: "Chrome 138.0 (Windows 10)"}
}

// submittedRecord builds a persisted, submitted application through the real
// codec so protected fields are genuinely encrypted.
func (suite *ReviewServiceTestSuite) submittedRecord(id string) *models.Application {
	app := sampleApplication()
	rec, err := suite.codec.ToRecord(&app)
	suite.Require().NoError(err)
	rec.ApplicationID = id
	rec.ReferenceNumber = "TST-ABC123XY"
	rec.IsSubmitted = true
	rec.AccountingStatus = domain.StatusPendingReview
	now := time.Now()
	rec.SubmittedAt = &now
	return rec
}

// --- ListApplications ---

func (suite *ReviewServiceTestSuite) TestListApplications_AuditsListSubject() {
	ctx := context.Background()
	summaries := []models.ApplicationSummary{
		{ApplicationID: "app-1", ReferenceNumber: "TST-1", ApplicantName: "Alex Nguyen"},
		{ApplicationID: "app-2", ReferenceNumber: "TST-2", ApplicantName: "Sam Nguyen"},
	}
	suite.mockAppRepo.On("ListSubmitted", ctx).Return(summaries, nil).Once()
	suite.mockAudit.On("Record", ctx, domain.SubjectApplicationList, suite.actorID, domain.ActionListApplications, suite.meta).Once()

	resp, err := suite.service.ListApplications(ctx, suite.actorID, suite.meta)

	suite.Require().NoError(err)
	suite.Len(resp.Applications, 2)
	suite.Equal("Alex Nguyen", resp.Applications[0].ApplicantName)
	suite.mockAudit.AssertExpectations(suite.T())
}

// --- GetApplication ---

func (suite *ReviewServiceTestSuite) TestGetApplication_DecryptsAndAudits() {
	ctx := context.Background()
	rec := suite.submittedRecord("app-1")
	notes := []models.AccountingNote{{NoteID: "n1", ApplicationID: "app-1", Note: "Checked ID", CreatedBy: suite.actorID}}

	suite.mockAppRepo.On("FindByID", ctx, "app-1").Return(rec, nil).Once()
	suite.mockNoteRepo.On("FindByApplicationID", ctx, "app-1").Return(notes, nil).Once()
	suite.mockAudit.On("Record", ctx, "app-1", suite.actorID, domain.ActionViewApplication, suite.meta).Once()

	resp, err := suite.service.GetApplication(ctx, suite.actorID, "app-1", suite.meta)

	suite.Require().NoError(err)
	suite.Equal("123456789", resp.Application.EntityDetails.TFN)
	suite.Equal("063000", resp.Application.BankDetails.BSB)
	suite.Require().Len(resp.Notes, 1)
	suite.Equal("Checked ID", resp.Notes[0].Note)
	suite.mockAudit.AssertExpectations(suite.T())
}

func (suite *ReviewServiceTestSuite) TestGetApplication_CorruptFieldGetsPlaceholder() {
	ctx := context.Background()
	rec := suite.submittedRecord("app-1")
	rec.BankDetails.BSB.AuthTag = "00000000000000000000000000000000"

	suite.mockAppRepo.On("FindByID", ctx, "app-1").Return(rec, nil).Once()
	suite.mockNoteRepo.On("FindByApplicationID", ctx, "app-1").Return([]models.AccountingNote{}, nil).Once()
	suite.mockAudit.On("Record", ctx, "app-1", suite.actorID, domain.ActionViewApplication, suite.meta).Once()

	resp, err := suite.service.GetApplication(ctx, suite.actorID, "app-1", suite.meta)

	suite.Require().NoError(err)
	suite.Equal(services.DecryptPlaceholder, resp.Application.BankDetails.BSB)
	suite.Equal("123456789", resp.Application.EntityDetails.TFN)
}

func (suite *ReviewServiceTestSuite) TestGetApplication_DraftIsInvisible() {
	ctx := context.Background()
	rec := suite.submittedRecord("app-1")
	rec.IsSubmitted = false

	suite.mockAppRepo.On("FindByID", ctx, "app-1").Return(rec, nil).Once()

	_, err := suite.service.GetApplication(ctx, suite.actorID, "app-1", suite.meta)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAudit.AssertNotCalled(suite.T(), "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- PerformAction ---

func (suite *ReviewServiceTestSuite) TestPerformAction_Approve() {
	ctx := context.Background()
	rec := suite.submittedRecord("app-1")

	suite.mockAppRepo.On("FindByID", ctx, "app-1").Return(rec, nil).Once()
	suite.mockAppRepo.On("UpdateReviewState", ctx, "app-1", mock.MatchedBy(func(s *string) bool {
		return s != nil && *s == domain.StatusApproved
	}), suite.actorID).Return(nil).Once()
	suite.mockAudit.On("Record", ctx, "app-1", suite.actorID, domain.ActionApprove, suite.meta).Once()

	resp, err := suite.service.PerformAction(ctx, suite.actorID, "app-1", dto.ReviewActionRequest{Action: domain.ActionApprove}, suite.meta)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusApproved, resp.AccountingStatus)
	suite.mockAppRepo.AssertExpectations(suite.T())
	suite.mockAudit.AssertExpectations(suite.T())
}

func (suite *ReviewServiceTestSuite) TestPerformAction_RejectRequiresReason() {
	ctx := context.Background()
	rec := suite.submittedRecord("app-1")

	suite.mockAppRepo.On("FindByID", ctx, "app-1").Return(rec, nil).Once()

	_, err := suite.service.PerformAction(ctx, suite.actorID, "app-1", dto.ReviewActionRequest{Action: domain.ActionReject, Reason: "   "}, suite.meta)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAppRepo.AssertNotCalled(suite.T(), "UpdateReviewState", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockAudit.AssertNotCalled(suite.T(), "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReviewServiceTestSuite) TestPerformAction_RejectStoresReasonAsNote() {
	ctx := context.Background()
	rec := suite.submittedRecord("app-1")

	suite.mockAppRepo.On("FindByID", ctx, "app-1").Return(rec, nil).Once()
	suite.mockAppRepo.On("UpdateReviewState", ctx, "app-1", mock.MatchedBy(func(s *string) bool {
		return s != nil && *s == domain.StatusAdditionalInfo
	}), suite.actorID).Return(nil).Once()
	suite.mockNoteRepo.On("AddNote", ctx, mock.MatchedBy(func(n *models.AccountingNote) bool {
		return n.ApplicationID == "app-1" && n.Note == "Missing ID" && n.CreatedBy == suite.actorID
	})).Return(nil).Once()
	suite.mockAudit.On("Record", ctx, "app-1", suite.actorID, domain.ActionReject, suite.meta).Once()

	resp, err := suite.service.PerformAction(ctx, suite.actorID, "app-1", dto.ReviewActionRequest{Action: domain.ActionReject, Reason: "Missing ID"}, suite.meta)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusAdditionalInfo, resp.AccountingStatus)
	suite.mockNoteRepo.AssertExpectations(suite.T())
	suite.mockAudit.AssertExpectations(suite.T())
}

func (suite *ReviewServiceTestSuite) TestPerformAction_UpdateStatusSetsOperatorValue() {
	ctx := context.Background()
	rec := suite.submittedRecord("app-1")

	suite.mockAppRepo.On("FindByID", ctx, "app-1").Return(rec, nil).Once()
	suite.mockAppRepo.On("UpdateReviewState", ctx, "app-1", mock.MatchedBy(func(s *string) bool {
		return s != nil && *s == "awaiting_certified_copies"
	}), suite.actorID).Return(nil).Once()
	suite.mockAudit.On("Record", ctx, "app-1", suite.actorID, domain.ActionUpdateStatus, suite.meta).Once()

	resp, err := suite.service.PerformAction(ctx, suite.actorID, "app-1", dto.ReviewActionRequest{Action: domain.ActionUpdateStatus, Status: "awaiting_certified_copies"}, suite.meta)

	suite.Require().NoError(err)
	suite.Equal("awaiting_certified_copies", resp.AccountingStatus)
}

func (suite *ReviewServiceTestSuite) TestPerformAction_AddNotes() {
	ctx := context.Background()
	rec := suite.submittedRecord("app-1")

	suite.mockAppRepo.On("FindByID", ctx, "app-1").Return(rec, nil).Once()
	suite.mockNoteRepo.On("AddNote", ctx, mock.MatchedBy(func(n *models.AccountingNote) bool {
		return n.Note == "Called applicant"
	})).Return(nil).Once()
	suite.mockAudit.On("Record", ctx, "app-1", suite.actorID, domain.ActionAddNotes, suite.meta).Once()

	resp, err := suite.service.PerformAction(ctx, suite.actorID, "app-1", dto.ReviewActionRequest{Action: domain.ActionAddNotes, Notes: "Called applicant"}, suite.meta)

	suite.Require().NoError(err)
	// The status is unchanged by a note.
	suite.Equal(domain.StatusPendingReview, resp.AccountingStatus)
	suite.mockAppRepo.AssertNotCalled(suite.T(), "UpdateReviewState", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReviewServiceTestSuite) TestPerformAction_MarkReviewedKeepsStatus() {
	ctx := context.Background()
	rec := suite.submittedRecord("app-1")

	suite.mockAppRepo.On("FindByID", ctx, "app-1").Return(rec, nil).Once()
	suite.mockAppRepo.On("UpdateReviewState", ctx, "app-1", (*string)(nil), suite.actorID).Return(nil).Once()
	suite.mockAudit.On("Record", ctx, "app-1", suite.actorID, domain.ActionMarkReviewed, suite.meta).Once()

	resp, err := suite.service.PerformAction(ctx, suite.actorID, "app-1", dto.ReviewActionRequest{Action: domain.ActionMarkReviewed}, suite.meta)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPendingReview, resp.AccountingStatus)
	suite.mockAppRepo.AssertExpectations(suite.T())
}

func (suite *ReviewServiceTestSuite) TestPerformAction_ResendNotification() {
	ctx := context.Background()
	rec := suite.submittedRecord("app-1")

	suite.mockAppRepo.On("FindByID", ctx, "app-1").Return(rec, nil).Once()
	suite.mockNotifier.On("SubmissionReceived", ctx, mock.MatchedBy(func(app *domain.Application) bool {
		return app.ID == "app-1"
	})).Return(nil).Once()
	suite.mockAudit.On("Record", ctx, "app-1", suite.actorID, domain.ActionResendNotification, suite.meta).Once()

	_, err := suite.service.PerformAction(ctx, suite.actorID, "app-1", dto.ReviewActionRequest{Action: domain.ActionResendNotification}, suite.meta)

	suite.Require().NoError(err)
	suite.mockNotifier.AssertExpectations(suite.T())
	suite.mockAppRepo.AssertNotCalled(suite.T(), "UpdateReviewState", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReviewServiceTestSuite) TestPerformAction_ResendFailurePropagatesWithoutAudit() {
	ctx := context.Background()
	rec := suite.submittedRecord("app-1")

	suite.mockAppRepo.On("FindByID", ctx, "app-1").Return(rec, nil).Once()
	suite.mockNotifier.On("SubmissionReceived", ctx, mock.Anything).Return(assert.AnError).Once()

	_, err := suite.service.PerformAction(ctx, suite.actorID, "app-1", dto.ReviewActionRequest{Action: domain.ActionResendNotification}, suite.meta)

	suite.Require().Error(err)
	suite.mockAudit.AssertNotCalled(suite.T(), "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReviewServiceTestSuite) TestPerformAction_UnknownActionRejected() {
	ctx := context.Background()
	rec := suite.submittedRecord("app-1")

	suite.mockAppRepo.On("FindByID", ctx, "app-1").Return(rec, nil).Once()

	_, err := suite.service.PerformAction(ctx, suite.actorID, "app-1", dto.ReviewActionRequest{Action: "escalate"}, suite.meta)

	suite.ErrorIs(err, apperrors.ErrInvalidAction)
	suite.mockAudit.AssertNotCalled(suite.T(), "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- GetAuditTrail ---

func (suite *ReviewServiceTestSuite) TestGetAuditTrail_ReadsAndRecords() {
	ctx := context.Background()
	rec := suite.submittedRecord("app-1")
	entries := []domain.AccessLogEntry{
		{Subject: "app-1", ActorID: suite.actorID, Action: domain.ActionViewApplication, IP: "198.51.100.4"},
	}

	suite.mockAppRepo.On("FindByID", ctx, "app-1").Return(rec, nil).Once()
	suite.mockAudit.On("ListForSubject", ctx, "app-1").Return(entries, nil).Once()
	suite.mockAudit.On("Record", ctx, "app-1", suite.actorID, domain.ActionViewAuditTrail, suite.meta).Once()

	resp, err := suite.service.GetAuditTrail(ctx, suite.actorID, "app-1", suite.meta)

	suite.Require().NoError(err)
	suite.Require().Len(resp.Entries, 1)
	suite.Equal(domain.ActionViewApplication, resp.Entries[0].Action)
	suite.mockAudit.AssertExpectations(suite.T())
}

func TestReviewServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReviewServiceTestSuite))
}
