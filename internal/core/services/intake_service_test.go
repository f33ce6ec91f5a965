package services_test

import (
	"context"
	"strings"
	"testing"

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
	"github.com/meridianfs/client_onboarding_app/internal/utils"
)

const testProgramTag = "TST"

func validSubmitRequest() dto.SubmitApplicationRequest {
	return dto.SubmitApplicationRequest{
		SaveDraftRequest: dto.SaveDraftRequest{
			EntityType: "individual",
			EntityDetails: domain.EntityDetails{
				GivenName:   "Alex",
				FamilyName:  "Nguyen",
				DateOfBirth: "14/02/1985",
				TFN:         "123456789",
			},
			PrimaryContact: domain.Contact{
				GivenName:    "Alex",
				FamilyName:   "Nguyen",
				Email:        "alex.nguyen@example.com",
				Phone:        "0412345678",
				AddressLine1: "1 Example St",
				Suburb:       "Sydney",
				State:        "NSW",
				Postcode:     "2000",
			},
			BankDetails: domain.BankDetails{
				AccountName:   "Alex Nguyen",
				BankName:      "Example Bank",
				BSB:           "063000",
				AccountNumber: "12345678",
			},
			Consents: domain.Consents{
				TermsAccepted:        true,
				PrivacyAccepted:      true,
				FSGReceived:          true,
				TaxResidencyDeclared: true,
			},
			Signatures: []domain.Signature{{Name: "Alex Nguyen", Date: "01/06/2026"}},
		},
	}
}

type IntakeServiceTestSuite struct {
	suite.Suite
	mockAppRepo  *MockApplicationRepository
	mockNotifier *MockNotifier
	mockAudit    *MockAuditSvc
	service      portssvc.IntakeSvc
}

func (suite *IntakeServiceTestSuite) SetupTest() {
	suite.mockAppRepo = new(MockApplicationRepository)
	suite.mockNotifier = new(MockNotifier)
	suite.mockAudit = new(MockAuditSvc)

	cipher, err := fieldcrypt.New(testKeyHex)
	suite.Require().NoError(err)
	codec := services.NewApplicationCodec(cipher)

	suite.service = services.NewIntakeService(
		suite.mockAppRepo,
		codec,
		suite.mockNotifier,
		suite.mockAudit,
		&utils.AnalyticsClient{},
		testProgramTag,
	)
}

// --- SaveDraft ---

func (suite *IntakeServiceTestSuite) TestSaveDraft_CreateReturnsSessionToken() {
	ctx := context.Background()
	req := validSubmitRequest().SaveDraftRequest

	var stored *models.Application
	suite.mockAppRepo.On("CreateDraft", ctx, mock.AnythingOfType("*models.Application")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*models.Application) }).
		Return(nil).Once()

	resp, err := suite.service.SaveDraft(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(resp.ApplicationID)
	suite.NotEmpty(resp.SessionToken)

	// Only the hash is stored, and it matches the returned token.
	suite.Require().NotNil(stored)
	suite.NotEqual(resp.SessionToken, stored.SessionTokenHash)
	suite.Equal(utils.HashSecret(resp.SessionToken), stored.SessionTokenHash)
	suite.False(stored.IsSubmitted)
	suite.Equal("Alex Nguyen", stored.ApplicantName)

	suite.mockAppRepo.AssertExpectations(suite.T())
}

func (suite *IntakeServiceTestSuite) TestSaveDraft_UpdateWithWrongTokenRejected() {
	ctx := context.Background()
	req := validSubmitRequest().SaveDraftRequest
	req.DraftID = "draft-1"
	req.SessionToken = "wrong-token"

	existing := &models.Application{
		ApplicationID:    "draft-1",
		SessionTokenHash: utils.HashSecret("right-token"),
	}
	suite.mockAppRepo.On("FindByID", ctx, "draft-1").Return(existing, nil).Once()

	resp, err := suite.service.SaveDraft(ctx, req)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockAppRepo.AssertNotCalled(suite.T(), "UpdateDraft", mock.Anything, mock.Anything)
}

func (suite *IntakeServiceTestSuite) TestSaveDraft_UpdateAfterSubmissionRejected() {
	ctx := context.Background()
	req := validSubmitRequest().SaveDraftRequest
	req.DraftID = "draft-1"
	req.SessionToken = "token"

	existing := &models.Application{
		ApplicationID:    "draft-1",
		IsSubmitted:      true,
		SessionTokenHash: utils.HashSecret("token"),
	}
	suite.mockAppRepo.On("FindByID", ctx, "draft-1").Return(existing, nil).Once()

	_, err := suite.service.SaveDraft(ctx, req)
	suite.ErrorIs(err, apperrors.ErrAlreadySubmitted)
}

func (suite *IntakeServiceTestSuite) TestSaveDraft_UpdateKeepsIdentity() {
	ctx := context.Background()
	req := validSubmitRequest().SaveDraftRequest
	req.DraftID = "draft-1"
	req.SessionToken = "token"

	existing := &models.Application{
		ApplicationID:    "draft-1",
		SessionTokenHash: utils.HashSecret("token"),
	}
	suite.mockAppRepo.On("FindByID", ctx, "draft-1").Return(existing, nil).Once()
	suite.mockAppRepo.On("UpdateDraft", ctx, mock.MatchedBy(func(app *models.Application) bool {
		return app.ApplicationID == "draft-1" && app.SessionTokenHash == existing.SessionTokenHash
	})).Return(nil).Once()

	resp, err := suite.service.SaveDraft(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("draft-1", resp.ApplicationID)
	// The token is never re-issued on update.
	suite.Empty(resp.SessionToken)
	suite.mockAppRepo.AssertExpectations(suite.T())
}

// --- Submit ---

func (suite *IntakeServiceTestSuite) TestSubmit_Success() {
	ctx := context.Background()
	meta := domain.RequestMeta{IP: "203.0.113.7", UserAgent: "Firefox 140.0 (Linux)"}

	var stored *models.Application
	suite.mockAppRepo.On("Submit", ctx, mock.AnythingOfType("*models.Application")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*models.Application) }).
		Return(nil).Once()
	suite.mockNotifier.On("SubmissionReceived", ctx, mock.AnythingOfType("*domain.Application")).Return(nil).Once()
	suite.mockNotifier.On("ReviewTeamAlert", ctx, mock.AnythingOfType("*domain.Application")).Return(nil).Once()
	suite.mockAudit.On("Record", ctx, mock.AnythingOfType("string"), services.SubmitterActorID, domain.ActionSubmitApplication, meta).Once()

	receipt, violations, err := suite.service.Submit(ctx, validSubmitRequest(), meta)

	suite.Require().NoError(err)
	suite.Empty(violations)
	suite.Require().NotNil(receipt)
	suite.True(strings.HasPrefix(receipt.ReferenceNumber, testProgramTag+"-"))
	suite.Equal(receipt.ReferenceNumber, strings.ToUpper(receipt.ReferenceNumber))

	suite.Require().NotNil(stored)
	suite.True(stored.IsSubmitted)
	suite.Equal(domain.StatusPendingReview, stored.AccountingStatus)
	suite.NotNil(stored.SubmittedAt)
	suite.False(stored.EntityDetails.TFN.IsZero())

	suite.mockAppRepo.AssertExpectations(suite.T())
	suite.mockNotifier.AssertExpectations(suite.T())
	suite.mockAudit.AssertExpectations(suite.T())
}

func (suite *IntakeServiceTestSuite) TestSubmit_ValidationFailureShortCircuits() {
	ctx := context.Background()
	req := validSubmitRequest()
	req.Consents.TermsAccepted = false

	receipt, violations, err := suite.service.Submit(ctx, req, domain.RequestMeta{})

	suite.Require().NoError(err)
	suite.Nil(receipt)
	suite.True(violations.HasField("consents.termsAccepted"))
	// Nothing is persisted and no side effects fire on a validation failure.
	suite.mockAppRepo.AssertNotCalled(suite.T(), "Submit", mock.Anything, mock.Anything)
	suite.mockNotifier.AssertNotCalled(suite.T(), "SubmissionReceived", mock.Anything, mock.Anything)
}

func (suite *IntakeServiceTestSuite) TestSubmit_NotifierFailureDoesNotFailSubmission() {
	ctx := context.Background()

	suite.mockAppRepo.On("Submit", ctx, mock.AnythingOfType("*models.Application")).Return(nil).Once()
	suite.mockNotifier.On("SubmissionReceived", ctx, mock.Anything).Return(assert.AnError).Once()
	suite.mockNotifier.On("ReviewTeamAlert", ctx, mock.Anything).Return(assert.AnError).Once()
	suite.mockAudit.On("Record", ctx, mock.Anything, services.SubmitterActorID, domain.ActionSubmitApplication, mock.Anything).Once()

	receipt, violations, err := suite.service.Submit(ctx, validSubmitRequest(), domain.RequestMeta{})

	suite.Require().NoError(err)
	suite.Empty(violations)
	suite.NotNil(receipt)
}

func (suite *IntakeServiceTestSuite) TestSubmit_ReusesDraftWithValidToken() {
	ctx := context.Background()
	req := validSubmitRequest()
	req.DraftID = "draft-1"
	req.SessionToken = "token"

	existing := &models.Application{
		ApplicationID:    "draft-1",
		SessionTokenHash: utils.HashSecret("token"),
	}
	suite.mockAppRepo.On("FindByID", ctx, "draft-1").Return(existing, nil).Once()
	suite.mockAppRepo.On("Submit", ctx, mock.MatchedBy(func(app *models.Application) bool {
		return app.ApplicationID == "draft-1" && app.IsSubmitted
	})).Return(nil).Once()
	suite.mockNotifier.On("SubmissionReceived", ctx, mock.Anything).Return(nil).Once()
	suite.mockNotifier.On("ReviewTeamAlert", ctx, mock.Anything).Return(nil).Once()
	suite.mockAudit.On("Record", ctx, "draft-1", services.SubmitterActorID, domain.ActionSubmitApplication, mock.Anything).Once()

	receipt, violations, err := suite.service.Submit(ctx, req, domain.RequestMeta{})

	suite.Require().NoError(err)
	suite.Empty(violations)
	suite.Equal("draft-1", receipt.ApplicationID)
	suite.mockAppRepo.AssertExpectations(suite.T())
}

func (suite *IntakeServiceTestSuite) TestSubmit_AlreadySubmittedDraftRejected() {
	ctx := context.Background()
	req := validSubmitRequest()
	req.DraftID = "draft-1"
	req.SessionToken = "token"

	existing := &models.Application{
		ApplicationID:    "draft-1",
		IsSubmitted:      true,
		SessionTokenHash: utils.HashSecret("token"),
	}
	suite.mockAppRepo.On("FindByID", ctx, "draft-1").Return(existing, nil).Once()

	_, _, err := suite.service.Submit(ctx, req, domain.RequestMeta{})
	suite.ErrorIs(err, apperrors.ErrAlreadySubmitted)
	suite.mockAppRepo.AssertNotCalled(suite.T(), "Submit", mock.Anything, mock.Anything)
}

func (suite *IntakeServiceTestSuite) TestSubmit_EmptyOwnerRowsDropped() {
	ctx := context.Background()
	req := validSubmitRequest()
	req.BeneficialOwners = []domain.BeneficialOwner{
		{},
		{GivenName: "Sam", FamilyName: "Nguyen", OwnershipPercent: "50"},
	}

	suite.mockAppRepo.On("Submit", ctx, mock.MatchedBy(func(app *models.Application) bool {
		return len(app.BeneficialOwners) == 1
	})).Return(nil).Once()
	suite.mockNotifier.On("SubmissionReceived", ctx, mock.Anything).Return(nil).Once()
	suite.mockNotifier.On("ReviewTeamAlert", ctx, mock.Anything).Return(nil).Once()
	suite.mockAudit.On("Record", ctx, mock.Anything, services.SubmitterActorID, domain.ActionSubmitApplication, mock.Anything).Once()

	_, violations, err := suite.service.Submit(ctx, req, domain.RequestMeta{})

	suite.Require().NoError(err)
	suite.Empty(violations)
	suite.mockAppRepo.AssertExpectations(suite.T())
}

func TestIntakeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(IntakeServiceTestSuite))
}
