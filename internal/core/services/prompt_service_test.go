package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/alisyos/daily-report-sub000/internal/apperrors"
	"github.com/alisyos/daily-report-sub000/internal/core/domain"
	portssvc "github.com/alisyos/daily-report-sub000/internal/core/ports/services"
	"github.com/alisyos/daily-report-sub000/internal/core/services"
	"github.com/alisyos/daily-report-sub000/internal/dto"
)

type PromptServiceTestSuite struct {
	suite.Suite
	mockRepo *MockPromptRepository
	service  portssvc.PromptSvcFacade
}

func (suite *PromptServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPromptRepository)
	suite.service = services.NewPromptService(suite.mockRepo)
}

func (suite *PromptServiceTestSuite) TestCreatePrompt_Success() {
	ctx := context.Background()
	req := dto.CreatePromptRequest{Name: domain.PromptDepartmentSummary, Content: "요약 지침"}

	suite.mockRepo.On("FindPromptByName", ctx, domain.PromptDepartmentSummary).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SavePrompt", ctx, mock.MatchedBy(func(p domain.Prompt) bool {
		return p.PromptID != "" && p.Name == domain.PromptDepartmentSummary
	})).Return(nil).Once()

	prompt, err := suite.service.CreatePrompt(ctx, operatorPrincipal(), req)

	suite.Require().NoError(err)
	suite.Equal("요약 지침", prompt.Content)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PromptServiceTestSuite) TestCreatePrompt_DuplicateName() {
	ctx := context.Background()
	existing := &domain.Prompt{PromptID: "p1", Name: domain.PromptDepartmentSummary}

	suite.mockRepo.On("FindPromptByName", ctx, domain.PromptDepartmentSummary).Return(existing, nil).Once()

	_, err := suite.service.CreatePrompt(ctx, operatorPrincipal(), dto.CreatePromptRequest{Name: domain.PromptDepartmentSummary, Content: "x"})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePrompt", mock.Anything, mock.Anything)
}

func (suite *PromptServiceTestSuite) TestCreatePrompt_NonOperatorForbidden() {
	_, err := suite.service.CreatePrompt(context.Background(), managerPrincipal(), dto.CreatePromptRequest{Name: "x", Content: "y"})
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *PromptServiceTestSuite) TestUpdatePrompt_NotFound() {
	ctx := context.Background()
	content := "새 내용"

	suite.mockRepo.On("ListPrompts", ctx).Return([]domain.Prompt{{PromptID: "other"}}, nil).Once()

	_, err := suite.service.UpdatePrompt(ctx, operatorPrincipal(), "p1", dto.UpdatePromptRequest{Content: &content})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PromptServiceTestSuite) TestUpdatePrompt_Success() {
	ctx := context.Background()
	content := "새 내용"

	suite.mockRepo.On("ListPrompts", ctx).Return([]domain.Prompt{{PromptID: "p1", Name: "n", Content: "이전 내용"}}, nil).Once()
	suite.mockRepo.On("UpdatePrompt", ctx, mock.MatchedBy(func(p domain.Prompt) bool {
		return p.PromptID == "p1" && p.Content == "새 내용"
	})).Return(nil).Once()

	prompt, err := suite.service.UpdatePrompt(ctx, operatorPrincipal(), "p1", dto.UpdatePromptRequest{Content: &content})

	suite.Require().NoError(err)
	suite.Equal("새 내용", prompt.Content)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestPromptServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PromptServiceTestSuite))
}
