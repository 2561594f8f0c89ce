package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/alisyos/daily-report-sub000/internal/apperrors"
	"github.com/alisyos/daily-report-sub000/internal/core/domain"
	portssvc "github.com/alisyos/daily-report-sub000/internal/core/ports/services"
	"github.com/alisyos/daily-report-sub000/internal/dto"
	"github.com/alisyos/daily-report-sub000/internal/handlers"
	"github.com/alisyos/daily-report-sub000/internal/middleware"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *domain.Principal, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.Principal), args.Error(2)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Test Suite ---
type AuthHandlerTestSuite struct {
	suite.Suite
	mockAuthService *MockAuthService
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockAuthService = new(MockAuthService)
}

// newRouter registers the auth routes with the given cookie security setting.
func (suite *AuthHandlerTestSuite) newRouter(secureCookie bool) *gin.Engine {
	router := gin.New()
	handlers.RegisterAuthRoutes(router, suite.mockAuthService, secureCookie)
	return router
}

func (suite *AuthHandlerTestSuite) doLogin(router *gin.Engine) *httptest.ResponseRecorder {
	body := `{"email":"kim@example.com","password":"correct-horse"}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	principal := &domain.Principal{UserID: "e1", Role: domain.RoleUser, CompanyID: "c1", Department: "개발"}
	suite.mockAuthService.On("Login", mock.Anything, "kim@example.com", "correct-horse").
		Return("signed-token", principal, nil).Once()

	w := suite.doLogin(suite.newRouter(false))

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("signed-token", resp.Token)
	suite.Equal("e1", resp.Principal.UserID)
	suite.mockAuthService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestLogin_SecureCookieInProduction() {
	principal := &domain.Principal{UserID: "e1", Role: domain.RoleUser, CompanyID: "c1"}
	suite.mockAuthService.On("Login", mock.Anything, "kim@example.com", "correct-horse").
		Return("signed-token", principal, nil).Once()

	w := suite.doLogin(suite.newRouter(true))

	suite.Equal(http.StatusOK, w.Code)
	cookie := w.Header().Get("Set-Cookie")
	suite.Contains(cookie, middleware.SessionCookieName+"=")
	suite.Contains(cookie, "Secure")
	suite.Contains(cookie, "HttpOnly")
}

func (suite *AuthHandlerTestSuite) TestLogin_PlainCookieInDevelopment() {
	principal := &domain.Principal{UserID: "e1", Role: domain.RoleUser, CompanyID: "c1"}
	suite.mockAuthService.On("Login", mock.Anything, "kim@example.com", "correct-horse").
		Return("signed-token", principal, nil).Once()

	w := suite.doLogin(suite.newRouter(false))

	suite.Equal(http.StatusOK, w.Code)
	cookie := w.Header().Get("Set-Cookie")
	suite.Contains(cookie, middleware.SessionCookieName+"=")
	suite.NotContains(cookie, "Secure")
	suite.Contains(cookie, "HttpOnly")
}

func (suite *AuthHandlerTestSuite) TestLogin_BadCredentials() {
	suite.mockAuthService.On("Login", mock.Anything, "kim@example.com", "correct-horse").
		Return("", nil, apperrors.ErrUnauthenticated).Once()

	w := suite.doLogin(suite.newRouter(false))

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Empty(w.Header().Get("Set-Cookie"), "no session cookie on failed login")
}

func (suite *AuthHandlerTestSuite) TestLogin_InvalidBody() {
	router := suite.newRouter(false)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"not-an-email"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAuthService.AssertNotCalled(suite.T(), "Login", mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Test Suite ---
func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
