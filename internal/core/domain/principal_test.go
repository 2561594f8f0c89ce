package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alisyos/daily-report-sub000/internal/core/domain"
)

func TestResolveScope(t *testing.T) {
	operator := domain.Principal{UserID: "u1", Role: domain.RoleOperator}
	scope := domain.ResolveScope(operator)
	assert.True(t, scope.Unbounded())

	companyManager := domain.Principal{UserID: "u2", Role: domain.RoleCompanyManager, CompanyID: "c1", Department: "영업"}
	scope = domain.ResolveScope(companyManager)
	require.NotNil(t, scope.CompanyID)
	assert.Equal(t, "c1", *scope.CompanyID)
	assert.Nil(t, scope.Department, "company manager sees the whole company")

	manager := domain.Principal{UserID: "u3", Role: domain.RoleManager, CompanyID: "c1", Department: "개발"}
	scope = domain.ResolveScope(manager)
	require.NotNil(t, scope.CompanyID)
	assert.Nil(t, scope.Department, "manager reads the whole company")

	user := domain.Principal{UserID: "u4", Role: domain.RoleUser, CompanyID: "c1", Department: "개발"}
	scope = domain.ResolveScope(user)
	require.NotNil(t, scope.CompanyID)
	require.NotNil(t, scope.Department)
	assert.Equal(t, "개발", *scope.Department)
}

func TestResolveWriteScope_ManagerPinsDepartment(t *testing.T) {
	manager := domain.Principal{UserID: "u3", Role: domain.RoleManager, CompanyID: "c1", Department: "개발"}
	scope := domain.ResolveWriteScope(manager)
	require.NotNil(t, scope.Department)
	assert.Equal(t, "개발", *scope.Department)

	companyManager := domain.Principal{UserID: "u2", Role: domain.RoleCompanyManager, CompanyID: "c1"}
	scope = domain.ResolveWriteScope(companyManager)
	assert.Nil(t, scope.Department)
}

func TestScopeNarrow_CannotWiden(t *testing.T) {
	dept := "개발"
	pinned := domain.Scope{CompanyID: strPtr("c1"), Department: &dept}

	narrowed := pinned.Narrow("영업")
	require.NotNil(t, narrowed.Department)
	assert.Equal(t, "개발", *narrowed.Department, "a pinned department ignores the request")

	open := domain.Scope{CompanyID: strPtr("c1")}
	narrowed = open.Narrow("영업")
	require.NotNil(t, narrowed.Department)
	assert.Equal(t, "영업", *narrowed.Department)

	unchanged := open.Narrow("")
	assert.Nil(t, unchanged.Department)
}

func TestAuthorize(t *testing.T) {
	assert.False(t, domain.Authorize(nil, domain.RoleOperator))

	manager := &domain.Principal{UserID: "u3", Role: domain.RoleManager}
	assert.True(t, domain.Authorize(manager, domain.RoleOperator, domain.RoleManager))
	assert.False(t, domain.Authorize(manager, domain.RoleOperator))
}

func strPtr(s string) *string { return &s }
