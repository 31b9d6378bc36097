package service

import (
	"time"

	domainservice "markd/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockTokenService is a testify mock for service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates the mock and registers expectation cleanup.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) Generate(userID int64, email string) (string, error) {
	args := m.Called(userID, email)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Validate(tokenString string) (*domainservice.Claims, error) {
	args := m.Called(tokenString)

	claims, _ := args.Get(0).(*domainservice.Claims)

	return claims, args.Error(1)
}

func (m *MockTokenService) AccessTokenTTL() time.Duration {
	args := m.Called()

	ttl, _ := args.Get(0).(time.Duration)

	return ttl
}
