package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/attendance_bot/internal/apperrors"
	"github.com/SscSPs/attendance_bot/internal/core/domain"
	"github.com/SscSPs/attendance_bot/internal/core/services"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  *services.UserService
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (suite *UserServiceTestSuite) TestGetUserByID_Success() {
	ctx := context.Background()
	expected := &domain.User{UserID: "42", Name: "Alice", Role: domain.RoleEmployee}
	suite.mockRepo.On("FindUserByID", ctx, "42").Return(expected, nil).Once()

	user, err := suite.service.GetUserByID(ctx, "42")

	suite.Require().NoError(err)
	suite.Equal(expected, user)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetUserByID_NotRegistered() {
	ctx := context.Background()
	suite.mockRepo.On("FindUserByID", ctx, "99").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.GetUserByID(ctx, "99")

	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotRegistered)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetUserByID_StoreFault() {
	ctx := context.Background()
	storeErr := apperrors.StoreError("read", "Users", errors.New("timeout"))
	suite.mockRepo.On("FindUserByID", ctx, "42").Return(nil, storeErr).Once()

	_, err := suite.service.GetUserByID(ctx, "42")

	suite.ErrorIs(err, apperrors.ErrStore)
	suite.NotErrorIs(err, apperrors.ErrNotRegistered)
}

func (suite *UserServiceTestSuite) TestListUsersByRole() {
	ctx := context.Background()
	suite.mockRepo.On("ListUsers", ctx).Return([]domain.User{
		{UserID: "1", Role: domain.RoleAdmin},
		{UserID: "2", Role: domain.RoleEmployee},
		{UserID: "3", Role: domain.RoleEmployee},
	}, nil).Once()

	employees, err := suite.service.ListUsersByRole(ctx, domain.RoleEmployee)

	suite.Require().NoError(err)
	suite.Len(employees, 2)
	for _, u := range employees {
		suite.True(u.IsEmployee())
	}
}
