package mocks

import (
	context "context"

	domain "github.com/Guyuepp/blog-comment-thread/domain"
	mock "github.com/stretchr/testify/mock"
)

// NotificationUsecase is a mock type for the NotificationUsecase type
type NotificationUsecase struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx, userID, filter, page, deleted
func (_m *NotificationUsecase) List(ctx context.Context, userID int64, filter string, page int64, deleted int64) ([]domain.Notification, error) {
	ret := _m.Called(ctx, userID, filter, page, deleted)

	var r0 []domain.Notification
	if rf, ok := ret.Get(0).(func(context.Context, int64, string, int64, int64) []domain.Notification); ok {
		r0 = rf(ctx, userID, filter, page, deleted)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Notification)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64, string, int64, int64) error); ok {
		r1 = rf(ctx, userID, filter, page, deleted)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Count provides a mock function with given fields: ctx, userID, filter
func (_m *NotificationUsecase) Count(ctx context.Context, userID int64, filter string) (int64, error) {
	ret := _m.Called(ctx, userID, filter)

	var r0 int64
	if rf, ok := ret.Get(0).(func(context.Context, int64, string) int64); ok {
		r0 = rf(ctx, userID, filter)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(int64)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64, string) error); ok {
		r1 = rf(ctx, userID, filter)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// HasNew provides a mock function with given fields: ctx, userID
func (_m *NotificationUsecase) HasNew(ctx context.Context, userID int64) (bool, error) {
	ret := _m.Called(ctx, userID)

	var r0 bool
	if rf, ok := ret.Get(0).(func(context.Context, int64) bool); ok {
		r0 = rf(ctx, userID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(bool)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewNotificationUsecase creates a new instance of NotificationUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewNotificationUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *NotificationUsecase {
	m := &NotificationUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
