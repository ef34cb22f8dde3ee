package mocks

import (
	context "context"

	domain "github.com/Guyuepp/blog-comment-thread/domain"
	mock "github.com/stretchr/testify/mock"
)

// NotificationRepository is a mock type for the NotificationRepository type
type NotificationRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, n
func (_m *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	ret := _m.Called(ctx, n)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Notification) error); ok {
		r0 = rf(ctx, n)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// DeleteByCommentIDs provides a mock function with given fields: ctx, commentIDs
func (_m *NotificationRepository) DeleteByCommentIDs(ctx context.Context, commentIDs []int64) error {
	ret := _m.Called(ctx, commentIDs)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, []int64) error); ok {
		r0 = rf(ctx, commentIDs)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Fetch provides a mock function with given fields: ctx, recipientID, filter, skip, limit
func (_m *NotificationRepository) Fetch(ctx context.Context, recipientID int64, filter string, skip int64, limit int64) ([]domain.Notification, error) {
	ret := _m.Called(ctx, recipientID, filter, skip, limit)

	var r0 []domain.Notification
	if rf, ok := ret.Get(0).(func(context.Context, int64, string, int64, int64) []domain.Notification); ok {
		r0 = rf(ctx, recipientID, filter, skip, limit)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Notification)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64, string, int64, int64) error); ok {
		r1 = rf(ctx, recipientID, filter, skip, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Count provides a mock function with given fields: ctx, recipientID, filter
func (_m *NotificationRepository) Count(ctx context.Context, recipientID int64, filter string) (int64, error) {
	ret := _m.Called(ctx, recipientID, filter)

	var r0 int64
	if rf, ok := ret.Get(0).(func(context.Context, int64, string) int64); ok {
		r0 = rf(ctx, recipientID, filter)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(int64)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64, string) error); ok {
		r1 = rf(ctx, recipientID, filter)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// HasUnseen provides a mock function with given fields: ctx, recipientID
func (_m *NotificationRepository) HasUnseen(ctx context.Context, recipientID int64) (bool, error) {
	ret := _m.Called(ctx, recipientID)

	var r0 bool
	if rf, ok := ret.Get(0).(func(context.Context, int64) bool); ok {
		r0 = rf(ctx, recipientID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(bool)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, recipientID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MarkSeen provides a mock function with given fields: ctx, recipientID, ids
func (_m *NotificationRepository) MarkSeen(ctx context.Context, recipientID int64, ids []int64) error {
	ret := _m.Called(ctx, recipientID, ids)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, []int64) error); ok {
		r0 = rf(ctx, recipientID, ids)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewNotificationRepository creates a new instance of NotificationRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewNotificationRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *NotificationRepository {
	m := &NotificationRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
