package mocks

import (
	context "context"

	domain "github.com/Guyuepp/blog-comment-thread/domain"
	mock "github.com/stretchr/testify/mock"
)

// BlogAggregateStore is a mock type for the BlogAggregateStore type
type BlogAggregateStore struct {
	mock.Mock
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *BlogAggregateStore) GetByID(ctx context.Context, id int64) (domain.Blog, error) {
	ret := _m.Called(ctx, id)

	var r0 domain.Blog
	if rf, ok := ret.Get(0).(func(context.Context, int64) domain.Blog); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(domain.Blog)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Incr provides a mock function with given fields: ctx, blogID, delta
func (_m *BlogAggregateStore) Incr(ctx context.Context, blogID int64, delta domain.CounterDelta) error {
	ret := _m.Called(ctx, blogID, delta)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, domain.CounterDelta) error); ok {
		r0 = rf(ctx, blogID, delta)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Recount provides a mock function with given fields: ctx, blogID
func (_m *BlogAggregateStore) Recount(ctx context.Context, blogID int64) error {
	ret := _m.Called(ctx, blogID)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		r0 = rf(ctx, blogID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// FetchIDs provides a mock function with given fields: ctx, cursor, limit
func (_m *BlogAggregateStore) FetchIDs(ctx context.Context, cursor int64, limit int64) ([]int64, error) {
	ret := _m.Called(ctx, cursor, limit)

	var r0 []int64
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64) []int64); ok {
		r0 = rf(ctx, cursor, limit)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]int64)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64, int64) error); ok {
		r1 = rf(ctx, cursor, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewBlogAggregateStore creates a new instance of BlogAggregateStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewBlogAggregateStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *BlogAggregateStore {
	m := &BlogAggregateStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
