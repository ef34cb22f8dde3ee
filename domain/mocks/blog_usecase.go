package mocks

import (
	context "context"

	domain "github.com/Guyuepp/blog-comment-thread/domain"
	mock "github.com/stretchr/testify/mock"
)

// BlogUsecase is a mock type for the BlogUsecase type
type BlogUsecase struct {
	mock.Mock
}

// GetActivity provides a mock function with given fields: ctx, blogID
func (_m *BlogUsecase) GetActivity(ctx context.Context, blogID int64) (domain.Blog, error) {
	ret := _m.Called(ctx, blogID)

	var r0 domain.Blog
	if rf, ok := ret.Get(0).(func(context.Context, int64) domain.Blog); ok {
		r0 = rf(ctx, blogID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(domain.Blog)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, blogID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// InitBloomFilter provides a mock function with given fields: ctx
func (_m *BlogUsecase) InitBloomFilter(ctx context.Context) error {
	ret := _m.Called(ctx)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewBlogUsecase creates a new instance of BlogUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewBlogUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *BlogUsecase {
	m := &BlogUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
