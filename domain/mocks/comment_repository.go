package mocks

import (
	context "context"

	domain "github.com/Guyuepp/blog-comment-thread/domain"
	mock "github.com/stretchr/testify/mock"
)

// CommentRepository is a mock type for the CommentRepository type
type CommentRepository struct {
	mock.Mock
}

// Store provides a mock function with given fields: ctx, c
func (_m *CommentRepository) Store(ctx context.Context, c *domain.Comment) error {
	ret := _m.Called(ctx, c)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Comment) error); ok {
		r0 = rf(ctx, c)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// DeleteSubtree provides a mock function with given fields: ctx, id
func (_m *CommentRepository) DeleteSubtree(ctx context.Context, id int64) (domain.SubtreeRemoval, error) {
	ret := _m.Called(ctx, id)

	var r0 domain.SubtreeRemoval
	if rf, ok := ret.Get(0).(func(context.Context, int64) domain.SubtreeRemoval); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(domain.SubtreeRemoval)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *CommentRepository) GetByID(ctx context.Context, id int64) (domain.Comment, error) {
	ret := _m.Called(ctx, id)

	var r0 domain.Comment
	if rf, ok := ret.Get(0).(func(context.Context, int64) domain.Comment); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(domain.Comment)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FetchRoots provides a mock function with given fields: ctx, blogID, skip, limit
func (_m *CommentRepository) FetchRoots(ctx context.Context, blogID int64, skip int64, limit int64) ([]domain.Comment, error) {
	ret := _m.Called(ctx, blogID, skip, limit)

	var r0 []domain.Comment
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64, int64) []domain.Comment); ok {
		r0 = rf(ctx, blogID, skip, limit)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Comment)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64, int64, int64) error); ok {
		r1 = rf(ctx, blogID, skip, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FetchChildren provides a mock function with given fields: ctx, parentID, skip, limit
func (_m *CommentRepository) FetchChildren(ctx context.Context, parentID int64, skip int64, limit int64) ([]domain.Comment, error) {
	ret := _m.Called(ctx, parentID, skip, limit)

	var r0 []domain.Comment
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64, int64) []domain.Comment); ok {
		r0 = rf(ctx, parentID, skip, limit)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Comment)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64, int64, int64) error); ok {
		r1 = rf(ctx, parentID, skip, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewCommentRepository creates a new instance of CommentRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewCommentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *CommentRepository {
	m := &CommentRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
