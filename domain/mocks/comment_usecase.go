package mocks

import (
	context "context"

	domain "github.com/Guyuepp/blog-comment-thread/domain"
	mock "github.com/stretchr/testify/mock"
)

// CommentUsecase is a mock type for the CommentUsecase type
type CommentUsecase struct {
	mock.Mock
}

// AddComment provides a mock function with given fields: ctx, in
func (_m *CommentUsecase) AddComment(ctx context.Context, in domain.AddCommentInput) (domain.AddedComment, error) {
	ret := _m.Called(ctx, in)

	var r0 domain.AddedComment
	if rf, ok := ret.Get(0).(func(context.Context, domain.AddCommentInput) domain.AddedComment); ok {
		r0 = rf(ctx, in)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(domain.AddedComment)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.AddCommentInput) error); ok {
		r1 = rf(ctx, in)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DeleteComment provides a mock function with given fields: ctx, id, requesterID
func (_m *CommentUsecase) DeleteComment(ctx context.Context, id int64, requesterID int64) error {
	ret := _m.Called(ctx, id, requesterID)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64) error); ok {
		r0 = rf(ctx, id, requesterID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// ListRoots provides a mock function with given fields: ctx, blogID, page, pageSize
func (_m *CommentUsecase) ListRoots(ctx context.Context, blogID int64, page int64, pageSize int64) ([]domain.Comment, error) {
	ret := _m.Called(ctx, blogID, page, pageSize)

	var r0 []domain.Comment
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64, int64) []domain.Comment); ok {
		r0 = rf(ctx, blogID, page, pageSize)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Comment)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64, int64, int64) error); ok {
		r1 = rf(ctx, blogID, page, pageSize)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListReplies provides a mock function with given fields: ctx, parentID, skip, pageSize
func (_m *CommentUsecase) ListReplies(ctx context.Context, parentID int64, skip int64, pageSize int64) ([]domain.Comment, error) {
	ret := _m.Called(ctx, parentID, skip, pageSize)

	var r0 []domain.Comment
	if rf, ok := ret.Get(0).(func(context.Context, int64, int64, int64) []domain.Comment); ok {
		r0 = rf(ctx, parentID, skip, pageSize)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Comment)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64, int64, int64) error); ok {
		r1 = rf(ctx, parentID, skip, pageSize)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewCommentUsecase creates a new instance of CommentUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewCommentUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *CommentUsecase {
	m := &CommentUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
