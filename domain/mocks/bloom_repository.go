package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// BloomRepository is a mock type for the BloomRepository type
type BloomRepository struct {
	mock.Mock
}

// Add provides a mock function with given fields: ctx, id
func (_m *BloomRepository) Add(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Exists provides a mock function with given fields: ctx, id
func (_m *BloomRepository) Exists(ctx context.Context, id int64) (bool, error) {
	ret := _m.Called(ctx, id)

	var r0 bool
	if rf, ok := ret.Get(0).(func(context.Context, int64) bool); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(bool)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// BulkAdd provides a mock function with given fields: ctx, ids
func (_m *BloomRepository) BulkAdd(ctx context.Context, ids []int64) error {
	ret := _m.Called(ctx, ids)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, []int64) error); ok {
		r0 = rf(ctx, ids)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewBloomRepository creates a new instance of BloomRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewBloomRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *BloomRepository {
	m := &BloomRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
