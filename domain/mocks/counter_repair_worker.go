package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// CounterRepairWorker is a mock type for the CounterRepairWorker type
type CounterRepairWorker struct {
	mock.Mock
}

// Start provides a mock function with given fields: ctx
func (_m *CounterRepairWorker) Start(ctx context.Context) {
	_m.Called(ctx)
}

// Send provides a mock function with given fields: blogID
func (_m *CounterRepairWorker) Send(blogID int64) {
	_m.Called(blogID)
}

// NewCounterRepairWorker creates a new instance of CounterRepairWorker. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewCounterRepairWorker(t interface {
	mock.TestingT
	Cleanup(func())
}) *CounterRepairWorker {
	m := &CounterRepairWorker{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
