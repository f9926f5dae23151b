package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
	domain "xcskip.dev/pkg/xcskip/internal/domain"
)

// MockWorkflow is a mock type for the Workflow type
type MockWorkflow struct {
	mock.Mock
}

// Skip provides a mock function with given fields: ctx, args
func (_m *MockWorkflow) Skip(ctx context.Context, args domain.SkipArgs) error {
	ret := _m.Called(ctx, args)

	return ret.Error(0)
}

// List provides a mock function with given fields: ctx, args
func (_m *MockWorkflow) List(ctx context.Context, args domain.ListArgs) error {
	ret := _m.Called(ctx, args)

	return ret.Error(0)
}

// NewMockWorkflow creates a new instance of MockWorkflow. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	m := &MockWorkflow{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
