package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
	controller "xcskip.dev/pkg/xcskip/internal/controller"
	model "xcskip.dev/pkg/xcskip/internal/model"
)

// MockUI is a mock type for the UI type
type MockUI struct {
	mock.Mock
}

// DisplayChange provides a mock function with given fields: ctx, change, diff
func (_m *MockUI) DisplayChange(ctx context.Context, change model.Change, diff string) error {
	ret := _m.Called(ctx, change, diff)

	return ret.Error(0)
}

// DisplayTestableRefs provides a mock function with given fields: ctx, refs, format
func (_m *MockUI) DisplayTestableRefs(ctx context.Context, refs []model.TestableRef, format controller.OutputFormat) error {
	ret := _m.Called(ctx, refs, format)

	return ret.Error(0)
}

// NewMockUI creates a new instance of MockUI. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	m := &MockUI{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
