package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
	domain "xcskip.dev/pkg/xcskip/internal/domain"
	model "xcskip.dev/pkg/xcskip/internal/model"
)

// MockMutator is a mock type for the Mutator type
type MockMutator struct {
	mock.Mock
}

// SetSkipped provides a mock function with given fields: ctx, args
func (_m *MockMutator) SetSkipped(ctx context.Context, args domain.MutateArgs) (model.Change, error) {
	ret := _m.Called(ctx, args)

	var r0 model.Change
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(model.Change)
	}

	return r0, ret.Error(1)
}

// Inspect provides a mock function with given fields: ctx, scheme
func (_m *MockMutator) Inspect(ctx context.Context, scheme model.Path) ([]model.TestableRef, error) {
	ret := _m.Called(ctx, scheme)

	var r0 []model.TestableRef
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.TestableRef)
	}

	return r0, ret.Error(1)
}

// NewMockMutator creates a new instance of MockMutator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockMutator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMutator {
	m := &MockMutator{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
