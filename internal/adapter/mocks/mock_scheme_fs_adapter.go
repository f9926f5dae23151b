package mocks

import (
	context "context"
	os "os"

	mock "github.com/stretchr/testify/mock"
	adapter "xcskip.dev/pkg/xcskip/internal/adapter"
	model "xcskip.dev/pkg/xcskip/internal/model"
)

// MockSchemeFSAdapter is a mock type for the SchemeFSAdapter type
type MockSchemeFSAdapter struct {
	mock.Mock
}

// Walk provides a mock function with given fields: ctx, root, recursive, fn
func (_m *MockSchemeFSAdapter) Walk(ctx context.Context, root model.Path, recursive bool, fn adapter.FilepathWalkFunc) error {
	ret := _m.Called(ctx, root, recursive, fn)

	return ret.Error(0)
}

// ReadFile provides a mock function with given fields: ctx, path
func (_m *MockSchemeFSAdapter) ReadFile(ctx context.Context, path model.Path) ([]byte, error) {
	ret := _m.Called(ctx, path)

	var r0 []byte
	if rf, ok := ret.Get(0).(func(context.Context, model.Path) []byte); ok {
		r0 = rf(ctx, path)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	return r0, ret.Error(1)
}

// FileInfo provides a mock function with given fields: ctx, path
func (_m *MockSchemeFSAdapter) FileInfo(ctx context.Context, path model.Path) (os.FileInfo, error) {
	ret := _m.Called(ctx, path)

	var r0 os.FileInfo
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(os.FileInfo)
	}

	return r0, ret.Error(1)
}

// WriteFile provides a mock function with given fields: ctx, path, content, perm
func (_m *MockSchemeFSAdapter) WriteFile(ctx context.Context, path model.Path, content []byte, perm os.FileMode) error {
	ret := _m.Called(ctx, path, content, perm)

	return ret.Error(0)
}

// FindSchemes provides a mock function with given fields: ctx, root
func (_m *MockSchemeFSAdapter) FindSchemes(ctx context.Context, root model.Path) ([]model.Path, error) {
	ret := _m.Called(ctx, root)

	var r0 []model.Path
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Path)
	}

	return r0, ret.Error(1)
}

// NewMockSchemeFSAdapter creates a new instance of MockSchemeFSAdapter. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockSchemeFSAdapter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSchemeFSAdapter {
	m := &MockSchemeFSAdapter{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
