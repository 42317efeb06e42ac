package heap

// Hand-written in the shape mockgen would generate for the Traceable
// interface, since Traceable has no type parameters of its own and a
// generated mock would look identical.

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockTraceable is a mock of the Traceable interface.
type MockTraceable struct {
	ctrl     *gomock.Controller
	recorder *MockTraceableMockRecorder
}

// MockTraceableMockRecorder is the mock recorder for MockTraceable.
type MockTraceableMockRecorder struct {
	mock *MockTraceable
}

// NewMockTraceable creates a new mock instance.
func NewMockTraceable(ctrl *gomock.Controller) *MockTraceable {
	mock := &MockTraceable{ctrl: ctrl}
	mock.recorder = &MockTraceableMockRecorder{mock}

	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTraceable) EXPECT() *MockTraceableMockRecorder {
	return m.recorder
}

// Mark mocks base method.
func (m *MockTraceable) Mark() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Mark")
}

// Mark indicates an expected call of Mark.
func (mr *MockTraceableMockRecorder) Mark() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Mark", reflect.TypeOf((*MockTraceable)(nil).Mark))
}

// Unmark mocks base method.
func (m *MockTraceable) Unmark() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Unmark")
}

// Unmark indicates an expected call of Unmark.
func (mr *MockTraceableMockRecorder) Unmark() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Unmark", reflect.TypeOf((*MockTraceable)(nil).Unmark))
}

// IsMarked mocks base method.
func (m *MockTraceable) IsMarked() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsMarked")
	ret0, _ := ret[0].(bool)

	return ret0
}

// IsMarked indicates an expected call of IsMarked.
func (mr *MockTraceableMockRecorder) IsMarked() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsMarked", reflect.TypeOf((*MockTraceable)(nil).IsMarked))
}
