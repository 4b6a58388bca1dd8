// Package commandsmock holds gomock mocks for the command use cases.
// They follow mockgen's layout and are maintained by hand.
package commandsmock

import (
	context "context"
	commands "lms-api/internal/usecase/commands"
	reflect "reflect"

	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockStudentCommands is a mock of StudentCommands interface.
type MockStudentCommands struct {
	ctrl     *gomock.Controller
	recorder *MockStudentCommandsMockRecorder
	isgomock struct{}
}

// MockStudentCommandsMockRecorder is the mock recorder for MockStudentCommands.
type MockStudentCommandsMockRecorder struct {
	mock *MockStudentCommands
}

// NewMockStudentCommands creates a new mock instance.
func NewMockStudentCommands(ctrl *gomock.Controller) *MockStudentCommands {
	mock := &MockStudentCommands{ctrl: ctrl}
	mock.recorder = &MockStudentCommandsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStudentCommands) EXPECT() *MockStudentCommandsMockRecorder {
	return m.recorder
}

// CreateStudent mocks base method.
func (m *MockStudentCommands) CreateStudent(ctx context.Context, req commands.CreateStudentRequest) (uuid.UUID, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateStudent", ctx, req)
	ret0, _ := ret[0].(uuid.UUID)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateStudent indicates an expected call of CreateStudent.
func (mr *MockStudentCommandsMockRecorder) CreateStudent(ctx, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateStudent", reflect.TypeOf((*MockStudentCommands)(nil).CreateStudent), ctx, req)
}

// DeleteStudent mocks base method.
func (m *MockStudentCommands) DeleteStudent(ctx context.Context, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteStudent", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteStudent indicates an expected call of DeleteStudent.
func (mr *MockStudentCommandsMockRecorder) DeleteStudent(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteStudent", reflect.TypeOf((*MockStudentCommands)(nil).DeleteStudent), ctx, id)
}

// UpdateStudent mocks base method.
func (m *MockStudentCommands) UpdateStudent(ctx context.Context, id uuid.UUID, req commands.UpdateStudentRequest) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateStudent", ctx, id, req)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateStudent indicates an expected call of UpdateStudent.
func (mr *MockStudentCommandsMockRecorder) UpdateStudent(ctx, id, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateStudent", reflect.TypeOf((*MockStudentCommands)(nil).UpdateStudent), ctx, id, req)
}
