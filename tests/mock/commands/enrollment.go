package commandsmock

import (
	context "context"
	commands "lms-api/internal/usecase/commands"
	reflect "reflect"

	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockEnrollmentCommands is a mock of EnrollmentCommands interface.
type MockEnrollmentCommands struct {
	ctrl     *gomock.Controller
	recorder *MockEnrollmentCommandsMockRecorder
	isgomock struct{}
}

// MockEnrollmentCommandsMockRecorder is the mock recorder for MockEnrollmentCommands.
type MockEnrollmentCommandsMockRecorder struct {
	mock *MockEnrollmentCommands
}

// NewMockEnrollmentCommands creates a new mock instance.
func NewMockEnrollmentCommands(ctrl *gomock.Controller) *MockEnrollmentCommands {
	mock := &MockEnrollmentCommands{ctrl: ctrl}
	mock.recorder = &MockEnrollmentCommandsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockEnrollmentCommands) EXPECT() *MockEnrollmentCommandsMockRecorder {
	return m.recorder
}

// AssignGrade mocks base method.
func (m *MockEnrollmentCommands) AssignGrade(ctx context.Context, id uuid.UUID, grade *int) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AssignGrade", ctx, id, grade)
	ret0, _ := ret[0].(error)
	return ret0
}

// AssignGrade indicates an expected call of AssignGrade.
func (mr *MockEnrollmentCommandsMockRecorder) AssignGrade(ctx, id, grade any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AssignGrade", reflect.TypeOf((*MockEnrollmentCommands)(nil).AssignGrade), ctx, id, grade)
}

// Enroll mocks base method.
func (m *MockEnrollmentCommands) Enroll(ctx context.Context, req commands.EnrollRequest) (uuid.UUID, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Enroll", ctx, req)
	ret0, _ := ret[0].(uuid.UUID)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Enroll indicates an expected call of Enroll.
func (mr *MockEnrollmentCommandsMockRecorder) Enroll(ctx, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Enroll", reflect.TypeOf((*MockEnrollmentCommands)(nil).Enroll), ctx, req)
}

// Withdraw mocks base method.
func (m *MockEnrollmentCommands) Withdraw(ctx context.Context, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Withdraw", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Withdraw indicates an expected call of Withdraw.
func (mr *MockEnrollmentCommandsMockRecorder) Withdraw(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Withdraw", reflect.TypeOf((*MockEnrollmentCommands)(nil).Withdraw), ctx, id)
}
