package commandsmock

import (
	context "context"
	commands "lms-api/internal/usecase/commands"
	reflect "reflect"

	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockCourseCommands is a mock of CourseCommands interface.
type MockCourseCommands struct {
	ctrl     *gomock.Controller
	recorder *MockCourseCommandsMockRecorder
	isgomock struct{}
}

// MockCourseCommandsMockRecorder is the mock recorder for MockCourseCommands.
type MockCourseCommandsMockRecorder struct {
	mock *MockCourseCommands
}

// NewMockCourseCommands creates a new mock instance.
func NewMockCourseCommands(ctrl *gomock.Controller) *MockCourseCommands {
	mock := &MockCourseCommands{ctrl: ctrl}
	mock.recorder = &MockCourseCommandsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCourseCommands) EXPECT() *MockCourseCommandsMockRecorder {
	return m.recorder
}

// CreateCourse mocks base method.
func (m *MockCourseCommands) CreateCourse(ctx context.Context, req commands.CreateCourseRequest) (uuid.UUID, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateCourse", ctx, req)
	ret0, _ := ret[0].(uuid.UUID)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateCourse indicates an expected call of CreateCourse.
func (mr *MockCourseCommandsMockRecorder) CreateCourse(ctx, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateCourse", reflect.TypeOf((*MockCourseCommands)(nil).CreateCourse), ctx, req)
}

// DeleteCourse mocks base method.
func (m *MockCourseCommands) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteCourse", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteCourse indicates an expected call of DeleteCourse.
func (mr *MockCourseCommandsMockRecorder) DeleteCourse(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteCourse", reflect.TypeOf((*MockCourseCommands)(nil).DeleteCourse), ctx, id)
}

// UpdateCourse mocks base method.
func (m *MockCourseCommands) UpdateCourse(ctx context.Context, id uuid.UUID, req commands.UpdateCourseRequest) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateCourse", ctx, id, req)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateCourse indicates an expected call of UpdateCourse.
func (mr *MockCourseCommandsMockRecorder) UpdateCourse(ctx, id, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateCourse", reflect.TypeOf((*MockCourseCommands)(nil).UpdateCourse), ctx, id, req)
}
