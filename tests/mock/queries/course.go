package queriesmock

import (
	context "context"
	paging "lms-api/internal/pkg/paging"
	queries "lms-api/internal/usecase/queries"
	reflect "reflect"

	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockCourseQueries is a mock of CourseQueries interface.
type MockCourseQueries struct {
	ctrl     *gomock.Controller
	recorder *MockCourseQueriesMockRecorder
	isgomock struct{}
}

// MockCourseQueriesMockRecorder is the mock recorder for MockCourseQueries.
type MockCourseQueriesMockRecorder struct {
	mock *MockCourseQueries
}

// NewMockCourseQueries creates a new mock instance.
func NewMockCourseQueries(ctrl *gomock.Controller) *MockCourseQueries {
	mock := &MockCourseQueries{ctrl: ctrl}
	mock.recorder = &MockCourseQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCourseQueries) EXPECT() *MockCourseQueriesMockRecorder {
	return m.recorder
}

// GetByID mocks base method.
func (m *MockCourseQueries) GetByID(ctx context.Context, id uuid.UUID) (*queries.CourseView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*queries.CourseView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockCourseQueriesMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockCourseQueries)(nil).GetByID), ctx, id)
}

// List mocks base method.
func (m *MockCourseQueries) List(ctx context.Context, q paging.Query) (paging.Result[*queries.CourseView], error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, q)
	ret0, _ := ret[0].(paging.Result[*queries.CourseView])
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockCourseQueriesMockRecorder) List(ctx, q any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockCourseQueries)(nil).List), ctx, q)
}
