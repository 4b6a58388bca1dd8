package queriesmock

import (
	context "context"
	paging "lms-api/internal/pkg/paging"
	queries "lms-api/internal/usecase/queries"
	reflect "reflect"

	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockEnrollmentQueries is a mock of EnrollmentQueries interface.
type MockEnrollmentQueries struct {
	ctrl     *gomock.Controller
	recorder *MockEnrollmentQueriesMockRecorder
	isgomock struct{}
}

// MockEnrollmentQueriesMockRecorder is the mock recorder for MockEnrollmentQueries.
type MockEnrollmentQueriesMockRecorder struct {
	mock *MockEnrollmentQueries
}

// NewMockEnrollmentQueries creates a new mock instance.
func NewMockEnrollmentQueries(ctrl *gomock.Controller) *MockEnrollmentQueries {
	mock := &MockEnrollmentQueries{ctrl: ctrl}
	mock.recorder = &MockEnrollmentQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockEnrollmentQueries) EXPECT() *MockEnrollmentQueriesMockRecorder {
	return m.recorder
}

// GetByID mocks base method.
func (m *MockEnrollmentQueries) GetByID(ctx context.Context, id uuid.UUID) (*queries.EnrollmentView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*queries.EnrollmentView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockEnrollmentQueriesMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockEnrollmentQueries)(nil).GetByID), ctx, id)
}

// List mocks base method.
func (m *MockEnrollmentQueries) List(ctx context.Context, filter queries.EnrollmentFilter, q paging.Query) (paging.Result[*queries.EnrollmentView], error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, filter, q)
	ret0, _ := ret[0].(paging.Result[*queries.EnrollmentView])
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockEnrollmentQueriesMockRecorder) List(ctx, filter, q any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockEnrollmentQueries)(nil).List), ctx, filter, q)
}
