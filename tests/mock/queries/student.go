// Package queriesmock holds gomock mocks for the query use cases.
// They follow mockgen's layout and are maintained by hand.
package queriesmock

import (
	context "context"
	paging "lms-api/internal/pkg/paging"
	queries "lms-api/internal/usecase/queries"
	reflect "reflect"

	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockStudentQueries is a mock of StudentQueries interface.
type MockStudentQueries struct {
	ctrl     *gomock.Controller
	recorder *MockStudentQueriesMockRecorder
	isgomock struct{}
}

// MockStudentQueriesMockRecorder is the mock recorder for MockStudentQueries.
type MockStudentQueriesMockRecorder struct {
	mock *MockStudentQueries
}

// NewMockStudentQueries creates a new mock instance.
func NewMockStudentQueries(ctrl *gomock.Controller) *MockStudentQueries {
	mock := &MockStudentQueries{ctrl: ctrl}
	mock.recorder = &MockStudentQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStudentQueries) EXPECT() *MockStudentQueriesMockRecorder {
	return m.recorder
}

// GetByID mocks base method.
func (m *MockStudentQueries) GetByID(ctx context.Context, id uuid.UUID) (*queries.StudentView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*queries.StudentView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockStudentQueriesMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockStudentQueries)(nil).GetByID), ctx, id)
}

// List mocks base method.
func (m *MockStudentQueries) List(ctx context.Context, q paging.Query) (paging.Result[*queries.StudentView], error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx, q)
	ret0, _ := ret[0].(paging.Result[*queries.StudentView])
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockStudentQueriesMockRecorder) List(ctx, q any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockStudentQueries)(nil).List), ctx, q)
}
