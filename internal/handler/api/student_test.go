//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	domstudent "lms-api/internal/domain/student"
	"lms-api/internal/handler/api"
	resdto "lms-api/internal/handler/dto/response"
	"lms-api/internal/pkg/errs"
	"lms-api/internal/pkg/paging"
	"lms-api/internal/usecase/commands"
	"lms-api/internal/usecase/queries"
	"lms-api/tests/common/builder"
	"lms-api/tests/common/httptest"
	"lms-api/tests/common/testutil"
	commandsmock "lms-api/tests/mock/commands"
	queriesmock "lms-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StudentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockStudentCommands
	mockQueries  *queriesmock.MockStudentQueries
	handler      *api.StudentHandler
}

func (s *StudentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockStudentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockStudentQueries(s.mockCtrl)
	s.handler = api.NewStudentHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/api/students", s.handler.List)
	s.router.POST("/api/students", s.handler.Create)
	s.router.GET("/api/students/:id", s.handler.Get)
	s.router.PUT("/api/students/:id", s.handler.Update)
	s.router.DELETE("/api/students/:id", s.handler.Delete)
}

func (s *StudentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestStudentHandlerSuite(t *testing.T) {
	suite.Run(t, new(StudentHandlerTestSuite))
}

type testCaseStudent struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *StudentHandlerTestSuite) TestCreate() {
	url := "/api/students"

	b := builder.NewStudentBuilder()
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView()

	validation := []testCaseStudent{
		{name: "firstName length OK (100 chars)", mutate: testutil.Field("firstName", strings.Repeat("a", 100)), expectCode: http.StatusCreated},
		{name: "firstName too long (101 chars)", mutate: testutil.Field("firstName", strings.Repeat("a", 101)), expectCode: http.StatusBadRequest},
		{name: "missing field: firstName", mutate: testutil.Field("firstName", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: lastName", mutate: testutil.Field("lastName", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: email", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
		{name: "malformed email", mutate: testutil.Field("email", "not-an-email"), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 with Location and body", func() {
		s.mockCommands.EXPECT().CreateStudent(gomock.Any(), reqBody.ToCommand()).Return(view.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.StudentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID.String(), body.ID)
		s.Equal("Ada Lovelace", body.FullName)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/students/" + view.ID.String()})
	})

	s.Run("request validation", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().CreateStudent(gomock.Any(), gomock.Any()).Return(view.ID, nil).Times(1)
					s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)
				}

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
				}
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "domain validation error",
				commandsError:  domstudent.ErrInvalidEmail,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Validation failed",
			},
			{
				name:           "duplicate email",
				commandsError:  errs.Mark(errors.New("email taken"), errs.ErrDuplicateEmail),
				expectedStatus: http.StatusConflict,
				expectedMsg:    errs.ErrDuplicateEmail.Error(),
			},
			{
				name:           "unexpected error",
				commandsError:  errors.New("disk full"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Create student failed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateStudent(gomock.Any(), reqBody.ToCommand()).
					Return(uuid.Nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *StudentHandlerTestSuite) TestGet() {
	view := builder.NewStudentBuilder().BuildView()

	s.Run("success: returns 200", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/students/"+view.ID.String(), nil)

		var body resdto.StudentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.Email, body.Email)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/students/not-a-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 when absent", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).
			Return(nil, errs.Mark(errors.New("missing"), errs.ErrStudentNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/students/"+view.ID.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "student not found")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *StudentHandlerTestSuite) TestList() {
	views := []*queries.StudentView{
		builder.NewStudentBuilder().BuildView(),
		builder.NewStudentBuilder().With(func(b *builder.StudentBuilder) { b.Email = "grace@example.com" }).BuildView(),
	}

	s.Run("success: forwards paging parameters", func() {
		want := paging.Query{Page: 2, PageSize: 5, Sort: "-lastName,firstName", Search: "ada"}
		s.mockQueries.EXPECT().List(gomock.Any(), want).
			Return(paging.NewResult(views, 2, 5, 7), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/students?page=2&pageSize=5&sort=-lastName,firstName&search=ada", nil)

		var body paging.Result[resdto.StudentResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 2)
		s.Equal(7, body.TotalCount)
		s.Equal(2, body.TotalPages)
		s.True(body.HasPreviousPage)
		s.False(body.HasNextPage)
	})

	s.Run("success: defaults and clamping", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), paging.Query{Page: 1, PageSize: 100}).
			Return(paging.NewResult([]*queries.StudentView{}, 1, 100, 0), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/students?page=0&pageSize=500", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on non-integer page", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/students?page=abc", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid paging parameters")
	})
}

// ================================================================================
// TestUpdate / TestDelete
// ================================================================================

func (s *StudentHandlerTestSuite) TestUpdate() {
	view := builder.NewStudentBuilder().BuildView()
	url := "/api/students/" + view.ID.String()

	s.Run("success: partial update", func() {
		s.mockCommands.EXPECT().UpdateStudent(gomock.Any(), view.ID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, req commands.UpdateStudentRequest) error {
				s.Require().NotNil(req.Email)
				s.Equal("new@example.com", *req.Email)
				s.Nil(req.FirstName)
				return nil
			}).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"email": "new@example.com"})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 409 on duplicate email", func() {
		s.mockCommands.EXPECT().UpdateStudent(gomock.Any(), view.ID, gomock.Any()).
			Return(errs.Mark(errors.New("taken"), errs.ErrDuplicateEmail)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"email": "dup@example.com"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already registered")
	})
}

func (s *StudentHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/api/students/" + id.String()

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().DeleteStudent(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 404 when absent", func() {
		s.mockCommands.EXPECT().DeleteStudent(gomock.Any(), id).
			Return(errs.Mark(errors.New("gone"), errs.ErrStudentNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "student not found")
	})
}
