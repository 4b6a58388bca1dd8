package api

import (
	"net/http"

	reqdto "lms-api/internal/handler/dto/request"
	resdto "lms-api/internal/handler/dto/response"
	"lms-api/internal/handler/httperr"
	"lms-api/internal/usecase/commands"
	"lms-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EnrollmentHandler struct {
	cmds commands.EnrollmentCommands
	q    queries.EnrollmentQueries
}

func NewEnrollmentHandler(cmds commands.EnrollmentCommands, q queries.EnrollmentQueries) *EnrollmentHandler {
	return &EnrollmentHandler{cmds: cmds, q: q}
}

// @Summary List enrollments
// @Description Search, sort and page through enrollments, optionally for one student or course
// @Tags enrollments
// @Produce json
// @Param studentId query string false "Only enrollments of this student"
// @Param courseId query string false "Only enrollments in this course"
// @Param page query int false "Page number (default 1)"
// @Param pageSize query int false "Page size, 1-100 (default 20)"
// @Param sort query string false "Comma separated fields, '-' prefix for descending (enrolledAt,grade,studentName,courseCode,id)"
// @Param search query string false "Case-insensitive match on course code, course title or student name"
// @Success 200 {object} paging.Result[resdto.EnrollmentResponse]
// @Failure 400 {object} httperr.Response
// @Router /enrollments [get]
func (h *EnrollmentHandler) List(c *gin.Context) {
	var lq reqdto.EnrollmentListQuery
	if err := c.ShouldBindQuery(&lq); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", err.Error())
		return
	}
	page, err := h.q.List(c.Request.Context(), lq.ToFilter(), lq.ToQuery())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to list enrollments")
		return
	}
	c.JSON(http.StatusOK, resdto.FromEnrollmentPage(page))
}

// @Summary Get enrollment
// @Description Get an enrollment by ID
// @Tags enrollments
// @Produce json
// @Param id path string true "Enrollment ID"
// @Success 200 {object} resdto.EnrollmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /enrollments/{id} [get]
func (h *EnrollmentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load enrollment")
		return
	}
	c.JSON(http.StatusOK, resdto.FromEnrollmentView(view))
}

// @Summary Enroll student
// @Description Enroll a student in a course. An Idempotency-Key is optional; when sent, retries replay the first response.
// @Tags enrollments
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Client supplied key, 1-255 characters"
// @Param request body reqdto.CreateEnrollmentRequest true "Enrollment request"
// @Success 201 {object} resdto.EnrollmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /enrollments [post]
func (h *EnrollmentHandler) Create(c *gin.Context) {
	var req reqdto.CreateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}
	id, err := h.cmds.Enroll(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithUseCaseError(c, err, "Enrollment failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load enrollment")
		return
	}
	c.Header("Location", "/api/enrollments/"+id.String())
	c.JSON(http.StatusCreated, resdto.FromEnrollmentView(view))
}

// @Summary Set grade
// @Description Set or clear (null) the grade of an enrollment
// @Tags enrollments
// @Accept json
// @Produce json
// @Param id path string true "Enrollment ID"
// @Param request body reqdto.UpdateGradeRequest true "Grade request"
// @Success 200 {object} resdto.EnrollmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /enrollments/{id}/grade [put]
func (h *EnrollmentHandler) UpdateGrade(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateGradeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", bindErr.Error())
		return
	}
	if err = h.cmds.AssignGrade(c.Request.Context(), id, req.Grade); err != nil {
		abortWithUseCaseError(c, err, "Grade update failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load enrollment")
		return
	}
	c.JSON(http.StatusOK, resdto.FromEnrollmentView(view))
}

// @Summary Withdraw enrollment
// @Description Remove an enrollment
// @Tags enrollments
// @Param id path string true "Enrollment ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /enrollments/{id} [delete]
func (h *EnrollmentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.Withdraw(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err, "Withdraw failed")
		return
	}
	c.Status(http.StatusNoContent)
}
