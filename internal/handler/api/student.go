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

type StudentHandler struct {
	cmds commands.StudentCommands
	q    queries.StudentQueries
}

func NewStudentHandler(cmds commands.StudentCommands, q queries.StudentQueries) *StudentHandler {
	return &StudentHandler{cmds: cmds, q: q}
}

// @Summary List students
// @Description Search, sort and page through students
// @Tags students
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param pageSize query int false "Page size, 1-100 (default 20)"
// @Param sort query string false "Comma separated fields, '-' prefix for descending (firstName,lastName,email,createdAt,id)"
// @Param search query string false "Case-insensitive match on name or email"
// @Success 200 {object} paging.Result[resdto.StudentResponse]
// @Failure 400 {object} httperr.Response
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	var pq reqdto.PagingQuery
	if err := c.ShouldBindQuery(&pq); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid paging parameters", err.Error())
		return
	}
	page, err := h.q.List(c.Request.Context(), pq.ToQuery())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to list students")
		return
	}
	c.JSON(http.StatusOK, resdto.FromStudentPage(page))
}

// @Summary Get student
// @Description Get a student by ID
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} resdto.StudentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /students/{id} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load student")
		return
	}
	c.JSON(http.StatusOK, resdto.FromStudentView(view))
}

// @Summary Create student
// @Description Register a new student. Retries with the same Idempotency-Key replay the first response.
// @Tags students
// @Accept json
// @Produce json
// @Param Idempotency-Key header string true "Client supplied key, 1-255 characters"
// @Param request body reqdto.CreateStudentRequest true "Create student request"
// @Success 201 {object} resdto.StudentResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /students [post]
func (h *StudentHandler) Create(c *gin.Context) {
	var req reqdto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}
	id, err := h.cmds.CreateStudent(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithUseCaseError(c, err, "Create student failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load student")
		return
	}
	c.Header("Location", "/api/students/"+id.String())
	c.JSON(http.StatusCreated, resdto.FromStudentView(view))
}

// @Summary Update student
// @Description Update a student; omitted fields keep their value
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param request body reqdto.UpdateStudentRequest true "Update student request"
// @Success 200 {object} resdto.StudentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /students/{id} [put]
func (h *StudentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateStudentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", bindErr.Error())
		return
	}
	if err = h.cmds.UpdateStudent(c.Request.Context(), id, req.ToCommand()); err != nil {
		abortWithUseCaseError(c, err, "Update student failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load student")
		return
	}
	c.JSON(http.StatusOK, resdto.FromStudentView(view))
}

// @Summary Delete student
// @Description Delete a student together with the student's enrollments
// @Tags students
// @Param id path string true "Student ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /students/{id} [delete]
func (h *StudentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.DeleteStudent(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err, "Delete student failed")
		return
	}
	c.Status(http.StatusNoContent)
}
