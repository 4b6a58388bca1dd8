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

type CourseHandler struct {
	cmds commands.CourseCommands
	q    queries.CourseQueries
}

func NewCourseHandler(cmds commands.CourseCommands, q queries.CourseQueries) *CourseHandler {
	return &CourseHandler{cmds: cmds, q: q}
}

// @Summary List courses
// @Description Search, sort and page through courses
// @Tags courses
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param pageSize query int false "Page size, 1-100 (default 20)"
// @Param sort query string false "Comma separated fields, '-' prefix for descending (code,title,credits,createdAt,id)"
// @Param search query string false "Case-insensitive match on code or title"
// @Success 200 {object} paging.Result[resdto.CourseResponse]
// @Failure 400 {object} httperr.Response
// @Router /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	var pq reqdto.PagingQuery
	if err := c.ShouldBindQuery(&pq); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid paging parameters", err.Error())
		return
	}
	page, err := h.q.List(c.Request.Context(), pq.ToQuery())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to list courses")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCoursePage(page))
}

// @Summary Get course
// @Description Get a course by ID
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} resdto.CourseResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /courses/{id} [get]
func (h *CourseHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load course")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCourseView(view))
}

// @Summary Create course
// @Description Add a course to the catalogue. Retries with the same Idempotency-Key replay the first response.
// @Tags courses
// @Accept json
// @Produce json
// @Param Idempotency-Key header string true "Client supplied key, 1-255 characters"
// @Param request body reqdto.CreateCourseRequest true "Create course request"
// @Success 201 {object} resdto.CourseResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /courses [post]
func (h *CourseHandler) Create(c *gin.Context) {
	var req reqdto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}
	id, err := h.cmds.CreateCourse(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithUseCaseError(c, err, "Create course failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load course")
		return
	}
	c.Header("Location", "/api/courses/"+id.String())
	c.JSON(http.StatusCreated, resdto.FromCourseView(view))
}

// @Summary Update course
// @Description Update a course; omitted fields keep their value
// @Tags courses
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param request body reqdto.UpdateCourseRequest true "Update course request"
// @Success 200 {object} resdto.CourseResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /courses/{id} [put]
func (h *CourseHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateCourseRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", bindErr.Error())
		return
	}
	if err = h.cmds.UpdateCourse(c.Request.Context(), id, req.ToCommand()); err != nil {
		abortWithUseCaseError(c, err, "Update course failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load course")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCourseView(view))
}

// @Summary Delete course
// @Description Delete a course together with every enrollment in it
// @Tags courses
// @Param id path string true "Course ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /courses/{id} [delete]
func (h *CourseHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.DeleteCourse(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err, "Delete course failed")
		return
	}
	c.Status(http.StatusNoContent)
}
