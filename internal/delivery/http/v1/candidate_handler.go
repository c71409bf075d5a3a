package v1

import (
	"io"
	"net/http"
	"strconv"

	"github.com/FarazAhsan11/candidate-management/internal/delivery/http/middleware"
	"github.com/FarazAhsan11/candidate-management/internal/delivery/http/response"
	"github.com/FarazAhsan11/candidate-management/internal/domain"
	"github.com/FarazAhsan11/candidate-management/pkg/apperror"
	"github.com/FarazAhsan11/candidate-management/pkg/validation"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(r *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := r.Group("/candidates")
	{
		candidates.GET("", handler.List)
		candidates.GET("/:id", handler.GetByID)
		candidates.POST("", middleware.UploadRateLimitMiddleware(), handler.Create)
		candidates.PATCH("/:id", middleware.UploadRateLimitMiddleware(), handler.Update)
		candidates.DELETE("/:id", handler.Delete)
	}
}

// List godoc
// @Summary      List candidates
// @Description  Filtered, sorted, paginated candidate listing with the global applied-position facet
// @Tags         candidates
// @Produce      json
// @Param        search      query  string  false  "Free-text search over name, email and applied position"
// @Param        position    query  string  false  "Applied position filter (exact match, 'All' for no filter)"
// @Param        status      query  string  false  "Status filter (exact match, 'All' for no filter)"
// @Param        experience  query  string  false  "Experience bucket: 0-2, 3-5 or 6+"
// @Param        sortBy      query  string  false  "date-asc|date-desc|name-asc|name-desc|experience-asc|experience-desc"
// @Param        page        query  int     false  "1-based page number"
// @Param        limit       query  int     false  "Page size"
// @Success      200  {object}  domain.ListResult
// @Failure      500  {object}  map[string]string
// @Router       /candidates [get]
func (h *CandidateHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(domain.DefaultPageSize)))

	result, err := h.candidateUC.List(c.Request.Context(), domain.ListQuery{
		Search:     c.Query("search"),
		Position:   c.Query("position"),
		Status:     c.Query("status"),
		Experience: c.Query("experience"),
		SortBy:     c.DefaultQuery("sortBy", domain.SortDateDesc),
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetByID godoc
// @Summary      Get a candidate
// @Tags         candidates
// @Produce      json
// @Param        id   path      string  true  "Candidate id"
// @Success      200  {object}  domain.Candidate
// @Failure      404  {object}  map[string]string
// @Router       /candidates/{id} [get]
func (h *CandidateHandler) GetByID(c *gin.Context) {
	candidate, err := h.candidateUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, candidate)
}

// Create godoc
// @Summary      Add a candidate
// @Description  Multipart form with candidate fields and an optional resume file (field name "resume")
// @Tags         candidates
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /candidates [post]
func (h *CandidateHandler) Create(c *gin.Context) {
	var input domain.CandidateInput
	if err := c.ShouldBind(&input); err != nil {
		c.Error(apperror.ValidationFailed(validation.Issues(err)))
		return
	}

	candidate, err := h.candidateUC.Create(c.Request.Context(), &input, resumeFile(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Candidate(c, http.StatusCreated, "Candidate added successfully", candidate)
}

// Update godoc
// @Summary      Update a candidate
// @Description  Partial update; accepts multipart (with optional resume re-upload) or plain JSON
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Candidate id"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /candidates/{id} [patch]
func (h *CandidateHandler) Update(c *gin.Context) {
	var input domain.CandidateUpdateInput
	if err := c.ShouldBind(&input); err != nil {
		c.Error(apperror.ValidationFailed(validation.Issues(err)))
		return
	}

	candidate, err := h.candidateUC.Update(c.Request.Context(), c.Param("id"), &input, resumeFile(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Candidate(c, http.StatusOK, "Candidate updated successfully", candidate)
}

// Delete godoc
// @Summary      Delete a candidate
// @Tags         candidates
// @Produce      json
// @Param        id   path      string  true  "Candidate id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /candidates/{id} [delete]
func (h *CandidateHandler) Delete(c *gin.Context) {
	if err := h.candidateUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Message(c, http.StatusOK, "Candidate deleted successfully")
}

// resumeFile extracts the optional "resume" upload from a multipart request.
// Returns nil when the request carries no file (including JSON requests).
func resumeFile(c *gin.Context) *domain.UploadedFile {
	fh, err := c.FormFile("resume")
	if err != nil {
		return nil
	}
	return &domain.UploadedFile{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}
