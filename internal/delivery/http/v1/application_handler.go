package v1

import (
	"net/http"
	"strings"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes
func NewApplicationHandler(public *gin.RouterGroup, employerOnly gin.HandlerFunc, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	// Seeker form, no account needed
	public.POST("/applications", handler.Submit)
	public.PUT("/applications/:id", employerOnly, handler.Update)

	candidates := public.Group("/employer/candidates", employerOnly)
	{
		candidates.GET("", handler.List)
		candidates.POST("", handler.CreateManual)
		candidates.GET("/export", handler.Export)
	}
}

// SubmitApplicationRequest is the seeker form. Values of the wrong JSON type
// in offerId, age and images are treated as absent.
type SubmitApplicationRequest struct {
	OfferID      domain.Field[int64]    `json:"offerId" swaggertype:"integer"`
	Name         string                 `json:"name" example:"Jane"`
	Phone        string                 `json:"phone" example:"123"`
	Region       string                 `json:"region" example:"City"`
	Interest     *string                `json:"interest"`
	ApplicantID  *string                `json:"applicantId"`
	Contract     *string                `json:"contract"`
	Age          domain.Field[int]      `json:"age" swaggertype:"integer"`
	Experience   *string                `json:"experience"`
	SalaryWorker *string                `json:"salaryWorker"`
	Images       domain.Field[[]string] `json:"images" swaggertype:"array,string"`
}

type ManualCandidateRequest struct {
	Name         string                 `json:"name"`
	Phone        string                 `json:"phone"`
	Region       string                 `json:"region"`
	Interest     *string                `json:"interest"`
	Contract     *string                `json:"contract"`
	Age          domain.Field[int]      `json:"age" swaggertype:"integer"`
	Experience   *string                `json:"experience"`
	SalaryWorker *string                `json:"salaryWorker"`
	Status       string                 `json:"status" example:"new"`
	Images       domain.Field[[]string] `json:"images" swaggertype:"array,string"`
}

// Submit godoc
// @Summary      Apply to a vacancy
// @Description  Public seeker form. Status always starts as "new".
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        application  body      SubmitApplicationRequest  true  "Application data"
// @Success      200          {object}  domain.Application
// @Failure      400          {object}  response.ErrorResponse
// @Failure      404          {object}  response.ErrorResponse
// @Router       /applications [post]
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req SubmitApplicationRequest
	if !bindJSON(c, &req) {
		return
	}

	var offerID int64
	if req.OfferID.Present() {
		offerID = *req.OfferID.Value
	}

	app, err := h.applicationUC.Submit(c.Request.Context(), domain.ApplicationInput{
		OfferID:      offerID,
		Name:         req.Name,
		Phone:        req.Phone,
		Region:       req.Region,
		Interest:     req.Interest,
		ApplicantID:  req.ApplicantID,
		Contract:     req.Contract,
		Age:          req.Age.Ptr(),
		Experience:   req.Experience,
		SalaryWorker: req.SalaryWorker,
		Images:       imagesOf(req.Images),
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, app)
}

// Update godoc
// @Summary      Edit an application
// @Description  Employer edits a candidate on one of their vacancies. Only fields present in the body change.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id           path      int                       true  "Application ID"
// @Param        application  body      SubmitApplicationRequest  true  "Fields to change"
// @Success      200          {object}  domain.Application
// @Failure      400          {object}  response.ErrorResponse
// @Failure      403          {object}  response.ErrorResponse
// @Failure      404          {object}  response.ErrorResponse
// @Router       /applications/{id} [put]
// @Security     BearerAuth
func (h *ApplicationHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch domain.ApplicationPatch
	if !bindJSON(c, &patch) {
		return
	}

	app, err := h.applicationUC.Update(c.Request.Context(), id, currentUserID(c), patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, app)
}

// List godoc
// @Summary      List candidates
// @Description  Applications across all of the caller's vacancies, each with its vacancy attached.
// @Tags         candidates
// @Produce      json
// @Success      200  {array}   domain.Application
// @Failure      401  {object}  response.ErrorResponse
// @Failure      403  {object}  response.ErrorResponse
// @Router       /employer/candidates [get]
// @Security     BearerAuth
func (h *ApplicationHandler) List(c *gin.Context) {
	apps, err := h.applicationUC.ListForEmployer(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, apps)
}

// CreateManual godoc
// @Summary      Add a candidate by hand
// @Description  Attaches the candidate to the caller's oldest vacancy, creating a placeholder vacancy if they have none.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        candidate  body      ManualCandidateRequest  true  "Candidate data"
// @Success      200        {object}  domain.Application
// @Failure      400        {object}  response.ErrorResponse
// @Router       /employer/candidates [post]
// @Security     BearerAuth
func (h *ApplicationHandler) CreateManual(c *gin.Context) {
	var req ManualCandidateRequest
	if !bindJSON(c, &req) {
		return
	}

	app, err := h.applicationUC.CreateManual(c.Request.Context(), currentUserID(c), domain.ManualCandidateInput{
		Name:         req.Name,
		Phone:        req.Phone,
		Region:       req.Region,
		Interest:     req.Interest,
		Contract:     req.Contract,
		Age:          req.Age.Ptr(),
		Experience:   req.Experience,
		SalaryWorker: req.SalaryWorker,
		Status:       req.Status,
		Images:       imagesOf(req.Images),
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, app)
}

// Export godoc
// @Summary      Download candidates
// @Description  Exports the caller's candidates as XLSX (default) or CSV.
// @Tags         candidates
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      text/csv
// @Param        format   query     string  false  "xlsx or csv"
// @Param        columns  query     string  false  "Comma-separated column keys"
// @Success      200      {file}    file
// @Failure      400      {object}  response.ErrorResponse
// @Router       /employer/candidates/export [get]
// @Security     BearerAuth
func (h *ApplicationHandler) Export(c *gin.Context) {
	req := domain.ApplicationExportRequest{Format: c.Query("format")}
	if cols := c.Query("columns"); cols != "" {
		for _, col := range strings.Split(cols, ",") {
			if col = strings.TrimSpace(col); col != "" {
				req.Columns = append(req.Columns, col)
			}
		}
	}

	file, err := h.applicationUC.Export(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Data)
}
