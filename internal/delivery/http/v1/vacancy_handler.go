package v1

import (
	"net/http"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type VacancyHandler struct {
	vacancyUC domain.VacancyUsecase
}

func NewVacancyHandler(public *gin.RouterGroup, employerOnly gin.HandlerFunc, vacancyUC domain.VacancyUsecase) {
	handler := &VacancyHandler{vacancyUC: vacancyUC}

	// PUBLIC listing
	public.GET("/vacancies", handler.List)

	employer := public.Group("/employer/vacancies", employerOnly)
	{
		employer.GET("", handler.ListMine)
		employer.POST("", handler.Create)
		employer.PUT("/:id", handler.Update)
		employer.DELETE("/:id", handler.Delete)
	}
}

type CreateVacancyRequest struct {
	Title      string                 `json:"title" example:"Driver"`
	Text       string                 `json:"text" example:"Category C licence required"`
	Region     string                 `json:"region" example:"Chisinau"`
	Salary     *string                `json:"salary"`
	Profession *string                `json:"profession"`
	Images     domain.Field[[]string] `json:"images" swaggertype:"array,string"`
}

// List godoc
// @Summary      List all vacancies
// @Description  Public listing, newest first.
// @Tags         vacancies
// @Produce      json
// @Success      200  {array}   domain.Vacancy
// @Failure      500  {object}  response.ErrorResponse
// @Router       /vacancies [get]
func (h *VacancyHandler) List(c *gin.Context) {
	vacancies, err := h.vacancyUC.ListAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, vacancies)
}

// ListMine godoc
// @Summary      List own vacancies
// @Tags         vacancies
// @Produce      json
// @Success      200  {array}   domain.Vacancy
// @Failure      401  {object}  response.ErrorResponse
// @Failure      403  {object}  response.ErrorResponse
// @Router       /employer/vacancies [get]
// @Security     BearerAuth
func (h *VacancyHandler) ListMine(c *gin.Context) {
	vacancies, err := h.vacancyUC.ListMine(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, vacancies)
}

// Create godoc
// @Summary      Post a vacancy
// @Tags         vacancies
// @Accept       json
// @Produce      json
// @Param        vacancy  body      CreateVacancyRequest  true  "Vacancy JSON"
// @Success      200      {object}  domain.Vacancy
// @Failure      400      {object}  response.ErrorResponse
// @Failure      401      {object}  response.ErrorResponse
// @Router       /employer/vacancies [post]
// @Security     BearerAuth
func (h *VacancyHandler) Create(c *gin.Context) {
	var req CreateVacancyRequest
	if !bindJSON(c, &req) {
		return
	}

	vacancy, err := h.vacancyUC.Create(c.Request.Context(), currentUserID(c), domain.VacancyInput{
		Title:      req.Title,
		Text:       req.Text,
		Region:     req.Region,
		Salary:     req.Salary,
		Profession: req.Profession,
		Images:     imagesOf(req.Images),
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, vacancy)
}

// Update godoc
// @Summary      Edit a vacancy
// @Description  Only fields present in the body change. Someone else's vacancy reads as not found.
// @Tags         vacancies
// @Accept       json
// @Produce      json
// @Param        id       path      int                   true  "Vacancy ID"
// @Param        vacancy  body      CreateVacancyRequest  true  "Fields to change"
// @Success      200      {object}  domain.Vacancy
// @Failure      400      {object}  response.ErrorResponse
// @Failure      404      {object}  response.ErrorResponse
// @Router       /employer/vacancies/{id} [put]
// @Security     BearerAuth
func (h *VacancyHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch domain.VacancyPatch
	if !bindJSON(c, &patch) {
		return
	}

	vacancy, err := h.vacancyUC.Update(c.Request.Context(), id, currentUserID(c), patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, vacancy)
}

// Delete godoc
// @Summary      Delete a vacancy
// @Description  Removes the vacancy together with its applications.
// @Tags         vacancies
// @Produce      json
// @Param        id   path      int  true  "Vacancy ID"
// @Success      200  {object}  response.OKResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /employer/vacancies/{id} [delete]
// @Security     BearerAuth
func (h *VacancyHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.vacancyUC.Delete(c.Request.Context(), id, currentUserID(c)); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, response.OKResponse{OK: true})
}
