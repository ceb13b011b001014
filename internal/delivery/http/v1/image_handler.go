package v1

import (
	"net/http"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ImageHandler struct {
	imageUC domain.ImageUsecase
}

func NewImageHandler(public *gin.RouterGroup, employerOnly gin.HandlerFunc, imageUC domain.ImageUsecase) {
	handler := &ImageHandler{imageUC: imageUC}

	images := public.Group("/images")
	{
		images.POST("/direct-upload", employerOnly, handler.DirectUpload)
		images.GET("/info/:imageId", handler.Info)
		images.GET("/debug/:imageId", employerOnly, handler.Debug)
	}
}

// DirectUpload godoc
// @Summary      Get a one-time upload URL
// @Description  The client uploads the image straight to the provider.
// @Tags         images
// @Produce      json
// @Success      200  {object}  domain.DirectUpload
// @Failure      500  {object}  response.ErrorResponse
// @Router       /images/direct-upload [post]
// @Security     BearerAuth
func (h *ImageHandler) DirectUpload(c *gin.Context) {
	upload, err := h.imageUC.DirectUpload(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, upload)
}

// Info godoc
// @Summary      Resolve an image URL
// @Tags         images
// @Produce      json
// @Param        imageId  path      string  true  "Provider image ID"
// @Success      200      {object}  domain.ImageInfo
// @Failure      500      {object}  response.ErrorResponse
// @Router       /images/info/{imageId} [get]
func (h *ImageHandler) Info(c *gin.Context) {
	info, err := h.imageUC.Info(c.Request.Context(), c.Param("imageId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, info)
}

// Debug godoc
// @Summary      Show image delivery settings
// @Tags         images
// @Produce      json
// @Param        imageId  path      string  true  "Provider image ID"
// @Success      200      {object}  domain.ImageDebug
// @Failure      500      {object}  response.ErrorResponse
// @Router       /images/debug/{imageId} [get]
// @Security     BearerAuth
func (h *ImageHandler) Debug(c *gin.Context) {
	debug, err := h.imageUC.Debug(c.Request.Context(), c.Param("imageId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, debug)
}
