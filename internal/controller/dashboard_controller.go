package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/studydash/internal/dto"
	"github.com/lshigami/studydash/internal/middleware"
	"github.com/lshigami/studydash/internal/service"
	"github.com/rs/zerolog/log"
)

type DashboardController struct {
	dashboardService service.DashboardService
	uploadService    service.UploadService
}

func NewDashboardController(dashboardService service.DashboardService, uploadService service.UploadService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService, uploadService: uploadService}
}

// Overview godoc
// @Summary Dashboard overview
// @Description Today's schedule, next quiz and exam, assignment counts, this week's goals, the five latest activities and subject performance.
// @Tags dashboard
// @Produce json
// @Security TokenAuth
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /dashboard [get]
func (ctrl *DashboardController) Overview(c *gin.Context) {
	overview, err := ctrl.dashboardService.Overview(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// UploadPDF godoc
// @Summary Upload a PDF
// @Description Stores the file under "<subject_id>/<uuid>.pdf" and returns a public or presigned link.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security TokenAuth
// @Param file formData file true "PDF, at most 50MB"
// @Param subject_id formData string false "Folder name"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse "Storage not configured or upload failed"
// @Router /upload-pdf [post]
func (ctrl *DashboardController) UploadPDF(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		log.Warn().Err(err).Msg("Upload without file")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "No file provided"})
		return
	}
	resp, err := ctrl.uploadService.UploadPDF(c.Request.Context(), file, c.PostForm("subject_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
