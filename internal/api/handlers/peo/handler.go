// Package peo exposes Program Educational Objective analysis over HTTP.
package peo

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"obeserver/internal/api/handlers/common"
	"obeserver/internal/domain/peo"
)

type Handler struct {
	service peo.Service
}

func NewHandler(service peo.Service) *Handler {
	return &Handler{service: service}
}

// Upload godoc
// @Summary Analyze alumni and employer objective surveys
// @Description Both graded survey workbooks are uploaded together; per-objective percentages are averaged across the two audiences
// @Tags peo
// @Accept multipart/form-data
// @Produce json
// @Param batch formData string false "Batch label"
// @Param alumni formData file true "Alumni survey workbook (.xlsx)"
// @Param employer formData file true "Employer survey workbook (.xlsx)"
// @Success 201 {object} repositories.PEOAnalysis
// @Failure 400 {object} map[string]interface{}
// @Router /api/peo/upload [post]
func (h *Handler) Upload(c *gin.Context) {
	alumni, _, err := common.ReadUploadedSheet(c, "alumni")
	if err != nil {
		common.RespondError(c, err)
		return
	}

	employer, _, err := common.ReadUploadedSheet(c, "employer")
	if err != nil {
		common.RespondError(c, err)
		return
	}

	batch := strings.TrimSpace(c.PostForm("batch"))

	analysis, err := h.service.Analyze(c.Request.Context(), batch, alumni, employer)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	common.SendJSONResponse(c, http.StatusCreated, analysis)
}

// List godoc
// @Summary List stored objective analyses
// @Tags peo
// @Produce json
// @Success 200 {array} repositories.PEOAnalysis
// @Router /api/peo [get]
func (h *Handler) List(c *gin.Context) {
	records, err := h.service.List(c.Request.Context())
	if err != nil {
		common.RespondError(c, err)
		return
	}

	common.SendJSONResponse(c, http.StatusOK, records)
}

// Count godoc
// @Summary Count stored objective analyses
// @Tags peo
// @Produce json
// @Success 200 {object} map[string]int
// @Router /api/peo/count [get]
func (h *Handler) Count(c *gin.Context) {
	count, err := h.service.Count(c.Request.Context())
	if err != nil {
		common.RespondError(c, err)
		return
	}

	common.SendJSONResponse(c, http.StatusOK, gin.H{"count": count})
}

// Get godoc
// @Summary Fetch one objective analysis by id
// @Tags peo
// @Produce json
// @Param id path string true "Analysis id"
// @Success 200 {object} repositories.PEOAnalysis
// @Failure 404 {object} map[string]interface{}
// @Router /api/peo/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	record, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.RespondError(c, err)
		return
	}

	common.SendJSONResponse(c, http.StatusOK, record)
}

// Delete godoc
// @Summary Delete one objective analysis by id
// @Tags peo
// @Produce json
// @Param id path string true "Analysis id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/peo/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		common.RespondError(c, err)
		return
	}

	common.SendJSONResponse(c, http.StatusOK, gin.H{"message": "deleted"})
}
