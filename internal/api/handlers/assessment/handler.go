// Package assessment exposes the cohort assessment flow over HTTP:
// indirect survey upload, direct score upload, blending and CRUD.
package assessment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"obeserver/internal/api/handlers/common"
	"obeserver/internal/domain/assessment"
	"obeserver/internal/domain/repositories"
)

type Handler struct {
	service assessment.Service
}

func NewHandler(service assessment.Service) *Handler {
	return &Handler{service: service}
}

// UploadIndirect godoc
// @Summary Process an indirect survey workbook
// @Description Tallies Likert responses per programme learning outcome and extracts cohort metadata
// @Tags assessment
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Survey workbook (.xlsx)"
// @Success 200 {object} assessment.IndirectResult
// @Failure 400 {object} map[string]interface{}
// @Router /api/upload/indirect [post]
func (h *Handler) UploadIndirect(c *gin.Context) {
	sheet, _, err := common.ReadUploadedSheet(c, "file")
	if err != nil {
		common.RespondError(c, err)
		return
	}

	result, err := h.service.ProcessIndirect(c.Request.Context(), sheet)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	common.SendJSONResponse(c, http.StatusOK, result)
}

// UploadDirect godoc
// @Summary Process a direct assessment workbook
// @Description Reads per-outcome direct percentages; outcomes absent from the file report 0
// @Tags assessment
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Direct assessment workbook (.xlsx)"
// @Success 200 {object} map[int]float64
// @Failure 400 {object} map[string]interface{}
// @Router /api/upload/direct [post]
func (h *Handler) UploadDirect(c *gin.Context) {
	sheet, _, err := common.ReadUploadedSheet(c, "file")
	if err != nil {
		common.RespondError(c, err)
		return
	}

	scores, err := h.service.ProcessDirect(c.Request.Context(), sheet)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	common.SendJSONResponse(c, http.StatusOK, gin.H{"direct_scores": scores})
}

// Complete godoc
// @Summary Blend indirect and direct results into a persisted assessment
// @Tags assessment
// @Accept json
// @Produce json
// @Success 201 {object} repositories.Assessment
// @Failure 400 {object} map[string]interface{}
// @Router /api/upload/complete [post]
func (h *Handler) Complete(c *gin.Context) {
	var req assessment.CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.SendJSONError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	record, err := h.service.Complete(c.Request.Context(), req)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	common.SendJSONResponse(c, http.StatusCreated, record)
}

// Save godoc
// @Summary Persist a client-computed assessment as-is
// @Tags assessment
// @Accept json
// @Produce json
// @Success 201 {object} repositories.Assessment
// @Failure 400 {object} map[string]interface{}
// @Router /api/upload/save [post]
func (h *Handler) Save(c *gin.Context) {
	var record repositories.Assessment
	if err := c.ShouldBindJSON(&record); err != nil {
		common.SendJSONError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	saved, err := h.service.Save(c.Request.Context(), &record)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	common.SendJSONResponse(c, http.StatusCreated, saved)
}

// List godoc
// @Summary List stored assessments
// @Tags assessment
// @Produce json
// @Success 200 {array} repositories.Assessment
// @Router /api/upload [get]
func (h *Handler) List(c *gin.Context) {
	records, err := h.service.List(c.Request.Context())
	if err != nil {
		common.RespondError(c, err)
		return
	}

	common.SendJSONResponse(c, http.StatusOK, records)
}

// Count godoc
// @Summary Count stored assessments
// @Tags assessment
// @Produce json
// @Success 200 {object} map[string]int
// @Router /api/upload/count [get]
func (h *Handler) Count(c *gin.Context) {
	count, err := h.service.Count(c.Request.Context())
	if err != nil {
		common.RespondError(c, err)
		return
	}

	common.SendJSONResponse(c, http.StatusOK, gin.H{"count": count})
}

// Get godoc
// @Summary Fetch one assessment by id
// @Tags assessment
// @Produce json
// @Param id path string true "Assessment id"
// @Success 200 {object} repositories.Assessment
// @Failure 404 {object} map[string]interface{}
// @Router /api/upload/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	record, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.RespondError(c, err)
		return
	}

	common.SendJSONResponse(c, http.StatusOK, record)
}

// Delete godoc
// @Summary Delete one assessment by id
// @Tags assessment
// @Produce json
// @Param id path string true "Assessment id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/upload/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		common.RespondError(c, err)
		return
	}

	common.SendJSONResponse(c, http.StatusOK, gin.H{"message": "deleted"})
}
