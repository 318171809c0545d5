// Package finalresult exposes the two-phase final-result flow over HTTP:
// stage a failure list, stage a score list, then finalize the merge.
package finalresult

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"obeserver/internal/api/handlers/common"
	"obeserver/internal/domain/finalresult"
)

type Handler struct {
	service finalresult.Service
}

func NewHandler(service finalresult.Service) *Handler {
	return &Handler{service: service}
}

func sessionID(c *gin.Context) string {
	return strings.TrimSpace(c.PostForm("sessionId"))
}

// UploadFailure godoc
// @Summary Stage the failure-list workbook for a session
// @Tags final-result
// @Accept multipart/form-data
// @Produce json
// @Param sessionId formData string true "Upload session id"
// @Param file formData file true "Failure list workbook (.xlsx)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/final-result/upload-failure [post]
func (h *Handler) UploadFailure(c *gin.Context) {
	id := sessionID(c)
	if id == "" {
		common.SendJSONError(c, http.StatusBadRequest, "sessionId is required")
		return
	}

	sheet, fileName, err := common.ReadUploadedSheet(c, "file")
	if err != nil {
		common.RespondError(c, err)
		return
	}

	batch, err := h.service.StageFailureFile(c.Request.Context(), id, sheet, fileName)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	common.SendJSONResponse(c, http.StatusOK, gin.H{
		"session_id": id,
		"batch":      batch,
		"rows":       len(sheet.Rows),
	})
}

// UploadScores godoc
// @Summary Stage the score-list workbook for a session
// @Description Requires the session to already hold a failure list
// @Tags final-result
// @Accept multipart/form-data
// @Produce json
// @Param sessionId formData string true "Upload session id"
// @Param file formData file true "Score list workbook (.xlsx)"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/final-result/upload-nonplo [post]
func (h *Handler) UploadScores(c *gin.Context) {
	id := sessionID(c)
	if id == "" {
		common.SendJSONError(c, http.StatusBadRequest, "sessionId is required")
		return
	}

	sheet, fileName, err := common.ReadUploadedSheet(c, "file")
	if err != nil {
		common.RespondError(c, err)
		return
	}

	rows, err := h.service.StageScoreFile(c.Request.Context(), id, sheet, fileName)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	common.SendJSONResponse(c, http.StatusOK, gin.H{
		"session_id": id,
		"rows":       rows,
	})
}

// Calculate godoc
// @Summary Merge the staged datasets and persist the analysis
// @Description Fails with 400 when either staged file is missing, 404 when the session is unknown or expired
// @Tags final-result
// @Accept multipart/form-data
// @Produce json
// @Param sessionId formData string true "Upload session id"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/final-result/calculate [post]
func (h *Handler) Calculate(c *gin.Context) {
	id := sessionID(c)
	if id == "" {
		common.SendJSONError(c, http.StatusBadRequest, "sessionId is required")
		return
	}

	recordID, err := h.service.Finalize(c.Request.Context(), id)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	common.SendJSONResponse(c, http.StatusCreated, gin.H{"id": recordID})
}

// List godoc
// @Summary List stored final-result analyses
// @Tags final-result
// @Produce json
// @Success 200 {array} repositories.FinalResultSummary
// @Router /api/final-result [get]
func (h *Handler) List(c *gin.Context) {
	summaries, err := h.service.List(c.Request.Context())
	if err != nil {
		common.RespondError(c, err)
		return
	}

	common.SendJSONResponse(c, http.StatusOK, summaries)
}

// Count godoc
// @Summary Count stored final-result analyses
// @Tags final-result
// @Produce json
// @Success 200 {object} map[string]int
// @Router /api/final-result/count [get]
func (h *Handler) Count(c *gin.Context) {
	count, err := h.service.Count(c.Request.Context())
	if err != nil {
		common.RespondError(c, err)
		return
	}

	common.SendJSONResponse(c, http.StatusOK, gin.H{"count": count})
}

// Get godoc
// @Summary Fetch one analysis with its partitions
// @Tags final-result
// @Produce json
// @Param id path string true "Analysis id"
// @Success 200 {object} finalresult.Detail
// @Failure 404 {object} map[string]interface{}
// @Router /api/final-result/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	detail, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.RespondError(c, err)
		return
	}

	common.SendJSONResponse(c, http.StatusOK, detail)
}

// Delete godoc
// @Summary Delete one analysis by id
// @Tags final-result
// @Produce json
// @Param id path string true "Analysis id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/final-result/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		common.RespondError(c, err)
		return
	}

	common.SendJSONResponse(c, http.StatusOK, gin.H{"message": "deleted"})
}
