// Package prediction exposes the outcome forecasting endpoints backed by
// the external model server.
package prediction

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"obeserver/internal/api/handlers/common"
	"obeserver/internal/domain/prediction"
)

type Handler struct {
	service prediction.Service
}

func NewHandler(service prediction.Service) *Handler {
	return &Handler{service: service}
}

type predictRequest struct {
	Inputs [][]float64 `json:"inputs"`
}

// Predict godoc
// @Summary Forecast outcomes for explicit feature vectors
// @Description Each row is [gender, semester, plo1..plo12]; rows are sanitized before the model call
// @Tags prediction
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/ml/predict [post]
func (h *Handler) Predict(c *gin.Context) {
	var req predictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.SendJSONError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	raw, err := h.service.Predict(c.Request.Context(), req.Inputs)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", raw)
}

// PredictBulk godoc
// @Summary Forecast outcomes for every student in a workbook
// @Description Detects the header row, builds one feature vector per student and interpolates the semester 5..7 trajectory
// @Tags prediction
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Student outcome workbook (.xlsx)"
// @Success 200 {object} prediction.BulkResult
// @Failure 400 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /api/ml/predict-bulk [post]
func (h *Handler) PredictBulk(c *gin.Context) {
	sheet, _, err := common.ReadUploadedMatrix(c, "file")
	if err != nil {
		common.RespondError(c, err)
		return
	}

	result, err := h.service.PredictBulk(c.Request.Context(), sheet)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	common.SendJSONResponse(c, http.StatusOK, result)
}
