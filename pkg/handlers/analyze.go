// Package handlers exposes the HTTP surface of kintai-engine.
package handlers

import (
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/kintai-works/kintai-engine/pkg/services"
)

// User-facing messages for rejected uploads. The analysis itself reports
// its findings in Japanese, so the boundary speaks Japanese too.
const (
	msgNoFile        = "ファイルがアップロードされていません"
	msgNoData        = "データが見つかりません。Excelファイルの形式を確認してください"
	msgInternalError = "データ解析中にエラーが発生しました"
)

// AnalyzeHandler handles attendance workbook uploads.
type AnalyzeHandler struct {
	service   services.AnalysisService
	maxUpload int64
	logger    *zap.Logger
}

// NewAnalyzeHandler creates an AnalyzeHandler. maxUpload caps the accepted
// request body size in bytes.
func NewAnalyzeHandler(service services.AnalysisService, maxUpload int64, logger *zap.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		service:   service,
		maxUpload: maxUpload,
		logger:    logger.Named("analyze-handler"),
	}
}

// RegisterRoutes registers the handler's routes on the given mux.
func (h *AnalyzeHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/analyze", h.Analyze)
}

// Analyze handles POST /api/analyze: a multipart form with the workbook in
// the "file" field. A request fails hard only when it carried unusable
// input; once records exist the response always contains the best-effort
// summaries, regardless of collaborator failures.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)

	file, _, err := r.FormFile("file")
	if err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, msgNoFile)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("failed to read upload", zap.Error(err))
		_ = ServerErrorResponse(w, msgInternalError, err.Error())
		return
	}

	result, err := h.service.Analyze(r.Context(), data)
	if err != nil {
		if errors.Is(err, services.ErrNoRecords) {
			_ = ErrorResponse(w, http.StatusBadRequest, msgNoData)
			return
		}
		h.logger.Error("analysis failed", zap.Error(err))
		_ = ServerErrorResponse(w, msgInternalError, err.Error())
		return
	}

	if err := WriteJSON(w, http.StatusOK, result); err != nil {
		h.logger.Error("failed to encode analysis result", zap.Error(err))
	}
}
