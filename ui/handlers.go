package ui

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"coanalyst/domain/analysis"
	apperrors "coanalyst/internal/errors"
	"coanalyst/internal/render"
	"coanalyst/internal/report"
)

// executeRequest is the body of POST /api/analysis
type executeRequest struct {
	Method       string              `json:"method"`
	Instructions string              `json:"instructions"`
	Parameters   map[string][]string `json:"parameters"`
}

// handleIndex serves the single-page frontend
func (s *Server) handleIndex(c *gin.Context) {
	page, err := embeddedFiles.ReadFile("index.html")
	if err != nil {
		c.String(http.StatusInternalServerError, "frontend not embedded")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

// handleSessionStatus reports the session shape the frontend polls on load
func (s *Server) handleSessionStatus(c *gin.Context) {
	state := s.session.Snapshot()

	status := gin.H{
		"session_id":  state.ID.String(),
		"has_dataset": state.HasDataset(),
		"has_result":  state.Result != nil,
		"in_progress": state.InProgress,
		"updated_at":  state.UpdatedAt.String(),
	}
	if state.HasDataset() {
		status["dataset"] = gin.H{
			"id":              state.DatasetID.String(),
			"name":            state.TableName,
			"headers":         state.Table.Headers,
			"row_count":       state.Table.RowCount(),
			"numeric_columns": state.Table.NumericColumns(),
		}
	}
	c.JSON(http.StatusOK, status)
}

// handleUpload ingests a CSV or Excel file and replaces the session dataset
func (s *Server) handleUpload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file in upload", "code": apperrors.CodeInputRejected})
		return
	}
	defer file.Close()

	if header.Size > s.cfg.Upload.MaxBytes {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("file exceeds the %d byte upload limit", s.cfg.Upload.MaxBytes),
			"code":  apperrors.CodeInputRejected,
		})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.respondError(c, apperrors.ExecutionFailed("could not read upload", err))
		return
	}

	t, err := s.reader.ReadTable(header.Filename, data)
	if err != nil {
		s.respondError(c, err)
		return
	}

	datasetID := s.session.SetDataset(header.Filename, t)
	s.logger.Info("Dataset %s uploaded (%d rows, %d columns)",
		header.Filename, t.RowCount(), t.ColumnCount())

	c.JSON(http.StatusOK, gin.H{
		"dataset_id":      datasetID.String(),
		"name":            header.Filename,
		"headers":         t.Headers,
		"row_count":       t.RowCount(),
		"numeric_columns": t.NumericColumns(),
	})
}

// handleClearDataset drops the dataset and any result
func (s *Server) handleClearDataset(c *gin.Context) {
	s.session.ClearDataset()
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}

// handleMethods lists the method registry with parameter schemas
func (s *Server) handleMethods(c *gin.Context) {
	methods := make([]gin.H, 0, len(analysis.Methods()))
	for _, m := range analysis.Methods() {
		methods = append(methods, gin.H{
			"id":           string(m),
			"display_name": m.DisplayName(),
			"parameters":   analysis.ParametersFor(m),
		})
	}
	c.JSON(http.StatusOK, gin.H{"methods": methods})
}

// handleExecute starts an analysis run. A blank method is resolved from the
// instructions text; a run already in flight makes this a no-op.
func (s *Server) handleExecute(c *gin.Context) {
	var req executeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "code": apperrors.CodeInputRejected})
		return
	}

	if !s.session.Snapshot().HasDataset() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "upload a dataset first", "code": apperrors.CodeInputRejected})
		return
	}

	cfg := analysis.Config{
		Method:       s.service.ResolveMethod(req.Method, req.Instructions),
		Instructions: req.Instructions,
		Parameters:   req.Parameters,
	}

	if !s.service.Execute(cfg) {
		c.JSON(http.StatusConflict, gin.H{
			"started": false,
			"error":   "an analysis is already running",
		})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"started":    true,
		"method":     string(cfg.Method),
		"session_id": s.session.ID().String(),
	})
}

// handleCancel aborts the in-flight run
func (s *Server) handleCancel(c *gin.Context) {
	s.service.Cancel()
	c.JSON(http.StatusAccepted, gin.H{"cancelled": true})
}

// handleResult returns the rendered view of the latest result
func (s *Server) handleResult(c *gin.Context) {
	state := s.session.Snapshot()
	if state.Result == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no analysis result yet"})
		return
	}
	c.JSON(http.StatusOK, render.Render(state.Result))
}

// handleExport downloads the full session as a timestamped JSON document:
// the analysis configuration including a snapshot of the data, plus the
// structured result.
func (s *Server) handleExport(c *gin.Context) {
	state := s.session.Snapshot()
	if state.Result == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no analysis result to export"})
		return
	}

	now := time.Now()
	config := gin.H{
		"method":       string(state.Result.Method),
		"instructions": state.Instructions,
		"parameters":   state.Parameters,
	}
	// The data snapshot is only available while the dataset is still loaded
	if state.HasDataset() {
		config["data"] = gin.H{
			"name":    state.TableName,
			"headers": state.Table.Headers,
			"rows":    state.Table.Rows,
		}
	}
	export := gin.H{
		"timestamp":       now.Format(time.RFC3339),
		"analysis_config": config,
		"result":          state.Result,
		"report":          report.Markdown(state.TableName, state.Result),
	}

	filename := fmt.Sprintf("analysis_export_%s.json", now.Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.JSON(http.StatusOK, export)
}

// handleReport renders the markdown report, or its HTML form with format=html
func (s *Server) handleReport(c *gin.Context) {
	state := s.session.Snapshot()
	if state.Result == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no analysis result yet"})
		return
	}

	if c.Query("format") == "html" {
		c.Data(http.StatusOK, "text/html; charset=utf-8",
			[]byte(report.HTML(state.TableName, state.Result)))
		return
	}
	c.Data(http.StatusOK, "text/markdown; charset=utf-8",
		[]byte(report.Markdown(state.TableName, state.Result)))
}

// handleHistory lists persisted runs when history is configured
func (s *Server) handleHistory(c *gin.Context) {
	if s.history == nil {
		c.JSON(http.StatusOK, gin.H{"enabled": false, "runs": []gin.H{}})
		return
	}

	runs, err := s.history.List(c.Request.Context(), 50)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"enabled": true, "runs": runs})
}

// respondError maps AppError codes onto HTTP statuses
func (s *Server) respondError(c *gin.Context, err error) {
	code := apperrors.GetCode(err)
	status := http.StatusInternalServerError
	if code == apperrors.CodeInputRejected {
		status = http.StatusBadRequest
	}

	s.logger.Error("Request failed: %v", err)
	c.JSON(status, gin.H{"error": err.Error(), "code": code})
}
