// Package schedule exposes the report endpoints of the HTTP API.
package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/inventario26/cronograma-go/pkg/cache"
	"github.com/inventario26/cronograma-go/pkg/cronograma"
	"github.com/inventario26/cronograma-go/pkg/cronograma/models"
)

// maxUploadBytes caps multipart uploads of schedule workbooks.
const maxUploadBytes = 10 << 20 // 10 MB

// Fetcher resolves a source string (path or URL) to workbook bytes.
type Fetcher interface {
	Bytes(ctx context.Context, source string) ([]byte, error)
}

// Defaults are applied when a request omits the matching parameter.
type Defaults struct {
	Source string
	Sheet  string
}

// Handler serves schedule reports over HTTP.
type Handler struct {
	fetcher  Fetcher
	reports  *cache.Cache
	defaults Defaults
}

// NewHandler creates a new Handler. A nil reports cache gets the default
// bound, and an empty default sheet falls back to the standard tab name.
func NewHandler(fetcher Fetcher, reports *cache.Cache, defaults Defaults) *Handler {
	if reports == nil {
		reports = cache.New(0)
	}
	if defaults.Sheet == "" {
		defaults.Sheet = cronograma.DefaultSheetName
	}
	return &Handler{
		fetcher:  fetcher,
		reports:  reports,
		defaults: defaults,
	}
}

// ReportResponse is the JSON body of both report endpoints.
type ReportResponse struct {
	Sheet   string             `json:"sheet"`
	Days    []models.DayRecord `json:"days"`
	Summary models.Summary     `json:"summary"`
}

// ErrorResponse carries a user-facing failure message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// GetReport builds the report for a configured or query-supplied source.
// Query parameters: source, sheet, ignore_past.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	source := r.URL.Query().Get("source")
	if source == "" {
		source = h.defaults.Source
	}
	if source == "" {
		writeError(w, http.StatusBadRequest, "missing source: pass ?source= or configure a default")
		return
	}

	params, ok := h.readParams(w, r)
	if !ok {
		return
	}

	data, err := h.fetcher.Bytes(ctx, source)
	if err != nil {
		logger.Error().Err(err).Str("source", source).Msg("failed to fetch workbook")
		writeError(w, http.StatusBadGateway, "failed to fetch workbook: "+err.Error())
		return
	}

	h.respond(w, r, data, params)
}

// UploadReport builds the report for a workbook sent as the "file" field
// of a multipart form. Sheet and ignore_past come from form values or
// query parameters.
func (h *Handler) UploadReport(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "cannot parse multipart form")
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, `missing "file" field`)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		logger.Error().Err(err).Msg("failed to read upload")
		writeError(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	params, ok := h.readParams(w, r)
	if !ok {
		return
	}

	h.respond(w, r, data, params)
}

type reportParams struct {
	sheet      string
	ignorePast bool
}

// readParams pulls the shared parameters from the query string or the
// form body. It writes the error response itself and reports ok=false
// when a value does not parse.
func (h *Handler) readParams(w http.ResponseWriter, r *http.Request) (reportParams, bool) {
	params := reportParams{sheet: r.FormValue("sheet")}
	if params.sheet == "" {
		params.sheet = h.defaults.Sheet
	}
	if raw := r.FormValue("ignore_past"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid ignore_past: expected a boolean")
			return reportParams{}, false
		}
		params.ignorePast = v
	}
	return params, true
}

// respond loads (or reuses) the report for the workbook bytes and writes
// the JSON response. Workbooks the parser rejects map to 422.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, data []byte, params reportParams) {
	logger := zerolog.Ctx(r.Context())

	report, ok := h.reports.Get(data, params.sheet)
	if !ok {
		var err error
		report, err = cronograma.Load(data, cronograma.Options{SheetName: params.sheet})
		if err != nil {
			var loadErr *cronograma.LoadError
			if errors.As(err, &loadErr) {
				logger.Warn().Err(err).Str("sheet", params.sheet).Msg("workbook rejected")
				writeError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			logger.Error().Err(err).Msg("failed to load workbook")
			writeError(w, http.StatusInternalServerError, "failed to load workbook")
			return
		}
		h.reports.Put(data, params.sheet, report)
	}

	summary := cronograma.Summarize(report, cronograma.SummaryOptions{IgnorePastDays: params.ignorePast})

	w.Header().Set("Content-Type", "application/json")
	resp := ReportResponse{
		Sheet:   report.SheetName,
		Days:    report.Days,
		Summary: summary,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error().Err(err).Msg("failed to encode report response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: msg})
}
