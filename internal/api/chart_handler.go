package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/sanmei-api/internal/api/shared"
	"github.com/phrazzld/sanmei-api/internal/batch"
	"github.com/phrazzld/sanmei-api/internal/domain"
	"github.com/phrazzld/sanmei-api/internal/platform/logger"
	"github.com/phrazzld/sanmei-api/internal/service"
)

// ChartHandler handles chart-related HTTP requests
type ChartHandler struct {
	readingService service.ReadingService
	runner         *batch.Runner
	now            func() time.Time
	logger         *slog.Logger
}

// ChartHandlerOption customizes a ChartHandler.
type ChartHandlerOption func(*ChartHandler)

// WithClock replaces time.Now as the source of the reference moment.
func WithClock(now func() time.Time) ChartHandlerOption {
	return func(h *ChartHandler) {
		h.now = now
	}
}

// NewChartHandler creates a new ChartHandler.
func NewChartHandler(
	readingService service.ReadingService,
	runner *batch.Runner,
	logger *slog.Logger,
	opts ...ChartHandlerOption,
) (*ChartHandler, error) {
	if readingService == nil {
		return nil, fmt.Errorf("%w: reading service", service.ErrNilDependency)
	}
	if runner == nil {
		return nil, fmt.Errorf("%w: batch runner", service.ErrNilDependency)
	}
	if logger == nil {
		logger = slog.Default()
	}

	h := &ChartHandler{
		readingService: readingService,
		runner:         runner,
		now:            time.Now,
		logger:         logger.With(slog.String("component", "chart_handler")),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// CreateChart handles POST /api/charts requests
func (h *ChartHandler) CreateChart(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req ChartRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	in, err := req.ToBirthInput()
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	report, err := h.readingService.Compute(r.Context(), in, h.now())
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	log.Debug("chart served", slog.String("birth", in.Key()))
	shared.RespondWithJSON(w, r, http.StatusOK, report)
}

// CreateBatch handles POST /api/charts/batch requests
func (h *ChartHandler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if len(req.Charts) > h.runner.MaxItems() {
		h.respondWithError(w, r, fmt.Errorf("%w: %d charts", batch.ErrTooManyItems, len(req.Charts)))
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	// Items that fail to parse are reported in place; the rest go to the runner.
	items := make([]BatchItem, len(req.Charts))
	inputs := make([]domain.BirthInput, 0, len(req.Charts))
	positions := make([]int, 0, len(req.Charts))
	for i, c := range req.Charts {
		items[i] = BatchItem{ID: uuid.NewString(), Index: i}
		in, err := c.ToBirthInput()
		if err != nil {
			items[i].Error = GetSafeErrorMessage(err)
			continue
		}
		inputs = append(inputs, in)
		positions = append(positions, i)
	}

	if len(inputs) > 0 {
		results, err := h.runner.Run(r.Context(), inputs, h.now())
		if err != nil {
			h.respondWithError(w, r, err)
			return
		}
		for _, res := range results {
			item := &items[positions[res.Index]]
			item.ID = res.ID.String()
			if res.Err != nil {
				item.Error = GetSafeErrorMessage(res.Err)
				continue
			}
			item.Report = res.Report
		}
	}

	resp := BatchResponse{Items: items}
	for _, item := range items {
		if item.Error != "" {
			resp.Failed++
		}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

func (h *ChartHandler) respondWithError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
