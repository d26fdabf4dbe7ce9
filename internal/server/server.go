// Package server exposes the mortgage calculator over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/iwvelando/mortgage-calculator/pkg/mathutil"
	"github.com/iwvelando/mortgage-calculator/pkg/mortgage"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

type handler struct {
	logger     *zap.Logger
	calculator *mortgage.Calculator
	validate   *validator.Validate
	version    string
}

// calculateRequest is the JSON body accepted by POST /api/calculate.
// Pointers distinguish a missing field from an explicit zero.
type calculateRequest struct {
	PropertyPrice      *float64 `json:"propertyPrice" validate:"required"`
	DownPayment        *float64 `json:"downPayment" validate:"required"`
	InterestRate       *float64 `json:"interestRate" validate:"required"`
	AmortizationPeriod *int     `json:"amortizationPeriod" validate:"required"`
	PaySchedule        string   `json:"paySchedule" validate:"required"`
}

// NewHandler constructs the HTTP handler that serves the calculator API.
func NewHandler(logger *zap.Logger, cfg *Config, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	h := &handler{
		logger:     logger,
		calculator: mortgage.NewCalculator(logger),
		validate:   validate,
		version:    trimmedVersion,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/calculate/{price}/{downPayment}/{rate}/{amortPeriod}/{paySchedule}", h.handleCalculatePath)
	mux.HandleFunc("POST /api/calculate", h.handleCalculateBody)
	mux.HandleFunc("GET /api/schedules", h.handleSchedules)
	mux.HandleFunc("GET /api/version", h.handleVersion)
	mux.HandleFunc("GET /health", h.handleHealth)

	mws := []middleware{requestID, accessLog(logger), cors(cfg.CORS.AllowedOrigins)}
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter := NewRateLimiter(logger, cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.RateLimit.TTL)
		mws = append(mws, rateLimit(h, limiter))
	}

	return chain(mux, mws...)
}

func (h *handler) handleCalculatePath(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCalculatePath"

	price, ok := parseNumber(r.PathValue("price"))
	if !ok {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, "Purchase price is invalid.", op)
		return
	}
	downPayment, ok := parseNumber(r.PathValue("downPayment"))
	if !ok {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, "Down payment is invalid.", op)
		return
	}
	rate, ok := parseNumber(r.PathValue("rate"))
	if !ok {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, "Interest rate is invalid.", op)
		return
	}
	period, err := strconv.Atoi(strings.TrimSpace(r.PathValue("amortPeriod")))
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, "Amortization period is invalid.", op)
		return
	}

	h.calculate(w, r, mortgage.Request{
		PropertyPrice:           price,
		DownPayment:             downPayment,
		InterestRatePercent:     rate,
		AmortizationPeriodYears: period,
		PaySchedule:             r.PathValue("paySchedule"),
	}, op)
}

func (h *handler) handleCalculateBody(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCalculateBody"

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var body calculateRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&body); err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("Request body is invalid: %v", err), op)
		return
	}

	if err := h.validate.Struct(body); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			fields := lo.Map(fieldErrs, func(fe validator.FieldError, _ int) string { return fe.Field() })
			h.respondErrorWithOp(w, r, http.StatusBadRequest,
				fmt.Sprintf("Missing required fields: %s.", strings.Join(fields, ", ")), op)
			return
		}
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("Request body is invalid: %v", err), op)
		return
	}

	h.calculate(w, r, mortgage.Request{
		PropertyPrice:           *body.PropertyPrice,
		DownPayment:             *body.DownPayment,
		InterestRatePercent:     *body.InterestRate,
		AmortizationPeriodYears: *body.AmortizationPeriod,
		PaySchedule:             body.PaySchedule,
	}, op)
}

func (h *handler) calculate(w http.ResponseWriter, r *http.Request, req mortgage.Request, op string) {
	payment, err := h.calculator.Calculate(req)
	if err != nil {
		status := http.StatusInternalServerError
		var verr *mortgage.ValidationError
		if errors.As(err, &verr) && verr.IsInputError() {
			status = http.StatusBadRequest
		}
		h.respondErrorWithOp(w, r, status, err.Error(), op)
		return
	}

	h.writeJSON(w, http.StatusOK, payment)
}

func (h *handler) handleSchedules(w http.ResponseWriter, _ *http.Request) {
	labels := lo.Map(mortgage.Schedules(), func(s mortgage.PaySchedule, _ int) string { return s.String() })
	h.writeJSON(w, http.StatusOK, labels)
}

func (h *handler) handleVersion(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// parseNumber accepts any finite decimal number.
func parseNumber(value string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || !mathutil.IsFinite(v) {
		return 0, false
	}
	return v, true
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, r *http.Request, status int, msg string, op string) {
	fields := []zap.Field{
		zap.String("op", op),
		zap.String("request_id", RequestIDFromContext(r.Context())),
		zap.Int("status", status),
		zap.String("error", msg),
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("calculation request failed", fields...)
	} else {
		h.logger.Warn("calculation request rejected", fields...)
	}

	h.writeJSON(w, status, msg)
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}
