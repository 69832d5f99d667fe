package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/patrickwarner/northpole/internal/middleware"
	"github.com/patrickwarner/northpole/internal/milk"

	"go.uber.org/zap"
)

// maxConversionBody bounds the conversion payload read from the request.
const maxConversionBody = 1 << 16

// MilkHandler handles POST /9/milk.
//
// One unit is withdrawn before the body is looked at. Requests declaring
// Content-Type application/json get the converted quantity back; any other
// request only gets an acknowledgement.
func (s *Server) MilkHandler(w http.ResponseWriter, r *http.Request) {
	logger := middleware.LoggerFromRequest(r, s.Logger)

	ok, level := s.State.WithdrawMilk()
	if !ok {
		s.Metrics.IncrementMilkWithdrawals("empty")
		logger.Debug("bucket is empty")
		writeText(w, http.StatusTooManyRequests, "No milk available\n")
		return
	}
	s.Metrics.IncrementMilkWithdrawals("served")
	s.notifyUpdate(r.Context(), "milk", "withdraw", strconv.Itoa(level))

	if r.Header.Get("Content-Type") != "application/json" {
		writeText(w, http.StatusOK, "Milk withdrawn\n")
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxConversionBody))
	if err != nil {
		logger.Debug("read conversion body", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	conv, err := milk.ParseConversion(body)
	if err != nil {
		logger.Debug("parse conversion", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	res, err := conv.Convert()
	if err != nil {
		logger.Debug("convert", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		logger.Error("encode conversion", zap.Error(err))
	}
}

// RefillHandler handles POST /9/refill by filling the bucket.
func (s *Server) RefillHandler(w http.ResponseWriter, r *http.Request) {
	level := s.State.ForceRefillMilk()
	s.Metrics.IncrementMilkRefills("forced")
	s.notifyUpdate(r.Context(), "milk", "refill", strconv.Itoa(level))
	w.WriteHeader(http.StatusOK)
}
