package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/patrickwarner/northpole/internal/gift"
	"github.com/patrickwarner/northpole/internal/middleware"

	"go.uber.org/zap"
)

// maxGiftBody bounds the JSON document that can be wrapped.
const maxGiftBody = 1 << 20

// WrapHandler handles POST /16/wrap. Any JSON body is signed into the gift
// cookie.
func (s *Server) WrapHandler(w http.ResponseWriter, r *http.Request) {
	logger := middleware.LoggerFromRequest(r, s.Logger)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxGiftBody))
	if err != nil || !json.Valid(body) {
		s.Metrics.IncrementGifts("wrap", "invalid")
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	tok, err := gift.Wrap(body, s.State.Secret(), s.now(), s.GiftTTL)
	if err != nil {
		s.Metrics.IncrementGifts("wrap", "error")
		logger.Error("wrap gift", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	s.Metrics.IncrementGifts("wrap", "ok")
	http.SetCookie(w, &http.Cookie{Name: gift.CookieName, Value: tok})
	w.WriteHeader(http.StatusOK)
}

// UnwrapHandler handles GET /16/unwrap and echoes the JSON stored in the gift
// cookie.
func (s *Server) UnwrapHandler(w http.ResponseWriter, r *http.Request) {
	logger := middleware.LoggerFromRequest(r, s.Logger)

	c, err := r.Cookie(gift.CookieName)
	if err != nil {
		s.Metrics.IncrementGifts("unwrap", "missing")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	payload, err := gift.Unwrap(c.Value, s.State.Secret(), s.now())
	if err != nil {
		outcome := "invalid"
		if errors.Is(err, gift.ErrExpired) {
			outcome = "expired"
		}
		s.Metrics.IncrementGifts("unwrap", outcome)
		logger.Debug("unwrap gift", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	s.Metrics.IncrementGifts("unwrap", "ok")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}
