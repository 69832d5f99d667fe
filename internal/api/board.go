package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/patrickwarner/northpole/internal/board"
	"github.com/patrickwarner/northpole/internal/middleware"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// BoardHandler handles GET /12/board.
func (s *Server) BoardHandler(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, s.State.Board().Render())
}

// ResetHandler handles POST /12/reset. The board is emptied and the random
// source starts over from its seed.
func (s *Server) ResetHandler(w http.ResponseWriter, r *http.Request) {
	b := s.State.ResetBoard()
	s.Metrics.IncrementBoardResets()
	s.notifyUpdate(r.Context(), "board", "reset", b.String())
	writeText(w, http.StatusOK, b.String())
}

// PlaceHandler handles POST /12/place/{team}/{column}.
//
// A full column or a finished game answers 503 with the current board; an
// unknown team or column answers 400 with an empty body.
func (s *Server) PlaceHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "board.place")
	defer span.End()
	logger := middleware.LoggerFromContext(ctx, s.Logger)

	vars := mux.Vars(r)
	team := vars["team"]
	span.SetAttributes(attribute.String("board.team", team), attribute.String("board.column", vars["column"]))

	column, err := strconv.Atoi(vars["column"])
	if err != nil {
		s.Metrics.IncrementBoardMoves("invalid")
		span.SetStatus(codes.Error, "invalid column")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	b, outcome, err := s.State.PlaceItem(team, column)
	switch {
	case err == nil:
		s.Metrics.IncrementBoardMoves("placed")
		s.notifyUpdate(ctx, "board", "place", b.String())
		writeText(w, http.StatusOK, b.String()+outcome)
	case errors.Is(err, board.ErrColumnIsFull):
		s.Metrics.IncrementBoardMoves("column_full")
		writeText(w, http.StatusServiceUnavailable, b.String())
	case errors.Is(err, board.ErrGameIsOver):
		s.Metrics.IncrementBoardMoves("game_over")
		writeText(w, http.StatusServiceUnavailable, b.Render())
	default:
		s.Metrics.IncrementBoardMoves("invalid")
		span.SetStatus(codes.Error, err.Error())
		logger.Debug("rejected placement", zap.String("team", team), zap.Int("column", column), zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
	}
}

// RandomBoardHandler handles GET /12/random-board. The board served is drawn
// from the shared random source and never stored.
func (s *Server) RandomBoardHandler(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, s.State.RandomBoard().Render())
}
