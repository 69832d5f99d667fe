package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/patrickwarner/northpole/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Routes registers every endpoint on a new router.
func (s *Server) Routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.WithTraceLogger(s.Logger))
	r.Use(middleware.WithRequestMetrics(s.Metrics))

	r.HandleFunc("/", s.HelloHandler).Methods(http.MethodGet)
	r.HandleFunc("/-1/seek", s.SeekHandler).Methods(http.MethodGet)

	r.HandleFunc("/9/milk", s.MilkHandler).Methods(http.MethodPost)
	r.HandleFunc("/9/refill", s.RefillHandler).Methods(http.MethodPost)

	r.HandleFunc("/12/board", s.BoardHandler).Methods(http.MethodGet)
	r.HandleFunc("/12/reset", s.ResetHandler).Methods(http.MethodPost)
	r.HandleFunc("/12/place/{team}/{column}", s.PlaceHandler).Methods(http.MethodPost)
	r.HandleFunc("/12/random-board", s.RandomBoardHandler).Methods(http.MethodGet)

	r.HandleFunc("/16/wrap", s.WrapHandler).Methods(http.MethodPost)
	r.HandleFunc("/16/unwrap", s.UnwrapHandler).Methods(http.MethodGet)

	r.HandleFunc("/health", s.HealthHandler).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r
}
