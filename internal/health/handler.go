package health

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/qdm12/dynners/internal/models"
)

type handlers struct {
	runner Runner
	logger Logger
	// Mockable functions
	timeNow func() time.Time
}

func newHandler(runner Runner, logger Logger) http.Handler {
	handlers := &handlers{
		runner:  runner,
		logger:  logger,
		timeNow: time.Now,
	}

	router := chi.NewRouter()
	router.Use(middleware.CleanPath)

	router.Get("/", handlers.health)
	router.Get("/api/v1/status", handlers.statuses)
	router.Get("/update", handlers.update)

	return router
}

// health responds with 200 if the last update cycle succeeded and
// no DDNS service is in a failed state, and with 500 otherwise.
func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	err := h.runner.Healthy()
	if err != nil {
		h.logger.Warn("unhealthy: " + err.Error())
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *handlers) statuses(w http.ResponseWriter, r *http.Request) {
	accept := r.Header.Get("Accept")
	switch accept {
	case "", "*/*", "application/json":
	default:
		httpError(w, http.StatusBadRequest, `content type "`+accept+`" is not supported`)
		return
	}

	statuses := h.runner.Statuses()
	if statuses == nil {
		statuses = []models.ServiceStatus{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	err := json.NewEncoder(w).Encode(statuses)
	if err != nil {
		h.logger.Error("encoding statuses: " + err.Error())
	}
}

func (h *handlers) update(w http.ResponseWriter, r *http.Request) {
	start := h.timeNow()
	errs := h.runner.ForceUpdate(r.Context())
	duration := h.timeNow().Sub(start)
	if len(errs) > 0 {
		messages := make([]string, len(errs))
		for i, err := range errs {
			messages[i] = err.Error()
		}
		httpError(w, http.StatusInternalServerError, strings.Join(messages, "; "))
		return
	}
	w.WriteHeader(http.StatusAccepted)
	message := "All DDNS services updated successfully in " + duration.String()
	_, _ = w.Write([]byte(message))
}
