package voicelog

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"

	"github.com/fitcircle/backend/internal/middleware"
	"github.com/fitcircle/backend/internal/telemetry/metrics"
	"github.com/fitcircle/backend/internal/telemetry/tracing"
	"github.com/fitcircle/backend/pkg"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
	parseAllowedPerMin int,
) {
	voicelogRouter := mainRouter.PathPrefix("/voicelog").Subrouter()
	voicelogRouter.HandleFunc("/workout", handler.handleParseWorkout).Methods("POST", "OPTIONS").Name("parse-workout")
	voicelogRouter.HandleFunc("/feeling", handler.handleParseFeeling).Methods("POST", "OPTIONS").Name("parse-feeling")
	voicelogRouter.HandleFunc("/exercises", handler.handleListExercises).Methods("GET", "OPTIONS").Name("list-exercises")

	// parsing runs on every finished voice note, keep the endpoints rate limited
	voicelogRouter.Use(middleware.RateLimit(rateLimiter, "voicelog", parseAllowedPerMin, metricsManager))
}

type parseRequest struct {
	Text string `json:"text"`
}

func (handler *Handler) handleParseWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.voicelog.parseWorkout")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("parse workout, unmarshal json params: %s", err)
		http.Error(w, "parse workout failed", http.StatusBadRequest)
		return
	}

	parsed, err := handler.service.ParseWorkout(ctx, req.Text)
	if err != nil {
		if errors.Is(err, ErrEmptyTranscript) {
			http.Error(w, "error, text empty", http.StatusBadRequest)
			return
		}
		span.SetStatus(codes.Error, err.Error())
		log.Errorf("parse workout: %s", err)
		http.Error(w, "parse workout failed", http.StatusInternalServerError)
		return
	}

	parsedJson, err := json.Marshal(parsed)
	if err != nil {
		log.Errorf("marshal parsed workout: %s", err)
		http.Error(w, "failed to marshal parsed workout", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, parsedJson, http.StatusOK)
}

func (handler *Handler) handleParseFeeling(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.voicelog.parseFeeling")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("parse feeling, unmarshal json params: %s", err)
		http.Error(w, "parse feeling failed", http.StatusBadRequest)
		return
	}

	parsed, err := handler.service.ParseFeeling(ctx, req.Text)
	if err != nil {
		if errors.Is(err, ErrEmptyTranscript) {
			http.Error(w, "error, text empty", http.StatusBadRequest)
			return
		}
		span.SetStatus(codes.Error, err.Error())
		log.Errorf("parse feeling: %s", err)
		http.Error(w, "parse feeling failed", http.StatusInternalServerError)
		return
	}

	parsedJson, err := json.Marshal(parsed)
	if err != nil {
		log.Errorf("marshal parsed feeling: %s", err)
		http.Error(w, "failed to marshal parsed feeling", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, parsedJson, http.StatusOK)
}

func (handler *Handler) handleListExercises(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.voicelog.listExercises")
	defer span.End()

	exercisesJson, err := json.Marshal(handler.service.KnownExercises())
	if err != nil {
		log.Errorf("marshal known exercises: %s", err)
		http.Error(w, "failed to marshal known exercises", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, exercisesJson, http.StatusOK)
}
