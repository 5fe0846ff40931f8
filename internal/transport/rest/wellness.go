package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/moodmate-backend/internal/domain"
	"github.com/heartmarshall/moodmate-backend/internal/service/responder"
	"github.com/heartmarshall/moodmate-backend/internal/service/wellness"
)

// wellnessService defines the operations needed by WellnessHandler.
type wellnessService interface {
	LogMood(ctx context.Context, input wellness.LogMoodInput) (wellness.LogMoodResult, error)
	GetMoodHistory(ctx context.Context) (domain.MoodHistory, error)
	ListExercises() []domain.Exercise
	ListSupportResources() []domain.SupportResource
	CompleteExercise(ctx context.Context, key string) (domain.ExerciseCompletion, error)
	SendChatMessage(ctx context.Context, text string) (responder.ChatReply, error)
	OpenCheckin(ctx context.Context) (domain.Checkin, error)
	SendMoodCheckinResponse(ctx context.Context, text string) (domain.Checkin, error)
	CloseCheckin() domain.Checkin
	CheckinStatus() domain.Checkin
	GetDashboard(ctx context.Context) (domain.Dashboard, error)
	SetUserName(ctx context.Context, input wellness.SetUserNameInput) (string, error)
}

// WellnessHandler serves the /api/v1 endpoints.
type WellnessHandler struct {
	svc wellnessService
	log *slog.Logger
}

// NewWellnessHandler creates a WellnessHandler.
func NewWellnessHandler(svc wellnessService, logger *slog.Logger) *WellnessHandler {
	return &WellnessHandler{svc: svc, log: logger.With("handler", "wellness")}
}

// Register mounts the API routes on mux.
func (h *WellnessHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/dashboard", h.Dashboard)
	mux.HandleFunc("GET /api/v1/moods", h.MoodHistory)
	mux.HandleFunc("POST /api/v1/moods", h.LogMood)
	mux.HandleFunc("GET /api/v1/exercises", h.Exercises)
	mux.HandleFunc("POST /api/v1/exercises/{key}/complete", h.CompleteExercise)
	mux.HandleFunc("GET /api/v1/resources", h.Resources)
	mux.HandleFunc("POST /api/v1/chat", h.Chat)
	mux.HandleFunc("GET /api/v1/checkin", h.CheckinStatus)
	mux.HandleFunc("POST /api/v1/checkin", h.OpenCheckin)
	mux.HandleFunc("POST /api/v1/checkin/reply", h.CheckinReply)
	mux.HandleFunc("DELETE /api/v1/checkin", h.CloseCheckin)
	mux.HandleFunc("PUT /api/v1/profile/name", h.SetName)
}

type logMoodRequest struct {
	Type  string `json:"type"`
	Emoji string `json:"emoji"`
}

type textRequest struct {
	Text string `json:"text"`
}

type nameRequest struct {
	Name string `json:"name"`
}

type exerciseResponse struct {
	Key             string `json:"key"`
	Title           string `json:"title"`
	Instructions    string `json:"instructions"`
	DurationSeconds int    `json:"durationSeconds,omitempty"`
}

// Dashboard handles GET /api/v1/dashboard.
func (h *WellnessHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.GetDashboard(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// MoodHistory handles GET /api/v1/moods.
func (h *WellnessHandler) MoodHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.svc.GetMoodHistory(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}

// LogMood handles POST /api/v1/moods.
func (h *WellnessHandler) LogMood(w http.ResponseWriter, r *http.Request) {
	var req logMoodRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.svc.LogMood(r.Context(), wellness.LogMoodInput{
		Type:  domain.MoodType(req.Type),
		Emoji: req.Emoji,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

// Exercises handles GET /api/v1/exercises.
func (h *WellnessHandler) Exercises(w http.ResponseWriter, r *http.Request) {
	list := h.svc.ListExercises()

	out := make([]exerciseResponse, 0, len(list))
	for _, e := range list {
		out = append(out, exerciseResponse{
			Key:             e.Key,
			Title:           e.Title,
			Instructions:    e.Instructions,
			DurationSeconds: int(e.Duration.Seconds()),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// Resources handles GET /api/v1/resources.
func (h *WellnessHandler) Resources(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ListSupportResources())
}

// CompleteExercise handles POST /api/v1/exercises/{key}/complete.
func (h *WellnessHandler) CompleteExercise(w http.ResponseWriter, r *http.Request) {
	completion, err := h.svc.CompleteExercise(r.Context(), r.PathValue("key"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, completion)
}

// Chat handles POST /api/v1/chat. The response arrives after the thinking delay.
func (h *WellnessHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reply, err := h.svc.SendChatMessage(r.Context(), req.Text)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

// CheckinStatus handles GET /api/v1/checkin.
func (h *WellnessHandler) CheckinStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.CheckinStatus())
}

// OpenCheckin handles POST /api/v1/checkin.
func (h *WellnessHandler) OpenCheckin(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.OpenCheckin(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// CheckinReply handles POST /api/v1/checkin/reply.
func (h *WellnessHandler) CheckinReply(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.svc.SendMoodCheckinResponse(r.Context(), req.Text)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// CloseCheckin handles DELETE /api/v1/checkin.
func (h *WellnessHandler) CloseCheckin(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.CloseCheckin())
}

// SetName handles PUT /api/v1/profile/name.
func (h *WellnessHandler) SetName(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	name, err := h.svc.SetUserName(r.Context(), wellness.SetUserNameInput{Name: req.Name})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nameRequest{Name: name})
}

func (h *WellnessHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		resp := errorResponse{Error: "validation failed"}
		for _, fe := range verr.Errors {
			resp.Fields = append(resp.Fields, fieldResponse{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.log.DebugContext(r.Context(), "request abandoned", slog.String("error", err.Error()))
		writeError(w, http.StatusServiceUnavailable, "request canceled")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
