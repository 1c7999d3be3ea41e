package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"tumorvision/internal/container"
	"tumorvision/internal/content"
	"tumorvision/internal/domain/entity"
)

// Handler serves the web API over the application container.
type Handler struct {
	app       *container.Container
	logger    *slog.Logger
	maxUpload int64
}

func NewHandler(app *container.Container, maxUpload int64, logger *slog.Logger) *Handler {
	return &Handler{app: app, logger: logger, maxUpload: maxUpload}
}

// NewRouter returns a router with all routes and CORS enabled.
func (h *Handler) NewRouter() *mux.Router {
	router := mux.NewRouter()
	router.Use(enableCORS)
	h.RegisterRoutes(router)
	return router
}

// RegisterRoutes registers the API routes on router. Every path accepts
// OPTIONS so the CORS middleware can answer preflight requests.
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/health", h.Health).Methods(http.MethodGet, http.MethodOptions)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/diagnose", h.Diagnose).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/labels", h.ListLabels).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/labels/{label}", h.GetLabel).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/chat", h.Chat).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/chat/{session}", h.ChatHistory).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/chat/{session}", h.ResetChat).Methods(http.MethodDelete)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Health reports liveness.
// GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// Diagnose runs the gate and the classifier on an uploaded image.
// POST /api/diagnose (multipart field "image")
func (h *Handler) Diagnose(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload+1<<20)
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, "Upload is too large")
			return
		}
		respondError(w, http.StatusBadRequest, "Failed to parse form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondError(w, http.StatusBadRequest, "No image file provided. Use 'image' as the form field name")
		return
	}
	defer file.Close()

	if header.Size > h.maxUpload {
		respondError(w, http.StatusRequestEntityTooLarge, "Upload is too large")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to read upload")
		return
	}

	diagnosis, err := h.app.DiagnosisService.Diagnose(r.Context(), data)
	switch {
	case errors.Is(err, entity.ErrDecode):
		h.logger.Info("undecodable upload", "file", header.Filename, "error", err)
		respondError(w, http.StatusBadRequest, "Invalid image format. Supported: JPEG, PNG")
		return
	case err != nil:
		h.logger.Error("diagnosis failed", "file", header.Filename, "error", err)
		respondError(w, http.StatusInternalServerError, content.Failure)
		return
	}

	respondJSON(w, http.StatusOK, newDiagnosisResponse(diagnosis))
}

// ListLabels returns the labels in model output order.
// GET /api/labels
func (h *Handler) ListLabels(w http.ResponseWriter, r *http.Request) {
	labels := make([]LabelResponse, 0, entity.NumLabels)
	for _, l := range entity.Labels() {
		labels = append(labels, LabelResponse{Index: int(l), Slug: l.Slug(), Name: l.String()})
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"labels": labels})
}

// GetLabel returns a label with its description.
// GET /api/labels/{label}
func (h *Handler) GetLabel(w http.ResponseWriter, r *http.Request) {
	l, err := entity.ParseLabel(mux.Vars(r)["label"])
	if err != nil {
		respondError(w, http.StatusNotFound, "Unknown label")
		return
	}
	desc, err := content.Description(l)
	if err != nil {
		respondError(w, http.StatusNotFound, "Unknown label")
		return
	}
	respondJSON(w, http.StatusOK, LabelResponse{Index: int(l), Slug: l.Slug(), Name: l.String(), Description: desc})
}

// Chat answers a chatbot message. A new session is created when session_id is empty.
// POST /api/chat
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, 64<<10)).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}

	reply, err := h.app.ChatService.Send(r.Context(), req.SessionID, req.Message)
	if err != nil {
		if errors.Is(err, entity.ErrEmptyMessage) {
			respondError(w, http.StatusBadRequest, "Message must not be empty")
			return
		}
		h.logger.Error("chat failed", "session_id", req.SessionID, "error", err)
		respondError(w, http.StatusInternalServerError, "Chat failed")
		return
	}

	respondJSON(w, http.StatusOK, ChatResponse{SessionID: req.SessionID, Reply: reply})
}

// ChatHistory returns the session conversation.
// GET /api/chat/{session}
func (h *Handler) ChatHistory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["session"]
	history, err := h.app.ChatService.History(r.Context(), id)
	if err != nil {
		h.logger.Error("chat history failed", "session_id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load history")
		return
	}
	respondJSON(w, http.StatusOK, HistoryResponse{SessionID: id, Messages: history})
}

// ResetChat clears the session conversation.
// DELETE /api/chat/{session}
func (h *Handler) ResetChat(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["session"]
	if err := h.app.ChatService.Reset(r.Context(), id); err != nil {
		h.logger.Error("chat reset failed", "session_id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to reset history")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}
