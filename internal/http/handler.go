package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/josinaldojr/docchat/internal/rag"
)

type Handler struct {
	ragService *rag.Service
	log        *zap.Logger
}

func NewHandler(ragService *rag.Service, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{ragService: ragService, log: log}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) LoadDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.ragService.LoadDocuments(r.Context())
	if err != nil {
		h.log.Error("load documents failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "unable to read documents directory")
		return
	}

	writeJSON(w, http.StatusOK, docs)
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req rag.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	resp, err := h.ragService.Chat(r.Context(), req)
	if err != nil {
		var relayErr *rag.RelayError
		if errors.As(err, &relayErr) {
			writeError(w, relayErr.Status, relayErr.Message)
			return
		}
		h.log.Error("chat failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, rag.ErrorResponse{Error: msg})
}
