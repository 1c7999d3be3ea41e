package httpapi

import (
	"tumorvision/internal/content"
	"tumorvision/internal/domain/entity"
)

type DiagnosisResponse struct {
	Accepted bool               `json:"accepted"`
	Label    string             `json:"label,omitempty"`
	Scores   map[string]float32 `json:"scores,omitempty"`
	Reason   string             `json:"reason,omitempty"`
	Message  string             `json:"message,omitempty"`
}

func newDiagnosisResponse(d entity.Diagnosis) DiagnosisResponse {
	if !d.Accepted {
		return DiagnosisResponse{Accepted: false, Reason: d.Rejection, Message: content.NotMRI}
	}
	scores := make(map[string]float32, len(d.Scores))
	for i, s := range d.Scores {
		scores[entity.Label(i).String()] = s
	}
	return DiagnosisResponse{Accepted: true, Label: d.Label.String(), Scores: scores}
}

type LabelResponse struct {
	Index       int    `json:"index"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type ChatResponse struct {
	SessionID string             `json:"session_id"`
	Reply     entity.ChatMessage `json:"reply"`
}

type HistoryResponse struct {
	SessionID string               `json:"session_id"`
	Messages  []entity.ChatMessage `json:"messages"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
