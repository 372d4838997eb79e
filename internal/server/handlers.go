package server

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jonathan/talk-coach/internal/pipeline"
	"github.com/jonathan/talk-coach/internal/questions"
	"github.com/jonathan/talk-coach/internal/types"
)

// QuestionsResponse is the response for GET /api/questions
type QuestionsResponse struct {
	Questions []string `json:"questions"`
}

// decodeAnalyzeRequest reads, validates and converts an analyze request body.
// The audio payload is decoded in memory only so its header can be read.
func (s *Server) decodeAnalyzeRequest(w http.ResponseWriter, r *http.Request) (pipeline.Input, error) {
	if s.cfg.MaxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	}

	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return pipeline.Input{}, &ErrPayloadTooLarge{What: "request body", Limit: maxBytesErr.Limit}
		}
		if errors.Is(err, io.EOF) {
			return pipeline.Input{}, &ErrValidation{Field: "body", Message: "request body is empty"}
		}
		return pipeline.Input{}, &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}

	return s.toInput(req)
}

// toInput validates req and converts it to a pipeline input with a fresh session id.
func (s *Server) toInput(req types.AnalyzeRequest) (pipeline.Input, error) {
	if err := req.Validate(); err != nil {
		return pipeline.Input{}, validationError(err)
	}
	if limit := s.cfg.MaxTranscriptBytes; limit > 0 && int64(len(req.Transcript)) > limit {
		return pipeline.Input{}, &ErrPayloadTooLarge{What: "transcript", Limit: limit}
	}

	var audio []byte
	if req.AudioData != "" {
		decoded, err := base64.StdEncoding.DecodeString(req.AudioData)
		if err != nil {
			return pipeline.Input{}, &ErrValidation{Field: "audioData", Message: "invalid base64"}
		}
		audio = decoded
	}

	return pipeline.Input{
		Transcript:      req.Transcript,
		DurationSeconds: req.DurationSeconds,
		Audio:           audio,
		Question:        req.Question,
		SessionID:       uuid.NewString(),
	}, nil
}

// handleAnalyze assesses one transcript and returns the full report
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	in, err := s.decodeAnalyzeRequest(w, r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.logger.WithFields(logFields(in)).Debug("analysis requested")
	report, err := s.assessor.Assess(in)
	if err != nil {
		s.logger.WithError(err).WithField("session_id", in.SessionID).Error("analysis failed")
		s.errorResponse(w, HTTPStatus(err), "Analysis failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// handleAnalyzeStream assesses one transcript and streams pipeline progress via SSE
func (s *Server) handleAnalyzeStream(w http.ResponseWriter, r *http.Request) {
	in, err := s.decodeAnalyzeRequest(w, r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	log := s.logger.WithFields(logFields(in))
	assessor := *s.assessor
	assessor.OnProgress = func(event pipeline.ProgressEvent) {
		if err := sse.WriteProgress(event); err != nil {
			log.WithError(err).Warn("writing SSE event")
		}
	}

	report, err := assessor.Assess(in)
	if err != nil {
		log.WithError(err).Error("analysis failed")
		if err := sse.WriteError("Analysis failed"); err != nil {
			log.WithError(err).Warn("writing SSE event")
		}
		return
	}
	if err := sse.WriteComplete(report); err != nil {
		log.WithError(err).Warn("writing SSE event")
	}
}

// handleQuestions returns the question bank
func (s *Server) handleQuestions(w http.ResponseWriter, _ *http.Request) {
	texts, err := questions.Texts()
	if err != nil {
		s.logger.WithError(err).Error("loading questions")
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load questions")
		return
	}
	s.jsonResponse(w, http.StatusOK, QuestionsResponse{Questions: texts})
}

// handleRandomQuestion returns one question picked at random
func (s *Server) handleRandomQuestion(w http.ResponseWriter, _ *http.Request) {
	q, err := questions.Random(nil)
	if err != nil {
		s.logger.WithError(err).Error("picking question")
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load questions")
		return
	}
	s.jsonResponse(w, http.StatusOK, q)
}

func logFields(in pipeline.Input) logrus.Fields {
	return logrus.Fields{
		"session_id":        in.SessionID,
		"transcript_length": len(in.Transcript),
		"audio_bytes":       len(in.Audio),
		"duration_hint":     in.DurationSeconds,
		"question_length":   len(in.Question),
	}
}
