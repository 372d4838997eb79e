package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/jonathan/talk-coach/internal/pipeline"
	"github.com/jonathan/talk-coach/internal/server/ratelimit"
	"github.com/jonathan/talk-coach/internal/types"
)

// WebSocket events received from the client
const (
	EventStartRecording = "startRecording"
	EventStopRecording  = "stopRecording"
	EventAnalyze        = "analyze"
	eventAnalyzing      = "analyzing" // older clients announce analysis without a payload
)

// WebSocket events sent to the client
const (
	EventRecordingStarted = "recordingStarted"
	EventRecordingStopped = "recordingStopped"
	EventAnalysisStarted  = "analysisStarted"
	EventAnalysisProgress = "analysisProgress"
	EventAnalysisComplete = "analysisComplete"
	EventError            = "error"
)

const (
	wsWriteTimeout     = 10 * time.Second
	wsDefaultReadLimit = 1 << 20
)

// WSMessage is the envelope of every WebSocket message in both directions
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// wsSession holds the state of one WebSocket connection. Messages are handled in
// order on the connection's read goroutine, so writes never race.
type wsSession struct {
	s        *Server
	conn     *websocket.Conn
	clientID string
	log      logrus.FieldLogger
}

// handleWebSocket upgrades the connection and serves recording and analysis events
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error
		s.logger.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	readLimit := s.cfg.MaxBodyBytes
	if readLimit <= 0 {
		readLimit = wsDefaultReadLimit
	}
	conn.SetReadLimit(readLimit)

	sess := &wsSession{
		s:        s,
		conn:     conn,
		clientID: extractClientID(r),
		log:      s.logger.WithField("remote", conn.RemoteAddr().String()),
	}
	sess.log.Info("websocket connected")
	defer sess.log.Info("websocket disconnected")

	for {
		var msg WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				sess.log.WithError(err).Warn("websocket read failed")
			}
			var syntaxErr *json.SyntaxError
			if errors.As(err, &syntaxErr) {
				if err := sess.sendError("invalid message: " + err.Error()); err != nil {
					return
				}
				continue
			}
			return
		}
		if err := sess.handle(msg); err != nil {
			sess.log.WithError(err).Warn("websocket write failed")
			return
		}
	}
}

func (ws *wsSession) handle(msg WSMessage) error {
	switch msg.Event {
	case EventStartRecording:
		return ws.send(EventRecordingStarted, nil)
	case EventStopRecording:
		return ws.send(EventRecordingStopped, nil)
	case eventAnalyzing:
		return ws.send(EventAnalysisStarted, nil)
	case EventAnalyze:
		return ws.analyze(msg.Data)
	default:
		return ws.sendError("unknown event: " + msg.Event)
	}
}

func (ws *wsSession) analyze(data json.RawMessage) error {
	var req types.AnalyzeRequest
	if len(data) > 0 {
		if err := json.Unmarshal(data, &req); err != nil {
			return ws.sendError("invalid analyze payload: " + err.Error())
		}
	}

	in, err := ws.s.toInput(req)
	if err != nil {
		return ws.sendError(err.Error())
	}

	// each analysis on an open connection counts against the client's analyze limit
	if allowed, info := ws.s.rateLimiter.Allow(ws.clientID, "/ws", ratelimit.MethodAnalyze); !allowed {
		ws.log.WithField("limit", info.Limit).Warn("rate limit exceeded")
		return ws.send(EventError, map[string]any{
			"error":       "rate_limit_exceeded",
			"retry_after": retryAfterSeconds(info),
		})
	}
	if err := ws.send(EventAnalysisStarted, map[string]string{"sessionId": in.SessionID}); err != nil {
		return err
	}

	var writeErr error
	assessor := *ws.s.assessor
	assessor.OnProgress = func(event pipeline.ProgressEvent) {
		if writeErr == nil {
			event.Content = nil
			writeErr = ws.send(EventAnalysisProgress, event)
		}
	}

	report, err := assessor.Assess(in)
	if writeErr != nil {
		return writeErr
	}
	if err != nil {
		ws.log.WithError(err).WithField("session_id", in.SessionID).Error("analysis failed")
		return ws.sendError("Analysis failed")
	}
	return ws.send(EventAnalysisComplete, report)
}

func (ws *wsSession) send(event string, data any) error {
	msg := WSMessage{Event: event}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return err
		}
		msg.Data = raw
	}
	if err := ws.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout)); err != nil {
		return err
	}
	return ws.conn.WriteJSON(msg)
}

func (ws *wsSession) sendError(message string) error {
	return ws.send(EventError, map[string]string{"error": message})
}
