package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/alexiusacademia/rcalc/internal/element"
)

// WsMessage is one element sent by the client
type WsMessage struct {
	Seq     int             `json:"seq"`
	Element json.RawMessage `json:"element"`
}

// WsReply answers one message
type WsReply struct {
	Seq     int             `json:"seq"`
	Session string          `json:"session"`
	Output  *element.Output `json:"output,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// serveWs calculates elements one message at a time until the client
// closes the connection
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade")
		return
	}
	defer conn.Close()

	session := uuid.NewString()
	logger := log.WithFields(log.Fields{"session": session, "remote": clientIP(r)})
	logger.Info("websocket session opened")

	for {
		var msg WsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.WithError(err).Warn("websocket read")
			}
			break
		}

		reply := WsReply{Seq: msg.Seq, Session: session}
		if out, err := calculateOne(msg.Element); err != nil {
			reply.Error = err.Error()
		} else {
			reply.Output = &out
		}
		if err := conn.WriteJSON(reply); err != nil {
			logger.WithError(err).Warn("websocket write")
			break
		}
	}
	logger.Info("websocket session closed")
}

func calculateOne(raw json.RawMessage) (element.Output, error) {
	e, err := element.Parse(raw, element.JSON)
	if err != nil {
		return element.Output{}, err
	}
	return element.Calculate(e)
}
