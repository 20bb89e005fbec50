package controllers

import (
	"net/http"

	"github.com/lifeguidancewithjesper/pound-drop-sub001/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type RealtimeController struct {
	hub *services.RealtimeHub
	log *zap.SugaredLogger
}

func NewRealtimeController(hub *services.RealtimeHub, log *zap.SugaredLogger) *RealtimeController {
	return &RealtimeController{hub: hub, log: log}
}

// GET /ws — upgrades and parks the connection in the hub; the read loop only
// exists to notice the close.
func (rc *RealtimeController) Connect(c *gin.Context) {
	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		rc.log.Warnw("websocket upgrade failed", "err", err)
		return
	}

	client := &services.WSClient{UserID: currentUserID(c), Conn: conn}
	rc.hub.Register(client)

	go func() {
		defer rc.hub.Unregister(client)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
