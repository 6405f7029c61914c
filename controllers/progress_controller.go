package controllers

import (
	"net/http"
	"time"

	"github.com/NateDevIO/MacroMeter/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type ProgressController struct {
	Session *services.Session
	Hub     *services.ProgressHub
}

func NewProgressController(session *services.Session, hub *services.ProgressHub) *ProgressController {
	return &ProgressController{Session: session, Hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // single-user app served locally
}

// GET /ws/progress — push channel for the dashboard. Sends the current
// snapshot on connect, then re-broadcasts after every mutation. All
// writes to the connection go through the registered client so they
// serialize with hub broadcasts.
func (pc *ProgressController) Progress(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	client := pc.Hub.Register(conn)

	_ = client.Send(pc.Session.Snapshot())

	// ping to keep connections alive through proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := client.Ping(); err != nil {
				pc.Hub.Unregister(client)
				return
			}
		}
	}()

	// read loop ends on client close/error
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			pc.Hub.Unregister(client)
			return
		}
	}
}
