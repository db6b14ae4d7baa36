package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/JashanBansal182304/MessMate/services"
	"github.com/JashanBansal182304/MessMate/utils"
)

type RealtimeController struct {
	RT *services.RealtimeHub
}

func NewRealtimeController(rt *services.RealtimeHub) *RealtimeController {
	return &RealtimeController{RT: rt}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind a proxy if needed
}

// DashboardWS streams snapshot changes, stat refreshes and alerts to a
// connected dashboard. The client's role decides which alerts it sees.
func (rc *RealtimeController) DashboardWS(c *gin.Context) {
	role := c.GetString("userType")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := &services.WSClient{Role: role, Conn: conn}
	rc.RT.Register(cl)

	// ping to keep connections alive through some proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				rc.RT.Unregister(cl)
				return
			}
		}
	}()

	// read loop ends on client close/error → unregister
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			rc.RT.Unregister(cl)
			return
		}
	}
}

// RecentAlerts backfills the alert strip on page load; live ones arrive
// over the socket.
func (rc *RealtimeController) RecentAlerts(c *gin.Context) {
	role := c.GetString("userType")
	alerts, err := services.RecentAlerts(role, 20)
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "failed to load alerts")
		return
	}
	utils.OK(c, "alerts retrieved successfully", alerts)
}
