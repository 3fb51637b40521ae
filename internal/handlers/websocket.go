package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"casino-sim-backend/internal/models"
	"casino-sim-backend/internal/services"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebSocketHandler pushes balance and payment events to connected clients.
// It implements services.Broadcaster.
type WebSocketHandler struct {
	sessions *services.SessionManager
	hub      *WebSocketHub
	log      *logrus.Logger
}

type WebSocketHub struct {
	clients    map[string]*websocket.Conn // keyed by account email
	register   chan *Client
	unregister chan *Client
	broadcast  chan *Message
	log        *logrus.Logger
}

type Client struct {
	Email string
	Conn  *websocket.Conn
}

type Message struct {
	Type  string      `json:"type"`
	Email string      `json:"email,omitempty"`
	Data  interface{} `json:"data"`
}

func NewWebSocketHandler(sessions *services.SessionManager, log *logrus.Logger) *WebSocketHandler {
	hub := &WebSocketHub{
		clients:    make(map[string]*websocket.Conn),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Message, 100),
		log:        log,
	}

	go hub.run()

	return &WebSocketHandler{
		sessions: sessions,
		hub:      hub,
		log:      log,
	}
}

func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	sessionID := c.GetString("session_id")

	user, err := h.sessions.CurrentUser(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired or invalid"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Errorf("failed to upgrade to WebSocket: %v", err)
		return
	}

	client := &Client{
		Email: user.Email,
		Conn:  conn,
	}

	h.hub.register <- client

	defer func() {
		h.hub.unregister <- client
		conn.Close()
	}()

	h.sendBalance(client, user)

	for {
		var msg Message
		err := conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Errorf("WebSocket error: %v", err)
			}
			break
		}

		h.handleMessage(client, &msg)
	}
}

func (h *WebSocketHandler) handleMessage(client *Client, msg *Message) {
	switch msg.Type {
	case "PING":
		h.sendPong(client)
	}
}

func (h *WebSocketHandler) sendBalance(client *Client, user *models.SessionUser) {
	msg := Message{
		Type: "BALANCE_UPDATE",
		Data: gin.H{
			"balance_eur":       user.BalanceEUR,
			"total_wagered_eur": user.TotalWageredEUR,
			"total_won_eur":     user.TotalWonEUR,
			"vip_level":         user.VIPLevel,
		},
	}

	client.Conn.WriteJSON(msg)
}

func (h *WebSocketHandler) sendPong(client *Client) {
	msg := Message{
		Type: "PONG",
		Data: gin.H{
			"timestamp": time.Now().Unix(),
		},
	}

	client.Conn.WriteJSON(msg)
}

func (hub *WebSocketHub) run() {
	for {
		select {
		case client := <-hub.register:
			hub.clients[client.Email] = client.Conn
			hub.log.Debugf("client registered: %s", client.Email)

		case client := <-hub.unregister:
			if _, ok := hub.clients[client.Email]; ok {
				delete(hub.clients, client.Email)
				hub.log.Debugf("client unregistered: %s", client.Email)
			}

		case message := <-hub.broadcast:
			hub.broadcastMessage(message)
		}
	}
}

func (hub *WebSocketHub) broadcastMessage(message *Message) {
	if message.Email != "" {
		if conn, ok := hub.clients[message.Email]; ok {
			conn.WriteJSON(message)
		}
	} else {
		for _, conn := range hub.clients {
			conn.WriteJSON(message)
		}
	}
}

func (h *WebSocketHandler) BroadcastBalanceUpdate(user *models.SessionUser) {
	h.hub.broadcast <- &Message{
		Type:  "BALANCE_UPDATE",
		Email: user.Email,
		Data: gin.H{
			"balance_eur":       user.BalanceEUR,
			"total_wagered_eur": user.TotalWageredEUR,
			"total_won_eur":     user.TotalWonEUR,
			"vip_level":         user.VIPLevel,
		},
	}
}

func (h *WebSocketHandler) BroadcastDepositConfirmed(payment *models.Payment) {
	h.hub.broadcast <- &Message{
		Type:  "DEPOSIT_CONFIRMED",
		Email: payment.Email,
		Data: gin.H{
			"payment_id":    payment.ID,
			"asset_symbol":  payment.AssetSymbol,
			"crypto_amount": payment.CryptoAmount,
			"amount_eur":    payment.AmountEUR,
			"timestamp":     time.Now().Unix(),
		},
	}
}

func (h *WebSocketHandler) BroadcastWithdrawalSent(payment *models.Payment) {
	h.hub.broadcast <- &Message{
		Type:  "WITHDRAWAL_SENT",
		Email: payment.Email,
		Data: gin.H{
			"payment_id":    payment.ID,
			"asset_symbol":  payment.AssetSymbol,
			"crypto_amount": payment.CryptoAmount,
			"amount_eur":    payment.AmountEUR,
			"fee_eur":       payment.FeeEUR,
			"timestamp":     time.Now().Unix(),
		},
	}
}
