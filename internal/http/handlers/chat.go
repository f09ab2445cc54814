package handlers

import (
	"net/http"

	"fletapp/internal/http/middleware"
	"fletapp/internal/repositories"
	"fletapp/internal/services"
	"fletapp/internal/utils"
	"fletapp/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

func chatService(c *gin.Context) services.ChatService {
	return services.ChatService{
		ChatRepo:  repositories.ChatRepository{},
		TripRepo:  repositories.TripRepository{},
		Notifier:  chatHub,
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/trips/:id/messages
func GetTripMessages(c *gin.Context) {
	id, ok := TripIDParam(c)
	if !ok {
		return
	}
	messages, err := chatService(c).History(middleware.GetUserID(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

// POST /api/trips/:id/messages
func SendTripMessage(c *gin.Context) {
	id, ok := TripIDParam(c)
	if !ok {
		return
	}
	var req sendMessageRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	msg, err := chatService(c).Send(middleware.GetUserID(c), id, req.Content)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"chat_message": msg})
}

// Origins are already filtered by the CORS layer; the upgrader only
// carries the token-authenticated identity check below.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// GET /api/trips/:id/chat — live feed of the trip's chat. The connection is
// read-only for the browser; messages are posted over the HTTP endpoint
// and fan out here.
func TripChatSocket(c *gin.Context) {
	id, ok := TripIDParam(c)
	if !ok {
		return
	}
	userID := middleware.GetUserID(c)
	if err := chatService(c).CanJoin(userID, id); err != nil {
		RespondDomainError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		return
	}

	client := ws.NewClient(conn)
	chatHub.Subscribe(id, client)
	utils.LogEvent(middleware.GetRequestID(c), "chat", "ws_join", "trip_id="+c.Param("id")+" user_id="+userID)

	go client.WritePump()
	client.ReadPump(func() {
		chatHub.Unsubscribe(id, client)
		utils.LogEvent(middleware.GetRequestID(c), "chat", "ws_leave", "trip_id="+c.Param("id")+" user_id="+userID)
	})
}
