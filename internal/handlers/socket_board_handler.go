package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"collabBoard/configs"
	"collabBoard/internal/enums"
	"collabBoard/internal/errs"
	"collabBoard/internal/models"
	"collabBoard/internal/msgs"
	"collabBoard/internal/services"
	"collabBoard/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
)

const redisChannelBoardEvents = "board_events"

// SocketBoardHandler relays edit events between every client viewing
// the same board. Events travel through Redis so all server instances
// see them; each instance fans out to its own connected clients.
type SocketBoardHandler struct {
	ctx               context.Context
	upgrader          websocket.Upgrader
	hub               *models.BoardHub
	Redis             *redis.Client
	permissionService *services.PermissionService
	excludeSender     bool
}

func NewSocketBoardHandler(
	redis *redis.Client,
	ctx context.Context,
	permissionService *services.PermissionService,
	config *configs.Config,
) *SocketBoardHandler {
	sbh := &SocketBoardHandler{
		ctx:               ctx,
		permissionService: permissionService,
		Redis:             redis,
		hub:               models.NewBoardHub(),
		excludeSender:     config.Viper.GetBool("socket.exclude_sender"),
	}
	go sbh.HandleRedisMessages()
	return sbh
}

func (sbh *SocketBoardHandler) HandleSocketBoardRoute(ctx *gin.Context) {
	// Authenticate user
	userInfo, err := sbh.authorize(ctx)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{err},
		})
		return
	}

	boardId, err := sbh.getBoardIdFromQuery(ctx)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidBoardId},
		})
		return
	}

	// Read access is enough to join; mutations are authorized by the
	// REST layer, not here. Denied connections are refused before the
	// upgrade, so no frames are ever exchanged.
	if err := sbh.permissionService.AuthorizeBoard(userInfo.ID, boardId, enums.ActionRead); err != nil {
		ctx.AbortWithStatusJSON(statusForErrors([]error{err}), models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{err},
		})
		return
	}

	sbh.HandleConnections(ctx, userInfo, boardId)
}

func (sbh *SocketBoardHandler) authorize(ctx *gin.Context) (*models.Claims, error) {
	jwtToken := ctx.Request.Header.Get("Authorization")
	if jwtToken == "" {
		return nil, errs.ErrUnauthorized
	}
	userInfo, err := utils.VerifyToken(jwtToken, utils.GetJwtKey())
	if err != nil {
		return nil, err
	}
	return userInfo, nil
}

func (sbh *SocketBoardHandler) getBoardIdFromQuery(ctx *gin.Context) (uint, error) {
	boardIdStr := ctx.Query("boardId")
	if boardIdStr == "" {
		return 0, errs.ErrInvalidBoardId
	}
	boardIdInt, err := strconv.Atoi(boardIdStr)
	if err != nil || boardIdInt == 0 {
		return 0, errs.ErrInvalidBoardId
	}
	return uint(boardIdInt), nil
}

func (sbh *SocketBoardHandler) upgradeHttpToWs(ctx *gin.Context) (*websocket.Conn, error) {
	sbh.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
	ws, err := sbh.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		return nil, err
	}
	return ws, nil
}

func (sbh *SocketBoardHandler) HandleConnections(ctx *gin.Context, userInfo *models.Claims, boardId uint) {
	ws, err := sbh.upgradeHttpToWs(ctx)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{err},
		})
		return
	}
	defer func(ws *websocket.Conn) {
		err := ws.Close()
		if err != nil {
			log.Printf("Error closing connection: %v", err)
		}
	}(ws)

	ws.SetCloseHandler(func(code int, text string) error {
		sbh.hub.Leave(boardId, ws)
		return nil
	})

	client := &models.BoardClient{
		Conn:   ws,
		UserId: userInfo.ID,
		ConnId: uuid.New().String(),
	}
	sbh.hub.Join(boardId, client)

	sbh.handleIncomingEvents(ws, client, boardId)
}

func (sbh *SocketBoardHandler) handleIncomingEvents(ws *websocket.Conn, client *models.BoardClient, boardId uint) {
	for {
		var event models.BoardSocketEvent
		err := ws.ReadJSON(&event)
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				sbh.hub.Leave(boardId, ws)
				break
			}
			log.Printf("handleIncomingEvents / Error reading json: %v", err)
			sbh.hub.Leave(boardId, ws)
			break
		}

		// The relay is transparent to event content; only the envelope
		// is stamped before publishing.
		event.BoardID = boardId
		event.SenderID = client.UserId
		event.SenderConnId = client.ConnId
		if pubErrs := sbh.publishBoardEvent(&event); len(pubErrs) > 0 {
			log.Printf("handleIncomingEvents - Error while publishing board event: %v", pubErrs)
		}
	}
}

func (sbh *SocketBoardHandler) publishBoardEvent(event *models.BoardSocketEvent) []error {
	var errors []error

	jsonEvent, err := json.Marshal(event)
	if err != nil {
		errors = append(errors, err)
		return errors
	}
	if err := sbh.PublishMessage(sbh.Redis, redisChannelBoardEvents, jsonEvent); err != nil {
		errors = append(errors, err)
		return errors
	}
	return nil
}

func (sbh *SocketBoardHandler) HandleRedisMessages() {
	ch := sbh.SubscribeToChannel(sbh.Redis, redisChannelBoardEvents)
	for msg := range ch {
		var event models.BoardSocketEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("Error unmarshalling message: %v", err)
			continue
		}
		excludeConnId := ""
		if sbh.excludeSender {
			excludeConnId = event.SenderConnId
		}
		sbh.hub.Broadcast(event.BoardID, &event, excludeConnId)
	}
}

func (sbh *SocketBoardHandler) PublishMessage(redis *redis.Client, channel string, message []byte) error {
	return redis.Publish(sbh.ctx, channel, message).Err()
}

func (sbh *SocketBoardHandler) SubscribeToChannel(redis *redis.Client, channel string) <-chan *redis.Message {
	pubsub := redis.Subscribe(sbh.ctx, channel)
	_, err := pubsub.Receive(sbh.ctx)
	if err != nil {
		log.Fatalf("Could not subscribe to channel: %v", err)
	}
	return pubsub.Channel()
}

func (sbh *SocketBoardHandler) CloseAllConnections() {
	sbh.hub.CloseAll()
}
