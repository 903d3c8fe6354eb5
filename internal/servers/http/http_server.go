package http

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"collabBoard/configs"
	"collabBoard/internal/handlers"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var (
	httpServer *HttpServer
	once       sync.Once
)

type HttpServer struct {
	ctx           context.Context
	config        *configs.Config
	router        *gin.Engine
	restHandler   *handlers.RestHandler
	socketHandler *handlers.SocketBoardHandler
}

func NewHttpServer(
	ctx context.Context,
	config *configs.Config,
	restHandler *handlers.RestHandler,
	socketHandler *handlers.SocketBoardHandler,
) *HttpServer {
	once.Do(func() {
		httpServer = &HttpServer{
			ctx:           ctx,
			config:        config,
			restHandler:   restHandler,
			socketHandler: socketHandler,
		}
	})
	return httpServer
}

func (hs *HttpServer) Run() {
	hs.initializeGin()
	hs.setupRoutes()
	server := hs.startServer()

	// Wait for interrupt signal to gracefully shut down the server
	hs.waitForShutdown(server)
}

func (hs *HttpServer) initializeGin() {
	hs.router = gin.Default()
}

func (hs *HttpServer) setupRoutes() {
	hs.router.POST("/register", hs.restHandler.Register)
	hs.router.POST("/login", hs.restHandler.Login)
	hs.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authorized := hs.router.Group("/", hs.restHandler.MustAuthenticateMiddleware())

	authorized.GET("/users", hs.restHandler.GetAllUsersWithPagination)
	authorized.GET("/users/search", hs.restHandler.SearchUsers)
	authorized.GET("/users/:id", hs.restHandler.GetSingleUser)

	authorized.POST("/boards", hs.restHandler.CreateBoard)
	authorized.GET("/boards", hs.restHandler.ListBoards)
	authorized.GET("/boards/:id", hs.restHandler.GetBoard)
	authorized.PUT("/boards/:id", hs.restHandler.UpdateBoard)
	authorized.DELETE("/boards/:id", hs.restHandler.DeleteBoard)

	authorized.POST("/boards/:id/access", hs.restHandler.GrantAccess)
	authorized.DELETE("/boards/:id/access/:username", hs.restHandler.RevokeAccess)
	authorized.GET("/boards/:id/access", hs.restHandler.ListAccess)

	authorized.POST("/notes", hs.restHandler.CreateNote)
	authorized.GET("/boards/:id/notes", hs.restHandler.GetBoardNotes)
	authorized.PUT("/notes/:id", hs.restHandler.UpdateNote)
	authorized.DELETE("/notes/:id", hs.restHandler.DeleteNote)

	authorized.POST("/notes/:id/images", hs.restHandler.UploadNoteImage)
	authorized.GET("/notes/:id/images", hs.restHandler.GetNoteImages)
	authorized.DELETE("/notes/:id/images/:imageId", hs.restHandler.DeleteNoteImage)

	authorized.POST("/drawings", hs.restHandler.CreateDrawing)
	authorized.GET("/boards/:id/drawings", hs.restHandler.GetBoardDrawings)
	authorized.DELETE("/drawings/:id", hs.restHandler.DeleteDrawing)

	authorized.POST("/colors", hs.restHandler.CreateColor)
	authorized.GET("/colors", hs.restHandler.GetColors)
	authorized.PUT("/colors/:id", hs.restHandler.UpdateColor)
	authorized.DELETE("/colors/:id", hs.restHandler.DeleteColor)

	authorized.GET("/boards/:id/view-state", hs.restHandler.GetViewState)
	authorized.PUT("/boards/:id/view-state", hs.restHandler.UpdateViewState)

	// The socket route does its own token check so the access denial
	// can be reported before the protocol upgrade.
	hs.router.GET("/ws/board", hs.socketHandler.HandleSocketBoardRoute)
}

func (hs *HttpServer) startServer() *http.Server {
	addr := fmt.Sprintf(":%v", hs.config.Viper.GetInt("server.port"))
	server := &http.Server{
		Addr:    addr,
		Handler: hs.router,
	}

	go func() {
		log.Printf("HTTP server started on %v", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	return server
}

func (hs *HttpServer) waitForShutdown(server *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if err := server.Shutdown(hs.ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	hs.socketHandler.CloseAllConnections()

	log.Println("Server exiting")
}
