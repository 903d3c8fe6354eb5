package app

import (
	"context"
	"sync"

	"collabBoard/configs"
	"collabBoard/internal/handlers"
	"collabBoard/internal/repositories"
	"collabBoard/internal/servers/database"
	"collabBoard/internal/servers/http"
	"collabBoard/internal/services"

	"github.com/redis/go-redis/v9"
)

var (
	app  *App
	once sync.Once
)

type App struct {
	redis   *redis.Client
	ctx     context.Context
	configs *configs.Config
}

func GetApp() *App {
	once.Do(func() {
		app = &App{}
	})
	return app
}

func (app *App) LetsGo() {
	app.ctx = context.Background()
	app.initializeConfigs()
	app.initializeRedis()

	db := database.GetDB(app.configs)
	authRepo := repositories.NewAuthenticationRepository(db)
	authService := services.NewAuthenticationService(authRepo, app.configs)
	boardRepo := repositories.NewBoardRepository(db)
	noteRepo := repositories.NewNoteRepository(db)
	drawingRepo := repositories.NewDrawingRepository(db)
	paletteRepo := repositories.NewPaletteRepository(db)

	permissionService := services.NewPermissionService(boardRepo, noteRepo, drawingRepo)
	boardService := services.NewBoardService(boardRepo, authRepo, permissionService)
	noteService := services.NewNoteService(noteRepo, permissionService)
	drawingService := services.NewDrawingService(drawingRepo, permissionService)
	paletteService := services.NewPaletteService(paletteRepo, permissionService)

	minioService := services.NewMinioService(app.configs)
	fileManagerService := services.NewFileManagerService(minioService)

	restHandler := handlers.NewRestHandler(
		authService,
		boardService,
		noteService,
		drawingService,
		paletteService,
		fileManagerService,
	)

	socketBoardHandler := handlers.NewSocketBoardHandler(app.redis, app.ctx, permissionService, app.configs)

	http.NewHttpServer(
		app.ctx,
		app.configs,
		restHandler,
		socketBoardHandler,
	).Run()
}

func (app *App) initializeRedis() {
	app.redis = redis.NewClient(&redis.Options{
		Addr: app.configs.Viper.GetString("redis.addr"),
	})
}

func (app *App) initializeConfigs() {
	app.configs = configs.GetConfig()
}
