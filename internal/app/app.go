package app

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"net"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-board/internal/config"
	"github.com/vancomm/minesweeper-board/internal/middleware"
	"github.com/vancomm/minesweeper-board/internal/mines"
	"github.com/vancomm/minesweeper-board/internal/session"
	"github.com/vancomm/minesweeper-board/internal/sprites"
)

type App struct {
	logger   *slog.Logger
	router   *http.ServeMux
	store    *session.Store
	textures map[string]mines.TextureID
	ws       *config.WebSocket
}

func New(logger *slog.Logger, rnd *rand.Rand, tracer trace.Tracer) *App {
	// Web clients bring their own sheets; the registry only hands out
	// stable handles for the names.
	sheets := sprites.NewRegistry[string]()
	tiles := sheets.Register(sprites.TilesSheet, sprites.TilesSheet)
	marks := sheets.Register(sprites.MarksSheet, sprites.MarksSheet)

	app := &App{
		logger: logger,
		router: http.NewServeMux(),
		store:  session.NewStore(rnd, tracer, mines.WithTextures(tiles, marks)),
		textures: map[string]mines.TextureID{
			sprites.TilesSheet: tiles,
			sprites.MarksSheet: marks,
		},
	}

	return app
}

// Handler builds the routed and wrapped handler the server runs.
func (a *App) Handler() (http.Handler, error) {
	ws, err := config.NewWebSocket()
	if err != nil {
		return nil, err
	}
	a.ws = ws

	a.loadRoutes()

	var h http.Handler = a.router
	if base := strings.TrimSuffix(config.BasePath(), "/"); base != "" {
		h = http.StripPrefix(base, h)
	}
	return middleware.Wrap(
		h,
		middleware.Logging(a.logger),
		middleware.Cors(config.CorsOrigins()),
	), nil
}

func (a *App) Start(ctx context.Context) error {
	handler, err := a.Handler()
	if err != nil {
		return err
	}

	addr := config.Port()
	server := &http.Server{
		Addr:    addr,
		Handler: handler,
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	a.logger.Info("server listening", slog.String("addr", addr))

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gCtx.Done()
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
		defer cancel()
		return server.Shutdown(ctx)
	})

	return g.Wait()
}
