package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"agrovision/config"
	"agrovision/database"
	"agrovision/router"

	"agrovision/pkg/ai"
	"agrovision/pkg/ai/flows"
	"agrovision/pkg/logger"
	"agrovision/pkg/metrics"
	"agrovision/pkg/notify"
	"agrovision/pkg/seed"
	"agrovision/pkg/store"

	// Controllers
	activityCtrlImp "agrovision/pkg/activity/controllerImp"
	authCtrlImp "agrovision/pkg/auth/controllerImp"
	sessionRepoImp "agrovision/pkg/auth/repositoryImp"
	eventsCtrlImp "agrovision/pkg/events/controllerImp"
	fieldCtrlImp "agrovision/pkg/field/controllerImp"
	healthCtrlImp "agrovision/pkg/health/controllerImp"
	recCtrlImp "agrovision/pkg/recommendation/controllerImp"
	stockCtrlImp "agrovision/pkg/stock/controllerImp"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	cfg.Log(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal("server stopped", "error", err)
	}
}

func run(ctx context.Context, cfg config.AppConfig, log *logger.Logger) error {
	// 1) DB (sqlite) for the session slot
	db, err := database.OpenSQLite(cfg.DBPath)
	if err != nil {
		return err
	}

	// 2) Fixtures
	data := seed.Default()
	if cfg.SeedXLSX != "" {
		if data, err = seed.LoadXLSX(cfg.SeedXLSX); err != nil {
			return err
		}
		log.Info("seed loaded", "path", cfg.SeedXLSX, "fields", len(data.Fields), "stock", len(data.Stock))
	}

	// 3) LLM (mock fallback)
	m := metrics.New()
	llm, err := newModelClient(ctx, cfg)
	if err != nil {
		return err
	}
	runner := flows.New(ai.WithObserver(llm, m))

	// 4) Store
	toasts := notify.NewBroadcaster()
	s := store.New(
		store.WithSeed(data),
		store.WithFlows(runner),
		store.WithSessionSlot(sessionRepoImp.New(db)),
		store.WithNotifier(notify.Multi(notify.Log(log), toasts)),
		store.WithLogger(log),
		store.WithMetrics(m),
		store.WithPlaceholderImage(cfg.PlaceholderImage),
	)
	if err := s.Restore(ctx); err != nil {
		return err
	}

	// 5) Router
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	router.New(
		e,
		log,
		s,
		authCtrlImp.NewAuthController(s),
		fieldCtrlImp.New(s, cfg.LLMTimeout),
		activityCtrlImp.New(s),
		recCtrlImp.New(s, cfg.LLMTimeout),
		stockCtrlImp.New(s),
		eventsCtrlImp.New(s, toasts, log),
		healthCtrlImp.NewHealthCtrl(db, cfg.LLMProvider),
		m.Handler(),
	)

	// 6) Start
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", "port", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("shutting down")
		err := e.Shutdown(shutdownCtx)
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
		return err
	})
	return g.Wait()
}

func newModelClient(ctx context.Context, cfg config.AppConfig) (ai.Client, error) {
	switch cfg.LLMProvider {
	case config.ProviderOpenAI:
		if cfg.LLMAPIKey == "" {
			return nil, errors.New("LLM_PROVIDER=openai needs LLM_API_KEY")
		}
		return ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMTimeout), nil
	case config.ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, errors.New("LLM_PROVIDER=gemini needs GEMINI_API_KEY")
		}
		return ai.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	case config.ProviderMock:
		return ai.NewMock(), nil
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.LLMProvider)
	}
}
