// README: Entry point; loads config, wires services, starts HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"rentbus/internal/ai"
	"rentbus/internal/config"
	httptransport "rentbus/internal/http"
	"rentbus/internal/infra"
	"rentbus/internal/maps"
	"rentbus/internal/modules/pricing"
	"rentbus/internal/modules/seo"
	"rentbus/internal/modules/testimonial"
	"rentbus/internal/modules/tripplan"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := infra.NewLogger(cfg.Debug)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		logger.Fatal("db init", zap.Error(err))
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	pricingStore := pricing.NewStore(dbPool)
	pricingSvc := pricing.NewService(pricingStore)

	testimonialStore := testimonial.NewPGStore(dbPool)
	testimonialCache := testimonial.NewRedisCache(redisClient, 5*time.Minute)
	testimonialSvc := testimonial.NewService(testimonialStore, testimonialCache)

	assistant, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
	if err != nil {
		logger.Fatal("gemini init", zap.Error(err))
	}
	defer assistant.Close()

	var routes tripplan.RouteEstimator
	if cfg.AI.MapsKey != "" {
		routeSvc, err := maps.NewRouteService(cfg.AI.MapsKey)
		if err != nil {
			logger.Fatal("maps init", zap.Error(err))
		}
		routes = routeSvc
	} else {
		logger.Warn("MAPS_API_KEY not set, trip plans use AI-only estimates")
	}
	plannerSvc := tripplan.NewService(assistant, routes, logger)

	seoSvc := seo.NewService(cfg.Site.BaseURL)

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Pricing:      pricingSvc,
		Testimonials: testimonialSvc,
		Planner:      plannerSvc,
		SEO:          seoSvc,
		Log:          logger,
		CORSOrigins:  cfg.HTTP.CORSOrigins,
		PlanRPS:      cfg.TripPlan.RequestsPerSecond,
		PlanBurst:    cfg.TripPlan.Burst,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", zap.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server", zap.Error(err))
	}
}
