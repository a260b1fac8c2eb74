package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"Handbook/internal/applog"
	"Handbook/internal/calc"
	"Handbook/internal/calc/batch"
	"Handbook/internal/calc/conversions"
	"Handbook/internal/calc/ductulator"
	"Handbook/internal/calc/equations"
	"Handbook/internal/calc/fanlaws"
	"Handbook/internal/calc/pipe"
	"Handbook/internal/calc/power"
	"Handbook/internal/calc/pressure"
	"Handbook/internal/calc/psychro"
	"Handbook/internal/calc/report"
	"Handbook/internal/config"
	"Handbook/internal/filters"
	"Handbook/internal/live"
	"Handbook/internal/middleware"
	"Handbook/internal/tables"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

func HandleList(router *mux.Router, cfg config.Config, catalog *filters.Catalog, log *slog.Logger) {
	limiter := middleware.NewIPRateLimiter(rate.Limit(cfg.Limits.Rate), cfg.Limits.Burst)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	ductH := &ductulator.Handler{}
	batchH := &batch.Handler{}
	reportH := &report.Handler{}
	pipeH := &pipe.Handler{}
	fanH := &fanlaws.Handler{}
	eqH := &equations.Handler{}
	pressureH := &pressure.Handler{}
	powerH := &power.Handler{}
	psychroH := &psychro.Handler{}
	convertH := &conversions.Handler{}
	tablesH := &tables.Handler{}
	filtersH := &filters.Handler{Catalog: catalog}

	tools := api.PathPrefix("/tools").Subrouter()
	tools.HandleFunc("/ductulator/calc", ductH.Calc).Methods("POST")
	tools.HandleFunc("/ductulator/presets", ductH.Presets).Methods("GET")
	tools.HandleFunc("/ductulator/batch", batchH.Calc).Methods("POST")
	tools.HandleFunc("/ductulator/import", batchH.Import).Methods("POST")
	tools.HandleFunc("/ductulator/export", batchH.Export).Methods("POST")
	tools.HandleFunc("/ductulator/report", reportH.Generate).Methods("POST")

	tools.HandleFunc("/pipe/chart", pipeH.Chart).Methods("POST")
	tools.HandleFunc("/pipe/point", pipeH.Point).Methods("POST")
	tools.HandleFunc("/pipe/options", pipeH.Options).Methods("GET")

	tools.HandleFunc("/fanlaws/nomenclature", fanH.Nomenclature).Methods("GET")
	tools.HandleFunc("/fanlaws/{law}", fanH.Calc).Methods("POST")
	tools.HandleFunc("/equations/{eq}", eqH.Calc).Methods("POST")
	tools.HandleFunc("/pressure/{eq}", pressureH.Calc).Methods("POST")
	tools.HandleFunc("/power/{eq}", powerH.Calc).Methods("POST")

	tools.HandleFunc("/psychro/state", psychroH.State).Methods("POST")
	tools.HandleFunc("/psychro/chart", psychroH.Chart).Methods("GET")

	tools.HandleFunc("/convert/units", convertH.Units).Methods("GET")
	tools.HandleFunc("/convert/{quantity}", convertH.Convert).Methods("POST")

	api.HandleFunc("/tables", tablesH.List).Methods("GET")
	api.HandleFunc("/tables/{name}", tablesH.Search).Methods("GET")

	api.HandleFunc("/filters/search", filtersH.Search).Methods("POST")
	api.HandleFunc("/filters/classes", filtersH.Classes).Methods("GET")

	ws := live.NewServer(live.Calculators(catalog), log, nil)
	router.HandleFunc("/ws", ws.ServeWs)
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		calc.WriteJSON(w, http.StatusOK, map[string]any{"status": "ok", "filters": catalog.Len()})
	}).Methods("GET")

	router.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.Server.StaticDir)))
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load("conf/app.ini")
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	log := applog.New(os.Stderr, cfg.LogLevel)

	catalog, err := filters.Load(ctx, filters.Source(cfg.Catalog.Source), cfg.Catalog.Path)
	if err != nil {
		log.Error("load filter catalogue", "source", cfg.Catalog.Source, "err", err)
		os.Exit(1)
	}
	log.Info("filter catalogue loaded", "source", cfg.Catalog.Source, "products", catalog.Len())

	router := mux.NewRouter()
	HandleList(router, cfg, catalog, log)
	handler := middleware.Logger(log)(middleware.CORS(cfg.Server.CORSOrigin, router))

	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("starting server", "addr", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "err", err)
	}
	log.Info("server stopped")

	wg.Wait()
}
