package main

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/atobones/google-sheets-automation/internal/config"
	"github.com/atobones/google-sheets-automation/internal/infra/http/handlers"
	"github.com/atobones/google-sheets-automation/internal/infra/http/middleware"
	"github.com/atobones/google-sheets-automation/internal/infra/spreadsheet"
	"github.com/atobones/google-sheets-automation/internal/infra/worker"
	"github.com/atobones/google-sheets-automation/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	workbook, err := spreadsheet.Open(cfg.WorkbookPath)
	if err != nil {
		logrus.Fatal(err)
	}
	defer workbook.Close()

	// Workflow
	schema := usecase.NewSchemaManager(workbook, cfg.Workflow)
	activity := usecase.NewActivityLog(schema)
	addLead := usecase.NewAddLeadUseCase(schema, activity)
	updateStatus := usecase.NewUpdateLeadStatusUseCase(schema, activity)
	findLead := usecase.NewFindLeadUseCase(schema)
	archiveDone := usecase.NewArchiveDoneLeadsUseCase(schema, activity)

	// Handlers
	leadHandler := handlers.NewLeadHandler(addLead, updateStatus, findLead)
	healthHandler := handlers.NewHealthHandler(cfg.WorkbookPath)

	// Optional periodic archiving
	if cfg.ArchiveInterval > 0 {
		go worker.NewArchiveWorker(archiveDone, cfg.ArchiveInterval).Start(context.Background())
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
	}))
	r.Use(middleware.Metrics)

	r.Post("/leads", leadHandler.CaptureLead)
	r.Get("/leads/{id}", leadHandler.GetLead)
	r.Put("/leads/{id}/status", leadHandler.UpdateStatus)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	logrus.WithFields(logrus.Fields{
		"addr":     cfg.HTTPAddr,
		"workbook": cfg.WorkbookPath,
	}).Info("lead API listening")
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		logrus.Fatal(err)
	}
}
