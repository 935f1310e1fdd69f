package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomsdev9/legalrecours/internal/bootstrap"
	"github.com/tomsdev9/legalrecours/internal/config"
	"github.com/tomsdev9/legalrecours/internal/core/ports"
	"github.com/tomsdev9/legalrecours/internal/observability/logging"
	"github.com/tomsdev9/legalrecours/internal/observability/metrics"
)

func main() {
	cfg := config.Load()
	slog.SetDefault(logging.NewJSONLogger("worker", cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}
	defer app.Close()

	workerMetrics := metrics.NewWorkerMetrics("worker")
	metricsServer := &http.Server{
		Addr:    ":" + cfg.WorkerMetricsPort,
		Handler: workerMetrics.Handler(),
	}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("worker_metrics_server_error", "error", err)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metricsServer.Shutdown(shutdownCtx)
	}()

	slog.Info("worker_subscribed", "subject", cfg.NATSSubject)
	err = app.Queue.SubscribeGenerationJobs(ctx, func(handlerCtx context.Context, job ports.GenerationJob) error {
		jobCtx, cancel := context.WithTimeout(handlerCtx, 2*time.Minute)
		defer cancel()

		workerMetrics.StartJob()
		start := time.Now()
		jobErr := app.GenerateUC.ProcessJob(jobCtx, job)
		workerMetrics.FinishJob("worker", time.Since(start), jobErr)

		if jobErr != nil {
			slog.Error("generation_job_failed", "document_id", job.DocumentID, "error", jobErr)
		}
		return jobErr
	})
	if err != nil {
		log.Fatalf("worker subscribe error: %v", err)
	}
}
