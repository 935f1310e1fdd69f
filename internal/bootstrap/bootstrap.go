package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/tomsdev9/legalrecours/internal/config"
	"github.com/tomsdev9/legalrecours/internal/core/ports"
	"github.com/tomsdev9/legalrecours/internal/core/usecase"
	"github.com/tomsdev9/legalrecours/internal/infrastructure/llm/anthropic"
	"github.com/tomsdev9/legalrecours/internal/infrastructure/pdf"
	"github.com/tomsdev9/legalrecours/internal/infrastructure/queue/nats"
	"github.com/tomsdev9/legalrecours/internal/infrastructure/repository/postgres"
	"github.com/tomsdev9/legalrecours/internal/infrastructure/resilience"
	"github.com/tomsdev9/legalrecours/internal/infrastructure/storage/localfs"
)

type App struct {
	Config config.Config

	Queue ports.MessageQueue
	Repo  ports.DocumentRepository

	GenerateUC *usecase.GenerateLetterUseCase
	EnqueueUC  *usecase.EnqueueLetterUseCase
	FetchUC    *usecase.FetchDocumentUseCase

	closeFn func()
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	db, err := postgres.OpenDB(cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	repo := postgres.NewDocumentRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	storage, err := localfs.New(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("init object storage: %w", err)
	}

	queue, err := nats.New(cfg.NATSURL, cfg.NATSSubject)
	if err != nil {
		return nil, fmt.Errorf("init message queue: %w", err)
	}

	// A revision is attempted exactly once per letter: a failure degrades to
	// the deterministic draft instead of retrying. The breaker still guards
	// the upstream during sustained outages.
	executor := resilience.NewExecutor(resilience.Config{
		RetryMaxAttempts:    1,
		BreakerEnabled:      true,
		BreakerMinRequests:  5,
		BreakerFailureRatio: 0.6,
		BreakerOpenTimeout:  20 * time.Second,
	})

	reviser := anthropic.New(cfg.AnthropicURL, cfg.AnthropicAPIKey, cfg.AnthropicModel, anthropic.Options{
		Timeout:  time.Duration(cfg.AnthropicTimeoutSeconds) * time.Second,
		Executor: executor,
	})
	renderer := pdf.NewRenderer()

	generateUC := usecase.NewGenerateLetterUseCase(reviser, renderer, storage, repo)
	enqueueUC := usecase.NewEnqueueLetterUseCase(queue)
	fetchUC := usecase.NewFetchDocumentUseCase(storage, repo)

	return &App{
		Config: cfg,
		Queue:  queue,
		Repo:   repo,

		GenerateUC: generateUC,
		EnqueueUC:  enqueueUC,
		FetchUC:    fetchUC,

		closeFn: func() {
			queue.Close()
			_ = db.Close()
		},
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
