package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tomsdev9/legalrecours/internal/core/domain"
	"github.com/tomsdev9/legalrecours/internal/core/ports"
)

// EnqueueLetterUseCase accepts a paid checkout and publishes the generation
// job. The document id is allocated here so the caller can hand out the
// download link before the worker has run.
type EnqueueLetterUseCase struct {
	queue ports.MessageQueue
}

func NewEnqueueLetterUseCase(queue ports.MessageQueue) *EnqueueLetterUseCase {
	return &EnqueueLetterUseCase{queue: queue}
}

// Enqueue validates the request and publishes it. Validation happens here,
// not in the worker: a malformed request must fail the checkout call, not
// die silently in the queue.
func (uc *EnqueueLetterUseCase) Enqueue(ctx context.Context, req domain.LetterRequest) (*ports.EnqueueReceipt, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	documentID := uuid.NewString()
	job := ports.GenerationJob{DocumentID: documentID, Request: req}
	if err := uc.queue.PublishGenerationJob(ctx, job); err != nil {
		return nil, fmt.Errorf("publish generation job: %w", err)
	}

	return &ports.EnqueueReceipt{
		DocumentID: documentID,
		Filename:   domain.DownloadFilename(req.CaseID),
	}, nil
}
