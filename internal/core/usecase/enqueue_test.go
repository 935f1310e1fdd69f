package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/tomsdev9/legalrecours/internal/core/domain"
	"github.com/tomsdev9/legalrecours/internal/core/ports"
)

type fakeQueue struct {
	published []ports.GenerationJob
	err       error
}

var _ ports.MessageQueue = (*fakeQueue)(nil)

func (f *fakeQueue) PublishGenerationJob(_ context.Context, job ports.GenerationJob) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, job)
	return nil
}

func (f *fakeQueue) SubscribeGenerationJobs(context.Context, func(context.Context, ports.GenerationJob) error) error {
	return nil
}

func TestEnqueuePublishesJobWithAllocatedID(t *testing.T) {
	queue := &fakeQueue{}
	uc := NewEnqueueLetterUseCase(queue)

	receipt, err := uc.Enqueue(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	if receipt.DocumentID == "" {
		t.Fatal("receipt must carry an allocated document id")
	}
	if receipt.Filename != "courrier-caf_trop_percu.pdf" {
		t.Errorf("filename = %q", receipt.Filename)
	}
	if len(queue.published) != 1 {
		t.Fatalf("published %d jobs, want 1", len(queue.published))
	}
	job := queue.published[0]
	if job.DocumentID != receipt.DocumentID {
		t.Error("job must carry the receipt's document id")
	}
	if job.Request.CaseID != domain.CaseCAFTropPercu {
		t.Errorf("job case = %s", job.Request.CaseID)
	}
}

func TestEnqueueValidatesBeforePublishing(t *testing.T) {
	queue := &fakeQueue{}
	uc := NewEnqueueLetterUseCase(queue)

	req := validRequest()
	delete(req.Context, "period")

	_, err := uc.Enqueue(context.Background(), req)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if len(queue.published) != 0 {
		t.Error("an invalid request must not reach the queue")
	}
}

func TestEnqueueSurfacesPublishFailure(t *testing.T) {
	queue := &fakeQueue{err: errors.New("no nats servers")}
	uc := NewEnqueueLetterUseCase(queue)

	if _, err := uc.Enqueue(context.Background(), validRequest()); err == nil {
		t.Fatal("publish failure must fail the checkout")
	}
}
