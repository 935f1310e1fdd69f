package ports

import (
	"context"
	"io"

	"github.com/tomsdev9/legalrecours/internal/core/domain"
)

// LetterReviser is the external rewriting collaborator: it receives a
// protected draft plus metadata and returns the revised body. Implementations
// must not alter marker-wrapped substrings. Callers treat any failure as
// recoverable and fall back to the unrevised draft.
type LetterReviser interface {
	Revise(ctx context.Context, protectedDraft string, org domain.Organism, caseID domain.CaseID) (string, error)
}

// DocumentRenderer lays a finalized letter out on fixed-size pages and
// serializes it to a binary document.
type DocumentRenderer interface {
	RenderDocument(letter domain.RenderedLetter) ([]byte, error)
}

// ObjectStorage stores rendered documents for one-time retrieval.
type ObjectStorage interface {
	Save(ctx context.Context, key string, data io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// DocumentRepository persists generated-document metadata backing the
// one-time download link. No context data or identity goes through it.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.GeneratedDocument) error
	GetByID(ctx context.Context, id string) (*domain.GeneratedDocument, error)
	UpdateStatus(ctx context.Context, id string, status domain.DocumentStatus, errMessage string) error
}

// MessageQueue carries paid-checkout events from the payment webhook to the
// generation worker.
type MessageQueue interface {
	PublishGenerationJob(ctx context.Context, job GenerationJob) error
	SubscribeGenerationJobs(ctx context.Context, handler func(context.Context, GenerationJob) error) error
}

// GenerationJob is the payload published after payment confirmation. The
// document id is allocated up front so the success page can poll the
// download link.
type GenerationJob struct {
	DocumentID string               `json:"document_id"`
	Request    domain.LetterRequest `json:"request"`
}
