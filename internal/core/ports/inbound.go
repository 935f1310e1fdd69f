package ports

import (
	"context"

	"github.com/tomsdev9/legalrecours/internal/core/domain"
)

// LetterGenerator is the inbound contract for full letter generation.
type LetterGenerator interface {
	Generate(ctx context.Context, req domain.LetterRequest) (*GenerationResult, error)
}

// LetterPreviewer exposes the read-only preview: subject, meta lines,
// destination and attachments, without the letter body.
type LetterPreviewer interface {
	Preview(ctx context.Context, req domain.LetterRequest) (*Preview, error)
}

// DocumentFetcher serves one-time downloads of stored documents.
type DocumentFetcher interface {
	Fetch(ctx context.Context, id string) (*domain.GeneratedDocument, []byte, error)
}

// LetterEnqueuer hands a paid request to the async generation pipeline and
// returns the receipt the success page polls against.
type LetterEnqueuer interface {
	Enqueue(ctx context.Context, req domain.LetterRequest) (*EnqueueReceipt, error)
}

// EnqueueReceipt identifies the document a queued job will produce. The
// download link stays 404 until the worker has stored the PDF.
type EnqueueReceipt struct {
	DocumentID string `json:"documentId"`
	Filename   string `json:"filename"`
}

// GenerationResult couples the rendered PDF with its stored metadata.
type GenerationResult struct {
	Document *domain.GeneratedDocument
	PDF      []byte
	Degraded bool
}

// Preview is the anti-copy view returned before payment: everything except
// the body text.
type Preview struct {
	Subject     string   `json:"subject"`
	MetaLines   []string `json:"metaLines"`
	DestLines   []string `json:"destLines"`
	DateLine    string   `json:"dateStr"`
	Attachments []string `json:"attachments"`
}
