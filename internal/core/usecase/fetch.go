package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/tomsdev9/legalrecours/internal/core/domain"
	"github.com/tomsdev9/legalrecours/internal/core/ports"
)

// FetchDocumentUseCase serves one-time downloads: the stored PDF is deleted
// after a successful read and the metadata flipped to downloaded, so the link
// cannot be replayed.
type FetchDocumentUseCase struct {
	storage ports.ObjectStorage
	repo    ports.DocumentRepository
}

func NewFetchDocumentUseCase(storage ports.ObjectStorage, repo ports.DocumentRepository) *FetchDocumentUseCase {
	return &FetchDocumentUseCase{storage: storage, repo: repo}
}

func (uc *FetchDocumentUseCase) Fetch(ctx context.Context, id string) (*domain.GeneratedDocument, []byte, error) {
	doc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if doc.Status != domain.DocumentReady {
		return nil, nil, domain.WrapError(domain.ErrDocumentNotFound, "fetch document",
			fmt.Errorf("document %s is %s", id, doc.Status))
	}

	reader, err := uc.storage.Open(ctx, doc.StorageKey)
	if err != nil {
		return nil, nil, domain.WrapError(domain.ErrDocumentNotFound, "open stored document", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, nil, fmt.Errorf("read stored document: %w", err)
	}

	if err := uc.repo.UpdateStatus(ctx, id, domain.DocumentDownloaded, ""); err != nil {
		return nil, nil, fmt.Errorf("mark document downloaded: %w", err)
	}
	if err := uc.storage.Delete(ctx, doc.StorageKey); err != nil {
		// The metadata already blocks re-download; a leftover file is a
		// cleanup concern, not a request failure.
		slog.Warn("delete_after_download", "document_id", id, "error", err)
	}

	return doc, data, nil
}
