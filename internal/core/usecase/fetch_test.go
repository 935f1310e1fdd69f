package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/tomsdev9/legalrecours/internal/core/domain"
)

func storedDocument(repo *fakeRepo, storage *fakeStorage, status domain.DocumentStatus) *domain.GeneratedDocument {
	doc := &domain.GeneratedDocument{
		ID:         "doc-1",
		CaseID:     domain.CaseCAFTropPercu,
		Organism:   domain.OrganismCAF,
		Filename:   "courrier-caf_trop_percu.pdf",
		StorageKey: "doc-1.pdf",
		Status:     status,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
	repo.docs[doc.ID] = doc
	storage.saved[doc.StorageKey] = []byte("%PDF-1.4 stored")
	return doc
}

func TestFetchIsOneTime(t *testing.T) {
	repo := newFakeRepo()
	storage := newFakeStorage()
	storedDocument(repo, storage, domain.DocumentReady)
	uc := NewFetchDocumentUseCase(storage, repo)

	doc, data, err := uc.Fetch(context.Background(), "doc-1")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if !bytes.Equal(data, []byte("%PDF-1.4 stored")) {
		t.Error("returned bytes differ from stored document")
	}
	if doc.Filename != "courrier-caf_trop_percu.pdf" {
		t.Errorf("filename = %q", doc.Filename)
	}
	if repo.docs["doc-1"].Status != domain.DocumentDownloaded {
		t.Errorf("status after fetch = %s, want downloaded", repo.docs["doc-1"].Status)
	}
	if len(storage.saved) != 0 {
		t.Error("stored file must be deleted after a successful download")
	}

	if _, _, err := uc.Fetch(context.Background(), "doc-1"); !errors.Is(err, domain.ErrDocumentNotFound) {
		t.Fatalf("second fetch err = %v, want ErrDocumentNotFound", err)
	}
}

func TestFetchUnknownDocument(t *testing.T) {
	uc := NewFetchDocumentUseCase(newFakeStorage(), newFakeRepo())
	if _, _, err := uc.Fetch(context.Background(), "nope"); !errors.Is(err, domain.ErrDocumentNotFound) {
		t.Fatalf("err = %v, want ErrDocumentNotFound", err)
	}
}

func TestFetchNonReadyStatuses(t *testing.T) {
	for _, status := range []domain.DocumentStatus{domain.DocumentPending, domain.DocumentFailed, domain.DocumentDownloaded} {
		repo := newFakeRepo()
		storage := newFakeStorage()
		storedDocument(repo, storage, status)
		uc := NewFetchDocumentUseCase(storage, repo)

		_, _, err := uc.Fetch(context.Background(), "doc-1")
		if !errors.Is(err, domain.ErrDocumentNotFound) {
			t.Errorf("status %s: err = %v, want ErrDocumentNotFound", status, err)
		}
	}
}

func TestFetchMissingStoredFile(t *testing.T) {
	repo := newFakeRepo()
	storage := newFakeStorage()
	storedDocument(repo, storage, domain.DocumentReady)
	delete(storage.saved, "doc-1.pdf")
	uc := NewFetchDocumentUseCase(storage, repo)

	_, _, err := uc.Fetch(context.Background(), "doc-1")
	if !errors.Is(err, domain.ErrDocumentNotFound) {
		t.Fatalf("err = %v, want ErrDocumentNotFound", err)
	}
	if repo.docs["doc-1"].Status != domain.DocumentReady {
		t.Error("status must not change when the file cannot be opened")
	}
}

func TestFetchToleratesDeleteFailure(t *testing.T) {
	repo := newFakeRepo()
	storage := newFakeStorage()
	storedDocument(repo, storage, domain.DocumentReady)
	storage.delErr = errors.New("disk gone")
	uc := NewFetchDocumentUseCase(storage, repo)

	_, data, err := uc.Fetch(context.Background(), "doc-1")
	if err != nil {
		t.Fatalf("delete failure must not fail the download: %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF-") {
		t.Error("document bytes must still be returned")
	}
	if repo.docs["doc-1"].Status != domain.DocumentDownloaded {
		t.Error("metadata must still flip to downloaded")
	}
}

func TestFetchFailsWhenStatusUpdateFails(t *testing.T) {
	repo := newFakeRepo()
	storage := newFakeStorage()
	storedDocument(repo, storage, domain.DocumentReady)
	repo.updateErr = errors.New("db down")
	uc := NewFetchDocumentUseCase(storage, repo)

	if _, _, err := uc.Fetch(context.Background(), "doc-1"); err == nil {
		t.Fatal("status update failure must fail the request")
	}
	if len(storage.deleted) != 0 {
		t.Error("file must not be deleted when the status flip failed")
	}
}
