package usecase

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tomsdev9/legalrecours/internal/core/domain"
	"github.com/tomsdev9/legalrecours/internal/core/ports"
	"github.com/tomsdev9/legalrecours/internal/core/subject"
	"github.com/tomsdev9/legalrecours/internal/core/template"
	"github.com/tomsdev9/legalrecours/internal/core/textguard"
)

// GenerateLetterUseCase runs the whole pipeline for one request: validation,
// template rendering, token protection, external revision (with fallback),
// sanitization, subject/meta derivation and document rendering. Requests are
// independent; the use case holds no mutable state.
type GenerateLetterUseCase struct {
	reviser  ports.LetterReviser
	renderer ports.DocumentRenderer
	storage  ports.ObjectStorage
	repo     ports.DocumentRepository
	now      func() time.Time
}

func NewGenerateLetterUseCase(
	reviser ports.LetterReviser,
	renderer ports.DocumentRenderer,
	storage ports.ObjectStorage,
	repo ports.DocumentRepository,
) *GenerateLetterUseCase {
	return &GenerateLetterUseCase{
		reviser:  reviser,
		renderer: renderer,
		storage:  storage,
		repo:     repo,
		now:      time.Now,
	}
}

// Generate produces and stores the final PDF. The external revision call is
// the only step allowed to fail without failing the request: its error is
// logged and the sanitized deterministic draft is used instead.
func (uc *GenerateLetterUseCase) Generate(ctx context.Context, req domain.LetterRequest) (*ports.GenerationResult, error) {
	return uc.GenerateWithID(ctx, uuid.NewString(), req)
}

// GenerateWithID runs the pipeline under a caller-allocated document id (the
// worker allocates the id at publish time so the download link is known
// before generation completes).
func (uc *GenerateLetterUseCase) GenerateWithID(ctx context.Context, documentID string, req domain.LetterRequest) (*ports.GenerationResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	letter, err := uc.assemble(ctx, req)
	if err != nil {
		return nil, err
	}

	pdfBytes, err := uc.renderer.RenderDocument(*letter)
	if err != nil {
		return nil, fmt.Errorf("render document: %w", err)
	}

	now := uc.now().UTC()
	doc := &domain.GeneratedDocument{
		ID:         documentID,
		CaseID:     req.CaseID,
		Organism:   req.Organism,
		Filename:   domain.DownloadFilename(req.CaseID),
		StorageKey: documentID + ".pdf",
		Status:     domain.DocumentReady,
		Degraded:   letter.Degraded,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.storage.Save(ctx, doc.StorageKey, bytes.NewReader(pdfBytes)); err != nil {
		return nil, fmt.Errorf("store document: %w", err)
	}
	if err := uc.repo.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("record document metadata: %w", err)
	}

	return &ports.GenerationResult{
		Document: doc,
		PDF:      pdfBytes,
		Degraded: letter.Degraded,
	}, nil
}

// ProcessJob runs a queued generation and, when the pipeline fails, records
// a failed document under the job's id. The success page polls that id: a
// failed record is what separates "failed forever" from "still generating".
func (uc *GenerateLetterUseCase) ProcessJob(ctx context.Context, job ports.GenerationJob) error {
	_, err := uc.GenerateWithID(ctx, job.DocumentID, job.Request)
	if err == nil {
		return nil
	}

	now := uc.now().UTC()
	failed := &domain.GeneratedDocument{
		ID:        job.DocumentID,
		CaseID:    job.Request.CaseID,
		Organism:  job.Request.Organism,
		Filename:  domain.DownloadFilename(job.Request.CaseID),
		Status:    domain.DocumentFailed,
		Error:     err.Error(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if recordErr := uc.repo.Create(ctx, failed); recordErr != nil {
		slog.Error("record_failed_document", "document_id", job.DocumentID, "error", recordErr)
	}
	return err
}

// Preview returns subject, meta, destination and attachments without the
// body, so the caller can show what the paid letter covers.
func (uc *GenerateLetterUseCase) Preview(_ context.Context, req domain.LetterRequest) (*ports.Preview, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	return &ports.Preview{
		Subject:     subject.ForCase(req.CaseID, req.Context),
		MetaLines:   metaLines(req),
		DestLines:   template.DestinationForOrganism(req.Organism),
		DateLine:    uc.dateLine(req.User.City),
		Attachments: subject.Attachments(req.CaseID, req.Organism, req.Context),
	}, nil
}

func (uc *GenerateLetterUseCase) assemble(ctx context.Context, req domain.LetterRequest) (*domain.RenderedLetter, error) {
	draft, destLines, err := template.BuildDraft(req)
	if err != nil {
		return nil, err
	}

	protected := textguard.Protect(draft)

	degraded := false
	revised, err := uc.reviser.Revise(ctx, protected, req.Organism, req.CaseID)
	if err != nil {
		slog.Warn("revision_fallback", "case_id", req.CaseID, "error", err)
		revised = protected
		degraded = true
	}

	body := textguard.Sanitize(textguard.Unprotect(revised))

	return &domain.RenderedLetter{
		Sender:    req.User,
		DestLines: destLines,
		DateLine:  uc.dateLine(req.User.City),
		Subject:   subject.ForCase(req.CaseID, req.Context),
		MetaLines: metaLines(req),
		Body:      body,
		SignName:  req.User.FullName(),
		Degraded:  degraded,
	}, nil
}

func (uc *GenerateLetterUseCase) dateLine(city string) string {
	return fmt.Sprintf("À %s, le %s", city, frenchLongDate(uc.now()))
}

// validateRequest is the fail-fast gate: nothing is sent to the external
// revision call until the request is known to be renderable.
func validateRequest(req domain.LetterRequest) error {
	if !req.Organism.Valid() || !domain.ValidPair(req.Organism, req.CaseID) {
		return domain.WrapError(domain.ErrUnknownCase, "validate request",
			fmt.Errorf("organism %q, case %q", req.Organism, req.CaseID))
	}

	missing, invalid := domain.ValidateContext(req.CaseID, req.Context)
	identityBad := req.User.Validate()
	if len(missing) > 0 || len(invalid) > 0 || len(identityBad) > 0 {
		return &domain.ValidationError{
			MissingFields: append(missing, identityBad...),
			InvalidFields: invalid,
		}
	}
	return nil
}

// metaLines assembles the compact reference block shown under the subject:
// case reference, per-case amount line, decision date and the organism
// specific identifier when supplied.
func metaLines(req domain.LetterRequest) []string {
	var lines []string

	if ref := req.Context.String("referenceNumber", ""); ref != "" {
		lines = append(lines, "Référence dossier : "+ref)
	}
	if line := amountLine(req.CaseID, req.Context); line != "" {
		lines = append(lines, line)
	}
	if date := req.Context.String("decisionDate", ""); date != "" {
		lines = append(lines, "Décision du : "+frenchShortDate(date))
	}
	if id := req.User.OrganismID(req.Organism); id != "" {
		switch req.Organism {
		case domain.OrganismCAF:
			lines = append(lines, "N° allocataire : "+id)
		case domain.OrganismCPAM:
			lines = append(lines, "N° de Sécurité sociale : "+id)
		case domain.OrganismPoleEmploi:
			lines = append(lines, "Identifiant France Travail : "+id)
		}
	}
	return lines
}

// amountLine picks the amount wording appropriate to the case. Cases with no
// meaningful amount return "".
func amountLine(id domain.CaseID, ctx domain.ContextData) string {
	firstAmount := func(ids ...string) string {
		for _, fieldID := range ids {
			if v := fmtEUR(ctx.Number(fieldID)); v != "" {
				return v
			}
		}
		return ""
	}

	switch id {
	case domain.CaseCAFNonVersement:
		if v := firstAmount("expectedAmount", "amount"); v != "" {
			return "Montant attendu : " + v
		}
	case domain.CaseCAFTropPercu, domain.CasePETropPercu:
		if v := firstAmount("amount"); v != "" {
			return "Montant du trop-perçu : " + v
		}
	case domain.CaseCAFRemiseDette:
		if v := firstAmount("amount"); v != "" {
			return "Montant de la dette : " + v
		}
	case domain.CaseCAFMontantErr:
		if v := firstAmount("amountDiff", "amount"); v != "" {
			return "Écart constaté : " + v
		}
	case domain.CaseCPAMRetardRemboursement, domain.CaseCPAMRefusRemboursement:
		if v := firstAmount("expectedAmount", "amount"); v != "" {
			return "Montant attendu : " + v
		}
	case domain.CasePERefusIndemnisation:
		if v := firstAmount("amount"); v != "" {
			return "Montant concerné : " + v
		}
	}
	return ""
}
