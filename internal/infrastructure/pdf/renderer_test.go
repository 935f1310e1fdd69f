package pdf

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	lpdf "github.com/ledongthuc/pdf"

	"github.com/tomsdev9/legalrecours/internal/core/domain"
)

func sampleLetter(body string) domain.RenderedLetter {
	return domain.RenderedLetter{
		Sender: domain.UserIdentity{
			FirstName: "Marie",
			LastName:  "Dupont",
			Address:   "12 rue des Lilas",
			City:      "Lyon",
			ZipCode:   "69003",
			Email:     "marie.dupont@example.org",
		},
		DestLines: []string{"Caisse d'Allocations Familiales", "Service contentieux", "69409 Lyon Cedex 03"},
		DateLine:  "À Lyon, le 15 mars 2025",
		Subject:   "Contestation de trop-perçu CAF – réf. 12345678",
		MetaLines: []string{"Référence dossier : 12345678", "Montant contesté : 1 240,50 €"},
		Body:      body,
		SignName:  "Marie Dupont",
	}
}

func extractText(t *testing.T, raw []byte) string {
	t.Helper()
	reader, err := lpdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		t.Fatalf("read pdf: %v", err)
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		t.Fatalf("extract text: %v", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		t.Fatalf("copy text: %v", err)
	}
	return buf.String()
}

func TestRenderDocumentContainsLetterParts(t *testing.T) {
	body := "Madame, Monsieur,\n\nJe conteste la décision du 12/03/2025 portant la référence 12345678.\n\nJe vous demande un réexamen de ma situation."
	raw, err := NewRenderer().RenderDocument(sampleLetter(body))
	if err != nil {
		t.Fatalf("RenderDocument() error = %v", err)
	}
	if !bytes.HasPrefix(raw, []byte("%PDF-")) {
		t.Fatalf("output is not a pdf, starts with %q", raw[:8])
	}

	text := extractText(t, raw)
	for _, want := range []string{
		"Marie Dupont",
		"12345678",
		"12/03/2025",
		"Objet",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("rendered pdf missing %q", want)
		}
	}
}

func TestRenderDocumentPaginatesLongBody(t *testing.T) {
	paragraph := "Je conteste la décision rendue par votre organisme et je demande un réexamen complet de ma situation au regard des éléments transmis."
	body := strings.Repeat(paragraph+"\n\n", 30)

	raw, err := NewRenderer().RenderDocument(sampleLetter(body))
	if err != nil {
		t.Fatalf("RenderDocument() error = %v", err)
	}
	reader, err := lpdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		t.Fatalf("read pdf: %v", err)
	}
	if reader.NumPage() < 2 {
		t.Fatalf("expected pagination, got %d page(s)", reader.NumPage())
	}

	total := reader.NumPage()
	for n := 1; n <= total; n++ {
		pageText, err := reader.Page(n).GetPlainText(nil)
		if err != nil {
			t.Fatalf("extract page %d text: %v", n, err)
		}
		footer := fmt.Sprintf("Page %d / %d", n, total)
		if !strings.Contains(pageText, footer) {
			t.Errorf("page %d missing footer %q", n, footer)
		}
		if strings.Contains(pageText, "{nb}") {
			t.Errorf("page %d footer still carries the unresolved page-count alias", n)
		}
	}
}

func TestSplitParagraphs(t *testing.T) {
	got := splitParagraphs("premier\nparagraphe\n\n\nsecond paragraphe\n\n  \n")
	want := []string{"premier paragraphe", "second paragraphe"}
	if len(got) != len(want) {
		t.Fatalf("splitParagraphs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("paragraph %d = %q, want %q", i, got[i], want[i])
		}
	}
}
