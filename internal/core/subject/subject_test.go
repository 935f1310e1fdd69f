package subject

import (
	"strings"
	"testing"

	"github.com/tomsdev9/legalrecours/internal/core/domain"
)

func TestEveryCaseHasSubject(t *testing.T) {
	for _, c := range domain.AllCases() {
		got := ForCase(c.ID, nil)
		if got == "" || got == subjectDefault {
			t.Errorf("case %s has no dedicated subject", c.ID)
		}
	}
}

func TestForCaseAppendsReference(t *testing.T) {
	got := ForCase(domain.CaseCAFTropPercu, domain.ContextData{"referenceNumber": "INS 0001"})
	if got != "Contestation de trop-perçu CAF – réf. INS 0001" {
		t.Fatalf("ForCase() = %q", got)
	}

	bare := ForCase(domain.CaseCAFTropPercu, domain.ContextData{})
	if strings.Contains(bare, "réf.") {
		t.Fatalf("no reference suffix expected, got %q", bare)
	}
}

func TestForCaseUnknownFallsBack(t *testing.T) {
	if got := ForCase("NOPE", nil); got != subjectDefault {
		t.Fatalf("ForCase(unknown) = %q", got)
	}
}

func TestSubjectsUseRebrandedAgencyName(t *testing.T) {
	for _, id := range []domain.CaseID{domain.CasePERadiation, domain.CasePETropPercu} {
		got := ForCase(id, nil)
		if strings.Contains(got, "Pôle emploi") {
			t.Errorf("subject for %s uses legacy agency name: %q", id, got)
		}
	}
	if !strings.Contains(ForCase(domain.CasePERadiation, nil), "France Travail") {
		t.Errorf("radiation subject should name France Travail")
	}
}

func TestAttachmentsNeverEmptyAndEndWithIdentityProofs(t *testing.T) {
	for _, c := range domain.AllCases() {
		got := Attachments(c.ID, c.Organism, nil)
		if len(got) < 3 {
			t.Errorf("case %s: expected specific plus identity proofs, got %v", c.ID, got)
			continue
		}
		if got[len(got)-1] != "RIB" {
			t.Errorf("case %s: identity proofs should close the list, got %v", c.ID, got)
		}
	}
}

func TestAttachmentsParameterizedByContext(t *testing.T) {
	got := Attachments(domain.CaseCAFTropPercu, domain.OrganismCAF, domain.ContextData{
		"referenceNumber": "INS 0001",
		"decisionDate":    "2025-03-12",
	})
	first := got[0]
	if !strings.Contains(first, "INS 0001") || !strings.Contains(first, "2025-03-12") {
		t.Fatalf("decision copy should carry reference and date, got %q", first)
	}

	sheet := Attachments(domain.CaseCPAMFeuilleSoins, domain.OrganismCPAM, domain.ContextData{
		"submissionDate": "2025-02-01",
	})
	if !strings.Contains(sheet[0], "envoyée le 2025-02-01") {
		t.Fatalf("feuille de soins entry should carry submission date, got %q", sheet[0])
	}
}
