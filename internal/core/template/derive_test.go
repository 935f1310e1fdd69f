package template

import (
	"strings"
	"testing"

	"github.com/tomsdev9/legalrecours/internal/core/domain"
)

func TestEveryCaseHasTemplate(t *testing.T) {
	for _, c := range domain.AllCases() {
		if _, err := ForCase(c.ID); err != nil {
			t.Errorf("no template for case %s: %v", c.ID, err)
		}
	}
}

func TestForCaseUnknownID(t *testing.T) {
	_, err := ForCase("NOPE")
	if !domain.IsKind(err, domain.ErrUnknownCase) {
		t.Fatalf("expected unknown-case error, got %v", err)
	}
}

func TestBuildDraftLeavesNoPlaceholders(t *testing.T) {
	ctx := domain.ContextData{
		"decisionDate":      "2025-03-12",
		"referenceNumber":   "INS 0001",
		"amount":            "650",
		"amountDiff":        "120",
		"period":            "janvier à mars 2025",
		"reasonGiven":       "changement de situation non déclaré",
		"yourExplanation":   "le changement a été déclaré en ligne le 3 janvier",
		"financialHardship": "revenus limités au RSA",
		"careDate":          "2025-02-10",
		"actType":           "une consultation spécialiste",
		"workStopStart":     "2025-01-06",
		"radiationReason":   "absence à convocation",
		"miseEnDemeureDate": "2025-02-20",
		"observations":      "je me suis présenté à l'agence",
		"lastEmploymentEnd": "2024-12-31",
		"employerName":      "Transports Morel",
		"relances":          "deux courriels et un appel",
		"benefit":           "apl",
		"priorSteps":        "reclamation",
		"desiredOutcome":    "reexamen",
	}

	for _, c := range domain.AllCases() {
		draft, destLines, err := BuildDraft(domain.LetterRequest{
			Organism: c.Organism,
			CaseID:   c.ID,
			Context:  ctx,
		})
		if err != nil {
			t.Fatalf("BuildDraft(%s) error = %v", c.ID, err)
		}
		if strings.Contains(draft, "{{") || strings.Contains(draft, "}}") {
			t.Errorf("case %s: unresolved placeholder in draft:\n%s", c.ID, draft)
		}
		if len(destLines) == 0 {
			t.Errorf("case %s: empty destination block", c.ID)
		}
		if !strings.HasPrefix(draft, "Madame, Monsieur,") {
			t.Errorf("case %s: draft does not open with the salutation", c.ID)
		}
	}
}

func TestBuildDraftTropPercuDetails(t *testing.T) {
	draft, _, err := BuildDraft(domain.LetterRequest{
		Organism: domain.OrganismCAF,
		CaseID:   domain.CaseCAFTropPercu,
		Context: domain.ContextData{
			"decisionDate":    "2025-03-12",
			"referenceNumber": "INS 0001",
			"amount":          "650",
			"period":          "janvier à mars 2025",
			"reasonGiven":     "ressources sous-estimées",
			"yourExplanation": "mes ressources étaient déclarées correctement",
			"desiredOutcome":  "annulation",
		},
	})
	if err != nil {
		t.Fatalf("BuildDraft() error = %v", err)
	}
	for _, want := range []string{
		"pour la période janvier à mars 2025",
		"l’annulation du trop-perçu",
		"suspension du recouvrement",
		"INS 0001",
	} {
		if !strings.Contains(draft, want) {
			t.Errorf("draft missing %q:\n%s", want, draft)
		}
	}
}

func TestBuildDraftOmitsOptionalLines(t *testing.T) {
	draft, _, err := BuildDraft(domain.LetterRequest{
		Organism: domain.OrganismCAF,
		CaseID:   domain.CaseCAFTropPercu,
		Context: domain.ContextData{
			"decisionDate":    "2025-03-12",
			"referenceNumber": "INS 0001",
			"amount":          "650",
			"reasonGiven":     "motif",
			"yourExplanation": "explication",
		},
	})
	if err != nil {
		t.Fatalf("BuildDraft() error = %v", err)
	}
	if strings.Contains(draft, "pour la période") {
		t.Fatalf("period line should be absent without period context:\n%s", draft)
	}
	// Unknown outcome code falls back to the trop-perçu default.
	if !strings.Contains(draft, "une remise gracieuse ou un échéancier") {
		t.Fatalf("expected default outcome phrase:\n%s", draft)
	}
}

func TestOutcomeTextTables(t *testing.T) {
	cases := []struct {
		id   domain.CaseID
		code string
		want string
	}{
		{domain.CaseCAFTropPercu, "annulation", "l’annulation du trop-perçu"},
		{domain.CaseCAFTropPercu, "autre", "une remise gracieuse ou un échéancier"},
		{domain.CasePETropPercu, "reexamen", "un réexamen de mon dossier"},
		{domain.CaseCAFRemiseDette, "totale", "une remise totale de la dette"},
		{domain.CaseCAFRemiseDette, "echeancier", "un échéancier de paiement"},
		{domain.CasePERefusIndemnisation, "ouverture", "l’ouverture de droits ARE"},
		{domain.CaseCAFMontantErr, "", "un réexamen de la situation"},
	}
	for _, tc := range cases {
		if got := OutcomeText(tc.id, tc.code); got != tc.want {
			t.Errorf("OutcomeText(%s, %q) = %q, want %q", tc.id, tc.code, got, tc.want)
		}
	}
}

func TestPriorStepsLabelFallback(t *testing.T) {
	if got := PriorStepsLabel("appel"); got != "Appel / Téléphone" {
		t.Fatalf("PriorStepsLabel(appel) = %q", got)
	}
	if got := PriorStepsLabel("fax"); got != "Non précisé" {
		t.Fatalf("PriorStepsLabel(fax) = %q", got)
	}
}

func TestDestinationForOrganismUsesRebrandedName(t *testing.T) {
	lines := DestinationForOrganism(domain.OrganismPoleEmploi)
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "France Travail") {
		t.Fatalf("destination block should use France Travail, got %q", joined)
	}
	if strings.Contains(joined, "Pôle emploi") {
		t.Fatalf("legacy name must not appear, got %q", joined)
	}
}
