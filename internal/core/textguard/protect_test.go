package textguard

import (
	"strings"
	"testing"
)

func TestProtectWrapsDatesAmountsAndReferences(t *testing.T) {
	in := "Votre courrier réf. INS0001 du 12/03/2025 mentionne 1 240,50 € à rembourser avant le 2025-04-30."
	got := Protect(in)

	for _, want := range []string{
		"[[réf. INS0001]]",
		"[[12/03/2025]]",
		"[[1 240,50 €]]",
		"[[2025-04-30]]",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Protect() missing %q in %q", want, got)
		}
	}
}

func TestProtectLabeledReferenceVariants(t *testing.T) {
	cases := map[string]string{
		"dossier N° 12345678 en cours":  "[[N° 12345678]]",
		"la Réf. DCM/2025/123456 citée": "[[Réf. DCM/2025/123456]]",
		"numéro RADI-10J est mentionné": "[[numéro RADI-10J]]",
		"votre réf ABC-12 sans point":   "[[réf ABC-12]]",
	}
	for in, want := range cases {
		if got := Protect(in); !strings.Contains(got, want) {
			t.Errorf("Protect(%q) = %q, want to contain %q", in, got, want)
		}
	}
}

func TestUnprotectIsInverseOfProtect(t *testing.T) {
	inputs := []string{
		"Je conteste la décision du 12/03/2025 (réf. INS 0001) portant sur 650 €.",
		"Aucun motif protégeable ici.",
		"Montants multiples : 650 €, 1 240,50 € et 12 €.",
		"Dates mixtes 1/2/25 et 2025-01-02.",
	}
	for _, in := range inputs {
		if got := Unprotect(Protect(in)); got != in {
			t.Errorf("round trip changed text:\n in: %q\nout: %q", in, got)
		}
	}
}

func TestUnprotectRemovesMarkersFromRevisedText(t *testing.T) {
	in := "La décision du [[12/03/2025]] et le montant de [[650 €]] restent contestés."
	want := "La décision du 12/03/2025 et le montant de 650 € restent contestés."
	if got := Unprotect(in); got != want {
		t.Fatalf("Unprotect() = %q, want %q", got, want)
	}
}
