package subject

import (
	"strings"

	"github.com/tomsdev9/legalrecours/internal/core/domain"
)

var commonIdentityProofs = []string{
	"copie d’une pièce d’identité",
	"RIB",
}

// Attachments returns the recommended supporting documents for a case. A few
// entries are parameterized by context (decision date, reference, submission
// date). Unenumerated cases fall back to a generic list; the result is never
// empty.
func Attachments(id domain.CaseID, org domain.Organism, ctx domain.ContextData) []string {
	decisionCopy := "copie du courrier de décision"
	if ref := strings.TrimSpace(ctx.String("referenceNumber", "")); ref != "" {
		decisionCopy = "copie du courrier de décision (réf. " + ref + ")"
	}
	if date := strings.TrimSpace(ctx.String("decisionDate", "")); date != "" {
		decisionCopy += " daté du " + date
	}

	var specific []string
	switch id {
	case domain.CaseCAFTropPercu:
		specific = []string{
			decisionCopy,
			"copie d’un justificatif de domicile",
			"justificatifs de ressources/charges pertinentes",
			"relevé de situation CAF",
		}
	case domain.CaseCAFNonVersement:
		specific = []string{
			decisionCopy,
			"relevé de situation CAF",
			"justificatifs d’éligibilité (bail, attestation, etc.)",
		}
	case domain.CaseCAFRemiseDette:
		period := ""
		if p := strings.TrimSpace(ctx.String("period", "")); p != "" {
			period = " sur la période " + p
		}
		specific = []string{
			decisionCopy,
			"justificatifs de revenus (RSA, bulletins)",
			"justificatifs de charges (loyer/quittance, énergie, forfait mobile, accès internet" + period + ")",
		}
	case domain.CaseCAFMontantErr:
		specific = []string{
			decisionCopy,
			"éléments prouvant le montant correct (ressources/périodes)",
			"relevé de situation CAF",
		}
	case domain.CaseCPAMRetardRemboursement:
		specific = []string{
			decisionCopy,
			"justificatifs des soins (factures, ordonnances)",
			"relevé de prestations Ameli",
		}
	case domain.CaseCPAMRefusRemboursement:
		specific = []string{
			decisionCopy,
			"factures/ordonnances et justificatifs médicaux utiles",
			"relevé de prestations Ameli",
		}
	case domain.CaseCPAMRefusArretTravail:
		specific = []string{
			decisionCopy,
			"arrêt(s) de travail et pièces du médecin",
			"relevé d’indemnités journalières si dispo",
		}
	case domain.CaseCPAMFeuilleSoins:
		sheet := "copie de la feuille de soins papier"
		if sent := strings.TrimSpace(ctx.String("submissionDate", "")); sent != "" {
			sheet += " (envoyée le " + sent + ")"
		}
		specific = []string{
			sheet,
			"attestation de droits",
		}
	case domain.CasePERadiation:
		specific = []string{
			decisionCopy,
			"convocations/échanges, justificatifs d’empêchement le cas échéant",
			"attestations employeur utiles",
		}
	case domain.CasePEObservations:
		specific = []string{
			decisionCopy,
			"pièces répondant point par point aux griefs",
		}
	case domain.CasePETropPercu:
		specific = []string{
			decisionCopy,
			"relevés d’indemnisation",
			"justificatifs de situation et ressources",
		}
	case domain.CasePERefusIndemnisation:
		specific = []string{
			decisionCopy,
			"attestations employeur, contrats, bulletins, PPAE",
		}
	case domain.CasePEAttestationEmp:
		specific = []string{
			decisionCopy,
			"preuves des relances à l’employeur",
		}
	default:
		specific = []string{decisionCopy}
	}

	return append(specific, commonIdentityProofs...)
}
