// Package subject derives the letter subject line and the recommended
// attachments checklist from static per-case tables. All functions are pure
// and total over the closed case set.
package subject

import (
	"strings"

	"github.com/tomsdev9/legalrecours/internal/core/domain"
)

var subjectsByCase = map[domain.CaseID]string{
	domain.CaseCAFTropPercu:    "Contestation de trop-perçu CAF",
	domain.CaseCAFNonVersement: "Réclamation non-versement de prestation CAF",
	domain.CaseCAFRemiseDette:  "Demande de remise de dette CAF",
	domain.CaseCAFMontantErr:   "Contestation d’erreur de calcul CAF",

	domain.CaseCPAMRetardRemboursement: "Réclamation retard de remboursement CPAM",
	domain.CaseCPAMRefusRemboursement:  "Contestation refus de remboursement CPAM",
	domain.CaseCPAMRefusArretTravail:   "Contestation décision médecin-conseil (arrêt travail)",
	domain.CaseCPAMFeuilleSoins:        "Remboursement feuille de soins – demande de régularisation",

	domain.CasePERadiation:          "Contestation de radiation France Travail",
	domain.CasePEObservations:       "Observations écrites – réponse à mise en demeure",
	domain.CasePETropPercu:          "Contestation de trop-perçu France Travail",
	domain.CasePERefusIndemnisation: "Contestation refus d’indemnisation ARE",
	domain.CasePEAttestationEmp:     "Attestation employeur manquante – demande de régularisation",
}

const subjectDefault = "Recours amiable – demande de réexamen"

// ForCase returns the subject line for a case, suffixed with the reference
// number when the user supplied one.
func ForCase(id domain.CaseID, ctx domain.ContextData) string {
	base, ok := subjectsByCase[id]
	if !ok {
		base = subjectDefault
	}
	if ref := strings.TrimSpace(ctx.String("referenceNumber", "")); ref != "" {
		return base + " – réf. " + ref
	}
	return base
}
