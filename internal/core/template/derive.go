package template

import (
	"strings"

	"github.com/tomsdev9/legalrecours/internal/core/domain"
)

// Derived-field lookup tables. Every table carries an explicit default so a
// raw internal code never reaches the letter text.

var priorStepsLabels = map[string]string{
	"aucune":      "Aucune",
	"reclamation": "Réclamation simple",
	"appel":       "Appel / Téléphone",
	"mail":        "Mail / Espace en ligne",
}

const priorStepsDefault = "Non précisé"

// PriorStepsLabel maps a prior-steps channel code to its letter phrase.
func PriorStepsLabel(code string) string {
	if label, ok := priorStepsLabels[strings.TrimSpace(code)]; ok {
		return label
	}
	return priorStepsDefault
}

var benefitLabels = map[string]string{
	"apl":   "APL",
	"rsa":   "RSA",
	"prime": "Prime d’activité",
}

const benefitDefault = "concernée"

func benefitLabel(code string) string {
	if label, ok := benefitLabels[strings.TrimSpace(code)]; ok {
		return label
	}
	return benefitDefault
}

var tropPercuOutcomes = map[string]string{
	"annulation": "l’annulation du trop-perçu",
	"reexamen":   "un réexamen de mon dossier",
}

const tropPercuOutcomeDefault = "une remise gracieuse ou un échéancier"

var generalOutcomes = map[string]string{
	"annulation":    "l’annulation de la décision",
	"reexamen":      "un réexamen de ma situation",
	"remboursement": "le remboursement / rétablissement de mes droits",
	"ouverture":     "l’ouverture de droits ARE",
	"totale":        "une remise totale de la dette",
	"partielle":     "une remise partielle de la dette",
	"echeancier":    "un échéancier de paiement",
}

const generalOutcomeDefault = "un réexamen de la situation"

func isTropPercu(id domain.CaseID) bool {
	return id == domain.CaseCAFTropPercu || id == domain.CasePETropPercu
}

// OutcomeText maps a desired-outcome code to the free-text phrase used in the
// letter. Trop-perçu cases use a dedicated table.
func OutcomeText(id domain.CaseID, code string) string {
	code = strings.TrimSpace(code)
	if isTropPercu(id) {
		if text, ok := tropPercuOutcomes[code]; ok {
			return text
		}
		return tropPercuOutcomeDefault
	}
	if text, ok := generalOutcomes[code]; ok {
		return text
	}
	return generalOutcomeDefault
}

// BuildDraft selects the case template, computes derived fields and renders
// the letter draft. Required-field validation happens before this is called.
func BuildDraft(req domain.LetterRequest) (draft string, destLines []string, err error) {
	tpl, err := ForCase(req.CaseID)
	if err != nil {
		return "", nil, err
	}

	ctx := req.Context
	data := map[string]string{
		"referenceNumber":   ctx.String("referenceNumber", ""),
		"decisionDate":      ctx.String("decisionDate", ""),
		"amount":            ctx.String("amount", ""),
		"amountDiff":        ctx.String("amountDiff", ""),
		"period":            ctx.String("period", ""),
		"reasonGiven":       ctx.String("reasonGiven", ""),
		"yourExplanation":   ctx.String("yourExplanation", ""),
		"financialHardship": ctx.String("financialHardship", ""),
		"careDate":          ctx.String("careDate", ""),
		"actType":           ctx.String("actType", ""),
		"workStopStart":     ctx.String("workStopStart", ""),
		"radiationReason":   ctx.String("radiationReason", ""),
		"miseEnDemeureDate": ctx.String("miseEnDemeureDate", ""),
		"observations":      ctx.String("observations", ""),
		"lastEmploymentEnd": ctx.String("lastEmploymentEnd", ""),
		"employerName":      ctx.String("employerName", ""),
		"relances":          ctx.String("relances", ""),
		"proofs":            ctx.String("proofs", "—"),

		"benefit":            benefitLabel(ctx.String("benefit", "")),
		"priorStepsLabel":    PriorStepsLabel(ctx.String("priorSteps", "")),
		"desiredOutcomeText": OutcomeText(req.CaseID, ctx.String("desiredOutcome", "")),
	}

	if period := strings.TrimSpace(ctx.String("period", "")); period != "" {
		data["periodLine"] = ", pour la période " + period
	}
	if expected := strings.TrimSpace(ctx.String("expectedAmount", "")); expected != "" {
		data["expectedAmountLine"] = " (montant attendu : " + expected + " €)"
	}
	if end := strings.TrimSpace(ctx.String("workStopEnd", "")); end != "" {
		data["workStopEnd"] = end
	} else {
		data["workStopEnd"] = "à ce jour"
	}
	if isTropPercu(req.CaseID) {
		data["suspension"] = "Je sollicite la suspension du recouvrement pendant l’instruction."
	}

	return Cleanup(Render(tpl, data)), DestinationForOrganism(req.Organism), nil
}
