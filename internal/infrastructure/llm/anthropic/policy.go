package anthropic

import (
	"strings"

	"github.com/tomsdev9/legalrecours/internal/core/domain"
)

// Style directives assembled into the system prompt. The tables are keyed by
// the closed organism/case enums; adding a case means adding its directives
// here, which the invariant tests check.

var basePolicy = []string{
	"Tu es juriste en droit administratif français.",
	"Tu améliores un courrier déjà rédigé : ton formel, clair, non agressif.",
	"N'invente AUCUN fait. Ne modifie pas montants, dates, numéros, références (protégés entre [[...]]).",
	"Ne cite pas d’articles de loi non fournis par le brouillon.",
	// Le rendu PDF ajoute déjà Objet, politesse et signature.
	"NE crée PAS de ligne « Objet ». N’ajoute PAS de formule de politesse ni de signature.",
	"Pas de titres, pas de listes, pas de markdown.",
	"Paragraphes simples uniquement, 120 à 170 mots maximum (si plus long, résume et fusionne).",
}

var organismPolicies = map[domain.Organism][]string{
	domain.OrganismCAF: {
		"Structure courte : faits → désaccord → demande (annulation/réexamen/remise/échéancier).",
		"Mentionne la suspension du recouvrement pendant réexamen si pertinent.",
	},
	domain.OrganismCPAM: {
		"Reste factuel sur soins/arrêts, n’ajoute aucun acte non mentionné.",
		"Demande un réexamen motivé et remboursement/prise en charge si justifié.",
	},
	domain.OrganismPoleEmploi: {
		"Rappelle la volonté de respecter les obligations, conteste si inexact.",
		"Pour radiation/refus ARE : demande réexamen prioritaire et rétablissement des droits si fondé.",
	},
}

var casePolicies = map[domain.CaseID][]string{
	domain.CaseCAFTropPercu: {
		"Demande l’annulation du trop-perçu s’il est contesté, sinon remise gracieuse/échéancier selon situation.",
		"Demande la suspension du recouvrement pendant l’instruction.",
	},
	domain.CaseCAFNonVersement: {
		"Demande le versement des arriérés et la régularisation des droits.",
		"Rappelle brièvement la chronologie et la prestation concernée.",
	},
	domain.CaseCAFRemiseDette: {
		"Mets en avant les difficultés financières, propose un échéancier si besoin.",
		"Reste factuel sur le montant et la cause de la dette (sans la contester ici).",
	},
	domain.CaseCAFMontantErr: {
		"Souligne l’écart entre montant attendu et perçu, demande correction et rattrapage.",
		"Rappelle les éléments factuels (ressources/périodes) sans en inventer.",
	},
	domain.CaseCPAMRetardRemboursement: {
		"Demande un traitement rapide du remboursement.",
		"Rappelle la date des soins et, si connu, le montant attendu.",
	},
	domain.CaseCPAMRefusRemboursement: {
		"Conteste le refus avec les éléments fournis, sans inventer d’actes.",
		"Demande un réexamen motivé et la prise en charge si justifiée.",
	},
	domain.CaseCPAMRefusArretTravail: {
		"Reste sobre sur l’état de santé, conteste la décision du médecin-conseil.",
		"Demande réexamen/avis complémentaire et indemnisation si fondée.",
	},
	domain.CaseCPAMFeuilleSoins: {
		"Rappelle l’envoi de la feuille de soins papier.",
		"Demande traitement/régularisation et, le cas échéant, remboursement.",
	},
	domain.CasePERadiation: {
		"Conteste la radiation, explique la situation réelle (empêchement, justificatif…).",
		"Demande annulation de la décision et rétablissement des droits.",
	},
	domain.CasePEObservations: {
		"Formule des observations courtes et précises en réponse à la mise en demeure (délai 10 jours).",
		"Réponds point par point aux griefs sans en ajouter.",
	},
	domain.CasePETropPercu: {
		"Demande annulation si non fondé ; sinon remise gracieuse/échéancier selon la situation.",
		"Demande suspension du recouvrement pendant l’étude.",
	},
	domain.CasePERefusIndemnisation: {
		"Conteste le refus ARE avec les faits fournis.",
		"Demande réexamen prioritaire et ouverture des droits si fondé.",
	},
	domain.CasePEAttestationEmp: {
		"Demande assistance pour obtenir l’attestation employeur manquante et régulariser.",
		"Mentionne les relances déjà faites de façon factuelle.",
	},
}

// CasePolicies exposes the table for invariant tests.
func CasePolicies() map[domain.CaseID][]string {
	return casePolicies
}

// buildSystem assembles the directive list for one (organism, case) pair.
// Unknown keys contribute nothing rather than failing: the revision call is
// best-effort by contract.
func buildSystem(org domain.Organism, caseID domain.CaseID) string {
	lines := make([]string, 0, len(basePolicy)+4)
	lines = append(lines, basePolicy...)
	lines = append(lines, organismPolicies[org]...)
	lines = append(lines, casePolicies[caseID]...)

	var b strings.Builder
	for _, line := range lines {
		b.WriteString("- ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
