package template

import (
	"fmt"

	"github.com/tomsdev9/legalrecours/internal/core/domain"
)

// Sign-off present in every raw template. The sanitization layer strips it
// from the revised body because the document renderer adds its own.
const baseSignoff = "Je vous prie d’agréer, Madame, Monsieur, l’expression de mes salutations distinguées."

func commonHeader(org domain.Organism) string {
	return fmt.Sprintf("Madame, Monsieur,\n\nJe vous écris concernant mon dossier auprès de %s.", org.DisplayName())
}

// DestinationForOrganism returns the recipient address block lines.
func DestinationForOrganism(org domain.Organism) []string {
	switch org {
	case domain.OrganismCAF:
		return []string{
			"À l’attention du Service Recours Amiable",
			"Caisse d’Allocations Familiales",
		}
	case domain.OrganismCPAM:
		return []string{
			"À l’attention du Service Prestations",
			"Caisse Primaire d’Assurance Maladie",
		}
	case domain.OrganismPoleEmploi:
		return []string{
			"À l’attention du Directeur d’Agence / Service Indemnisation",
			"France Travail",
		}
	default:
		return nil
	}
}

var tplCAFTropPercu = commonHeader(domain.OrganismCAF) + `

J’ai reçu le courrier référencé {{referenceNumber}} en date du {{decisionDate}}, m’informant d’un **trop-perçu** d’un montant de {{amount}} €{{periodLine}}.

Motif indiqué : {{reasonGiven}}

**Ma situation réelle :**
{{yourExplanation}}

Au vu de ces éléments, je vous demande **{{desiredOutcomeText}}**. {{suspension}}
` + baseSignoff

var tplCAFNonVersement = commonHeader(domain.OrganismCAF) + `

La prestation **{{benefit}}** n’a pas été versée, malgré la notification datée du {{decisionDate}} (réf. {{referenceNumber}}){{expectedAmountLine}}.

Motif indiqué : {{reasonGiven}}

**Ma situation réelle :**
{{yourExplanation}}

Je vous demande **la régularisation du paiement et le versement des éventuels arriérés**.
` + baseSignoff

var tplCAFRemiseDette = commonHeader(domain.OrganismCAF) + `

Je sollicite une **remise de dette** d’un montant de {{amount}} € (réf. {{referenceNumber}}, du {{decisionDate}}).

**Difficultés financières** :
{{financialHardship}}

Je demande : **{{desiredOutcomeText}}**.
` + baseSignoff

var tplCAFMontantErreur = commonHeader(domain.OrganismCAF) + `

Je constate une **erreur de calcul** sur ma prestation (réf. {{referenceNumber}}, du {{decisionDate}}). L’écart relevé est de **{{amountDiff}} €**.

Motif indiqué : {{reasonGiven}}

**Ma situation réelle :**
{{yourExplanation}}

Je vous demande **correction et rattrapage des montants**.
` + baseSignoff

var tplCPAMRetardRemboursement = commonHeader(domain.OrganismCPAM) + `

Mes soins du {{careDate}} n’ont pas été remboursés à ce jour (réf. {{referenceNumber}}, notification du {{decisionDate}}){{expectedAmountLine}}.

**Explications complémentaires** :
{{yourExplanation}}

Je vous demande **traitement rapide et remboursement**.
` + baseSignoff

var tplCPAMRefusRemboursement = commonHeader(domain.OrganismCPAM) + `

Je conteste le **refus de remboursement** concernant {{actType}} (réf. {{referenceNumber}}, du {{decisionDate}}).

Motif indiqué : {{reasonGiven}}

**Éléments utiles** :
{{yourExplanation}}

Je sollicite **réexamen motivé** et **prise en charge** si justifiée.
` + baseSignoff

var tplCPAMRefusArretTravail = commonHeader(domain.OrganismCPAM) + `

Je conteste la **décision du médecin-conseil** refusant l’indemnisation de mon **arrêt de travail** (du {{workStopStart}} au {{workStopEnd}}) (réf. {{referenceNumber}}, du {{decisionDate}}).

Motif indiqué : {{reasonGiven}}

**Éléments utiles** :
{{yourExplanation}}

Je sollicite **réexamen** et indemnisation si fondée.
` + baseSignoff

var tplCPAMFeuilleSoins = commonHeader(domain.OrganismCPAM) + `

Je vous informe d’un **problème de remboursement** lié à une **feuille de soins papier** transmise (réf. {{referenceNumber}}, du {{decisionDate}}).

**Éléments utiles** :
{{yourExplanation}}

Je vous demande **traitement et régularisation**. Je joins, le cas échéant, la **feuille de soins originale**.
` + baseSignoff

var tplPERadiation = commonHeader(domain.OrganismPoleEmploi) + `

Je **conteste la radiation** prononcée (réf. {{referenceNumber}}, du {{decisionDate}}).

Motif indiqué : {{radiationReason}}

**Ma situation réelle :**
{{yourExplanation}}

Je demande **annulation de la décision** et **rétablissement de mes droits**.
` + baseSignoff

var tplPEObservations = commonHeader(domain.OrganismPoleEmploi) + `

Suite à la **mise en demeure** du {{miseEnDemeureDate}} (réf. {{referenceNumber}}), voici mes **observations** :

{{observations}}

Je reste disponible pour tout complément.
` + baseSignoff

var tplPETropPercu = commonHeader(domain.OrganismPoleEmploi) + `

Je conteste un **trop-perçu** d’un montant de {{amount}} € (réf. {{referenceNumber}}, du {{decisionDate}}).

Motif indiqué : {{reasonGiven}}

**Ma situation réelle :**
{{yourExplanation}}

Je demande **{{desiredOutcomeText}}** et **suspension du recouvrement** durant l’étude.
` + baseSignoff

var tplPERefusIndemnisation = commonHeader(domain.OrganismPoleEmploi) + `

Je conteste le **refus d’indemnisation ARE** (réf. {{referenceNumber}}, du {{decisionDate}}). Mon dernier contrat s’est terminé le {{lastEmploymentEnd}}.

Motif indiqué : {{reasonGiven}}

**Éléments utiles :**
{{yourExplanation}}

Je demande **réexamen prioritaire** et **ouverture des droits** si fondée.
` + baseSignoff

var tplPEAttestationEmployeur = commonHeader(domain.OrganismPoleEmploi) + `

Mon dossier est bloqué faute d’**attestation employeur** ({{employerName}}) (réf. {{referenceNumber}}, du {{decisionDate}}).

**Relances effectuées** :
{{relances}}

Je sollicite **assistance** pour régulariser la situation.
` + baseSignoff

var templatesByCase = map[domain.CaseID]string{
	domain.CaseCAFTropPercu:    tplCAFTropPercu,
	domain.CaseCAFNonVersement: tplCAFNonVersement,
	domain.CaseCAFRemiseDette:  tplCAFRemiseDette,
	domain.CaseCAFMontantErr:   tplCAFMontantErreur,

	domain.CaseCPAMRetardRemboursement: tplCPAMRetardRemboursement,
	domain.CaseCPAMRefusRemboursement:  tplCPAMRefusRemboursement,
	domain.CaseCPAMRefusArretTravail:   tplCPAMRefusArretTravail,
	domain.CaseCPAMFeuilleSoins:        tplCPAMFeuilleSoins,

	domain.CasePERadiation:          tplPERadiation,
	domain.CasePEObservations:       tplPEObservations,
	domain.CasePETropPercu:          tplPETropPercu,
	domain.CasePERefusIndemnisation: tplPERefusIndemnisation,
	domain.CasePEAttestationEmp:     tplPEAttestationEmployeur,
}

// ForCase returns the raw letter template for a case id. The set of cases is
// closed; an unknown id is a configuration error, not user input.
func ForCase(id domain.CaseID) (string, error) {
	tpl, ok := templatesByCase[id]
	if !ok {
		return "", domain.WrapError(domain.ErrUnknownCase, "select template", fmt.Errorf("case %q", id))
	}
	return tpl, nil
}
