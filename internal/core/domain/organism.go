package domain

// Organism identifies the administration the letter is addressed to.
// The set is closed: every table keyed by Organism must cover all three.
type Organism string

const (
	OrganismCAF        Organism = "CAF"
	OrganismCPAM       Organism = "CPAM"
	OrganismPoleEmploi Organism = "POLE_EMPLOI"
)

func (o Organism) Valid() bool {
	switch o {
	case OrganismCAF, OrganismCPAM, OrganismPoleEmploi:
		return true
	default:
		return false
	}
}

// DisplayName is the name used inside letter bodies.
func (o Organism) DisplayName() string {
	switch o {
	case OrganismPoleEmploi:
		return "France Travail"
	default:
		return string(o)
	}
}

// CaseID identifies one dispute type. Closed set: adding a case requires
// updating the field schema, template, subject, attachments and policy tables,
// which the invariant tests enforce.
type CaseID string

const (
	CaseCAFTropPercu    CaseID = "CAF_TROP_PERCU"
	CaseCAFNonVersement CaseID = "CAF_NON_VERSEMENT"
	CaseCAFRemiseDette  CaseID = "CAF_REMISE_DETTE"
	CaseCAFMontantErr   CaseID = "CAF_MONTANT_ERREUR"

	CaseCPAMRetardRemboursement CaseID = "CPAM_RETARD_REMBOURSEMENT"
	CaseCPAMRefusRemboursement  CaseID = "CPAM_REFUS_REMBOURSEMENT"
	CaseCPAMRefusArretTravail   CaseID = "CPAM_REFUS_ARRET_TRAVAIL"
	CaseCPAMFeuilleSoins        CaseID = "CPAM_FEUILLE_SOINS"

	CasePERadiation          CaseID = "POLE_EMPLOI_RADIATION"
	CasePEObservations       CaseID = "POLE_EMPLOI_OBSERVATIONS"
	CasePETropPercu          CaseID = "POLE_EMPLOI_TROP_PERCU"
	CasePERefusIndemnisation CaseID = "POLE_EMPLOI_REFUS_INDEMNISATION"
	CasePEAttestationEmp     CaseID = "POLE_EMPLOI_ATTESTATION_EMPLOYEUR"
)

// CaseDefinition is static catalog data, defined at process start.
type CaseDefinition struct {
	ID          CaseID   `json:"id"`
	Organism    Organism `json:"organism"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
}

var caseCatalog = map[CaseID]CaseDefinition{
	CaseCAFTropPercu: {
		ID:          CaseCAFTropPercu,
		Organism:    OrganismCAF,
		Title:       "Contestation de trop-perçu",
		Description: "Vous contestez un trop-perçu (montant, période, motif) et demandez annulation/réexamen.",
	},
	CaseCAFNonVersement: {
		ID:          CaseCAFNonVersement,
		Organism:    OrganismCAF,
		Title:       "Réclamation non-versement",
		Description: "Une prestation (APL, RSA, Prime) n’a pas été versée ou avec du retard important.",
	},
	CaseCAFRemiseDette: {
		ID:          CaseCAFRemiseDette,
		Organism:    OrganismCAF,
		Title:       "Demande de remise de dette",
		Description: "Vous demandez une remise totale/partielle ou un échéancier pour une dette CAF.",
	},
	CaseCAFMontantErr: {
		ID:          CaseCAFMontantErr,
		Organism:    OrganismCAF,
		Title:       "Contestation de montant calculé",
		Description: "Vous estimez que le montant de votre prestation a été mal calculé (ressources, droit).",
	},
	CaseCPAMRetardRemboursement: {
		ID:          CaseCPAMRetardRemboursement,
		Organism:    OrganismCPAM,
		Title:       "Réclamation retard remboursement",
		Description: "Remboursement de soins très en retard, vous demandez un traitement rapide.",
	},
	CaseCPAMRefusRemboursement: {
		ID:          CaseCPAMRefusRemboursement,
		Organism:    OrganismCPAM,
		Title:       "Contestation refus de remboursement",
		Description: "Refus de prise en charge d’un acte/soin. Vous contestez et motivez avec justificatifs.",
	},
	CaseCPAMRefusArretTravail: {
		ID:          CaseCPAMRefusArretTravail,
		Organism:    OrganismCPAM,
		Title:       "Contestation décision médecin-conseil",
		Description: "Refus d’indemnisation d’un arrêt de travail : vous demandez réexamen/justifications.",
	},
	CaseCPAMFeuilleSoins: {
		ID:          CaseCPAMFeuilleSoins,
		Organism:    OrganismCPAM,
		Title:       "Remboursement feuille de soins",
		Description: "Problème avec une feuille de soins (papier), remboursement absent ou retardé.",
	},
	CasePERadiation: {
		ID:          CasePERadiation,
		Organism:    OrganismPoleEmploi,
		Title:       "Contestation de radiation",
		Description: "Vous contestez une radiation et demandez l’annulation/le réexamen de la décision.",
	},
	CasePEObservations: {
		ID:          CasePEObservations,
		Organism:    OrganismPoleEmploi,
		Title:       "Observations écrites (10 jours)",
		Description: "Réponse à mise en demeure/observations dans le délai imparti (10 jours).",
	},
	CasePETropPercu: {
		ID:          CasePETropPercu,
		Organism:    OrganismPoleEmploi,
		Title:       "Contestation de trop-perçu",
		Description: "Trop-perçu ARE : vous contestez ou demandez remise de dette/échéancier.",
	},
	CasePERefusIndemnisation: {
		ID:          CasePERefusIndemnisation,
		Organism:    OrganismPoleEmploi,
		Title:       "Contestation refus d’indemnisation",
		Description: "ARE refusée : vous demandez ouverture de droits ou réexamen du dossier.",
	},
	CasePEAttestationEmp: {
		ID:          CasePEAttestationEmp,
		Organism:    OrganismPoleEmploi,
		Title:       "Réclamation attestation employeur",
		Description: "L’attestation employeur manque ou n’est pas transmise : relance et demande de traitement.",
	},
}

// CaseByID returns the static definition for a case id.
func CaseByID(id CaseID) (CaseDefinition, bool) {
	def, ok := caseCatalog[id]
	return def, ok
}

// AllCases lists every known case definition. Order is not guaranteed.
func AllCases() []CaseDefinition {
	out := make([]CaseDefinition, 0, len(caseCatalog))
	for _, def := range caseCatalog {
		out = append(out, def)
	}
	return out
}

// ValidPair reports whether the case belongs to the organism. The set of
// valid pairs is closed and static: a mismatch is a caller programming error,
// not user input.
func ValidPair(org Organism, id CaseID) bool {
	def, ok := caseCatalog[id]
	return ok && def.Organism == org
}
