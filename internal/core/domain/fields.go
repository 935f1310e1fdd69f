package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldDate     FieldType = "date"
	FieldNumber   FieldType = "number"
	FieldSelect   FieldType = "select"
)

type FieldOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type FieldValidation struct {
	Min     *float64 `json:"min,omitempty"`
	Max     *float64 `json:"max,omitempty"`
	Pattern string   `json:"pattern,omitempty"`
	Message string   `json:"message,omitempty"`
}

// ContextField describes one input the user must supply for a case.
type ContextField struct {
	ID          string           `json:"id"`
	Label       string           `json:"label"`
	Type        FieldType        `json:"type"`
	Required    bool             `json:"required"`
	Placeholder string           `json:"placeholder,omitempty"`
	Help        string           `json:"help,omitempty"`
	Options     []FieldOption    `json:"options,omitempty"`
	Validation  *FieldValidation `json:"validation,omitempty"`
}

// ContextData maps field id to the scalar the user supplied. Absent keys are
// treated as empty. Request-scoped, never persisted.
type ContextData map[string]any

// String returns the stringified value for a field id, or fallback when the
// value is absent or nil.
func (c ContextData) String(id string, fallback string) string {
	v, ok := c[id]
	if !ok || v == nil {
		return fallback
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// Number returns the numeric value for a field id. A string holding a number
// (possibly with a comma decimal separator) is accepted.
func (c ContextData) Number(id string) (float64, bool) {
	v, ok := c[id]
	if !ok || v == nil {
		return 0, false
	}
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case string:
		cleaned := strings.ReplaceAll(strings.TrimSpace(t), ",", ".")
		n, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// Empty reports whether the value for a field id is absent or blank.
func (c ContextData) Empty(id string) bool {
	return strings.TrimSpace(c.String(id, "")) == ""
}

func mkfloat(v float64) *float64 { return &v }

var commonFields = []ContextField{
	{
		ID:       "decisionDate",
		Label:    "Date de la décision / notification",
		Type:     FieldDate,
		Required: true,
		Help:     "La date figurant sur le courrier ou la notification reçue.",
	},
	{
		ID:          "referenceNumber",
		Label:       "Référence du courrier",
		Type:        FieldText,
		Required:    true,
		Placeholder: "ex : INS 0001 (CAF) • DCM/2025/123456 (CPAM) • RADI/10J/2025/123456 (France Travail)",
		Help:        "Copiez la RÉFÉRENCE telle qu’elle apparaît sur votre courrier. Ce n’est pas votre numéro allocataire / n° de sécurité sociale / identifiant France Travail.",
	},
	{
		ID:          "amount",
		Label:       "Montant concerné (si applicable)",
		Type:        FieldNumber,
		Placeholder: "ex : 650",
		Validation:  &FieldValidation{Min: mkfloat(0), Message: "Le montant doit être positif"},
	},
	{
		ID:          "reasonGiven",
		Label:       "Motif indiqué par l’organisme",
		Type:        FieldTextarea,
		Required:    true,
		Placeholder: "Copiez les passages clés du courrier reçu.",
	},
	{
		ID:          "yourExplanation",
		Label:       "Votre situation réelle (explication)",
		Type:        FieldTextarea,
		Required:    true,
		Placeholder: "Expliquez précisément pourquoi la décision est injustifiée / inexacte.",
	},
	{
		ID:       "priorSteps",
		Label:    "Démarches déjà effectuées",
		Type:     FieldSelect,
		Required: true,
		Options: []FieldOption{
			{Label: "Aucune", Value: "aucune"},
			{Label: "Réclamation simple", Value: "reclamation"},
			{Label: "Appel / Téléphone", Value: "appel"},
			{Label: "Mail / Espace en ligne", Value: "mail"},
		},
	},
	{
		ID:       "desiredOutcome",
		Label:    "Ce que vous demandez",
		Type:     FieldSelect,
		Required: true,
		Options: []FieldOption{
			{Label: "Réexamen de la situation", Value: "reexamen"},
			{Label: "Annulation de la décision", Value: "annulation"},
			{Label: "Remboursement / rétablissement des droits", Value: "remboursement"},
			{Label: "Remise de dette / échéancier", Value: "remise"},
		},
	},
}

var fieldsByCase = map[CaseID][]ContextField{
	CaseCAFTropPercu: {
		commonFields[0],
		commonFields[1],
		{
			ID:         "amount",
			Label:      "Montant du trop-perçu",
			Type:       FieldNumber,
			Required:   true,
			Validation: &FieldValidation{Min: mkfloat(0), Message: "Montant invalide"},
		},
		{
			ID:          "period",
			Label:       "Période concernée",
			Type:        FieldText,
			Required:    true,
			Placeholder: "ex : Janvier à Mars 2025",
		},
		commonFields[3],
		commonFields[4],
		{
			ID:          "proofs",
			Label:       "Pièces justificatives mentionnées",
			Type:        FieldTextarea,
			Placeholder: "bail, fiches de paie, attestation employeur…",
		},
		{
			ID:       "desiredOutcome",
			Label:    "Ce que vous demandez",
			Type:     FieldSelect,
			Required: true,
			Options: []FieldOption{
				{Label: "Annulation du trop-perçu", Value: "annulation"},
				{Label: "Réexamen du dossier", Value: "reexamen"},
				{Label: "Remise de dette (partielle/totale)", Value: "remise"},
				{Label: "Échelonnement", Value: "echeancier"},
			},
		},
	},
	CaseCAFNonVersement: {
		commonFields[0],
		commonFields[1],
		{
			ID:       "benefit",
			Label:    "Prestation non versée",
			Type:     FieldSelect,
			Required: true,
			Options: []FieldOption{
				{Label: "APL", Value: "apl"},
				{Label: "RSA", Value: "rsa"},
				{Label: "Prime d’activité", Value: "prime"},
				{Label: "Autre", Value: "autre"},
			},
		},
		{
			ID:         "expectedAmount",
			Label:      "Montant attendu (si connu)",
			Type:       FieldNumber,
			Validation: &FieldValidation{Min: mkfloat(0)},
		},
		commonFields[3],
		commonFields[4],
		commonFields[6],
	},
	CaseCAFRemiseDette: {
		commonFields[0],
		commonFields[1],
		{
			ID:         "amount",
			Label:      "Montant de la dette",
			Type:       FieldNumber,
			Required:   true,
			Validation: &FieldValidation{Min: mkfloat(0)},
		},
		{
			ID:       "financialHardship",
			Label:    "Difficultés financières (charges, revenus…)",
			Type:     FieldTextarea,
			Required: true,
		},
		{
			ID:       "desiredOutcome",
			Label:    "Demande",
			Type:     FieldSelect,
			Required: true,
			Options: []FieldOption{
				{Label: "Remise totale", Value: "totale"},
				{Label: "Remise partielle", Value: "partielle"},
				{Label: "Échelonnement", Value: "echeancier"},
			},
		},
	},
	CaseCAFMontantErr: {
		commonFields[0],
		commonFields[1],
		{
			ID:         "amountDiff",
			Label:      "Écart de montant constaté",
			Type:       FieldNumber,
			Required:   true,
			Validation: &FieldValidation{Min: mkfloat(0)},
		},
		commonFields[3],
		commonFields[4],
		commonFields[6],
	},
	CaseCPAMRetardRemboursement: {
		commonFields[0],
		commonFields[1],
		{
			ID:       "careDate",
			Label:    "Date des soins",
			Type:     FieldDate,
			Required: true,
		},
		{
			ID:         "amount",
			Label:      "Montant attendu (si connu)",
			Type:       FieldNumber,
			Validation: &FieldValidation{Min: mkfloat(0)},
		},
		commonFields[4],
		commonFields[6],
	},
	CaseCPAMRefusRemboursement: {
		commonFields[0],
		commonFields[1],
		{
			ID:       "actType",
			Label:    "Type d’acte (soin, médicament…)",
			Type:     FieldText,
			Required: true,
		},
		commonFields[3],
		commonFields[4],
		commonFields[6],
	},
	CaseCPAMRefusArretTravail: {
		commonFields[0],
		commonFields[1],
		{
			ID:       "workStopStart",
			Label:    "Début de l’arrêt de travail",
			Type:     FieldDate,
			Required: true,
		},
		{
			ID:    "workStopEnd",
			Label: "Fin de l’arrêt (si connue)",
			Type:  FieldDate,
		},
		commonFields[3],
		commonFields[4],
		commonFields[6],
	},
	CaseCPAMFeuilleSoins: {
		commonFields[0],
		commonFields[1],
		{
			ID:       "submissionDate",
			Label:    "Date d’envoi de la feuille de soins",
			Type:     FieldDate,
			Required: true,
		},
		commonFields[4],
		commonFields[6],
	},
	CasePERadiation: {
		commonFields[0],
		commonFields[1],
		{
			ID:       "radiationReason",
			Label:    "Motif de radiation indiqué",
			Type:     FieldTextarea,
			Required: true,
		},
		commonFields[4],
		{
			ID:       "desiredOutcome",
			Label:    "Ce que vous demandez",
			Type:     FieldSelect,
			Required: true,
			Options: []FieldOption{
				{Label: "Annulation de la radiation", Value: "annulation"},
				{Label: "Réexamen / réinscription", Value: "reexamen"},
			},
		},
	},
	CasePEObservations: {
		commonFields[0],
		commonFields[1],
		{
			ID:       "miseEnDemeureDate",
			Label:    "Date du courrier de mise en demeure",
			Type:     FieldDate,
			Required: true,
		},
		{
			ID:          "observations",
			Label:       "Vos observations écrites",
			Type:        FieldTextarea,
			Required:    true,
			Placeholder: "Répondez point par point à ce qui vous est reproché.",
		},
	},
	CasePETropPercu: {
		commonFields[0],
		commonFields[1],
		{
			ID:         "amount",
			Label:      "Montant du trop-perçu",
			Type:       FieldNumber,
			Required:   true,
			Validation: &FieldValidation{Min: mkfloat(0)},
		},
		commonFields[3],
		commonFields[4],
		{
			ID:       "desiredOutcome",
			Label:    "Ce que vous demandez",
			Type:     FieldSelect,
			Required: true,
			Options: []FieldOption{
				{Label: "Annulation du trop-perçu", Value: "annulation"},
				{Label: "Réexamen", Value: "reexamen"},
				{Label: "Remise de dette / échéancier", Value: "remise"},
			},
		},
	},
	CasePERefusIndemnisation: {
		commonFields[0],
		commonFields[1],
		{
			ID:       "lastEmploymentEnd",
			Label:    "Date de fin du dernier contrat",
			Type:     FieldDate,
			Required: true,
		},
		{
			ID:          "rightsInfo",
			Label:       "Infos sur droits (si connues)",
			Type:        FieldTextarea,
			Placeholder: "Ancienneté, heures cumulées, statut…",
		},
		commonFields[3],
		commonFields[4],
		{
			ID:       "desiredOutcome",
			Label:    "Ce que vous demandez",
			Type:     FieldSelect,
			Required: true,
			Options: []FieldOption{
				{Label: "Ouverture de droits ARE", Value: "ouverture"},
				{Label: "Réexamen du dossier", Value: "reexamen"},
			},
		},
	},
	CasePEAttestationEmp: {
		commonFields[0],
		commonFields[1],
		{
			ID:       "employerName",
			Label:    "Nom de l’employeur",
			Type:     FieldText,
			Required: true,
		},
		{
			ID:    "relances",
			Label: "Relances déjà effectuées (dates/canaux)",
			Type:  FieldTextarea,
		},
		commonFields[6],
	},
}

// FieldsForCase returns the ordered context fields for a case. Unknown case
// ids fall back to the shared generic list, so the result is never empty.
func FieldsForCase(id CaseID) []ContextField {
	if fields, ok := fieldsByCase[id]; ok {
		return fields
	}
	return commonFields
}

// ValidateContext checks required-ness and per-field constraints against the
// case schema. It returns the ids of missing required fields and the ids of
// fields whose value violates their validation rule.
func ValidateContext(id CaseID, ctx ContextData) (missing, invalid []string) {
	for _, field := range FieldsForCase(id) {
		if ctx.Empty(field.ID) {
			if field.Required {
				missing = append(missing, field.ID)
			}
			continue
		}
		if !fieldValueValid(field, ctx) {
			invalid = append(invalid, field.ID)
		}
	}
	return missing, invalid
}

func fieldValueValid(field ContextField, ctx ContextData) bool {
	switch field.Type {
	case FieldNumber:
		n, ok := ctx.Number(field.ID)
		if !ok {
			return false
		}
		if v := field.Validation; v != nil {
			if v.Min != nil && n < *v.Min {
				return false
			}
			if v.Max != nil && n > *v.Max {
				return false
			}
		}
		return true
	case FieldSelect:
		value := ctx.String(field.ID, "")
		for _, opt := range field.Options {
			if opt.Value == value {
				return true
			}
		}
		return false
	default:
		if v := field.Validation; v != nil && v.Pattern != "" {
			re, err := regexp.Compile(v.Pattern)
			if err != nil {
				return true
			}
			return re.MatchString(ctx.String(field.ID, ""))
		}
		return true
	}
}
