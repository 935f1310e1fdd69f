package domain

import (
	"regexp"
	"strings"
	"time"
)

// UserIdentity is the sender of the letter. Scoped to one generation request,
// never persisted.
type UserIdentity struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	Address          string `json:"address"`
	City             string `json:"city"`
	ZipCode          string `json:"zipCode"`
	CAFNumber        string `json:"cafNumber,omitempty"`
	CPAMNumber       string `json:"cpamNumber,omitempty"`
	PoleEmploiNumber string `json:"poleEmploiNumber,omitempty"`
}

func (u UserIdentity) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// OrganismID returns the organism-specific identifier the user supplied, if any.
func (u UserIdentity) OrganismID(org Organism) string {
	switch org {
	case OrganismCAF:
		return strings.TrimSpace(u.CAFNumber)
	case OrganismCPAM:
		return strings.TrimSpace(u.CPAMNumber)
	case OrganismPoleEmploi:
		return strings.TrimSpace(u.PoleEmploiNumber)
	default:
		return ""
	}
}

var (
	emailShape = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	zipShape   = regexp.MustCompile(`^\d{5}$`)
)

// Validate checks required-ness and light format rules. It returns the ids of
// the offending fields, empty when the identity is usable.
func (u UserIdentity) Validate() []string {
	var bad []string
	if strings.TrimSpace(u.FirstName) == "" {
		bad = append(bad, "firstName")
	}
	if strings.TrimSpace(u.LastName) == "" {
		bad = append(bad, "lastName")
	}
	if strings.TrimSpace(u.Address) == "" {
		bad = append(bad, "address")
	}
	if strings.TrimSpace(u.City) == "" {
		bad = append(bad, "city")
	}
	if !zipShape.MatchString(strings.TrimSpace(u.ZipCode)) {
		bad = append(bad, "zipCode")
	}
	if email := strings.TrimSpace(u.Email); email != "" && !emailShape.MatchString(email) {
		bad = append(bad, "email")
	}
	return bad
}

// LetterRequest is the single structured input of the generation pipeline.
type LetterRequest struct {
	Organism Organism     `json:"organism"`
	CaseID   CaseID       `json:"caseId"`
	Context  ContextData  `json:"contextData"`
	User     UserIdentity `json:"userInfo"`
}

// RenderedLetter is the finalized letter, ready for the document renderer.
// Produced once per request and consumed immediately.
type RenderedLetter struct {
	Sender    UserIdentity
	DestLines []string
	DateLine  string
	Subject   string
	MetaLines []string
	Body      string
	SignName  string

	// Degraded is set when the external revision call failed and the
	// sanitized deterministic draft was used instead.
	Degraded bool
}

type DocumentStatus string

const (
	DocumentPending    DocumentStatus = "pending"
	DocumentReady      DocumentStatus = "ready"
	DocumentFailed     DocumentStatus = "failed"
	DocumentDownloaded DocumentStatus = "downloaded"
)

// GeneratedDocument is the metadata of one rendered PDF. The PDF bytes live in
// object storage under StorageKey; this record only backs the one-time
// download link and carries no context data or identity.
type GeneratedDocument struct {
	ID         string         `json:"id"`
	CaseID     CaseID         `json:"case_id"`
	Organism   Organism       `json:"organism"`
	Filename   string         `json:"filename"`
	StorageKey string         `json:"storage_key"`
	Status     DocumentStatus `json:"status"`
	Degraded   bool           `json:"degraded"`
	Error      string         `json:"error,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// DownloadFilename is the externally visible file name for a case's letter.
func DownloadFilename(id CaseID) string {
	return "courrier-" + strings.ToLower(string(id)) + ".pdf"
}
