// Package pdf renders finalized letters into paginated A4 documents.
package pdf

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/tomsdev9/legalrecours/internal/core/domain"
)

const (
	marginLeft   = 20.0
	marginTop    = 18.0
	marginRight  = 20.0
	marginBottom = 22.0

	bodyFontSize = 11.0
	lineHeight   = 5.5

	closingFormula = "Je vous prie d'agréer, Madame, Monsieur, l'expression de mes salutations distinguées."
)

var paragraphSplitRx = regexp.MustCompile(`\n{2,}`)

// Renderer writes letters as A4 PDFs in a fixed administrative layout:
// sender block, date line, destination block, subject, reference line,
// justified body, closing and signature, numbered footer.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) RenderDocument(letter domain.RenderedLetter) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(marginLeft, marginTop, marginRight)
	doc.SetAutoPageBreak(true, marginBottom)
	doc.AliasNbPages("")

	// Core fonts are cp1252; the translator covers French accents and €.
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		doc.SetFont("Times", "I", 9)
		doc.SetTextColor(120, 120, 120)
		doc.CellFormat(0, 10, tr(fmt.Sprintf("Page %d / {nb}", doc.PageNo())), "", 0, "C", false, 0, "")
		doc.SetTextColor(0, 0, 0)
	})

	doc.AddPage()

	writeSenderBlock(doc, tr, letter.Sender)

	doc.SetFont("Times", "", bodyFontSize)
	doc.CellFormat(0, lineHeight, tr(letter.DateLine), "", 1, "R", false, 0, "")
	doc.Ln(4)

	writeDestinationBlock(doc, tr, letter.DestLines)

	doc.SetFont("Times", "BI", bodyFontSize)
	doc.MultiCell(0, lineHeight, tr("Objet : "+letter.Subject), "", "L", false)
	if len(letter.MetaLines) > 0 {
		doc.SetFont("Times", "", 9)
		doc.SetTextColor(90, 90, 90)
		doc.MultiCell(0, 4.5, tr(strings.Join(letter.MetaLines, " · ")), "", "L", false)
		doc.SetTextColor(0, 0, 0)
	}
	doc.Ln(4)

	doc.SetFont("Times", "", bodyFontSize)
	for _, paragraph := range splitParagraphs(letter.Body) {
		doc.MultiCell(0, lineHeight, tr(paragraph), "", "J", false)
		doc.Ln(2.5)
	}

	doc.Ln(2)
	doc.MultiCell(0, lineHeight, tr(closingFormula), "", "J", false)
	doc.Ln(8)
	doc.CellFormat(0, lineHeight, tr(letter.SignName), "", 1, "R", false, 0, "")

	if doc.Err() {
		return nil, domain.WrapError(domain.ErrRenderUnsupported, "render pdf", doc.Error())
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, domain.WrapError(domain.ErrRenderUnsupported, "render pdf", err)
	}
	return buf.Bytes(), nil
}

func writeSenderBlock(doc *fpdf.Fpdf, tr func(string) string, sender domain.UserIdentity) {
	doc.SetFont("Times", "B", bodyFontSize)
	doc.CellFormat(0, lineHeight, tr(sender.FullName()), "", 1, "L", false, 0, "")
	doc.SetFont("Times", "", bodyFontSize)
	for _, line := range senderLines(sender) {
		doc.CellFormat(0, lineHeight, tr(line), "", 1, "L", false, 0, "")
	}
	doc.Ln(4)
}

func senderLines(sender domain.UserIdentity) []string {
	lines := []string{
		sender.Address,
		strings.TrimSpace(sender.ZipCode + " " + sender.City),
	}
	if email := strings.TrimSpace(sender.Email); email != "" {
		lines = append(lines, email)
	}
	return lines
}

func writeDestinationBlock(doc *fpdf.Fpdf, tr func(string) string, destLines []string) {
	doc.SetFont("Times", "", bodyFontSize)
	for _, line := range destLines {
		doc.CellFormat(0, lineHeight, tr(line), "", 1, "L", false, 0, "")
	}
	doc.Ln(6)
}

func splitParagraphs(body string) []string {
	var out []string
	for _, p := range paragraphSplitRx.Split(body, -1) {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		// Single newlines inside a paragraph are soft wraps.
		p = strings.ReplaceAll(p, "\n", " ")
		out = append(out, p)
	}
	return out
}
