package services

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/generatorku/quiz-web/models"
	"github.com/generatorku/quiz-web/utils"
)

// MsgPDFUnavailable is the alert shown when no PDF renderer is loaded.
const MsgPDFUnavailable = "Gagal memuat fungsi cetak PDF. Mohon refresh halaman."

var ErrPDFUnavailable = errors.New("pdf renderer not loaded")

// PDFRenderer draws a results region as a PDF document.
type PDFRenderer interface {
	Render(w io.Writer, region models.ResultsRegion, opts models.PDFOptions) error
}

// ExportTrigger hands a results region to the PDF capability. A nil Renderer
// means the capability is absent.
type ExportTrigger struct {
	Renderer PDFRenderer
	Options  models.PDFOptions
}

func NewExportTrigger(r PDFRenderer) *ExportTrigger {
	return &ExportTrigger{Renderer: r, Options: models.DefaultPDFOptions()}
}

type ExportResult struct {
	Filename string
	Data     []byte
	Pages    int
	// HasTitle is set when the title can be read back from the document.
	HasTitle bool
}

func (t *ExportTrigger) Available() bool {
	return t != nil && t.Renderer != nil
}

func (t *ExportTrigger) Export(region models.ResultsRegion) (ExportResult, error) {
	if !t.Available() {
		return ExportResult{}, ErrPDFUnavailable
	}

	opts := t.Options
	opts.Filename = utils.PDFFilename(region.Filename, opts.Filename)

	var buf bytes.Buffer
	if err := t.Renderer.Render(&buf, region, opts); err != nil {
		return ExportResult{}, fmt.Errorf("render pdf: %w", err)
	}

	res := ExportResult{Filename: opts.Filename, Data: buf.Bytes()}
	pages, err := CountPDFPages(res.Data)
	if err != nil {
		log.Println("pdf page count failed:", err)
		return res, nil
	}
	res.Pages = pages

	text, err := ExtractPDFText(res.Data)
	if err != nil {
		log.Println("pdf text check failed:", err)
		return res, nil
	}
	res.HasTitle = strings.Contains(compactSpace(text), compactSpace(region.Title))
	if !res.HasTitle {
		log.Printf("pdf export: title %q not found in rendered text", region.Title)
	}
	return res, nil
}

// FPDFRenderer lays a results region out as text with fpdf core fonts.
type FPDFRenderer struct{}

const (
	baseFontPt = 6.0
	ptToMM     = 0.3528
)

func (FPDFRenderer) Render(w io.Writer, region models.ResultsRegion, opts models.PDFOptions) error {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	bodyPt := baseFontPt * scale
	lineH := bodyPt * ptToMM * 1.4

	doc := fpdf.New(orientationCode(opts.Orientation), opts.Unit, strings.ToUpper(opts.Format), "")
	doc.SetMargins(opts.Margin, opts.Margin, opts.Margin)
	doc.SetAutoPageBreak(true, opts.Margin)
	doc.SetTitle(region.Title, true)
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.AddPage()
	doc.SetFont("Helvetica", "B", bodyPt*1.5)
	doc.MultiCell(0, lineH*1.5, tr(region.Title), "", "L", false)
	doc.Ln(lineH / 2)

	for _, section := range region.Sections {
		doc.SetFont("Helvetica", "B", bodyPt*1.15)
		doc.MultiCell(0, lineH*1.15, tr(section.Heading), "", "L", false)
		doc.SetFont("Helvetica", "", bodyPt)
		for _, line := range section.Lines {
			doc.MultiCell(0, lineH, tr(line), "", "L", false)
		}
		doc.Ln(lineH / 2)
	}

	return doc.Output(w)
}

// compactSpace drops all whitespace; extracted text does not keep the
// original spacing.
func compactSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func orientationCode(o string) string {
	switch strings.ToLower(o) {
	case "landscape", "l":
		return "L"
	default:
		return "P"
	}
}
