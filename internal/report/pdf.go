package report

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/go-pdf/fpdf"
)

const (
	pageMargin   = 18.0
	lineHeight   = 6.0
	bodyFontSize = 11.0
)

// renderOptions tunes the PDF writer. Tests turn compression off to
// inspect page content.
type renderOptions struct {
	compress bool
}

// Render writes doc as a Letter-size PDF to w.
func Render(w io.Writer, doc Document) error {
	return render(w, doc, renderOptions{compress: true})
}

func render(w io.Writer, doc Document, ro renderOptions) error {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetCompression(ro.compress)
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator("sleepcheck", true)
	pdf.SetCreationDate(doc.GeneratedAt)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 8, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(doc.Title), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, "Generated "+doc.GeneratedAt.Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", bodyFontSize)
	pdf.MultiCell(0, lineHeight, tr(doc.Intro), "", "L", false)
	pdf.Ln(3)

	for _, b := range doc.Blocks {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.MultiCell(0, lineHeight+1, tr(b.Title), "", "L", false)
		pdf.SetFont("Helvetica", "", bodyFontSize)
		pdf.MultiCell(0, lineHeight, tr("Definition: "+b.Definition), "", "L", false)
		pdf.MultiCell(0, lineHeight, tr("Tips: "+b.Tip), "", "L", false)
		pdf.Ln(4)
	}

	heading(pdf, tr(doc.TipsHeading))
	for _, tip := range doc.Tips {
		pdf.MultiCell(0, lineHeight, tr("- "+tip), "", "L", false)
	}

	if doc.HasNotes() {
		pdf.Ln(4)
		heading(pdf, notesHeading)
		if doc.Summary != "" {
			pdf.MultiCell(0, lineHeight, tr(doc.Summary), "", "L", false)
		}
		for _, n := range doc.Notes {
			pdf.MultiCell(0, lineHeight, tr("- "+n), "", "L", false)
		}
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, tr(doc.Disclaimer), "", "L", false)

	return pdf.Output(w)
}

func heading(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.MultiCell(0, lineHeight+1, text, "", "L", false)
	pdf.SetFont("Helvetica", "", bodyFontSize)
}

// Bytes renders doc in memory, for downloads.
func Bytes(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, doc); err != nil {
		return nil, &ExportError{Err: err}
	}
	return buf.Bytes(), nil
}

// WriteFile renders doc to path. The file is closed on every path and a
// partially written file is removed. Failures are not retried.
func WriteFile(path string, doc Document) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &ExportError{Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &ExportError{Path: path, Err: cerr}
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if rerr := Render(f, doc); rerr != nil {
		return &ExportError{Path: path, Err: rerr}
	}
	return nil
}
