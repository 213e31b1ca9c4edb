package reports

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	marginLeft = 20.0
	marginTop  = 20.0
	pageBottom = 270.0
)

// RenderPDF lays lines out top to bottom on A4 pages.
func RenderPDF(lines []Line, createdAt time.Time) ([]byte, error) {
	return renderPDF(lines, createdAt, true)
}

func renderPDF(lines []Line, createdAt time.Time, compress bool) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(compress)
	pdf.SetTitle(Title, false)
	pdf.SetCreator("PulseGuard", false)
	if !createdAt.IsZero() {
		pdf.SetCreationDate(createdAt)
		pdf.SetModificationDate(createdAt)
	}
	pdf.AddPage()

	y := marginTop
	for _, l := range lines {
		if l.Size <= 0 {
			y += l.SpaceAfter
			continue
		}
		style := ""
		if l.Bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, l.Size)
		if l.Text != "" {
			pdf.Text(marginLeft, y, l.Text)
		}
		y += l.Size*0.5 + 3
		if y > pageBottom {
			pdf.AddPage()
			y = marginTop
		}
		y += l.SpaceAfter
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
