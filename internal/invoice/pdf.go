package invoice

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

const fontFamily = "Helvetica"

// Render draws layout onto a PDF page using the core Helvetica font.
// Text is translated to cp1252, so characters outside it are lost.
func Render(layout Layout) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreationDate(time.Unix(0, 0).UTC())
	pdf.AddPage()
	pdf.SetLineWidth(0.2)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetFillColor(headerFill, headerFill, headerFill)

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, region := range layout.Regions {
		for _, el := range region.Elements {
			switch el.Kind {
			case KindRect:
				style := "D"
				if el.Fill {
					style = "FD"
				}
				pdf.Rect(el.X, el.Y, el.W, el.H, style)
			case KindLine:
				pdf.Line(el.X, el.Y, el.X2, el.Y2)
			case KindText:
				if el.Text == "" {
					continue
				}
				style := ""
				if el.Bold {
					style = "B"
				}
				pdf.SetFont(fontFamily, style, el.Size)
				s := tr(el.Text)
				x := el.X
				switch el.Align {
				case AlignCenter:
					x -= pdf.GetStringWidth(s) / 2
				case AlignRight:
					x -= pdf.GetStringWidth(s)
				}
				pdf.Text(x, el.Y, s)
			}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}
