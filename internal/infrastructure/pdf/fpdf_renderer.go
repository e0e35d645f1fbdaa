// Package pdf lays out checklist reports as A4 PDF documents.
package pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"log"
	"strings"

	"frota_checklist/internal/domain/entities"
	"frota_checklist/internal/usecase/interfaces"

	"github.com/go-pdf/fpdf"
	"golang.org/x/image/webp"
)

const (
	margin      = 14.0
	imageHeight = 60.0
	imageGap    = 6.0
	imageCols   = 2
	lineHeight  = 5.0
	rowPadding  = 1.5
)

// FPDFRenderer implements interfaces.IReportRenderer with go-pdf/fpdf.
type FPDFRenderer struct{}

var _ interfaces.IReportRenderer = (*FPDFRenderer)(nil)

func NewFPDFRenderer() *FPDFRenderer {
	return &FPDFRenderer{}
}

func (r *FPDFRenderer) Render(report entities.ChecklistReport) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(margin, margin, margin)
	doc.SetAutoPageBreak(false, margin)
	doc.SetTitle(report.Title, true)
	doc.AddPage()

	w := &writer{doc: doc, tr: doc.UnicodeTranslatorFromDescriptor("")}
	w.pageW, w.pageH = doc.GetPageSize()

	y := 20.0
	doc.SetFont("Helvetica", "", 16)
	doc.Text(margin, y, w.tr(report.Title))
	y += 8
	doc.SetFont("Helvetica", "", 10)
	doc.Text(margin, y, w.tr(report.SeqLabel))
	stamp := w.tr(entities.FormatDateTimeBR(report.GeneratedAt))
	doc.Text(w.pageW-margin-doc.GetStringWidth(stamp), y, stamp)
	y += 10

	fieldRows := make([][]string, 0, len(report.Fields))
	for _, f := range report.Fields {
		fieldRows = append(fieldRows, []string{f.Label, f.Value})
	}
	y = w.table(y, []string{"Campo", "Valor"}, fieldRows) + 8

	defectRows := make([][]string, 0, len(report.Defects))
	for _, d := range report.Defects {
		label := d.Label
		if label == "" {
			label = "-"
		}
		defectRows = append(defectRows, []string{label, d.Notes})
	}
	y = w.table(y, []string{"Defeito", "Observações"}, defectRows) + 8

	if len(bytes.TrimSpace([]byte(report.Notes))) > 0 {
		y = w.ensureSpace(y, 6+lineHeight)
		doc.SetFont("Helvetica", "", 12)
		doc.Text(margin, y, w.tr("Observações"))
		y += 6
		doc.SetFont("Helvetica", "", 10)
		for _, line := range w.split(report.Notes, w.pageW-2*margin) {
			y = w.ensureSpace(y, lineHeight)
			doc.Text(margin, y, line)
			y += lineHeight
		}
		y += 6
	}

	y = w.ensureSpace(y, 6+lineHeight)
	doc.SetFont("Helvetica", "", 12)
	doc.Text(margin, y, w.tr("Orçamento"))
	y += 6
	budget := w.register(report.BudgetImages, "budget")
	if len(budget) == 0 {
		doc.SetFont("Helvetica", "", 10)
		doc.Text(margin, y, "Sem anexos")
		y += 6
	} else {
		y = w.grid(y, budget) + 2
	}

	photos := w.register(report.PhotoImages, "photo")
	if len(photos) > 0 {
		y = w.ensureSpace(y, 6+imageHeight)
		doc.SetFont("Helvetica", "", 12)
		doc.Text(margin, y, "Anexos")
		y += 6
		w.grid(y, photos)
	}

	if err := doc.Error(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type writer struct {
	doc          *fpdf.Fpdf
	tr           func(string) string
	pageW, pageH float64
}

type registered struct {
	name      string
	imageType string
}

// split wraps UTF-8 text to width and returns lines encoded for the core fonts.
// SplitText measures runes against the 256 entry width table, so wrapping
// happens before translation and on text folded to Latin-1.
func (w *writer) split(s string, width float64) []string {
	lines := w.doc.SplitText(latin1(s), width)
	for i := range lines {
		lines[i] = w.tr(lines[i])
	}
	return lines
}

// latin1 folds runes above U+00FF to the closest Latin-1 text, or "?".
func latin1(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r <= 0xFF {
			b.WriteRune(r)
			continue
		}
		switch r {
		case '\u2013', '\u2014', '\u2212':
			b.WriteByte('-')
		case '\u2018', '\u2019':
			b.WriteByte('\'')
		case '\u201C', '\u201D':
			b.WriteByte('"')
		case '\u2026':
			b.WriteString("...")
		case '\u20AC':
			b.WriteString("EUR")
		default:
			b.WriteByte('?')
		}
	}
	return b.String()
}

// ensureSpace starts a new page when h does not fit below y.
func (w *writer) ensureSpace(y, h float64) float64 {
	if y+h > w.pageH-margin {
		w.doc.AddPage()
		return margin + lineHeight
	}
	return y
}

// table draws a striped two column table and returns the y below it.
func (w *writer) table(y float64, head []string, rows [][]string) float64 {
	widths := []float64{60, w.pageW - 2*margin - 60}
	w.doc.SetFont("Helvetica", "B", 9)
	w.doc.SetFillColor(41, 128, 185)
	w.doc.SetTextColor(255, 255, 255)
	y = w.row(y, widths, head)

	w.doc.SetFont("Helvetica", "", 9)
	w.doc.SetTextColor(0, 0, 0)
	for i, r := range rows {
		if i%2 == 1 {
			w.doc.SetFillColor(245, 245, 245)
		} else {
			w.doc.SetFillColor(255, 255, 255)
		}
		y = w.row(y, widths, r)
	}
	return y
}

func (w *writer) row(y float64, widths []float64, cells []string) float64 {
	lines := make([][]string, len(cells))
	maxLines := 1
	for i, c := range cells {
		lines[i] = w.split(c, widths[i]-2*rowPadding)
		if len(lines[i]) > maxLines {
			maxLines = len(lines[i])
		}
	}
	h := float64(maxLines)*lineHeight + 2*rowPadding
	if y+h > w.pageH-margin {
		w.doc.AddPage()
		y = margin
	}
	x := margin
	for i := range cells {
		w.doc.Rect(x, y, widths[i], h, "F")
		for j, line := range lines[i] {
			w.doc.Text(x+rowPadding, y+rowPadding+float64(j+1)*lineHeight-1.2, line)
		}
		x += widths[i]
	}
	return y + h
}

// register embeds the images fpdf can read. Images that cannot be decoded are
// skipped so they take no slot in the grid.
func (w *writer) register(images []entities.ReportImage, prefix string) []registered {
	out := make([]registered, 0, len(images))
	for i, img := range images {
		data, imageType, err := normalizeImage(img)
		if err != nil {
			log.Printf("[report] image skipped path=%s err=%v", img.Path, err)
			continue
		}
		name := fmt.Sprintf("%s-%d", prefix, i)
		w.doc.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: imageType}, bytes.NewReader(data))
		if err := w.doc.Error(); err != nil {
			// fpdf errors are sticky; a bad image here would spoil the document
			log.Printf("[report] image rejected path=%s err=%v", img.Path, err)
			w.doc.ClearError()
			continue
		}
		out = append(out, registered{name: name, imageType: imageType})
	}
	return out
}

func (w *writer) grid(y float64, images []registered) float64 {
	spec := GridSpec{PageW: w.pageW, PageH: w.pageH, Margin: margin, Gap: imageGap, Cols: imageCols, CellH: imageHeight}
	placements, endY := LayoutGrid(len(images), y, spec)
	for i, p := range placements {
		if p.NewPage {
			w.doc.AddPage()
		}
		w.doc.ImageOptions(images[i].name, p.X, p.Y, spec.CellW(), spec.CellH, false,
			fpdf.ImageOptions{ImageType: images[i].imageType}, 0, "")
	}
	return endY
}

// GridSpec describes an image grid on a page.
type GridSpec struct {
	PageW, PageH float64
	Margin       float64
	Gap          float64
	Cols         int
	CellH        float64
}

func (g GridSpec) CellW() float64 {
	return (g.PageW - 2*g.Margin - g.Gap*float64(g.Cols-1)) / float64(g.Cols)
}

// Placement is where one grid cell goes. NewPage means a page must be added
// before drawing it.
type Placement struct {
	X, Y    float64
	NewPage bool
}

// LayoutGrid fills rows left to right from startY. A cell that would cross the
// bottom margin moves to the top of a new page. The returned y is below the
// last row.
func LayoutGrid(n int, startY float64, g GridSpec) ([]Placement, float64) {
	out := make([]Placement, 0, n)
	y := startY
	col := 0
	for i := 0; i < n; i++ {
		p := Placement{X: g.Margin + float64(col)*(g.CellW()+g.Gap)}
		if y+g.CellH > g.PageH-g.Margin {
			p.NewPage = true
			y = g.Margin
		}
		p.Y = y
		out = append(out, p)
		col++
		if col >= g.Cols {
			col = 0
			y += g.CellH + g.Gap
		}
	}
	if col != 0 {
		y += g.CellH + g.Gap
	}
	return out, y
}

// normalizeImage returns bytes and the fpdf image type. WebP is converted to
// PNG and 16-bit PNGs are reduced to 8 bits.
func normalizeImage(img entities.ReportImage) ([]byte, string, error) {
	switch img.Format {
	case "JPG", "JPEG":
		if _, err := jpeg.DecodeConfig(bytes.NewReader(img.Data)); err != nil {
			return nil, "", err
		}
		return img.Data, "JPG", nil
	case "PNG":
		cfg, err := png.DecodeConfig(bytes.NewReader(img.Data))
		if err != nil {
			return nil, "", err
		}
		switch cfg.ColorModel {
		case color.RGBA64Model, color.NRGBA64Model, color.Gray16Model:
			decoded, err := png.Decode(bytes.NewReader(img.Data))
			if err != nil {
				return nil, "", err
			}
			return encodePNG(decoded)
		}
		return img.Data, "PNG", nil
	case "WEBP":
		decoded, err := webp.Decode(bytes.NewReader(img.Data))
		if err != nil {
			return nil, "", err
		}
		return encodePNG(decoded)
	}
	return nil, "", fmt.Errorf("unsupported image format %q", img.Format)
}

func encodePNG(src image.Image) ([]byte, string, error) {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), "PNG", nil
}
