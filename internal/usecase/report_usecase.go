package usecase

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"frota_checklist/internal/domain/entities"
	"frota_checklist/internal/usecase/interfaces"
)

const reportTitle = "Relatório de Checklist"

// ReportFile is a rendered export ready to be downloaded.
type ReportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// IReportUseCase exports a checklist as a printable PDF.
type IReportUseCase interface {
	Export(ctx context.Context, checklistID string) (ReportFile, error)
}

type ReportUseCase struct {
	checklists IChecklistUseCase
	media      IMediaUseCase
	images     interfaces.IImageSource
	renderer   interfaces.IReportRenderer
	metrics    interfaces.IMetricsRecorder
	now        func() time.Time
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(
	checklists IChecklistUseCase,
	media IMediaUseCase,
	images interfaces.IImageSource,
	renderer interfaces.IReportRenderer,
	metrics interfaces.IMetricsRecorder,
) *ReportUseCase {
	return &ReportUseCase{
		checklists: checklists,
		media:      media,
		images:     images,
		renderer:   renderer,
		metrics:    metricsOrNoop(metrics),
		now:        time.Now,
	}
}

// Export renders the checklist. Images that cannot be resolved or downloaded
// are left out of the document without failing the export.
func (u *ReportUseCase) Export(ctx context.Context, checklistID string) (ReportFile, error) {
	c, err := u.checklists.GetByID(ctx, checklistID)
	if err != nil {
		u.metrics.ReportExported("error")
		return ReportFile{}, err
	}
	now := u.now()
	report := u.buildReport(ctx, c, now)

	content, err := u.renderer.Render(report)
	if err != nil {
		log.Printf("[report] render failed checklist_id=%s err=%v", c.ID, err)
		u.metrics.ReportExported("error")
		return ReportFile{}, fmt.Errorf("render report: %w", err)
	}
	u.metrics.ReportExported("ok")
	log.Printf("[report] exported checklist_id=%s bytes=%d budget_images=%d photos=%d",
		c.ID, len(content), len(report.BudgetImages), len(report.PhotoImages))
	return ReportFile{
		Filename:    ReportFilename(c, now),
		ContentType: "application/pdf",
		Content:     content,
	}, nil
}

// ReportFilename is checklist-<plate|sem-placa>-<YYYY-MM-DD>.pdf.
func ReportFilename(c entities.Checklist, now time.Time) string {
	plate := "sem-placa"
	if c.Vehicle != nil && strings.TrimSpace(c.Vehicle.Plate) != "" {
		plate = c.Vehicle.Plate
	}
	return fmt.Sprintf("checklist-%s-%s.pdf", plate, now.UTC().Format("2006-01-02"))
}

func (u *ReportUseCase) buildReport(ctx context.Context, c entities.Checklist, now time.Time) entities.ChecklistReport {
	var meta entities.Meta
	var defects []entities.Defect
	if c.Items != nil {
		meta = c.Items.Meta
		defects = c.Items.Defects
	}

	plate, supplier, vehicle := "-", "-", "-"
	if c.Vehicle != nil {
		if c.Vehicle.Plate != "" {
			plate = c.Vehicle.Plate
		}
		vehicle = c.Vehicle.Description()
	}
	if c.Supplier != nil {
		for _, v := range []string{c.Supplier.TradeName, c.Supplier.CorporateName} {
			if strings.TrimSpace(v) != "" {
				supplier = v
				break
			}
		}
	}
	km := "-"
	if meta.KM != nil {
		km = strconv.FormatFloat(*meta.KM, 'f', -1, 64)
	}
	responsavel := "-"
	if strings.TrimSpace(meta.Responsavel) != "" {
		responsavel = meta.Responsavel
	}
	opened := "-"
	if !c.CreatedAt.IsZero() {
		opened = entities.FormatDateTimeBR(c.CreatedAt)
	}

	report := entities.ChecklistReport{
		Title:       reportTitle,
		SeqLabel:    c.SeqLabel(),
		GeneratedAt: now,
		Fields: []entities.ReportField{
			{Label: "Placa", Value: plate},
			{Label: "Fornecedor", Value: supplier},
			{Label: "KM", Value: km},
			{Label: "Responsável", Value: responsavel},
			{Label: "Data de Abertura", Value: opened},
			{Label: "Veículo", Value: vehicle},
		},
		Notes: c.Notes,
	}
	for _, d := range defects {
		if d.Checked && d.Problem {
			report.Defects = append(report.Defects, entities.ReportDefect{Label: d.Label, Notes: d.Notes})
		}
	}

	for _, a := range c.BudgetAttachments {
		if !IsRenderableImage(a.Type, a.Path) {
			continue
		}
		if img, ok := u.loadImage(ctx, a.Path); ok {
			report.BudgetImages = append(report.BudgetImages, img)
		}
	}

	paths := make([]string, 0, len(c.Media)+2)
	for _, m := range c.Media {
		paths = append(paths, m.Path)
	}
	if e := c.FuelGaugePhotos.Entry; e != nil && e.Path != "" {
		paths = append(paths, e.Path)
	}
	if x := c.FuelGaugePhotos.Exit; x != nil && x.Path != "" {
		paths = append(paths, x.Path)
	}
	for _, p := range paths {
		if img, ok := u.loadImage(ctx, p); ok {
			report.PhotoImages = append(report.PhotoImages, img)
		}
	}
	return report
}

func (u *ReportUseCase) loadImage(ctx context.Context, p string) (entities.ReportImage, bool) {
	url, err := u.media.ResolveURL(ctx, p)
	if err != nil {
		log.Printf("[report] image skipped path=%s err=%v", p, err)
		return entities.ReportImage{}, false
	}
	data, contentType, err := u.images.Fetch(ctx, url)
	if err != nil {
		log.Printf("[report] image skipped path=%s err=%v", p, err)
		return entities.ReportImage{}, false
	}
	format, ok := imageFormat(data, contentType)
	if !ok {
		log.Printf("[report] image skipped path=%s content_type=%s", p, contentType)
		return entities.ReportImage{}, false
	}
	return entities.ReportImage{Path: p, Format: format, Data: data}, true
}

// imageFormat sniffs the magic bytes first and falls back to the content type.
func imageFormat(data []byte, contentType string) (string, bool) {
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return "PNG", true
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return "JPG", true
	case len(data) >= 12 && string(data[:4]) == "RIFF" && string(data[8:12]) == "WEBP":
		return "WEBP", true
	}
	switch strings.ToLower(contentType) {
	case "image/png":
		return "PNG", true
	case "image/jpeg", "image/jpg":
		return "JPG", true
	case "image/webp":
		return "WEBP", true
	}
	return "", false
}
