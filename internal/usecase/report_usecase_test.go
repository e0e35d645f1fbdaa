package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"frota_checklist/internal/adapter/persistence/memory"
	"frota_checklist/internal/domain/entities"
	"frota_checklist/internal/infrastructure/pdf"
	"frota_checklist/internal/infrastructure/storage"
	mock_interfaces "frota_checklist/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var (
	pngBytes  = []byte("\x89PNG\r\n\x1a\nrest")
	jpegBytes = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00}
)

type reportFixture struct {
	repo      *memory.ChecklistRepository
	vehicles  *memory.VehicleRepository
	suppliers *memory.SupplierRepository
	blobs     *storage.MemoryBlobStore
	media     *MediaUseCase
}

func newReportFixture() reportFixture {
	repo := memory.NewChecklistRepository()
	blobs := storage.NewMemoryBlobStore("checklists")
	return reportFixture{
		repo:      repo,
		vehicles:  memory.NewVehicleRepository(),
		suppliers: memory.NewSupplierRepository(),
		blobs:     blobs,
		media:     NewMediaUseCase(repo, blobs, time.Hour, nil),
	}
}

func (f reportFixture) useCase(renderer *mock_interfaces.MockIReportRenderer) *ReportUseCase {
	checklists := NewChecklistUseCase(f.repo, f.vehicles, f.suppliers, f.media, nil)
	uc := NewReportUseCase(checklists, f.media, f.blobs, renderer, nil)
	uc.now = func() time.Time { return time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC) }
	return uc
}

func TestReportUseCase_Export(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newReportFixture()
		uc := f.useCase(mock_interfaces.NewMockIReportRenderer(ctrl))

		_, err := uc.Export(context.Background(), "missing")
		if !errors.Is(err, ErrChecklistNotFound) {
			t.Fatalf("expected ErrChecklistNotFound, got %v", err)
		}
	})

	t.Run("missing image is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newReportFixture()
		ctx := context.Background()

		v, _ := f.vehicles.Create(ctx, entities.Vehicle{Plate: "ABC1D23", Brand: "Fiat", Model: "Strada", Active: true})
		s, _ := f.suppliers.Create(ctx, entities.Supplier{CNPJ: "12345678000190", CorporateName: "Oficina LTDA"})
		_ = f.blobs.Upload(ctx, "c/ok.png", "image/png", pngBytes)
		_ = f.blobs.Upload(ctx, "c/budget/b.jpg", "image/jpeg", jpegBytes)
		_ = f.blobs.Upload(ctx, "c/budget/nf.pdf", "application/pdf", []byte("%PDF"))
		_ = f.blobs.Upload(ctx, "c/fuel/entry.jpg", "image/jpeg", jpegBytes)

		km := 15000.0
		defects := entities.SeedDefects()
		defects[0].Checked, defects[0].Problem, defects[0].Notes = true, true, "trincado"
		defects[1].Checked = true
		c, _ := f.repo.Insert(ctx, entities.Checklist{
			Status:     entities.ChecklistStatusFinalizado,
			VehicleID:  &v.ID,
			SupplierID: &s.ID,
			Notes:      "Revisar freios",
			Items: &entities.Items{
				Meta:    entities.Meta{Service: "Preventiva", KM: &km, Responsavel: "Ana"},
				Defects: defects,
			},
			Media: []entities.MediaItem{
				{Type: "photo", Path: "c/ok.png"},
				{Type: "photo", Path: "c/gone.jpg"},
			},
			BudgetAttachments: []entities.BudgetAttachment{
				{Path: "c/budget/b.jpg", Type: "image/jpeg"},
				{Path: "c/budget/nf.pdf", Type: "application/pdf"},
			},
			FuelGaugePhotos: entities.FuelGaugePhotos{Entry: &entities.FuelPhoto{Path: "c/fuel/entry.jpg"}},
		})

		renderer := mock_interfaces.NewMockIReportRenderer(ctrl)
		renderer.EXPECT().Render(gomock.Any()).DoAndReturn(func(r entities.ChecklistReport) ([]byte, error) {
			if r.SeqLabel != "CHECK-000001" {
				t.Fatalf("unexpected seq label %s", r.SeqLabel)
			}
			want := map[string]string{"Placa": "ABC1D23", "Fornecedor": "Oficina LTDA", "KM": "15000", "Responsável": "Ana", "Veículo": "Fiat / Strada"}
			for _, field := range r.Fields {
				if w, ok := want[field.Label]; ok && field.Value != w {
					t.Fatalf("field %s = %q, want %q", field.Label, field.Value, w)
				}
			}
			if len(r.Defects) != 1 || r.Defects[0].Notes != "trincado" {
				t.Fatalf("expected only the flagged defect, got %+v", r.Defects)
			}
			if len(r.BudgetImages) != 1 || r.BudgetImages[0].Format != "JPG" {
				t.Fatalf("expected one budget image, got %+v", r.BudgetImages)
			}
			if len(r.PhotoImages) != 2 || r.PhotoImages[0].Format != "PNG" || r.PhotoImages[1].Path != "c/fuel/entry.jpg" {
				t.Fatalf("expected missing photo to be skipped, got %+v", r.PhotoImages)
			}
			return []byte("%PDF-1.3"), nil
		})

		got, err := f.useCase(renderer).Export(ctx, c.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Filename != "checklist-ABC1D23-2026-10-15.pdf" {
			t.Fatalf("unexpected filename %s", got.Filename)
		}
		if !strings.HasPrefix(string(got.Content), "%PDF") || got.ContentType != "application/pdf" {
			t.Fatalf("unexpected file %+v", got)
		}
	})

	t.Run("renderer error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newReportFixture()
		c, _ := f.repo.Insert(context.Background(), entities.Checklist{Status: entities.ChecklistStatusEmAndamento})

		renderer := mock_interfaces.NewMockIReportRenderer(ctrl)
		renderer.EXPECT().Render(gomock.Any()).Return(nil, errors.New("boom"))

		if _, err := f.useCase(renderer).Export(context.Background(), c.ID); err == nil {
			t.Fatalf("expected render error")
		}
	})
}

func TestReportUseCase_ExportRendersPDF(t *testing.T) {
	f := newReportFixture()
	ctx := context.Background()

	v, _ := f.vehicles.Create(ctx, entities.Vehicle{Plate: "ABC1D23", Brand: "Volkswagen", Model: "Saveiro", Active: true})
	_ = f.blobs.Upload(ctx, "c/budget/b.jpg", "image/jpeg", jpegBytes)

	defects := entities.SeedDefects()
	defects[0].Checked, defects[0].Problem, defects[0].Notes = true, true, "lente trincada — trocar"
	c, _ := f.repo.Insert(ctx, entities.Checklist{
		Status:    entities.ChecklistStatusEmAndamento,
		VehicleID: &v.ID,
		Notes:     "Próxima revisão em 5.000 km ✔",
		Items: &entities.Items{
			Meta:    entities.Meta{Service: "Corretiva", Responsavel: "João Conceição"},
			Defects: defects,
		},
		Media:             []entities.MediaItem{{Type: "photo", Path: "c/gone.jpg"}},
		BudgetAttachments: []entities.BudgetAttachment{{Path: "c/budget/b.jpg", Type: "image/jpeg"}},
	})

	checklists := NewChecklistUseCase(f.repo, f.vehicles, f.suppliers, f.media, nil)
	uc := NewReportUseCase(checklists, f.media, f.blobs, pdf.NewFPDFRenderer(), nil)

	var got ReportFile
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("export panicked: %v", r)
			}
		}()
		got, err = uc.Export(ctx, c.ID)
	}()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(string(got.Content), "%PDF-") {
		t.Fatalf("expected a PDF document, got %q", got.Content[:min(len(got.Content), 16)])
	}
}

func TestReportFilename(t *testing.T) {
	now := time.Date(2026, 1, 2, 23, 0, 0, 0, time.UTC)
	if got := ReportFilename(entities.Checklist{}, now); got != "checklist-sem-placa-2026-01-02.pdf" {
		t.Fatalf("unexpected filename %s", got)
	}
}

func TestImageFormat(t *testing.T) {
	webp := append([]byte("RIFF\x00\x00\x00\x00WEBP"), 0)
	cases := []struct {
		data []byte
		ct   string
		want string
		ok   bool
	}{
		{pngBytes, "", "PNG", true},
		{jpegBytes, "application/octet-stream", "JPG", true},
		{webp, "", "WEBP", true},
		{[]byte("??"), "image/png", "PNG", true},
		{[]byte("??"), "application/pdf", "", false},
	}
	for _, tc := range cases {
		got, ok := imageFormat(tc.data, tc.ct)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("imageFormat(%q, %q) = %q, %v", tc.data, tc.ct, got, ok)
		}
	}
}
