package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path"
	"strings"
	"time"

	"frota_checklist/internal/domain/entities"
	"frota_checklist/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrChecklistLocked    = interfaces.ErrChecklistLocked
	ErrInvalidChecklistID = errors.New("invalid checklist id")
	ErrChecklistNotFound  = errors.New("checklist not found")
	ErrInvalidFuelKind    = errors.New("invalid fuel photo kind")
	ErrNoFilesAccepted    = errors.New("no supported file selected")
)

const defaultSignedURLTTL = time.Hour

var acceptedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/heic": true,
	"image/heif": true,
}

var acceptedImageExt = map[string]bool{
	"jpg": true, "jpeg": true, "png": true, "webp": true, "heic": true, "heif": true,
}

var acceptedBudgetExt = map[string]bool{
	"pdf": true, "jpg": true, "jpeg": true, "png": true, "webp": true,
}

// PartialUploadError reports files of a batch that could not be uploaded while
// the others were persisted.
type PartialUploadError struct {
	Failed []entities.UploadFile
	Err    error
}

func (e *PartialUploadError) Error() string {
	names := make([]string, 0, len(e.Failed))
	for _, f := range e.Failed {
		names = append(names, f.Name)
	}
	return fmt.Sprintf("upload failed for %d file(s) [%s]: %v", len(e.Failed), strings.Join(names, ", "), e.Err)
}

func (e *PartialUploadError) Unwrap() error { return e.Err }

// IMediaUseCase moves files between local selections and persisted references.
//
// Every upload goes to a fresh random path scoped to the checklist and is then
// appended to the relevant reference field in a single partial update. Prior
// references are never removed or reordered.
type IMediaUseCase interface {
	FilterImages(files []entities.UploadFile) []entities.UploadFile
	FilterBudgetFiles(files []entities.UploadFile) []entities.UploadFile
	UploadPhotos(ctx context.Context, checklistID string, files []entities.UploadFile, existing []entities.MediaItem) ([]entities.MediaItem, error)
	ResolveURLs(ctx context.Context, items []entities.MediaItem) []entities.MediaItemWithURL
	ResolveURL(ctx context.Context, path string) (string, error)
	UploadBudget(ctx context.Context, checklistID string, files []entities.UploadFile) ([]entities.BudgetAttachment, error)
	UploadFuelPhoto(ctx context.Context, checklistID string, kind entities.FuelKind, file entities.UploadFile, current entities.FuelGaugePhotos) (entities.FuelGaugePhotos, error)
	RemoveFuelPhoto(ctx context.Context, checklistID string, kind entities.FuelKind, current entities.FuelGaugePhotos) (entities.FuelGaugePhotos, error)
}

type MediaUseCase struct {
	repo    interfaces.IChecklistRepository
	blobs   interfaces.IBlobStore
	ttl     time.Duration
	metrics interfaces.IMetricsRecorder
}

var _ IMediaUseCase = (*MediaUseCase)(nil)

func NewMediaUseCase(repo interfaces.IChecklistRepository, blobs interfaces.IBlobStore, signedURLTTL time.Duration, metrics interfaces.IMetricsRecorder) *MediaUseCase {
	if signedURLTTL <= 0 {
		signedURLTTL = defaultSignedURLTTL
	}
	return &MediaUseCase{repo: repo, blobs: blobs, ttl: signedURLTTL, metrics: metricsOrNoop(metrics)}
}

func fileExt(name string) string {
	return strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))
}

// IsImageFile accepts a file by MIME type or, when the browser sent none, by extension.
func IsImageFile(f entities.UploadFile) bool {
	if acceptedImageTypes[strings.ToLower(f.ContentType)] {
		return true
	}
	return acceptedImageExt[fileExt(f.Name)]
}

// IsRenderableImage reports whether a stored reference can be embedded in a
// report: png, jpeg or webp by MIME type or path extension.
func IsRenderableImage(contentType, p string) bool {
	switch strings.ToLower(contentType) {
	case "image/png", "image/jpeg", "image/jpg", "image/webp":
		return true
	}
	switch fileExt(p) {
	case "png", "jpg", "jpeg", "webp":
		return true
	}
	return false
}

func (u *MediaUseCase) FilterImages(files []entities.UploadFile) []entities.UploadFile {
	out := make([]entities.UploadFile, 0, len(files))
	for _, f := range files {
		if IsImageFile(f) {
			out = append(out, f)
		}
	}
	return out
}

func (u *MediaUseCase) FilterBudgetFiles(files []entities.UploadFile) []entities.UploadFile {
	out := make([]entities.UploadFile, 0, len(files))
	for _, f := range files {
		ct := strings.ToLower(f.ContentType)
		if ct == "application/pdf" || strings.HasPrefix(ct, "image/") || acceptedBudgetExt[fileExt(f.Name)] {
			out = append(out, f)
		}
	}
	return out
}

func photoPath(checklistID, name string) string {
	ext := fileExt(name)
	if ext == "" {
		ext = "jpg"
	}
	return fmt.Sprintf("%s/%s.%s", checklistID, uuid.NewString(), ext)
}

func budgetPath(checklistID, name string) string {
	ext := fileExt(name)
	if !acceptedBudgetExt[ext] {
		ext = "pdf"
	}
	return fmt.Sprintf("%s/budget/%s.%s", checklistID, uuid.NewString(), ext)
}

func fuelPath(checklistID string, kind entities.FuelKind) string {
	return fmt.Sprintf("%s/fuel/%s-%s.jpg", checklistID, kind, uuid.NewString())
}

func contentTypeOr(ct, fallback string) string {
	if strings.TrimSpace(ct) == "" {
		return fallback
	}
	return ct
}

// requireEditable re-reads the checklist so that no blob is written for a
// document another session has already finalized.
func (u *MediaUseCase) requireEditable(ctx context.Context, checklistID string) error {
	current, err := u.repo.Get(ctx, checklistID)
	if err != nil {
		return err
	}
	if current.ID == "" {
		return ErrChecklistNotFound
	}
	if current.IsReadOnly() {
		log.Printf("[media] upload refused checklist_id=%s status=%s locked=%t", checklistID, current.Status, current.IsLocked)
		return ErrChecklistLocked
	}
	return nil
}

func (u *MediaUseCase) UploadPhotos(ctx context.Context, checklistID string, files []entities.UploadFile, existing []entities.MediaItem) ([]entities.MediaItem, error) {
	checklistID = strings.TrimSpace(checklistID)
	if checklistID == "" {
		return existing, ErrInvalidChecklistID
	}
	accepted := u.FilterImages(files)
	if len(accepted) == 0 {
		return existing, ErrNoFilesAccepted
	}
	if err := u.requireEditable(ctx, checklistID); err != nil {
		return existing, err
	}

	combined := make([]entities.MediaItem, len(existing), len(existing)+len(accepted))
	copy(combined, existing)

	var failed []entities.UploadFile
	var errs []error
	for _, f := range accepted {
		p := photoPath(checklistID, f.Name)
		if err := u.blobs.Upload(ctx, p, contentTypeOr(f.ContentType, "image/jpeg"), f.Data); err != nil {
			log.Printf("[media] photo upload failed checklist_id=%s name=%q err=%v", checklistID, f.Name, err)
			failed = append(failed, f)
			errs = append(errs, err)
			continue
		}
		u.metrics.BlobUploaded("photo")
		combined = append(combined, entities.MediaItem{
			Type:      entities.MediaTypePhoto,
			Path:      p,
			CreatedAt: entities.Timestamp(time.Now()),
		})
	}
	if len(failed) == len(accepted) {
		return existing, &PartialUploadError{Failed: failed, Err: errors.Join(errs...)}
	}

	if _, err := u.repo.Update(ctx, checklistID, entities.ChecklistPatch{Media: &combined}); err != nil {
		log.Printf("[media] persist media failed checklist_id=%s err=%v", checklistID, err)
		return existing, err
	}
	log.Printf("[media] photos saved checklist_id=%s uploaded=%d total=%d", checklistID, len(accepted)-len(failed), len(combined))

	if len(failed) > 0 {
		return combined, &PartialUploadError{Failed: failed, Err: errors.Join(errs...)}
	}
	return combined, nil
}

// ResolveURLs issues a signed URL for every item in parallel. The input slice is
// not modified; a failed item gets a nil URL.
func (u *MediaUseCase) ResolveURLs(ctx context.Context, items []entities.MediaItem) []entities.MediaItemWithURL {
	out := make([]entities.MediaItemWithURL, len(items))
	g, gctx := errgroup.WithContext(ctx)
	for i, item := range items {
		out[i] = entities.MediaItemWithURL{MediaItem: item}
		g.Go(func() error {
			url, err := u.blobs.CreateSignedURL(gctx, item.Path, u.ttl)
			if err != nil {
				log.Printf("[media] signed url failed path=%s err=%v", item.Path, err)
				u.metrics.SignedURLFailed()
				return nil
			}
			out[i].URL = &url
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (u *MediaUseCase) ResolveURL(ctx context.Context, p string) (string, error) {
	url, err := u.blobs.CreateSignedURL(ctx, p, u.ttl)
	if err != nil {
		u.metrics.SignedURLFailed()
		return "", err
	}
	return url, nil
}

// UploadBudget re-reads the persisted attachment list before appending so that
// attachments saved by another step are kept.
func (u *MediaUseCase) UploadBudget(ctx context.Context, checklistID string, files []entities.UploadFile) ([]entities.BudgetAttachment, error) {
	checklistID = strings.TrimSpace(checklistID)
	if checklistID == "" {
		return nil, ErrInvalidChecklistID
	}
	current, err := u.repo.Get(ctx, checklistID)
	if err != nil {
		return nil, err
	}
	if current.ID == "" {
		return nil, ErrChecklistNotFound
	}
	if current.IsReadOnly() {
		return current.BudgetAttachments, ErrChecklistLocked
	}
	accepted := u.FilterBudgetFiles(files)
	if len(accepted) == 0 {
		return current.BudgetAttachments, ErrNoFilesAccepted
	}

	combined := make([]entities.BudgetAttachment, len(current.BudgetAttachments), len(current.BudgetAttachments)+len(accepted))
	copy(combined, current.BudgetAttachments)

	var failed []entities.UploadFile
	var errs []error
	for _, f := range accepted {
		p := budgetPath(checklistID, f.Name)
		ct := contentTypeOr(f.ContentType, "application/octet-stream")
		if err := u.blobs.Upload(ctx, p, ct, f.Data); err != nil {
			log.Printf("[media] budget upload failed checklist_id=%s name=%q err=%v", checklistID, f.Name, err)
			failed = append(failed, f)
			errs = append(errs, err)
			continue
		}
		u.metrics.BlobUploaded("budget")
		combined = append(combined, entities.BudgetAttachment{
			Path:      p,
			Name:      f.Name,
			Size:      f.Size,
			Type:      ct,
			CreatedAt: entities.Timestamp(time.Now()),
		})
	}
	if len(failed) == len(accepted) {
		return current.BudgetAttachments, &PartialUploadError{Failed: failed, Err: errors.Join(errs...)}
	}

	if _, err := u.repo.Update(ctx, checklistID, entities.ChecklistPatch{BudgetAttachments: &combined}); err != nil {
		log.Printf("[media] persist budget failed checklist_id=%s err=%v", checklistID, err)
		return current.BudgetAttachments, err
	}
	if len(failed) > 0 {
		return combined, &PartialUploadError{Failed: failed, Err: errors.Join(errs...)}
	}
	return combined, nil
}

// UploadFuelPhoto replaces one slot. The previous file stays in the blob store.
func (u *MediaUseCase) UploadFuelPhoto(ctx context.Context, checklistID string, kind entities.FuelKind, file entities.UploadFile, current entities.FuelGaugePhotos) (entities.FuelGaugePhotos, error) {
	checklistID = strings.TrimSpace(checklistID)
	if checklistID == "" {
		return current, ErrInvalidChecklistID
	}
	if !kind.Valid() {
		return current, ErrInvalidFuelKind
	}
	if !IsImageFile(file) {
		return current, ErrNoFilesAccepted
	}
	if err := u.requireEditable(ctx, checklistID); err != nil {
		return current, err
	}
	p := fuelPath(checklistID, kind)
	if err := u.blobs.Upload(ctx, p, contentTypeOr(file.ContentType, "image/jpeg"), file.Data); err != nil {
		log.Printf("[media] fuel upload failed checklist_id=%s kind=%s err=%v", checklistID, kind, err)
		return current, err
	}
	u.metrics.BlobUploaded("fuel")

	next := current.With(kind, &entities.FuelPhoto{Path: p, CreatedAt: entities.Timestamp(time.Now())})
	if _, err := u.repo.Update(ctx, checklistID, entities.ChecklistPatch{FuelGaugePhotos: &next}); err != nil {
		return current, err
	}
	return next, nil
}

func (u *MediaUseCase) RemoveFuelPhoto(ctx context.Context, checklistID string, kind entities.FuelKind, current entities.FuelGaugePhotos) (entities.FuelGaugePhotos, error) {
	checklistID = strings.TrimSpace(checklistID)
	if checklistID == "" {
		return current, ErrInvalidChecklistID
	}
	if !kind.Valid() {
		return current, ErrInvalidFuelKind
	}
	next := current.With(kind, nil)
	if _, err := u.repo.Update(ctx, checklistID, entities.ChecklistPatch{FuelGaugePhotos: &next}); err != nil {
		return current, err
	}
	return next, nil
}
