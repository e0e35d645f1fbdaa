package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	request "frota_checklist/internal/adapter/http/dto/request"
	response "frota_checklist/internal/adapter/http/dto/response"
	"frota_checklist/internal/domain/entities"
	"frota_checklist/internal/usecase"
	"frota_checklist/internal/usecase/interfaces"
	"frota_checklist/pkg"

	"github.com/gin-gonic/gin"
)

const (
	filesField     = "files"
	fileField      = "file"
	maxUploadBytes = 25 << 20
)

var errFileTooLarge = errors.New("file exceeds the upload size limit")

// WizardHandler exposes the checklist wizard. Every route but Open works on a
// session created by Open and owned by the caller.
type WizardHandler struct {
	registry usecase.IWizardRegistry
}

func NewWizardHandler(registry usecase.IWizardRegistry) *WizardHandler {
	return &WizardHandler{registry: registry}
}

// Open starts a wizard. An empty body or checklist_id starts a new checklist.
func (h *WizardHandler) Open(c *gin.Context) {
	var payload request.OpenWizardRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondError(c, errInvalidPayload)
			return
		}
	}

	w, err := h.registry.Open(c.Request.Context(), payload.ChecklistID)
	if err != nil {
		respondError(c, mapWizardError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromWizardSnapshot(w.Snapshot()))
}

func (h *WizardHandler) Get(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromWizardSnapshot(w.Snapshot()))
}

// Close ends the session. Unsaved edits are written as a draft in the background.
func (h *WizardHandler) Close(c *gin.Context) {
	if err := h.registry.Close(c.Request.Context(), c.Param("wid")); err != nil {
		respondError(c, mapWizardError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WizardHandler) SubmitStep1(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}
	var payload request.Step1Request
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	snap, err := w.SubmitStep1(c.Request.Context(), payload.ToInput())
	respondSnapshot(c, snap, err)
}

func (h *WizardHandler) Back(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}
	snap, err := w.Back()
	respondSnapshot(c, snap, err)
}

func (h *WizardHandler) GoTo(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}
	var payload request.GoToRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	snap, err := w.GoTo(usecase.WizardStep(payload.Step))
	respondSnapshot(c, snap, err)
}

func (h *WizardHandler) UpdateDefect(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}
	var payload request.DefectActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	key := c.Param("key")
	var (
		defect entities.Defect
		err    error
	)
	switch payload.Action {
	case request.DefectActionToggleChecked:
		defect, err = w.ToggleChecked(key)
	case request.DefectActionToggleProblem:
		defect, err = w.ToggleProblem(key)
	default:
		defect, err = w.SetDefectNotes(key, payload.Notes)
	}
	if err != nil {
		respondError(c, mapWizardError(err))
		return
	}
	c.JSON(http.StatusOK, defect)
}

func (h *WizardHandler) SaveDefects(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}
	var payload request.SaveDefectsRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondError(c, errInvalidPayload)
			return
		}
	}
	if payload.Note != nil {
		if err := w.SetDefectsNote(*payload.Note); err != nil {
			respondError(c, mapWizardError(err))
			return
		}
	}
	snap, err := w.SaveDefects(c.Request.Context())
	respondSnapshot(c, snap, err)
}

// StagePhotos keeps the selected images in the session until SavePhotos.
func (h *WizardHandler) StagePhotos(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}
	files, err := readFiles(c, filesField)
	if err != nil {
		respondError(c, invalidRequest(err))
		return
	}
	accepted, err := w.StagePhotos(files)
	if err != nil {
		respondError(c, mapWizardError(err))
		return
	}
	c.JSON(http.StatusOK, response.StagedResponse{Accepted: accepted, Wizard: response.FromWizardSnapshot(w.Snapshot())})
}

func (h *WizardHandler) RemoveStagedPhoto(c *gin.Context) {
	h.removeStaged(c, func(w usecase.IWizard, i int) error { return w.RemoveStagedPhoto(i) })
}

func (h *WizardHandler) SavePhotos(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}
	snap, err := w.SavePhotos(c.Request.Context())
	respondSnapshot(c, snap, err)
}

func (h *WizardHandler) AdvanceFromPhotos(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}
	snap, err := w.AdvanceFromPhotos(c.Request.Context())
	respondSnapshot(c, snap, err)
}

// StageBudget accepts a multipart form with optional files and the
// budget_total and budget_notes fields.
func (h *WizardHandler) StageBudget(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}
	var form request.BudgetForm
	if err := c.ShouldBind(&form); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	files, err := readFiles(c, filesField)
	if err != nil {
		respondError(c, invalidRequest(err))
		return
	}

	if form.Total != nil || form.Notes != nil {
		if err := w.SetBudget(form.Total, form.Notes); err != nil {
			respondError(c, mapWizardError(err))
			return
		}
	}
	accepted := 0
	if len(files) > 0 {
		if accepted, err = w.StageBudget(files); err != nil {
			respondError(c, mapWizardError(err))
			return
		}
	}
	c.JSON(http.StatusOK, response.StagedResponse{Accepted: accepted, Wizard: response.FromWizardSnapshot(w.Snapshot())})
}

func (h *WizardHandler) RemoveStagedBudget(c *gin.Context) {
	h.removeStaged(c, func(w usecase.IWizard, i int) error { return w.RemoveStagedBudget(i) })
}

func (h *WizardHandler) SaveBudget(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}
	snap, err := w.SaveBudget(c.Request.Context())
	respondSnapshot(c, snap, err)
}

func (h *WizardHandler) UploadFuelPhoto(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}
	fh, err := c.FormFile(fileField)
	if err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	file, err := readUpload(fh)
	if err != nil {
		respondError(c, invalidRequest(err))
		return
	}
	snap, err := w.UploadFuelPhoto(c.Request.Context(), entities.FuelKind(c.Param("kind")), file)
	respondSnapshot(c, snap, err)
}

func (h *WizardHandler) RemoveFuelPhoto(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}
	snap, err := w.RemoveFuelPhoto(c.Request.Context(), entities.FuelKind(c.Param("kind")))
	respondSnapshot(c, snap, err)
}

// UpdateNotes schedules the debounced notes save and answers immediately.
func (h *WizardHandler) UpdateNotes(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}
	var payload request.NotesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	if err := w.UpdateNotes(*payload.Notes); err != nil {
		respondError(c, mapWizardError(err))
		return
	}
	c.Status(http.StatusAccepted)
}

func (h *WizardHandler) SearchVehicles(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}
	list, err := w.SearchVehicles(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, mapWizardError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVehicles(list))
}

func (h *WizardHandler) SearchSuppliers(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}
	list, err := w.SearchSuppliers(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, mapWizardError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSuppliers(list))
}

func (h *WizardHandler) SaveDraft(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}
	snap, err := w.SaveDraft(c.Request.Context())
	respondSnapshot(c, snap, err)
}

func (h *WizardHandler) Finalize(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}
	snap, err := w.Finalize(c.Request.Context())
	respondSnapshot(c, snap, err)
}

func (h *WizardHandler) session(c *gin.Context) (usecase.IWizard, bool) {
	w, err := h.registry.Get(c.Request.Context(), c.Param("wid"))
	if err != nil {
		respondError(c, mapWizardError(err))
		return nil, false
	}
	return w, true
}

func (h *WizardHandler) removeStaged(c *gin.Context, remove func(usecase.IWizard, int) error) {
	w, ok := h.session(c)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	if err := remove(w, index); err != nil {
		respondError(c, mapWizardError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWizardSnapshot(w.Snapshot()))
}

func respondSnapshot(c *gin.Context, snap usecase.WizardSnapshot, err error) {
	if err != nil {
		respondError(c, mapWizardError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWizardSnapshot(snap))
}

// readFiles returns the uploaded files of field. A request that is not
// multipart carries no files.
func readFiles(c *gin.Context, field string) ([]entities.UploadFile, error) {
	form, err := c.MultipartForm()
	if errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	out := make([]entities.UploadFile, 0, len(form.File[field]))
	for _, fh := range form.File[field] {
		f, err := readUpload(fh)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func readUpload(fh *multipart.FileHeader) (entities.UploadFile, error) {
	if fh.Size > maxUploadBytes {
		return entities.UploadFile{}, fmt.Errorf("%w: %s", errFileTooLarge, fh.Filename)
	}
	src, err := fh.Open()
	if err != nil {
		return entities.UploadFile{}, err
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxUploadBytes+1))
	if err != nil {
		return entities.UploadFile{}, err
	}
	if len(data) > maxUploadBytes {
		return entities.UploadFile{}, fmt.Errorf("%w: %s", errFileTooLarge, fh.Filename)
	}
	contentType := fh.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	return entities.UploadFile{Name: fh.Filename, ContentType: contentType, Size: int64(len(data)), Data: data}, nil
}

func mapWizardError(err error) *pkg.AppError {
	var partial *usecase.PartialUploadError
	switch {
	case errors.Is(err, usecase.ErrSessionRequired):
		return errSessionRequired
	case errors.Is(err, usecase.ErrWizardNotFound):
		return pkg.NewDomainErrorSimple("WIZARD_NOT_FOUND", "Wizard session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWizardForbidden):
		return pkg.NewDomainErrorSimple("WIZARD_FORBIDDEN", "Wizard session belongs to another account", http.StatusForbidden)
	case errors.Is(err, usecase.ErrWizardClosed):
		return pkg.NewDomainErrorSimple("WIZARD_CLOSED", "Wizard session is closed", http.StatusGone)
	case errors.Is(err, usecase.ErrInvalidService), errors.Is(err, usecase.ErrInvalidKM), errors.Is(err, usecase.ErrInvalidResponsavel),
		errors.Is(err, usecase.ErrVehicleRequired), errors.Is(err, usecase.ErrSupplierRequired), errors.Is(err, usecase.ErrInvalidBudgetTotal),
		errors.Is(err, usecase.ErrInvalidStep), errors.Is(err, usecase.ErrInvalidFuelKind), errors.Is(err, usecase.ErrInvalidChecklistID):
		return invalidRequest(err)
	case errors.Is(err, usecase.ErrNoFilesAccepted):
		return pkg.NewDomainErrorSimple("NO_FILES_ACCEPTED", "No supported file selected", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDefectNotFound):
		return pkg.NewDomainErrorSimple("DEFECT_NOT_FOUND", "Inspection point not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStagedFileNotFound):
		return pkg.NewDomainErrorSimple("STAGED_FILE_NOT_FOUND", "Selected file not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrChecklistNotFound):
		return pkg.NewDomainErrorSimple("CHECKLIST_NOT_FOUND", "Checklist not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrChecklistLocked):
		return errChecklistLocked
	case errors.Is(err, interfaces.ErrChecklistModified):
		return pkg.NewDomainErrorSimple("CHECKLIST_MODIFIED", "Checklist was changed elsewhere, reload before finalizing", http.StatusConflict)
	case errors.Is(err, usecase.ErrWrongStep):
		return pkg.NewDomainError("WRONG_STEP", "Operation not available at the current step", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrChecklistNotCreated):
		return pkg.NewDomainErrorSimple("CHECKLIST_NOT_CREATED", "Submit the first step before saving", http.StatusConflict)
	case errors.Is(err, usecase.ErrFinalizeInProgress):
		return pkg.NewDomainErrorSimple("FINALIZE_IN_PROGRESS", "Finalize already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrStaleSearch):
		return pkg.NewDomainErrorSimple("SEARCH_SUPERSEDED", "Search superseded by a newer query", http.StatusConflict)
	case errors.As(err, &partial):
		return pkg.NewDomainError("BLOB_ERROR", "Some files could not be uploaded", err, http.StatusBadGateway)
	default:
		return storeError(err)
	}
}
