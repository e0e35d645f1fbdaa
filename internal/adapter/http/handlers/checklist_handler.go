package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	request "frota_checklist/internal/adapter/http/dto/request"
	response "frota_checklist/internal/adapter/http/dto/response"
	"frota_checklist/internal/usecase"
	"frota_checklist/pkg"

	"github.com/gin-gonic/gin"
)

// ChecklistHandler serves the list and detail pages, the PDF export and the
// admin delete.
type ChecklistHandler struct {
	usecase usecase.IChecklistUseCase
	reports usecase.IReportUseCase
	now     func() time.Time
}

func NewChecklistHandler(uc usecase.IChecklistUseCase, reports usecase.IReportUseCase) *ChecklistHandler {
	return &ChecklistHandler{usecase: uc, reports: reports, now: time.Now}
}

func (h *ChecklistHandler) List(c *gin.Context) {
	var query request.ChecklistListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		respondError(c, invalidRequest(err))
		return
	}

	list, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, mapChecklistError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromChecklists(list, h.now()))
}

func (h *ChecklistHandler) Get(c *gin.Context) {
	checklist, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapChecklistError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromChecklist(checklist, h.now()))
}

// Media returns every stored file with a time-limited URL. Entries whose URL
// could not be created come back with url null.
func (h *ChecklistHandler) Media(c *gin.Context) {
	media, err := h.usecase.MediaURLs(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapChecklistError(err))
		return
	}
	c.JSON(http.StatusOK, media)
}

func (h *ChecklistHandler) PDF(c *gin.Context) {
	file, err := h.reports.Export(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("[checklist][handler] pdf export failed checklist_id=%s err=%v", c.Param("id"), err)
		respondError(c, mapChecklistError(err))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}

func (h *ChecklistHandler) UpdateNotes(c *gin.Context) {
	var payload request.NotesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	checklist, err := h.usecase.UpdateNotes(c.Request.Context(), c.Param("id"), *payload.Notes)
	if err != nil {
		respondError(c, mapChecklistError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromChecklist(checklist, h.now()))
}

func (h *ChecklistHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapChecklistError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapChecklistError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidChecklistID), errors.Is(err, usecase.ErrInvalidStatus), errors.Is(err, usecase.ErrInvalidDateRange):
		return invalidRequest(err)
	case errors.Is(err, usecase.ErrChecklistNotFound):
		return pkg.NewDomainErrorSimple("CHECKLIST_NOT_FOUND", "Checklist not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrChecklistLocked):
		return errChecklistLocked
	case errors.Is(err, usecase.ErrSessionRequired):
		return errSessionRequired
	case errors.Is(err, usecase.ErrAdminRequired):
		return errAdminRequired
	default:
		return storeError(err)
	}
}
