package routes

import (
	"frota_checklist/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathChecklists = "/checklists"
	PathWizards    = "/wizards"
)

func addChecklistRoutes(rg *gin.RouterGroup, h *handlers.ChecklistHandler) {
	checklists := rg.Group(PathChecklists)
	{
		checklists.GET("", h.List)
		checklists.GET("/:id", h.Get)
		checklists.GET("/:id/media", h.Media)
		checklists.GET("/:id/pdf", h.PDF)
		checklists.PATCH("/:id/notes", h.UpdateNotes)
		// Override administrativo: apaga em qualquer status.
		checklists.DELETE("/:id", handlers.RequireAdmin(), h.Delete)
	}
}

func addWizardRoutes(rg *gin.RouterGroup, h *handlers.WizardHandler) {
	wizards := rg.Group(PathWizards)
	{
		wizards.POST("", h.Open)
		wizards.GET("/:wid", h.Get)
		wizards.DELETE("/:wid", h.Close)

		// Navegacao
		wizards.POST("/:wid/step1", h.SubmitStep1)
		wizards.POST("/:wid/back", h.Back)
		wizards.POST("/:wid/goto", h.GoTo)

		// Etapa 2: defeitos
		wizards.PATCH("/:wid/defects/:key", h.UpdateDefect)
		wizards.POST("/:wid/defects", h.SaveDefects)

		// Etapa 3: fotos
		wizards.POST("/:wid/photos", h.StagePhotos)
		wizards.DELETE("/:wid/photos/:index", h.RemoveStagedPhoto)
		wizards.POST("/:wid/photos/save", h.SavePhotos)
		wizards.POST("/:wid/photos/advance", h.AdvanceFromPhotos)

		// Etapa 4: orcamento, combustivel e finalizacao
		wizards.POST("/:wid/budget", h.StageBudget)
		wizards.DELETE("/:wid/budget/:index", h.RemoveStagedBudget)
		wizards.POST("/:wid/budget/save", h.SaveBudget)
		wizards.PUT("/:wid/fuel/:kind", h.UploadFuelPhoto)
		wizards.DELETE("/:wid/fuel/:kind", h.RemoveFuelPhoto)
		wizards.POST("/:wid/draft", h.SaveDraft)
		wizards.POST("/:wid/finalize", h.Finalize)

		wizards.PATCH("/:wid/notes", h.UpdateNotes)
		wizards.GET("/:wid/search/vehicles", h.SearchVehicles)
		wizards.GET("/:wid/search/suppliers", h.SearchSuppliers)
	}
}
