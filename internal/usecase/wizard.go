package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"frota_checklist/internal/domain/entities"
	"frota_checklist/internal/usecase/interfaces"
	"frota_checklist/pkg/debounce"
)

var (
	ErrSessionRequired     = errors.New("authenticated session required")
	ErrInvalidService      = errors.New("service is required")
	ErrInvalidKM           = errors.New("km must be a number greater than or equal to zero")
	ErrInvalidResponsavel  = errors.New("responsavel must have at least 2 characters")
	ErrVehicleRequired     = errors.New("vehicle is required")
	ErrSupplierRequired    = errors.New("supplier is required")
	ErrInvalidBudgetTotal  = errors.New("budget total must be greater than or equal to zero")
	ErrWrongStep           = errors.New("operation not available at the current step")
	ErrInvalidStep         = errors.New("invalid step")
	ErrDefectNotFound      = errors.New("defect not found")
	ErrStagedFileNotFound  = errors.New("staged file not found")
	ErrChecklistNotCreated = errors.New("checklist has not been created yet")
	ErrFinalizeInProgress  = errors.New("finalize already in progress")
	ErrWizardClosed        = errors.New("wizard is closed")
)

// WizardStep is one of the four linear steps of the checklist wizard.
type WizardStep int

const (
	StepData WizardStep = iota + 1
	StepDefects
	StepPhotos
	StepFinalize
)

func (s WizardStep) String() string {
	switch s {
	case StepData:
		return "data"
	case StepDefects:
		return "defects"
	case StepPhotos:
		return "photos"
	case StepFinalize:
		return "finalize"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

func (s WizardStep) Valid() bool {
	return s >= StepData && s <= StepFinalize
}

// Step1Input is the data entry form.
type Step1Input struct {
	Service     string
	KM          *float64
	Responsavel string
	VehicleID   string
	SupplierID  string
}

// Validate runs before any network call and reports every invalid field.
func (in Step1Input) Validate() error {
	var errs []error
	if strings.TrimSpace(in.Service) == "" {
		errs = append(errs, ErrInvalidService)
	}
	if in.KM == nil || *in.KM < 0 {
		errs = append(errs, ErrInvalidKM)
	}
	if len([]rune(strings.TrimSpace(in.Responsavel))) < 2 {
		errs = append(errs, ErrInvalidResponsavel)
	}
	if strings.TrimSpace(in.VehicleID) == "" {
		errs = append(errs, ErrVehicleRequired)
	}
	if strings.TrimSpace(in.SupplierID) == "" {
		errs = append(errs, ErrSupplierRequired)
	}
	return errors.Join(errs...)
}

// StagedFile describes a selected file waiting for upload.
type StagedFile struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Size int64  `json:"size"`
}

// WizardSnapshot is a copy of the wizard state safe to hand to other goroutines.
type WizardSnapshot struct {
	SessionID         string
	Step              WizardStep
	ChecklistID       string
	Seq               *int64
	SeqLabel          string
	Status            entities.ChecklistStatus
	ReadOnly          bool
	Finalizing        bool
	Meta              entities.Meta
	Defects           []entities.Defect
	VehicleID         *string
	SupplierID        *string
	Notes             string
	Media             []entities.MediaItem
	BudgetAttachments []entities.BudgetAttachment
	FuelGaugePhotos   entities.FuelGaugePhotos
	StagedPhotos      []StagedFile
	StagedBudget      []StagedFile
	CreatedAt         time.Time
}

// IWizard is one editing session of a checklist.
//
// Operations are strictly sequential: each one waits for the previous to finish,
// including its network calls. Nothing is retried automatically; on error the
// in-memory draft is left as it was so the caller can repeat the action.
type IWizard interface {
	SessionID() string
	Owner() string
	LastActive() time.Time

	Load(ctx context.Context, checklistID string) (WizardSnapshot, error)
	SubmitStep1(ctx context.Context, in Step1Input) (WizardSnapshot, error)

	ToggleChecked(key string) (entities.Defect, error)
	ToggleProblem(key string) (entities.Defect, error)
	SetDefectNotes(key, notes string) (entities.Defect, error)
	SetDefectsNote(note string) error
	SaveDefects(ctx context.Context) (WizardSnapshot, error)

	StagePhotos(files []entities.UploadFile) (accepted int, err error)
	RemoveStagedPhoto(index int) error
	SavePhotos(ctx context.Context) (WizardSnapshot, error)
	AdvanceFromPhotos(ctx context.Context) (WizardSnapshot, error)

	StageBudget(files []entities.UploadFile) (accepted int, err error)
	RemoveStagedBudget(index int) error
	SetBudget(total *float64, notes *string) error
	SaveBudget(ctx context.Context) (WizardSnapshot, error)

	UploadFuelPhoto(ctx context.Context, kind entities.FuelKind, file entities.UploadFile) (WizardSnapshot, error)
	RemoveFuelPhoto(ctx context.Context, kind entities.FuelKind) (WizardSnapshot, error)

	UpdateNotes(text string) error
	SearchVehicles(ctx context.Context, q string) ([]entities.Vehicle, error)
	SearchSuppliers(ctx context.Context, q string) ([]entities.Supplier, error)

	Back() (WizardSnapshot, error)
	GoTo(step WizardStep) (WizardSnapshot, error)

	SaveDraft(ctx context.Context) (WizardSnapshot, error)
	Finalize(ctx context.Context) (WizardSnapshot, error)
	Close(ctx context.Context) <-chan struct{}

	Snapshot() WizardSnapshot
}

// WizardDeps groups the collaborators shared by every wizard session.
type WizardDeps struct {
	Checklists interfaces.IChecklistRepository
	Media      IMediaUseCase
	Vehicles   IVehicleUseCase
	Suppliers  ISupplierUseCase
	Events     interfaces.IEventPublisher
	Metrics    interfaces.IMetricsRecorder

	NotesDebounce    time.Duration
	DraftSaveTimeout time.Duration
}

const (
	defaultNotesDebounce    = 800 * time.Millisecond
	defaultDraftSaveTimeout = 10 * time.Second
)

type Wizard struct {
	mu sync.Mutex

	sessionID string
	owner     string
	deps      WizardDeps
	metrics   interfaces.IMetricsRecorder

	step              WizardStep
	checklistID       string
	seq               *int64
	status            entities.ChecklistStatus
	readOnly          bool
	meta              entities.Meta
	defects           []entities.Defect
	vehicleID         *string
	supplierID        *string
	notes             string
	media             []entities.MediaItem
	budget            []entities.BudgetAttachment
	fuel              entities.FuelGaugePhotos
	stagedPhotos      []entities.UploadFile
	stagedBudget      []entities.UploadFile
	createdAt         time.Time
	closed            bool
	lastActive        atomic.Int64
	notesSaver        *debounce.Debouncer
	finalizing        atomic.Bool
	finalized         atomic.Bool
	vehicleTypeahead  *Typeahead[entities.Vehicle]
	supplierTypeahead *Typeahead[entities.Supplier]
}

var _ IWizard = (*Wizard)(nil)

// NewWizard starts a session for a new checklist: step 1, catalog seed defects.
func NewWizard(sessionID, owner string, deps WizardDeps) *Wizard {
	if deps.NotesDebounce <= 0 {
		deps.NotesDebounce = defaultNotesDebounce
	}
	if deps.DraftSaveTimeout <= 0 {
		deps.DraftSaveTimeout = defaultDraftSaveTimeout
	}
	w := &Wizard{
		sessionID:  sessionID,
		owner:      owner,
		deps:       deps,
		metrics:    metricsOrNoop(deps.Metrics),
		step:       StepData,
		defects:    entities.SeedDefects(),
		notesSaver: debounce.New(deps.NotesDebounce),
	}
	w.vehicleTypeahead = NewTypeahead(func(ctx context.Context, q string) ([]entities.Vehicle, error) {
		if w.deps.Vehicles == nil {
			return nil, nil
		}
		return w.deps.Vehicles.Search(ctx, q)
	})
	w.supplierTypeahead = NewTypeahead(func(ctx context.Context, q string) ([]entities.Supplier, error) {
		if w.deps.Suppliers == nil {
			return nil, nil
		}
		return w.deps.Suppliers.Search(ctx, q)
	})
	w.touch()
	return w
}

func (w *Wizard) SessionID() string { return w.sessionID }

func (w *Wizard) Owner() string { return w.owner }

func (w *Wizard) LastActive() time.Time {
	return time.Unix(0, w.lastActive.Load())
}

func (w *Wizard) touch() {
	w.lastActive.Store(time.Now().UnixNano())
}

// begin locks the session for one operation. The returned func unlocks it.
func (w *Wizard) begin() (func(), error) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil, ErrWizardClosed
	}
	w.touch()
	return w.mu.Unlock, nil
}

func (w *Wizard) requireWritable() error {
	if w.readOnly {
		return ErrChecklistLocked
	}
	return nil
}

func (w *Wizard) requireStep(step WizardStep) error {
	if w.step != step {
		return fmt.Errorf("%w: at %s, need %s", ErrWrongStep, w.step, step)
	}
	return nil
}

func (w *Wizard) advance(to WizardStep) {
	w.step = to
	w.metrics.WizardTransition(to.String())
	log.Printf("[wizard] step session_id=%s checklist_id=%s step=%s", w.sessionID, w.checklistID, to)
}

// apply replaces the held state with a document read from the store.
func (w *Wizard) apply(c entities.Checklist) {
	w.checklistID = c.ID
	w.seq = c.Seq
	w.status = c.Status
	w.readOnly = c.IsReadOnly()
	w.createdAt = c.CreatedAt
	w.vehicleID = c.VehicleID
	w.supplierID = c.SupplierID
	w.notes = c.Notes
	w.media = append([]entities.MediaItem(nil), c.Media...)
	w.budget = append([]entities.BudgetAttachment(nil), c.BudgetAttachments...)
	w.fuel = c.FuelGaugePhotos
	var serverDefects []entities.Defect
	w.meta = entities.Meta{}
	if items := c.Items.Clone(); items != nil {
		w.meta = items.Meta
		serverDefects = items.Defects
	}
	w.defects, _ = ResolveLoadedDefects(serverDefects)
}

// applyPersisted records the fields of a write result that the server owns.
func (w *Wizard) applyPersisted(c entities.Checklist) {
	if c.ID != "" {
		w.checklistID = c.ID
	}
	if c.Seq != nil {
		w.seq = c.Seq
	}
	if c.Status != "" {
		w.status = c.Status
	}
	if !c.CreatedAt.IsZero() {
		w.createdAt = c.CreatedAt
	}
	w.readOnly = c.IsReadOnly()
}

// fetchCurrent re-reads the document before a save and refuses read-only ones.
func (w *Wizard) fetchCurrent(ctx context.Context) (entities.Checklist, error) {
	if w.checklistID == "" {
		return entities.Checklist{}, ErrChecklistNotCreated
	}
	current, err := w.deps.Checklists.Get(ctx, w.checklistID)
	if err != nil {
		return entities.Checklist{}, err
	}
	if current.ID == "" {
		return entities.Checklist{}, ErrChecklistNotFound
	}
	if current.IsReadOnly() {
		w.readOnly = true
		w.status = current.Status
		return entities.Checklist{}, ErrChecklistLocked
	}
	return current, nil
}

func (w *Wizard) Load(ctx context.Context, checklistID string) (WizardSnapshot, error) {
	unlock, err := w.begin()
	if err != nil {
		return WizardSnapshot{}, err
	}
	defer unlock()

	checklistID = strings.TrimSpace(checklistID)
	if checklistID == "" {
		return WizardSnapshot{}, ErrInvalidChecklistID
	}
	c, err := w.deps.Checklists.Get(ctx, checklistID)
	if err != nil {
		return WizardSnapshot{}, err
	}
	if c.ID == "" {
		return WizardSnapshot{}, ErrChecklistNotFound
	}
	w.apply(c)
	w.step = StepData
	log.Printf("[wizard] loaded session_id=%s checklist_id=%s status=%s read_only=%t", w.sessionID, c.ID, c.Status, w.readOnly)
	return w.snapshotLocked(), nil
}

func (w *Wizard) SubmitStep1(ctx context.Context, in Step1Input) (WizardSnapshot, error) {
	unlock, err := w.begin()
	if err != nil {
		return WizardSnapshot{}, err
	}
	defer unlock()

	if err := w.requireStep(StepData); err != nil {
		return WizardSnapshot{}, err
	}
	if err := w.requireWritable(); err != nil {
		return WizardSnapshot{}, err
	}
	if err := in.Validate(); err != nil {
		return WizardSnapshot{}, err
	}
	acc, ok := AccountFromContext(ctx)
	if !ok {
		return WizardSnapshot{}, ErrSessionRequired
	}

	local := w.meta
	local.Service = strings.TrimSpace(in.Service)
	km := *in.KM
	local.KM = &km
	local.Responsavel = strings.TrimSpace(in.Responsavel)
	vehicleID := strings.TrimSpace(in.VehicleID)
	supplierID := strings.TrimSpace(in.SupplierID)

	if w.checklistID == "" {
		items := &entities.Items{Meta: local, Defects: w.defects}
		created, err := w.deps.Checklists.Insert(ctx, entities.Checklist{
			Status:            entities.ChecklistStatusEmAndamento,
			CreatedBy:         acc.ID,
			VehicleID:         &vehicleID,
			SupplierID:        &supplierID,
			Notes:             w.notes,
			Items:             items.Clone(),
			Media:             []entities.MediaItem{},
			BudgetAttachments: []entities.BudgetAttachment{},
		})
		if err != nil {
			log.Printf("[wizard] insert failed session_id=%s err=%v", w.sessionID, err)
			return WizardSnapshot{}, err
		}
		w.applyPersisted(created)
		w.meta = local
		w.vehicleID = &vehicleID
		w.supplierID = &supplierID
		log.Printf("[wizard] checklist created session_id=%s checklist_id=%s seq=%s", w.sessionID, created.ID, created.SeqLabel())
		publishEvent(ctx, w.deps.Events, entities.ChecklistEventCreated, created, acc.ID)
		w.advance(StepDefects)
		return w.snapshotLocked(), nil
	}

	current, err := w.fetchCurrent(ctx)
	if err != nil {
		return WizardSnapshot{}, err
	}
	items := MergeItems(current.Items, local, w.defects)
	updated, err := w.deps.Checklists.Update(ctx, w.checklistID, entities.ChecklistPatch{
		VehicleID:  &vehicleID,
		SupplierID: &supplierID,
		Items:      items,
	})
	if err != nil {
		log.Printf("[wizard] step1 update failed checklist_id=%s err=%v", w.checklistID, err)
		return WizardSnapshot{}, err
	}
	w.applyPersisted(updated)
	w.meta = items.Meta
	w.vehicleID = &vehicleID
	w.supplierID = &supplierID
	w.advance(StepDefects)
	return w.snapshotLocked(), nil
}

func (w *Wizard) findDefect(key string) (*entities.Defect, error) {
	for i := range w.defects {
		if w.defects[i].Key == key {
			return &w.defects[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrDefectNotFound, key)
}

func (w *Wizard) editDefect(key string, edit func(d *entities.Defect)) (entities.Defect, error) {
	unlock, err := w.begin()
	if err != nil {
		return entities.Defect{}, err
	}
	defer unlock()

	if err := w.requireStep(StepDefects); err != nil {
		return entities.Defect{}, err
	}
	if err := w.requireWritable(); err != nil {
		return entities.Defect{}, err
	}
	d, err := w.findDefect(key)
	if err != nil {
		return entities.Defect{}, err
	}
	edit(d)
	return *d, nil
}

func (w *Wizard) ToggleChecked(key string) (entities.Defect, error) {
	return w.editDefect(key, (*entities.Defect).ToggleChecked)
}

func (w *Wizard) ToggleProblem(key string) (entities.Defect, error) {
	return w.editDefect(key, (*entities.Defect).ToggleProblem)
}

func (w *Wizard) SetDefectNotes(key, notes string) (entities.Defect, error) {
	return w.editDefect(key, func(d *entities.Defect) { d.Notes = notes })
}

func (w *Wizard) SetDefectsNote(note string) error {
	unlock, err := w.begin()
	if err != nil {
		return err
	}
	defer unlock()

	if err := w.requireStep(StepDefects); err != nil {
		return err
	}
	if err := w.requireWritable(); err != nil {
		return err
	}
	w.meta.DefectsNote = &note
	return nil
}

// SaveDefects writes the full local defect list. Meta is re-read first so that
// fields saved by other steps are not clobbered.
func (w *Wizard) SaveDefects(ctx context.Context) (WizardSnapshot, error) {
	unlock, err := w.begin()
	if err != nil {
		return WizardSnapshot{}, err
	}
	defer unlock()

	if err := w.requireStep(StepDefects); err != nil {
		return WizardSnapshot{}, err
	}
	if err := w.requireWritable(); err != nil {
		return WizardSnapshot{}, err
	}
	current, err := w.fetchCurrent(ctx)
	if err != nil {
		return WizardSnapshot{}, err
	}
	var meta entities.Meta
	if current.Items != nil {
		meta = current.Items.Meta
	}
	note := ""
	if w.meta.DefectsNote != nil {
		note = *w.meta.DefectsNote
	}
	meta.DefectsNote = &note

	items := (&entities.Items{Meta: meta, Defects: w.defects}).Clone()
	updated, err := w.deps.Checklists.Update(ctx, w.checklistID, entities.ChecklistPatch{Items: items})
	if err != nil {
		log.Printf("[wizard] save defects failed checklist_id=%s err=%v", w.checklistID, err)
		return WizardSnapshot{}, err
	}
	w.applyPersisted(updated)
	w.meta.DefectsNote = &note
	log.Printf("[wizard] defects saved checklist_id=%s count=%d problems=%d", w.checklistID, len(w.defects), countProblems(w.defects))
	w.advance(StepPhotos)
	return w.snapshotLocked(), nil
}

func countProblems(defects []entities.Defect) int {
	n := 0
	for _, d := range defects {
		if d.Problem {
			n++
		}
	}
	return n
}

func (w *Wizard) StagePhotos(files []entities.UploadFile) (int, error) {
	unlock, err := w.begin()
	if err != nil {
		return 0, err
	}
	defer unlock()

	if err := w.requireWritable(); err != nil {
		return 0, err
	}
	accepted := w.deps.Media.FilterImages(files)
	w.stagedPhotos = append(w.stagedPhotos, accepted...)
	return len(accepted), nil
}

func (w *Wizard) RemoveStagedPhoto(index int) error {
	unlock, err := w.begin()
	if err != nil {
		return err
	}
	defer unlock()

	if index < 0 || index >= len(w.stagedPhotos) {
		return ErrStagedFileNotFound
	}
	w.stagedPhotos = append(w.stagedPhotos[:index:index], w.stagedPhotos[index+1:]...)
	return nil
}

func (w *Wizard) SavePhotos(ctx context.Context) (WizardSnapshot, error) {
	unlock, err := w.begin()
	if err != nil {
		return WizardSnapshot{}, err
	}
	defer unlock()

	if err := w.savePhotosLocked(ctx); err != nil {
		return WizardSnapshot{}, err
	}
	return w.snapshotLocked(), nil
}

func (w *Wizard) savePhotosLocked(ctx context.Context) error {
	if err := w.requireWritable(); err != nil {
		return err
	}
	if len(w.stagedPhotos) == 0 {
		return nil
	}
	if w.checklistID == "" {
		return ErrChecklistNotCreated
	}
	combined, err := w.deps.Media.UploadPhotos(ctx, w.checklistID, w.stagedPhotos, w.media)
	var partial *PartialUploadError
	switch {
	case errors.As(err, &partial):
		w.media = combined
		w.stagedPhotos = partial.Failed
		return err
	case err != nil:
		if errors.Is(err, ErrChecklistLocked) {
			w.readOnly = true
		}
		return err
	}
	w.media = combined
	w.stagedPhotos = nil
	return nil
}

// AdvanceFromPhotos saves any staged photo before moving to the last step.
func (w *Wizard) AdvanceFromPhotos(ctx context.Context) (WizardSnapshot, error) {
	unlock, err := w.begin()
	if err != nil {
		return WizardSnapshot{}, err
	}
	defer unlock()

	if err := w.requireStep(StepPhotos); err != nil {
		return WizardSnapshot{}, err
	}
	if len(w.stagedPhotos) > 0 {
		if err := w.savePhotosLocked(ctx); err != nil {
			return WizardSnapshot{}, err
		}
	}
	w.advance(StepFinalize)
	return w.snapshotLocked(), nil
}

func (w *Wizard) StageBudget(files []entities.UploadFile) (int, error) {
	unlock, err := w.begin()
	if err != nil {
		return 0, err
	}
	defer unlock()

	if err := w.requireWritable(); err != nil {
		return 0, err
	}
	accepted := w.deps.Media.FilterBudgetFiles(files)
	w.stagedBudget = append(w.stagedBudget, accepted...)
	return len(accepted), nil
}

func (w *Wizard) RemoveStagedBudget(index int) error {
	unlock, err := w.begin()
	if err != nil {
		return err
	}
	defer unlock()

	if index < 0 || index >= len(w.stagedBudget) {
		return ErrStagedFileNotFound
	}
	w.stagedBudget = append(w.stagedBudget[:index:index], w.stagedBudget[index+1:]...)
	return nil
}

func (w *Wizard) SetBudget(total *float64, notes *string) error {
	unlock, err := w.begin()
	if err != nil {
		return err
	}
	defer unlock()

	if err := w.requireWritable(); err != nil {
		return err
	}
	if total != nil && *total < 0 {
		return ErrInvalidBudgetTotal
	}
	if total != nil {
		v := *total
		w.meta.BudgetTotal = &v
	}
	if notes != nil {
		v := *notes
		w.meta.BudgetNotes = &v
	}
	return nil
}

// SaveBudget uploads staged budget files and persists the budget meta fields.
func (w *Wizard) SaveBudget(ctx context.Context) (WizardSnapshot, error) {
	unlock, err := w.begin()
	if err != nil {
		return WizardSnapshot{}, err
	}
	defer unlock()

	if err := w.requireWritable(); err != nil {
		return WizardSnapshot{}, err
	}
	if err := w.uploadBudgetLocked(ctx); err != nil {
		return WizardSnapshot{}, err
	}
	current, err := w.fetchCurrent(ctx)
	if err != nil {
		return WizardSnapshot{}, err
	}
	budgetOnly := entities.Meta{BudgetTotal: w.meta.BudgetTotal, BudgetNotes: w.meta.BudgetNotes}
	items := MergeItems(current.Items, budgetOnly, w.defects)
	updated, err := w.deps.Checklists.Update(ctx, w.checklistID, entities.ChecklistPatch{Items: items})
	if err != nil {
		return WizardSnapshot{}, err
	}
	w.applyPersisted(updated)
	return w.snapshotLocked(), nil
}

func (w *Wizard) uploadBudgetLocked(ctx context.Context) error {
	if len(w.stagedBudget) == 0 {
		return nil
	}
	if w.checklistID == "" {
		return ErrChecklistNotCreated
	}
	combined, err := w.deps.Media.UploadBudget(ctx, w.checklistID, w.stagedBudget)
	var partial *PartialUploadError
	switch {
	case errors.As(err, &partial):
		w.budget = combined
		w.stagedBudget = partial.Failed
		return err
	case err != nil:
		if errors.Is(err, ErrChecklistLocked) {
			w.readOnly = true
		}
		return err
	}
	w.budget = combined
	w.stagedBudget = nil
	return nil
}

func (w *Wizard) UploadFuelPhoto(ctx context.Context, kind entities.FuelKind, file entities.UploadFile) (WizardSnapshot, error) {
	unlock, err := w.begin()
	if err != nil {
		return WizardSnapshot{}, err
	}
	defer unlock()

	if err := w.requireWritable(); err != nil {
		return WizardSnapshot{}, err
	}
	if w.checklistID == "" {
		return WizardSnapshot{}, ErrChecklistNotCreated
	}
	next, err := w.deps.Media.UploadFuelPhoto(ctx, w.checklistID, kind, file, w.fuel)
	if err != nil {
		if errors.Is(err, ErrChecklistLocked) {
			w.readOnly = true
		}
		return WizardSnapshot{}, err
	}
	w.fuel = next
	return w.snapshotLocked(), nil
}

func (w *Wizard) RemoveFuelPhoto(ctx context.Context, kind entities.FuelKind) (WizardSnapshot, error) {
	unlock, err := w.begin()
	if err != nil {
		return WizardSnapshot{}, err
	}
	defer unlock()

	if err := w.requireWritable(); err != nil {
		return WizardSnapshot{}, err
	}
	if w.checklistID == "" {
		return WizardSnapshot{}, ErrChecklistNotCreated
	}
	next, err := w.deps.Media.RemoveFuelPhoto(ctx, w.checklistID, kind, w.fuel)
	if err != nil {
		if errors.Is(err, ErrChecklistLocked) {
			w.readOnly = true
		}
		return WizardSnapshot{}, err
	}
	w.fuel = next
	return w.snapshotLocked(), nil
}

// UpdateNotes keeps the text locally and schedules a trailing-edge save of the
// notes field alone. Only the last text of a burst is written.
func (w *Wizard) UpdateNotes(text string) error {
	unlock, err := w.begin()
	if err != nil {
		return err
	}
	defer unlock()

	if err := w.requireWritable(); err != nil {
		return err
	}
	w.notes = text
	if w.checklistID == "" {
		return nil
	}
	id := w.checklistID
	w.notesSaver.Call(func() { w.persistNotes(id, text) })
	return nil
}

// persistNotes runs outside the session lock, so it re-reads the document and
// drops the write once another session has finalized it.
func (w *Wizard) persistNotes(checklistID, text string) {
	ctx, cancel := context.WithTimeout(context.Background(), w.deps.DraftSaveTimeout)
	defer cancel()
	current, err := w.deps.Checklists.Get(ctx, checklistID)
	if err != nil {
		log.Printf("[wizard] notes auto-save failed checklist_id=%s err=%v", checklistID, err)
		w.metrics.DraftSaved("notes", "error")
		return
	}
	if current.IsReadOnly() {
		log.Printf("[wizard] notes auto-save skipped checklist_id=%s status=%s", checklistID, current.Status)
		w.metrics.DraftSaved("notes", "skipped")
		return
	}
	if _, err := w.deps.Checklists.Update(ctx, checklistID, entities.ChecklistPatch{Notes: &text}); err != nil {
		log.Printf("[wizard] notes auto-save failed checklist_id=%s err=%v", checklistID, err)
		w.metrics.DraftSaved("notes", "error")
		return
	}
	w.metrics.DraftSaved("notes", "ok")
}

func (w *Wizard) SearchVehicles(ctx context.Context, q string) ([]entities.Vehicle, error) {
	w.touch()
	return w.vehicleTypeahead.Query(ctx, q)
}

func (w *Wizard) SearchSuppliers(ctx context.Context, q string) ([]entities.Supplier, error) {
	w.touch()
	return w.supplierTypeahead.Query(ctx, q)
}

func (w *Wizard) Back() (WizardSnapshot, error) {
	unlock, err := w.begin()
	if err != nil {
		return WizardSnapshot{}, err
	}
	defer unlock()

	if w.step > StepData {
		w.advance(w.step - 1)
	}
	return w.snapshotLocked(), nil
}

// GoTo only moves backwards, except on read-only checklists where every step
// can be viewed.
func (w *Wizard) GoTo(step WizardStep) (WizardSnapshot, error) {
	unlock, err := w.begin()
	if err != nil {
		return WizardSnapshot{}, err
	}
	defer unlock()

	if !step.Valid() {
		return WizardSnapshot{}, ErrInvalidStep
	}
	if step > w.step && !w.readOnly {
		return WizardSnapshot{}, fmt.Errorf("%w: cannot skip forward to %s", ErrWrongStep, step)
	}
	if step != w.step {
		w.advance(step)
	}
	return w.snapshotLocked(), nil
}

// draftPatch builds the draft write from the held state and the current server
// document. Defects always come from the server when it has any.
func draftPatch(current entities.Checklist, st draftState) entities.ChecklistPatch {
	status := entities.ChecklistStatusRascunho
	unlocked := false
	notes := st.notes
	return entities.ChecklistPatch{
		Status:     &status,
		IsLocked:   &unlocked,
		VehicleID:  st.vehicleID,
		SupplierID: st.supplierID,
		Notes:      &notes,
		Items:      MergeItems(current.Items, st.meta, st.defects),
	}
}

// draftState is the part of the wizard a draft save needs, captured at call time.
type draftState struct {
	checklistID string
	meta        entities.Meta
	defects     []entities.Defect
	vehicleID   *string
	supplierID  *string
	notes       string
}

func (w *Wizard) captureDraftLocked() draftState {
	items := (&entities.Items{Meta: w.meta, Defects: w.defects}).Clone()
	return draftState{
		checklistID: w.checklistID,
		meta:        items.Meta,
		defects:     items.Defects,
		vehicleID:   cloneString(w.vehicleID),
		supplierID:  cloneString(w.supplierID),
		notes:       w.notes,
	}
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// SaveDraft forces status rascunho and is_locked=false so the checklist can
// always be resumed.
func (w *Wizard) SaveDraft(ctx context.Context) (WizardSnapshot, error) {
	unlock, err := w.begin()
	if err != nil {
		return WizardSnapshot{}, err
	}
	defer unlock()

	if err := w.requireWritable(); err != nil {
		return WizardSnapshot{}, err
	}
	current, err := w.fetchCurrent(ctx)
	if err != nil {
		return WizardSnapshot{}, err
	}
	w.notesSaver.Cancel()
	st := w.captureDraftLocked()
	updated, err := w.deps.Checklists.Update(ctx, w.checklistID, draftPatch(current, st))
	if err != nil {
		log.Printf("[wizard] draft save failed checklist_id=%s err=%v", w.checklistID, err)
		w.metrics.DraftSaved("explicit", "error")
		return WizardSnapshot{}, err
	}
	w.applyPersisted(updated)
	w.status = entities.ChecklistStatusRascunho
	w.metrics.DraftSaved("explicit", "ok")
	log.Printf("[wizard] draft saved checklist_id=%s", w.checklistID)
	publishEvent(ctx, w.deps.Events, entities.ChecklistEventDraftSaved, updated, accountID(ctx))
	return w.snapshotLocked(), nil
}

// Finalize uploads pending attachments, re-reads the document, merges local
// meta over it and writes the merge together with status finalizado and
// is_locked=true in one conditional store write.
//
// The finalizing guard is set before the first call and cleared only on
// failure, so a finalized session never runs the close-time draft save. Calls
// after a successful finalize report ErrChecklistLocked.
func (w *Wizard) Finalize(ctx context.Context) (snap WizardSnapshot, err error) {
	if !w.finalizing.CompareAndSwap(false, true) {
		if w.finalized.Load() {
			return WizardSnapshot{}, ErrChecklistLocked
		}
		return WizardSnapshot{}, ErrFinalizeInProgress
	}
	defer func() {
		if err != nil {
			w.finalizing.Store(false)
			w.metrics.ChecklistFinalized("error")
		}
	}()

	unlock, err := w.begin()
	if err != nil {
		return WizardSnapshot{}, err
	}
	defer unlock()

	if err = w.requireWritable(); err != nil {
		return WizardSnapshot{}, err
	}
	if w.checklistID == "" {
		return WizardSnapshot{}, ErrChecklistNotCreated
	}
	if err = w.savePhotosLocked(ctx); err != nil {
		return WizardSnapshot{}, err
	}
	if err = w.uploadBudgetLocked(ctx); err != nil {
		return WizardSnapshot{}, err
	}

	current, err := w.fetchCurrent(ctx)
	if err != nil {
		return WizardSnapshot{}, err
	}
	// Pending notes travel with the finalize write.
	w.notesSaver.Cancel()
	notes := w.notes
	items := MergeItems(current.Items, w.meta, w.defects)
	patch := entities.ChecklistPatch{
		VehicleID:  cloneString(w.vehicleID),
		SupplierID: cloneString(w.supplierID),
		Notes:      &notes,
		Items:      items,
	}
	finalized, err := w.deps.Checklists.Finalize(ctx, w.checklistID, patch, current.UpdatedAt)
	if err != nil {
		if errors.Is(err, ErrChecklistLocked) {
			w.readOnly = true
		}
		log.Printf("[wizard] finalize failed checklist_id=%s err=%v", w.checklistID, err)
		return WizardSnapshot{}, err
	}
	w.applyPersisted(finalized)
	w.status = entities.ChecklistStatusFinalizado
	w.readOnly = true
	w.finalized.Store(true)
	w.meta = items.Meta
	w.defects = items.Defects
	w.metrics.ChecklistFinalized("ok")
	log.Printf("[wizard] finalized checklist_id=%s seq=%s", w.checklistID, finalized.SeqLabel())
	publishEvent(ctx, w.deps.Events, entities.ChecklistEventFinalized, finalized, accountID(ctx))
	return w.snapshotLocked(), nil
}

// Close tears the session down. When a checklist exists, it is not read-only and
// no finalize is in flight, a draft save is started in the background with a
// bounded timeout and no retry. The returned channel is closed when that save
// has finished, or immediately when none was started.
func (w *Wizard) Close(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		close(done)
		return done
	}
	w.closed = true
	w.notesSaver.Stop()
	if w.checklistID == "" || w.readOnly || w.finalizing.Load() {
		w.mu.Unlock()
		close(done)
		return done
	}
	st := w.captureDraftLocked()
	w.mu.Unlock()

	bg, cancel := context.WithTimeout(context.WithoutCancel(ctx), w.deps.DraftSaveTimeout)
	go func() {
		defer close(done)
		defer cancel()
		w.closeDraftSave(bg, st)
	}()
	return done
}

func (w *Wizard) closeDraftSave(ctx context.Context, st draftState) {
	current, err := w.deps.Checklists.Get(ctx, st.checklistID)
	if err != nil || current.ID == "" {
		log.Printf("[wizard] close auto-save skipped checklist_id=%s err=%v", st.checklistID, err)
		w.metrics.DraftSaved("close", "error")
		return
	}
	if current.IsReadOnly() {
		return
	}
	if _, err := w.deps.Checklists.Update(ctx, st.checklistID, draftPatch(current, st)); err != nil {
		log.Printf("[wizard] close auto-save failed checklist_id=%s err=%v", st.checklistID, err)
		w.metrics.DraftSaved("close", "error")
		return
	}
	w.metrics.DraftSaved("close", "ok")
	log.Printf("[wizard] close auto-save done checklist_id=%s", st.checklistID)
}

func (w *Wizard) Snapshot() WizardSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

func (w *Wizard) snapshotLocked() WizardSnapshot {
	items := (&entities.Items{Meta: w.meta, Defects: w.defects}).Clone()
	return WizardSnapshot{
		SessionID:         w.sessionID,
		Step:              w.step,
		ChecklistID:       w.checklistID,
		Seq:               w.seq,
		SeqLabel:          entities.FormatSeq(w.seq),
		Status:            w.status,
		ReadOnly:          w.readOnly,
		Finalizing:        w.finalizing.Load(),
		Meta:              items.Meta,
		Defects:           items.Defects,
		VehicleID:         cloneString(w.vehicleID),
		SupplierID:        cloneString(w.supplierID),
		Notes:             w.notes,
		Media:             append([]entities.MediaItem(nil), w.media...),
		BudgetAttachments: append([]entities.BudgetAttachment(nil), w.budget...),
		FuelGaugePhotos:   w.fuel,
		StagedPhotos:      stagedFiles(w.stagedPhotos),
		StagedBudget:      stagedFiles(w.stagedBudget),
		CreatedAt:         w.createdAt,
	}
}

func stagedFiles(files []entities.UploadFile) []StagedFile {
	out := make([]StagedFile, 0, len(files))
	for _, f := range files {
		out = append(out, StagedFile{Name: f.Name, Type: f.ContentType, Size: f.Size})
	}
	return out
}
