package entities

import "time"

const MediaTypePhoto = "photo"

// MediaItem is a general inspection photograph stored in the blob store.
type MediaItem struct {
	Type      string `json:"type"`
	Path      string `json:"path"`
	CreatedAt string `json:"created_at"`
}

// MediaItemWithURL is a MediaItem with its resolved, time-limited display URL.
// URL is nil when resolution failed.
type MediaItemWithURL struct {
	MediaItem
	URL *string `json:"url"`
}

// BudgetAttachment is an invoice or quote (PDF or image).
type BudgetAttachment struct {
	Path      string `json:"path"`
	Name      string `json:"name"`
	Size      int64  `json:"size"`
	Type      string `json:"type"`
	CreatedAt string `json:"created_at"`
}

// FuelPhoto is one slot of the fuel gauge photos.
type FuelPhoto struct {
	Path      string `json:"path"`
	CreatedAt string `json:"created_at"`
}

// FuelGaugePhotos is a fixed two-slot structure; uploading replaces the slot.
type FuelGaugePhotos struct {
	Entry *FuelPhoto `json:"entry"`
	Exit  *FuelPhoto `json:"exit"`
}

type FuelKind string

const (
	FuelKindEntry FuelKind = "entry"
	FuelKindExit  FuelKind = "exit"
)

func (k FuelKind) Valid() bool {
	return k == FuelKindEntry || k == FuelKindExit
}

// With returns a copy with the given slot replaced (nil clears it).
func (f FuelGaugePhotos) With(kind FuelKind, photo *FuelPhoto) FuelGaugePhotos {
	switch kind {
	case FuelKindEntry:
		f.Entry = photo
	case FuelKindExit:
		f.Exit = photo
	}
	return f
}

// UploadFile is a locally selected file waiting to be uploaded.
type UploadFile struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}

// Timestamp formats t the way reference lists store created_at.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func (f FuelGaugePhotos) clone() FuelGaugePhotos {
	out := FuelGaugePhotos{}
	if f.Entry != nil {
		v := *f.Entry
		out.Entry = &v
	}
	if f.Exit != nil {
		v := *f.Exit
		out.Exit = &v
	}
	return out
}
