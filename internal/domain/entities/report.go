package entities

import "time"

// ChecklistReport is the layout-independent content of an exported PDF.
type ChecklistReport struct {
	Title        string
	SeqLabel     string
	GeneratedAt  time.Time
	Fields       []ReportField
	Defects      []ReportDefect
	Notes        string
	BudgetImages []ReportImage
	PhotoImages  []ReportImage
}

type ReportField struct {
	Label string
	Value string
}

type ReportDefect struct {
	Label string
	Notes string
}

// ReportImage is an image already fetched from the blob store.
// Format is "PNG", "JPG" or "WEBP"; renderers convert what they cannot embed.
type ReportImage struct {
	Path   string
	Format string
	Data   []byte
}

var brasilia = time.FixedZone("BRT", -3*60*60)

// FormatDateTimeBR renders t as dd/mm/yyyy hh:mm:ss in Brasília time.
func FormatDateTimeBR(t time.Time) string {
	return t.In(brasilia).Format("02/01/2006 15:04:05")
}
