package request

import (
	"errors"
	"strings"
	"time"

	"frota_checklist/internal/domain/entities"
)

var (
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD or RFC3339")
)

const dateLayout = "2006-01-02"

// ChecklistListQuery carries the list page filters.
type ChecklistListQuery struct {
	Status string `form:"status"`
	From   string `form:"from"`
	To     string `form:"to"`
	Search string `form:"q"`
}

// ToFilter parses the date bounds. A bare date in "to" covers the whole day.
func (q ChecklistListQuery) ToFilter() (entities.ChecklistFilter, error) {
	f := entities.ChecklistFilter{
		Status: entities.ChecklistStatus(strings.TrimSpace(q.Status)),
		Search: strings.TrimSpace(q.Search),
	}
	from, err := parseBound(q.From, false)
	if err != nil {
		return entities.ChecklistFilter{}, err
	}
	to, err := parseBound(q.To, true)
	if err != nil {
		return entities.ChecklistFilter{}, err
	}
	f.From, f.To = from, to
	return f, nil
}

func parseBound(v string, endOfDay bool) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		t = t.UTC()
		return &t, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

// NotesRequest is used by the detail page and the wizard notes auto-save.
type NotesRequest struct {
	Notes *string `json:"notes" binding:"required"`
}
