package entities

// Items is the nested document stored in the checklist "items" column.
type Items struct {
	Meta    Meta     `json:"meta"`
	Defects []Defect `json:"defects"`
}

// Meta is the attribute bag filled across the wizard steps.
type Meta struct {
	Service     string   `json:"service,omitempty"`
	KM          *float64 `json:"km,omitempty"`
	Responsavel string   `json:"responsavel,omitempty"`
	DefectsNote *string  `json:"defects_note,omitempty"`
	BudgetTotal *float64 `json:"budget_total,omitempty"`
	BudgetNotes *string  `json:"budget_notes,omitempty"`
}

// Clone returns a deep copy so callers can mutate defects without aliasing.
func (it *Items) Clone() *Items {
	if it == nil {
		return nil
	}
	out := &Items{Meta: it.Meta.clone()}
	if it.Defects != nil {
		out.Defects = make([]Defect, len(it.Defects))
		copy(out.Defects, it.Defects)
	}
	return out
}

func (m Meta) clone() Meta {
	out := m
	if m.KM != nil {
		v := *m.KM
		out.KM = &v
	}
	if m.DefectsNote != nil {
		v := *m.DefectsNote
		out.DefectsNote = &v
	}
	if m.BudgetTotal != nil {
		v := *m.BudgetTotal
		out.BudgetTotal = &v
	}
	if m.BudgetNotes != nil {
		v := *m.BudgetNotes
		out.BudgetNotes = &v
	}
	return out
}
