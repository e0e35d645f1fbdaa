package usecase

import "frota_checklist/internal/domain/entities"

// ResolveLoadedDefects picks the defect list of a freshly loaded checklist.
// A non-empty server list is used as stored; otherwise the catalog seed is used.
// fromServer reports which branch was taken.
func ResolveLoadedDefects(server []entities.Defect) (defects []entities.Defect, fromServer bool) {
	if len(server) > 0 {
		return entities.NormalizeDefects(server), true
	}
	return entities.SeedDefects(), false
}

// SpliceDefects chooses the defect list to send along with a save that did not
// edit defects. The server copy always wins when it has any records; the local
// list is only written when the server holds none.
func SpliceDefects(server, local []entities.Defect) []entities.Defect {
	if len(server) > 0 {
		return entities.NormalizeDefects(server)
	}
	if len(local) > 0 {
		out := make([]entities.Defect, len(local))
		copy(out, local)
		return out
	}
	return entities.SeedDefects()
}

// MergeMeta overlays the fields set locally on top of the server meta. Fields
// the local side never filled keep their persisted value.
func MergeMeta(server, local entities.Meta) entities.Meta {
	out := server
	if local.Service != "" {
		out.Service = local.Service
	}
	if local.KM != nil {
		out.KM = local.KM
	}
	if local.Responsavel != "" {
		out.Responsavel = local.Responsavel
	}
	if local.DefectsNote != nil {
		out.DefectsNote = local.DefectsNote
	}
	if local.BudgetTotal != nil {
		out.BudgetTotal = local.BudgetTotal
	}
	if local.BudgetNotes != nil {
		out.BudgetNotes = local.BudgetNotes
	}
	return out
}

// MergeItems builds the items document for a save that only owns meta.
func MergeItems(server *entities.Items, local entities.Meta, localDefects []entities.Defect) *entities.Items {
	var serverMeta entities.Meta
	var serverDefects []entities.Defect
	if server != nil {
		serverMeta = server.Meta
		serverDefects = server.Defects
	}
	merged := &entities.Items{
		Meta:    MergeMeta(serverMeta, local),
		Defects: SpliceDefects(serverDefects, localDefects),
	}
	return merged.Clone()
}
