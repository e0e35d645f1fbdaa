package entities

import "fmt"

// DefectCatalogVersion identifies the inspection point list below. Bump it when
// points are added, removed or reordered.
const DefectCatalogVersion = 2

// Defect is one inspection point of a checklist.
//
// Checked means the point was inspected; Problem means an issue was found.
// OK mirrors !Problem and is kept for documents written by older clients.
type Defect struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	OK      bool   `json:"ok"`
	Checked bool   `json:"checked"`
	Problem bool   `json:"problem"`
	Notes   string `json:"notes"`

	// LegacyID is the identifier used by documents saved before key existed.
	LegacyID string `json:"id,omitempty"`
}

type DefectDefinition struct {
	Key   string
	Label string
}

var defectCatalog = []DefectDefinition{
	{Key: "farol_esq", Label: "Farol Esq."},
	{Key: "farol_dir", Label: "Farol Dir."},
	{Key: "pisca_esq", Label: "Pisca Esq."},
	{Key: "pisca_dir", Label: "Pisca Dir."},
	{Key: "lanterna_esq", Label: "Lanterna Esq."},
	{Key: "lanterna_dir", Label: "Lanterna Dir."},
	{Key: "luz_freio", Label: "Luz Freio"},
	{Key: "luz_placa", Label: "Luz Placa"},
	{Key: "buzina", Label: "Buzina"},

	{Key: "ar_condicionado", Label: "Ar condicionado"},
	{Key: "retrovisor_interno", Label: "Retrovisor Interno"},
	{Key: "retrovisor_esq", Label: "Retrovisor Esq."},
	{Key: "retrovisor_dir", Label: "Retrovisor Dir."},
	{Key: "nivel_oleo_motor", Label: "Nível de Óleo Motor"},
	{Key: "nivel_oleo_hidraulico", Label: "Nível Óleo Hidráulico"},
	{Key: "nivel_agua_parabrisa", Label: "Nível Água Parabrisa"},
	{Key: "nivel_fluido_freio", Label: "Nível Fluido de Freio"},
	{Key: "nivel_liq_arrefecimento", Label: "Nível Líq. Arrefecimento"},

	{Key: "limpador_parabrisa", Label: "Limpador Parabrisa"},
	{Key: "vidros_laterais", Label: "Vidros Laterais"},
	{Key: "parabrisa_traseiro", Label: "Parabrisa Traseiro"},
	{Key: "parabrisa_dianteiro", Label: "Parabrisa Dianteiro"},
	{Key: "vidros_eletricos", Label: "Vidros Elétricos"},
	{Key: "radio", Label: "Rádio"},
	{Key: "estofamento_bancos", Label: "Estofamento Bancos"},
	{Key: "tapetes_internos", Label: "Tapetes Internos"},
	{Key: "forro_interno", Label: "Forro Interno"},

	{Key: "macaco", Label: "Macaco"},
	{Key: "chave_roda", Label: "Chave de Roda"},
	{Key: "estepe", Label: "Estepe"},
	{Key: "triangulo", Label: "Triângulo"},
	{Key: "extintor", Label: "Extintor"},
	{Key: "bateria", Label: "Bateria"},
	{Key: "indicadores_painel", Label: "Indicadores Painel"},
	{Key: "documento_veicular", Label: "Documento Veicular"},
	{Key: "maca_salao_atend", Label: "Maca e Salão Atend"},

	{Key: "portas_traseiras", Label: "Portas traseiras"},
	{Key: "aspecto_geral", Label: "Aspecto Geral"},
	{Key: "cartao_estacionamento", Label: "Cartão Estacionamento"},
	{Key: "gps", Label: "GPS"},
	{Key: "cintos_seguranca", Label: "Cintos de segurança"},
	{Key: "limpeza_interior", Label: "Limpeza Interior"},
	{Key: "limpeza_exterior", Label: "Limpeza Exterior"},
	{Key: "chave_ignicao", Label: "Chave Ignição"},
}

// DefectCatalog returns a copy of the ordered inspection point definitions.
func DefectCatalog() []DefectDefinition {
	out := make([]DefectDefinition, len(defectCatalog))
	copy(out, defectCatalog)
	return out
}

// SeedDefects builds the defect list of a new checklist: every point unchecked and ok.
func SeedDefects() []Defect {
	out := make([]Defect, 0, len(defectCatalog))
	for _, d := range defectCatalog {
		out = append(out, Defect{Key: d.Key, Label: d.Label, OK: true})
	}
	return out
}

// NormalizeDefects fills missing keys and labels of stored records without
// dropping or reordering any of them.
func NormalizeDefects(in []Defect) []Defect {
	out := make([]Defect, len(in))
	for i, d := range in {
		if d.Key == "" {
			d.Key = d.LegacyID
		}
		if d.Key == "" {
			d.Key = fmt.Sprintf("i-%d", i)
		}
		d.LegacyID = ""
		if d.Label == "" {
			d.Label = d.Key
		}
		d.OK = !d.Problem
		out[i] = d
	}
	return out
}

// ToggleChecked flips the inspected flag. Marking an item as inspected also
// flags it as a problem; unmarking clears both.
func (d *Defect) ToggleChecked() {
	d.Checked = !d.Checked
	d.Problem = d.Checked
	d.OK = !d.Problem
}

// ToggleProblem flips the problem flag and always leaves the item inspected.
func (d *Defect) ToggleProblem() {
	d.Problem = !d.Problem
	d.Checked = true
	d.OK = !d.Problem
}

// DefectKeys lists the keys in order.
func DefectKeys(defects []Defect) []string {
	keys := make([]string, 0, len(defects))
	for _, d := range defects {
		keys = append(keys, d.Key)
	}
	return keys
}
