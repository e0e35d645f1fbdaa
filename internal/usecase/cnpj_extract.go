package usecase

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"frota_checklist/internal/domain/entities"
)

// maxPhoneWalkDepth bounds the generic fallback walk over an unknown answer.
const maxPhoneWalkDepth = 6

type phoneRule func(doc map[string]any) string

// phoneRules are tried in order; the first non-empty result wins.
var phoneRules = []phoneRule{
	func(d map[string]any) string { return composePhone(d["ddd_telefone_1"], d["telefone_1"]) },
	func(d map[string]any) string {
		tel := d["telefone1"]
		if scalarString(tel) == "" {
			tel = d["telefone"]
		}
		return composePhone(d["dddTelefone1"], tel)
	},
	func(d map[string]any) string { return composePhone(d["ddd"], d["telefone"]) },
	func(d map[string]any) string {
		est, _ := d["estabelecimento"].(map[string]any)
		return composePhone(est["ddd1"], est["telefone1"])
	},
	func(d map[string]any) string {
		est, _ := d["estabelecimento"].(map[string]any)
		return composePhone(est["ddd2"], est["telefone2"])
	},
	func(d map[string]any) string {
		if v := scalarString(d["telefone"]); v != "" {
			return v
		}
		est, _ := d["estabelecimento"].(map[string]any)
		return scalarString(est["telefone1"])
	},
}

// ParseCNPJLookup turns a registry answer into the fields used to prefill a supplier.
func ParseCNPJLookup(cnpj string, raw json.RawMessage) (entities.CNPJLookup, error) {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return entities.CNPJLookup{}, fmt.Errorf("decode cnpj answer: %w", err)
	}
	out := entities.CNPJLookup{
		CNPJ:          entities.OnlyDigits(cnpj),
		CorporateName: scalarString(doc["razao_social"]),
		TradeName:     scalarString(doc["nome_fantasia"]),
		Address:       formatRegistryAddress(doc),
	}
	if p := ExtractPhone(doc); p != "" {
		out.Phone = FormatBrazilianPhone(p)
	}
	return out, nil
}

// ExtractPhone finds a phone number in a registry answer of unknown shape.
func ExtractPhone(doc map[string]any) string {
	if doc == nil {
		return ""
	}
	for _, rule := range phoneRules {
		if p := rule(doc); p != "" {
			return p
		}
	}
	return walkPhone(doc, 0)
}

// walkPhone looks for a non-empty string under a key mentioning telefone or
// phone, paired with another ddd key of the same object when there is one.
// Keys are visited in lexical order so the result is deterministic.
func walkPhone(node any, depth int) string {
	if depth > maxPhoneWalkDepth {
		return ""
	}
	switch v := node.(type) {
	case []any:
		for _, item := range v {
			if p := walkPhone(item, depth+1); p != "" {
				return p
			}
		}
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			lk := strings.ToLower(k)
			s, ok := v[k].(string)
			if !ok || strings.TrimSpace(s) == "" {
				continue
			}
			if !strings.Contains(lk, "telefone") && !strings.Contains(lk, "phone") {
				continue
			}
			for _, dk := range keys {
				if dk == k || !strings.Contains(strings.ToLower(dk), "ddd") {
					continue
				}
				switch v[dk].(type) {
				case map[string]any, []any:
					continue
				}
				if p := composePhone(v[dk], s); p != "" {
					return p
				}
				break
			}
			return s
		}
		for _, k := range keys {
			if p := walkPhone(v[k], depth+1); p != "" {
				return p
			}
		}
	}
	return ""
}

func composePhone(ddd, tel any) string {
	d := scalarString(ddd)
	t := scalarString(tel)
	if d == "" || t == "" {
		return ""
	}
	return "(" + d + ") " + t
}

func scalarString(v any) string {
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case json.Number:
		return x.String()
	}
	return ""
}

// FormatBrazilianPhone renders 10 or 11 digits as (DD) NNNN-NNNN or
// (DD) NNNNN-NNNN. Shorter inputs are returned unchanged.
func FormatBrazilianPhone(raw string) string {
	if raw == "" {
		return ""
	}
	d := entities.OnlyDigits(raw)
	if len(d) > 11 {
		d = d[:11]
	}
	if len(d) < 10 {
		return raw
	}
	ddd, num := d[:2], d[2:]
	switch len(num) {
	case 8:
		return fmt.Sprintf("(%s) %s-%s", ddd, num[:4], num[4:])
	case 9:
		return fmt.Sprintf("(%s) %s-%s", ddd, num[:5], num[5:])
	}
	return fmt.Sprintf("(%s) %s", ddd, num)
}

func formatRegistryAddress(doc map[string]any) string {
	parts := make([]string, 0, 6)
	for _, k := range []string{"logradouro", "numero", "bairro", "municipio", "uf"} {
		if v := scalarString(doc[k]); v != "" {
			parts = append(parts, v)
		}
	}
	if cep := scalarString(doc["cep"]); cep != "" {
		parts = append(parts, "CEP "+cep)
	}
	return strings.Join(parts, ", ")
}
