package entities

import "testing"

func TestSeedDefects(t *testing.T) {
	seed := SeedDefects()
	if len(seed) != 44 {
		t.Fatalf("expected 44 inspection points, got %d", len(seed))
	}
	seen := map[string]bool{}
	for _, d := range seed {
		if seen[d.Key] {
			t.Fatalf("duplicate key %q", d.Key)
		}
		seen[d.Key] = true
		if !d.OK || d.Checked || d.Problem {
			t.Fatalf("seed item %q must default to ok: %+v", d.Key, d)
		}
	}
	if seed[0].Key != "farol_esq" || seed[len(seed)-1].Key != "chave_ignicao" {
		t.Fatalf("unexpected catalog order: %s .. %s", seed[0].Key, seed[len(seed)-1].Key)
	}

	seed[0].Label = "changed"
	if SeedDefects()[0].Label != "Farol Esq." {
		t.Fatalf("seed must not alias the catalog")
	}
}

func TestDefect_Toggles(t *testing.T) {
	d := Defect{Key: "farol_esq", OK: true}

	d.ToggleChecked()
	if !d.Checked || !d.Problem || d.OK {
		t.Fatalf("checking must flag a problem: %+v", d)
	}

	d.ToggleProblem()
	if !d.Checked || d.Problem || !d.OK {
		t.Fatalf("clearing problem must keep item checked: %+v", d)
	}

	d.ToggleChecked()
	if d.Checked || d.Problem {
		t.Fatalf("unchecking must clear both flags: %+v", d)
	}

	d.ToggleProblem()
	if !d.Checked || !d.Problem {
		t.Fatalf("flagging a problem must mark item checked: %+v", d)
	}
}

func TestNormalizeDefects(t *testing.T) {
	in := []Defect{
		{LegacyID: "farol_esq", Label: "Farol Esq.", Checked: true, Problem: true, Notes: "queimado"},
		{Key: "buzina"},
		{},
	}
	out := NormalizeDefects(in)
	if len(out) != 3 {
		t.Fatalf("normalization must keep cardinality, got %d", len(out))
	}
	if out[0].Key != "farol_esq" || out[0].LegacyID != "" || out[0].Notes != "queimado" || out[0].OK {
		t.Fatalf("unexpected legacy normalization: %+v", out[0])
	}
	if out[1].Label != "buzina" || !out[1].OK {
		t.Fatalf("expected label fallback: %+v", out[1])
	}
	if out[2].Key != "i-2" {
		t.Fatalf("expected positional key, got %q", out[2].Key)
	}
	if in[0].Key != "" {
		t.Fatalf("input must not be mutated")
	}
}
