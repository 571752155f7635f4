package parser

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Política y Poder  ", "politica y poder"},
		{"ETIQUETA ARETÉ", "etiqueta arete"},
		{"Relación entre Dioses y Hombres", "relacion entre dioses y hombres"},
		{"n. canto", "n canto"},
		{"pág.", "pag"},
		{"Núm.. de   verso", "num de verso"},
		{"Ñoño", "nono"},
		{"", ""},
		{"   ", ""},
		{"ya normalizado", "ya normalizado"},
	}

	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"  Política y Poder  ",
		"ETIQUETA ARETÉ",
		"Nº   de   Canto",
		"n. canto",
		"pág..",
		"Random Notes",
		"",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
