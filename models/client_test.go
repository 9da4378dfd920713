package models

import (
	"testing"
)

func TestStatusIsValid(t *testing.T) {
	for _, s := range Statuses() {
		if !s.IsValid() {
			t.Errorf("%q reported invalid", s)
		}
	}
	for _, s := range []Status{"", "pending", "Pendiente", "otro"} {
		if s.IsValid() {
			t.Errorf("%q reported valid", s)
		}
	}
}

func TestStatusColor(t *testing.T) {
	if StatusClosed.Color() != "#4caf50" {
		t.Errorf("closed color = %q", StatusClosed.Color())
	}
	if Status("otro").Color() != "gray" {
		t.Errorf("unknown status color = %q", Status("otro").Color())
	}
}

func TestPlatformIsValid(t *testing.T) {
	for _, p := range Platforms() {
		if !p.IsValid() {
			t.Errorf("%q reported invalid", p)
		}
	}
	if Platform("TikTok").IsValid() {
		t.Error("unknown platform reported valid")
	}
}

func TestParseFecha(t *testing.T) {
	tests := []struct {
		in   string
		ok   bool
		date string
	}{
		{"2025-06-05", true, "2025-06-05"},
		{"2025-06-05T00:00:00Z", true, "2025-06-05"},
		{"2025-06-05T12:30:45.123Z", true, "2025-06-05"},
		{"05/06/2025", false, ""},
		{"", false, ""},
	}
	for _, tt := range tests {
		got, err := ParseFecha(tt.in)
		if tt.ok != (err == nil) {
			t.Errorf("ParseFecha(%q) error = %v, want ok=%v", tt.in, err, tt.ok)
			continue
		}
		if tt.ok && got.Format("2006-01-02") != tt.date {
			t.Errorf("ParseFecha(%q) = %s, want %s", tt.in, got, tt.date)
		}
	}
}

func TestFormatFecha(t *testing.T) {
	if got := FormatFecha("2025-06-05"); got != "05/06/2025" {
		t.Errorf("got %q, want 05/06/2025", got)
	}
	// Unparseable values pass through untouched.
	if got := FormatFecha("sin fecha"); got != "sin fecha" {
		t.Errorf("got %q, want passthrough", got)
	}
}

func TestSearchableValuesCoverEveryAttribute(t *testing.T) {
	c := Client{
		ID: "1", Nombre: "Ana", FechaSolicitud: "2025-06-05", NumeroPersonas: 5,
		TipoEvento: "Boda", Plataforma: PlatformFacebook, Vendedora: "Julia",
		Estatus: StatusPending, Observaciones: "ninguna", Telefono: "5512345678",
	}
	values := c.SearchableValues()
	for _, want := range []string{"1", "Ana", "2025-06-05", "5", "Boda", "Facebook", "Julia", "pendiente", "ninguna", "5512345678"} {
		found := false
		for _, v := range values {
			if v == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("attribute value %q not searchable", want)
		}
	}
}
