package form

import (
	"context"
	"errors"
	"strings"
	"testing"

	"clientregistro/models"
	"clientregistro/utils"
)

type fakeService struct {
	creates  int
	updates  int
	lastID   string
	lastSent models.Client
	err      error
}

func (s *fakeService) Create(ctx context.Context, c models.Client) (models.Client, error) {
	s.creates++
	s.lastSent = c
	if s.err != nil {
		return models.Client{}, s.err
	}
	c.ID = "abc123"
	return c, nil
}

func (s *fakeService) Update(ctx context.Context, id string, c models.Client) (models.Client, error) {
	s.updates++
	s.lastID = id
	s.lastSent = c
	if s.err != nil {
		return models.Client{}, s.err
	}
	c.ID = id
	return c, nil
}

type fakeRefresher struct {
	refreshes int
	err       error
}

func (r *fakeRefresher) Refresh(ctx context.Context) error {
	r.refreshes++
	return r.err
}

var validFields = map[string]string{
	"nombre":         "Ana",
	"fechaSolicitud": "2025-06-05",
	"numeroPersonas": "5",
	"tipoEvento":     "Boda",
	"plataforma":     "Facebook",
	"vendedora":      "Julia",
	"estatus":        "pendiente",
	"observaciones":  "ninguna",
}

func fillValid(t *testing.T, f *Controller) {
	t.Helper()
	for name, value := range validFields {
		if err := f.SetField(name, value); err != nil {
			t.Fatalf("SetField(%s): %v", name, err)
		}
	}
}

func TestSubmitRejectsBlankRequiredFields(t *testing.T) {
	for name := range validFields {
		t.Run(name, func(t *testing.T) {
			svc := &fakeService{}
			ref := &fakeRefresher{}
			f := New(svc, ref)
			fillValid(t, f)
			blank := "   "
			if name == "numeroPersonas" {
				blank = ""
			}
			if err := f.SetField(name, blank); err != nil {
				t.Fatalf("SetField: %v", err)
			}

			_, err := f.Submit(context.Background())
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			var vErr *utils.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %T: %v", err, err)
			}
			if vErr.Field != name {
				t.Errorf("reported field %q, want %q", vErr.Field, name)
			}
			if svc.creates != 0 || svc.updates != 0 {
				t.Errorf("network call issued for invalid draft: creates=%d updates=%d", svc.creates, svc.updates)
			}
			if ref.refreshes != 0 {
				t.Errorf("refresh issued for invalid draft")
			}
		})
	}
}

func TestSubmitCreate(t *testing.T) {
	svc := &fakeService{}
	ref := &fakeRefresher{}
	f := New(svc, ref)
	fillValid(t, f)

	saved, err := f.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if svc.creates != 1 || svc.updates != 0 {
		t.Fatalf("expected exactly one create, got creates=%d updates=%d", svc.creates, svc.updates)
	}
	if saved.ID != "abc123" {
		t.Errorf("expected assigned identifier, got %q", saved.ID)
	}
	if ref.refreshes != 1 {
		t.Errorf("expected one refresh, got %d", ref.refreshes)
	}

	// Draft back to defaults, out of edit mode
	draft := f.Draft()
	if draft.Nombre != "" || draft.NumeroPersonas != 0 {
		t.Errorf("draft not cleared: %+v", draft)
	}
	if draft.Estatus != models.StatusPending {
		t.Errorf("status not reset to pending: %s", draft.Estatus)
	}
	if f.Editing() {
		t.Error("still in edit mode after create")
	}
}

func TestSubmitUpdate(t *testing.T) {
	svc := &fakeService{}
	ref := &fakeRefresher{}
	f := New(svc, ref)

	f.LoadForEdit(models.Client{
		ID: "id42", Nombre: "Beto", FechaSolicitud: "2025-01-20", NumeroPersonas: 2,
		TipoEvento: "XV años", Plataforma: models.PlatformWhatsApp, Vendedora: "Laura",
		Estatus: models.StatusClosed, Observaciones: "llamar tarde",
	})
	if !f.Editing() {
		t.Fatal("expected edit mode after LoadForEdit")
	}

	if _, err := f.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if svc.updates != 1 || svc.creates != 0 {
		t.Fatalf("expected exactly one update, got creates=%d updates=%d", svc.creates, svc.updates)
	}
	if svc.lastID != "id42" {
		t.Errorf("updated id %q, want id42", svc.lastID)
	}
	if f.Editing() {
		t.Error("still in edit mode after update")
	}
}

func TestSubmitFailurePreservesDraft(t *testing.T) {
	svc := &fakeService{err: errors.New("boom")}
	ref := &fakeRefresher{}
	f := New(svc, ref)
	fillValid(t, f)

	if _, err := f.Submit(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if ref.refreshes != 0 {
		t.Error("refresh issued after failed submit")
	}
	draft := f.Draft()
	if draft.Nombre != "Ana" || draft.NumeroPersonas != 5 {
		t.Errorf("draft not preserved for retry: %+v", draft)
	}
}

func TestSetFieldNumeroPersonas(t *testing.T) {
	f := New(&fakeService{}, &fakeRefresher{})

	if err := f.SetField("numeroPersonas", "12"); err != nil {
		t.Fatalf("valid value rejected: %v", err)
	}
	if got := f.Draft().NumeroPersonas; got != 12 {
		t.Fatalf("got %d, want 12", got)
	}

	for _, bad := range []string{"abc", "0", "-3", "1.5"} {
		if err := f.SetField("numeroPersonas", bad); err == nil {
			t.Errorf("value %q accepted", bad)
		}
	}

	// Blank clears the field; the required check reports it at submit time.
	if err := f.SetField("numeroPersonas", ""); err != nil {
		t.Fatalf("blank rejected: %v", err)
	}
	if got := f.Draft().NumeroPersonas; got != 0 {
		t.Fatalf("blank did not clear the field, got %d", got)
	}
}

func TestSetFieldUnknown(t *testing.T) {
	f := New(&fakeService{}, &fakeRefresher{})
	err := f.SetField("color", "azul")
	if err == nil || !strings.Contains(err.Error(), "color") {
		t.Fatalf("expected unknown-field error, got %v", err)
	}
}

func TestLoadForEditTruncatesTimestamp(t *testing.T) {
	f := New(&fakeService{}, &fakeRefresher{})
	f.LoadForEdit(models.Client{ID: "x", FechaSolicitud: "2025-03-01T00:00:00.000Z"})
	if got := f.Draft().FechaSolicitud; got != "2025-03-01" {
		t.Fatalf("got %q, want 2025-03-01", got)
	}
}
