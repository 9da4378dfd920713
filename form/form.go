// Package form manages the single editable record draft, in create or edit
// mode, and submits it against the remote service.
package form

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"clientregistro/models"
	"clientregistro/utils"
)

// Service is the write surface of the remote clientes service.
type Service interface {
	Create(ctx context.Context, client models.Client) (models.Client, error)
	Update(ctx context.Context, id string, client models.Client) (models.Client, error)
}

// Refresher re-fetches the list after a successful submission.
type Refresher interface {
	Refresh(ctx context.Context) error
}

type Controller struct {
	mu        sync.Mutex
	draft     models.Client
	editingID string
	svc       Service
	store     Refresher
	log       *logrus.Entry
}

func New(svc Service, store Refresher) *Controller {
	return &Controller{
		draft: defaultDraft(),
		svc:   svc,
		store: store,
		log:   logrus.WithField("component", "form"),
	}
}

func defaultDraft() models.Client {
	return models.Client{Estatus: models.StatusPending}
}

// SetField updates exactly one draft attribute, addressed by its wire name.
func (f *Controller) SetField(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch name {
	case "nombre":
		f.draft.Nombre = value
	case "fechaSolicitud":
		f.draft.FechaSolicitud = value
	case "numeroPersonas":
		if strings.TrimSpace(value) == "" {
			f.draft.NumeroPersonas = 0
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n <= 0 {
			return fmt.Errorf("the %q field must be a positive number", name)
		}
		f.draft.NumeroPersonas = n
	case "tipoEvento":
		f.draft.TipoEvento = value
	case "plataforma":
		f.draft.Plataforma = models.Platform(value)
	case "vendedora":
		f.draft.Vendedora = value
	case "estatus":
		f.draft.Estatus = models.Status(value)
	case "observaciones":
		f.draft.Observaciones = value
	case "telefono":
		f.draft.Telefono = value
	default:
		return fmt.Errorf("unknown field %q", name)
	}
	return nil
}

// Draft returns a copy of the current draft.
func (f *Controller) Draft() models.Client {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Editing reports whether the draft targets an existing record.
func (f *Controller) Editing() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.editingID != ""
}

// LoadForEdit copies an existing record into the draft and enters edit mode.
func (f *Controller) LoadForEdit(client models.Client) {
	f.mu.Lock()
	defer f.mu.Unlock()

	// The remote service returns full timestamps; the date input only ever
	// shows the calendar date.
	if len(client.FechaSolicitud) > 10 {
		client.FechaSolicitud = client.FechaSolicitud[:10]
	}
	f.draft = client
	f.editingID = client.ID
}

// Reset clears the draft back to defaults and leaves edit mode.
func (f *Controller) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = defaultDraft()
	f.editingID = ""
}

// Submit validates the draft and issues a create, or an update when an
// identifier is attached. On success the store is refreshed and the draft
// reset; on failure the draft is preserved for a manual retry.
func (f *Controller) Submit(ctx context.Context) (models.Client, error) {
	f.mu.Lock()
	draft := f.draft
	editingID := f.editingID
	f.mu.Unlock()

	if err := utils.ValidateStruct(trimmed(draft)); err != nil {
		return models.Client{}, err
	}

	var (
		saved models.Client
		err   error
	)
	if editingID != "" {
		saved, err = f.svc.Update(ctx, editingID, draft)
	} else {
		saved, err = f.svc.Create(ctx, draft)
	}
	if err != nil {
		return models.Client{}, err
	}

	if err := f.store.Refresh(ctx); err != nil {
		f.log.WithError(err).Warn("refresh after submit failed")
	}
	f.Reset()
	return saved, nil
}

// trimmed is the copy the required-field check runs against, so whitespace
// never counts as a value. The submitted draft keeps the original spacing.
func trimmed(c models.Client) models.Client {
	c.Nombre = strings.TrimSpace(c.Nombre)
	c.FechaSolicitud = strings.TrimSpace(c.FechaSolicitud)
	c.TipoEvento = strings.TrimSpace(c.TipoEvento)
	c.Plataforma = models.Platform(strings.TrimSpace(string(c.Plataforma)))
	c.Vendedora = strings.TrimSpace(c.Vendedora)
	c.Estatus = models.Status(strings.TrimSpace(string(c.Estatus)))
	c.Observaciones = strings.TrimSpace(c.Observaciones)
	return c
}
