package models

import (
	"strconv"
	"time"
)

// Status is the workflow stage of a client record. The values are the wire
// values expected by the remote clientes service.
type Status string

const (
	StatusPending   Status = "pendiente"
	StatusInReview  Status = "en revisión"
	StatusDiscarded Status = "descartado"
	StatusClosed    Status = "cerrado"
)

// Statuses returns every workflow stage in display order.
func Statuses() []Status {
	return []Status{StatusPending, StatusInReview, StatusDiscarded, StatusClosed}
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInReview, StatusDiscarded, StatusClosed:
		return true
	}
	return false
}

// Color returns the UI color associated with a status.
func (s Status) Color() string {
	switch s {
	case StatusPending:
		return "#ff9800"
	case StatusInReview:
		return "#ffc107"
	case StatusDiscarded:
		return "#f44336"
	case StatusClosed:
		return "#4caf50"
	}
	return "gray"
}

// Platform is the channel the prospective client arrived through.
type Platform string

const (
	PlatformFacebook  Platform = "Facebook"
	PlatformInstagram Platform = "Instagram"
	PlatformWhatsApp  Platform = "WhatsApp"
	PlatformReferral  Platform = "Recomendación"
)

func Platforms() []Platform {
	return []Platform{PlatformFacebook, PlatformInstagram, PlatformWhatsApp, PlatformReferral}
}

func (p Platform) IsValid() bool {
	switch p {
	case PlatformFacebook, PlatformInstagram, PlatformWhatsApp, PlatformReferral:
		return true
	}
	return false
}

// Salespeople is the staff roster selectable on the form.
var Salespeople = []string{"Julia", "Ariztbe", "Laura", "Guadalupe"}

// Client is a prospective event client as stored by the remote clientes
// service. JSON tags match the service's wire format; ID is assigned by the
// service and empty on a not-yet-created draft. All fields except Telefono
// are required at submission time.
type Client struct {
	ID             string   `json:"_id,omitempty"`
	Nombre         string   `json:"nombre" validate:"required"`
	FechaSolicitud string   `json:"fechaSolicitud" validate:"required"`
	NumeroPersonas int      `json:"numeroPersonas" validate:"required"`
	TipoEvento     string   `json:"tipoEvento" validate:"required"`
	Plataforma     Platform `json:"plataforma" validate:"required"`
	Vendedora      string   `json:"vendedora" validate:"required"`
	Estatus        Status   `json:"estatus" validate:"required"`
	Observaciones  string   `json:"observaciones" validate:"required"`
	Telefono       string   `json:"telefono,omitempty"`
}

// SearchableValues returns the string form of every attribute, used by the
// free-text filter.
func (c Client) SearchableValues() []string {
	return []string{
		c.ID,
		c.Nombre,
		c.FechaSolicitud,
		strconv.Itoa(c.NumeroPersonas),
		c.TipoEvento,
		string(c.Plataforma),
		c.Vendedora,
		string(c.Estatus),
		c.Observaciones,
		c.Telefono,
	}
}

// fechaFormats covers the plain date the form sends and the ISO timestamps
// the remote service returns for stored records.
var fechaFormats = []string{"2006-01-02", time.RFC3339}

// ParseFecha parses a request date in any of the accepted wire formats.
func ParseFecha(s string) (time.Time, error) {
	var err error
	for _, layout := range fechaFormats {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// FormatFecha renders a request date as dd/mm/yyyy for display and export.
// Unparseable values are returned as-is.
func FormatFecha(s string) string {
	t, err := ParseFecha(s)
	if err != nil {
		return s
	}
	return t.Format("02/01/2006")
}
