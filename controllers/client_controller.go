package controller

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"clientregistro/form"
	"clientregistro/models"
	"clientregistro/monitoring"
	"clientregistro/remote"
	"clientregistro/store"
	"clientregistro/utils"
	"clientregistro/views"
)

// RemoteAPI is the slice of the remote service the controller drives
// directly. Creates and updates go through the form controller instead.
type RemoteAPI interface {
	UpdateStatus(ctx context.Context, id string, estatus models.Status) error
	Delete(ctx context.Context, id string) error
}

// Notifier is the realtime channel used to invalidate other sessions.
type Notifier interface {
	PublishStatusUpdated(ctx context.Context) error
	Ping(ctx context.Context) error
}

type ClientController struct {
	Store    *store.Store
	Form     *form.Controller
	Remote   RemoteAPI
	Notifier Notifier
	Hub      *Hub
	Logger   *logrus.Entry
}

func NewClientController(st *store.Store, fc *form.Controller, api RemoteAPI, ntf Notifier, hub *Hub) *ClientController {
	return &ClientController{
		Store:    st,
		Form:     fc,
		Remote:   api,
		Notifier: ntf,
		Hub:      hub,
		Logger:   logrus.WithField("component", "controller"),
	}
}

// queryFromCtx maps the filter controls to a view query.
func queryFromCtx(c *fiber.Ctx) views.Query {
	return views.Query{
		Search:    c.Query("buscar"),
		Status:    models.Status(c.Query("estatus")),
		Sort:      views.SortKey(c.Query("orden")),
		Ascending: c.Query("ascendente", "true") != "false",
	}
}

// GetClients returns the filtered and sorted record list.
func (cc *ClientController) GetClients(c *fiber.Ctx) error {
	clients := views.Apply(cc.Store.Snapshot(), queryFromCtx(c))
	return c.JSON(utils.SuccessResponse(clients))
}

// SubmitForm feeds the posted fields into the draft and submits it. The form
// controller decides between create and update.
func (cc *ClientController) SubmitForm(c *fiber.Ctx) error {
	var input struct {
		Nombre         string `json:"nombre"`
		FechaSolicitud string `json:"fechaSolicitud"`
		NumeroPersonas string `json:"numeroPersonas"`
		TipoEvento     string `json:"tipoEvento"`
		Plataforma     string `json:"plataforma"`
		Vendedora      string `json:"vendedora"`
		Estatus        string `json:"estatus"`
		Observaciones  string `json:"observaciones"`
		Telefono       string `json:"telefono"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	fields := []struct{ name, value string }{
		{"nombre", input.Nombre},
		{"fechaSolicitud", input.FechaSolicitud},
		{"numeroPersonas", input.NumeroPersonas},
		{"tipoEvento", input.TipoEvento},
		{"plataforma", input.Plataforma},
		{"vendedora", input.Vendedora},
		{"estatus", input.Estatus},
		{"observaciones", input.Observaciones},
		{"telefono", input.Telefono},
	}
	for _, fld := range fields {
		if err := cc.Form.SetField(fld.name, fld.value); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid field value", err)
		}
	}

	saved, err := cc.Form.Submit(c.Context())
	if err != nil {
		return cc.submitError(c, err)
	}

	cc.Hub.BroadcastRefresh()
	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(saved))
}

// submitError maps a submission failure onto the error taxonomy: local
// validation, server-reported message, or transport failure. The draft stays
// intact in every case so the user can retry.
func (cc *ClientController) submitError(c *fiber.Ctx, err error) error {
	var vErr *utils.ValidationError
	if errors.As(err, &vErr) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	var apiErr *remote.APIError
	if errors.As(err, &apiErr) {
		cc.Logger.WithError(err).Warn("remote service rejected submission")
		return utils.ErrorResponse(c, fiber.StatusBadGateway, "Failed to save client", apiErr)
	}

	cc.Logger.WithError(err).Error("submission failed")
	monitoring.CaptureError(err, map[string]interface{}{"action": "submit"})
	return utils.ErrorResponse(c, fiber.StatusBadGateway, "Failed to save client", err)
}

// GetForm returns the current draft and whether it targets an existing record.
func (cc *ClientController) GetForm(c *fiber.Ctx) error {
	return c.JSON(utils.SuccessResponse(fiber.Map{
		"draft":   cc.Form.Draft(),
		"editing": cc.Form.Editing(),
	}))
}

// EditClient copies a stored record into the draft and enters edit mode.
func (cc *ClientController) EditClient(c *fiber.Ctx) error {
	id := c.Params("id")
	client, ok := cc.Store.Find(id)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Client not found", nil)
	}

	cc.Form.LoadForEdit(client)
	return c.JSON(utils.SuccessResponse(cc.Form.Draft()))
}

// ResetForm clears the draft and leaves edit mode.
func (cc *ClientController) ResetForm(c *fiber.Ctx) error {
	cc.Form.Reset()
	return c.JSON(utils.SuccessResponse(cc.Form.Draft()))
}

// ChangeStatus issues a status-only update, then broadcasts on the realtime
// channel. The store is not touched here: the refresh triggered by the
// notification is the only state-update path.
func (cc *ClientController) ChangeStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	var input struct {
		Estatus models.Status `json:"estatus"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if !input.Estatus.IsValid() {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unknown status", nil)
	}

	if err := cc.Remote.UpdateStatus(c.Context(), id, input.Estatus); err != nil {
		var apiErr *remote.APIError
		if errors.As(err, &apiErr) {
			return utils.ErrorResponse(c, fiber.StatusBadGateway, "Failed to update status", apiErr)
		}
		monitoring.CaptureError(err, map[string]interface{}{"action": "status", "id": id})
		return utils.ErrorResponse(c, fiber.StatusBadGateway, "Failed to update status", err)
	}

	if err := cc.Notifier.PublishStatusUpdated(c.Context()); err != nil {
		// Best-effort hint; the write itself succeeded.
		cc.Logger.WithError(err).Warn("status update broadcast failed")
		monitoring.CaptureError(err, map[string]interface{}{"action": "notify", "id": id})
	}

	return c.JSON(utils.SuccessResponse(fiber.Map{"id": id, "estatus": input.Estatus}))
}

// DeleteClient removes a record after explicit confirmation and refreshes
// this session directly. Deletions do not broadcast to other sessions.
func (cc *ClientController) DeleteClient(c *fiber.Ctx) error {
	id := c.Params("id")
	if c.Query("confirmar") != "true" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Deletion requires confirmation", nil)
	}

	if err := cc.Remote.Delete(c.Context(), id); err != nil {
		var apiErr *remote.APIError
		if errors.As(err, &apiErr) {
			return utils.ErrorResponse(c, fiber.StatusBadGateway, "Failed to delete client", apiErr)
		}
		monitoring.CaptureError(err, map[string]interface{}{"action": "delete", "id": id})
		return utils.ErrorResponse(c, fiber.StatusBadGateway, "Failed to delete client", err)
	}

	if err := cc.Store.Refresh(c.Context()); err != nil {
		cc.Logger.WithError(err).Warn("refresh after delete failed")
		monitoring.CaptureError(err, map[string]interface{}{"action": "refresh"})
	}
	cc.Hub.BroadcastRefresh()

	return c.JSON(utils.SuccessResponse(fiber.Map{"id": id}))
}

// GetCatalogs returns the enumerated value sets the form offers.
func (cc *ClientController) GetCatalogs(c *fiber.Ctx) error {
	colors := make(map[models.Status]string, len(models.Statuses()))
	for _, s := range models.Statuses() {
		colors[s] = s.Color()
	}
	return c.JSON(utils.SuccessResponse(fiber.Map{
		"plataformas": models.Platforms(),
		"vendedoras":  models.Salespeople,
		"estatuses":   models.Statuses(),
		"colores":     colors,
	}))
}

// Health reports whether the realtime channel is reachable.
func (cc *ClientController) Health(c *fiber.Ctx) error {
	if err := cc.Notifier.Ping(c.Context()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":  "degraded",
			"details": fiber.Map{"notifier": "unavailable"},
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"status":  "ok",
		"details": fiber.Map{"notifier": "available"},
	})
}
