// Package exporter turns the currently displayed record set into a
// single-sheet xlsx workbook offered as a download.
package exporter

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"clientregistro/models"
)

const (
	// SheetName is the single sheet in the exported workbook.
	SheetName = "Clientes"
	// FileName is the download name offered to the user.
	FileName = "clientes.xlsx"
	// ContentType is the MIME type of the exported workbook.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var headers = []interface{}{
	"Nombre", "Fecha", "Personas", "TipoEvento",
	"Plataforma", "Vendedora", "Estatus", "Observaciones",
}

// Workbook projects clients into the fixed column set and serializes the
// workbook. One-shot transform with no state of its own.
func Workbook(clients []models.Client) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &headers); err != nil {
		return nil, fmt.Errorf("write header row: %w", err)
	}

	for i, c := range clients {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			c.Nombre,
			models.FormatFecha(c.FechaSolicitud),
			c.NumeroPersonas,
			c.TipoEvento,
			string(c.Plataforma),
			c.Vendedora,
			string(c.Estatus),
			c.Observaciones,
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf, nil
}
