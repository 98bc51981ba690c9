package catalog

import (
	"bytes"
	"context"
	"fmt"

	"andes-autoparts/internal/models"

	"github.com/xuri/excelize/v2"
)

const (
	ExportFilename    = "andes_autoparts.xlsx"
	ExportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportSheet       = "Sheet1"
)

// ExportColumns is the header row of the export, in column order.
var ExportColumns = []string{
	"id",
	"codigo_interno",
	"descripcion",
	"modelo",
	"motor",
	"marca",
	"costo",
	"precio_cliente",
	"precio_mayor",
	"stock",
	"medidas",
	"codigo_oem",
	"codigo_alternativo",
	"homologados",
	"bodega",
}

func exportRow(p *models.Part) []interface{} {
	return []interface{}{
		int(p.ID),
		models.Text(p.InternalCode),
		models.Text(p.Description),
		models.Text(p.Model),
		models.Text(p.Engine),
		models.Text(p.Brand),
		p.Cost,
		p.ClientPrice,
		p.WholesalePrice,
		p.Stock,
		models.Text(p.Measurements),
		models.Text(p.OEMCode),
		models.Text(p.AlternateCode),
		models.Text(p.ApprovedEquivalents),
		models.Text(p.Warehouse),
	}
}

// WriteWorkbook serializes parts to a single-sheet xlsx workbook.
func WriteWorkbook(parts []models.Part) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sw, err := f.NewStreamWriter(exportSheet)
	if err != nil {
		return nil, fmt.Errorf("open sheet writer: %w", err)
	}

	header := make([]interface{}, len(ExportColumns))
	for i, c := range ExportColumns {
		header[i] = c
	}
	if err := sw.SetRow("A1", header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i := range parts {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := sw.SetRow(cell, exportRow(&parts[i])); err != nil {
			return nil, fmt.Errorf("write part %d: %w", parts[i].ID, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return nil, fmt.Errorf("flush sheet: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// Export dumps the whole catalog to xlsx bytes.
func (s *Service) Export(ctx context.Context) ([]byte, error) {
	parts, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	return WriteWorkbook(parts)
}
