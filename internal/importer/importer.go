package importer

import (
	"context"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"andes-autoparts/internal/models"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// StockColumns are summed into Part.Stock; a missing column counts as 0.
var StockColumns = []string{
	"STOCK_10JUL",
	"STOCK_BRASIL",
	"STOCK_G_AVENIDA",
	"STOCK_ORIENTALES",
	"STOCK_B20_OUTLET",
}

const (
	colOEM          = "CODIGO OEM"
	colCode         = "CODIGO"
	colDescription  = "DESCRIPCION"
	colModel        = "MODELO"
	colEngine       = "MOTOR"
	colBrand        = "MARCA"
	colMeasurements = "MEDIDAS"
	colApproved     = "HOMOLOGADOS"
	colAlternate    = "CODIGO ALTERNATIVO O ANTIGUO"
)

// requiredColumns must all be present in the sheet header.
var requiredColumns = []string{
	colOEM,
	colCode,
	colDescription,
	colModel,
	colEngine,
	colBrand,
	colMeasurements,
	colApproved,
	colAlternate,
}

const insertBatchSize = 500

// Sheet is the raw content of a worksheet: the header row and the data rows.
type Sheet struct {
	Header []string
	Rows   [][]string
}

// ReadWorkbook reads the first worksheet of an xlsx workbook.
func ReadWorkbook(r io.Reader) (*Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "open workbook")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(err, "read sheet %q", sheets[0])
	}
	if len(rows) == 0 {
		return nil, errors.Errorf("sheet %q is empty", sheets[0])
	}
	return &Sheet{Header: rows[0], Rows: rows[1:]}, nil
}

type columnIndex map[string]int

func indexHeader(header []string) columnIndex {
	idx := columnIndex{}
	for i, h := range header {
		name := strings.ToUpper(strings.TrimSpace(h))
		if name == "" {
			continue
		}
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}
	return idx
}

func (ci columnIndex) cell(row []string, name string) string {
	i, ok := ci[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// Transform normalizes headers, totals stock, projects columns onto Part and
// drops invalid and duplicate rows. Row numbers in errors are 1-based sheet rows.
func Transform(sheet *Sheet, batch string) ([]models.Part, error) {
	ci := indexHeader(sheet.Header)
	for _, col := range requiredColumns {
		if _, ok := ci[col]; !ok {
			return nil, errors.Errorf("missing column %q", col)
		}
	}

	seen := make(map[string]struct{}, len(sheet.Rows))
	parts := make([]models.Part, 0, len(sheet.Rows))
	for n, row := range sheet.Rows {
		stock, err := stockTotal(ci, row)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", n+2)
		}

		oem := ci.cell(row, colOEM)
		code := ci.cell(row, colCode)
		if oem == "" || code == "" {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}

		parts = append(parts, models.Part{
			OEMCode:             models.StrPtr(oem),
			InternalCode:        models.StrPtr(code),
			Description:         models.StrPtr(ci.cell(row, colDescription)),
			Model:               models.StrPtr(ci.cell(row, colModel)),
			Engine:              models.StrPtr(ci.cell(row, colEngine)),
			Brand:               models.StrPtr(ci.cell(row, colBrand)),
			Measurements:        models.StrPtr(ci.cell(row, colMeasurements)),
			ApprovedEquivalents: models.StrPtr(ci.cell(row, colApproved)),
			AlternateCode:       models.StrPtr(ci.cell(row, colAlternate)),
			Stock:               stock,
			Warehouse:           models.StrPtr(models.DefaultWarehouse),
			ImportBatch:         batch,
		})
	}
	return parts, nil
}

func stockTotal(ci columnIndex, row []string) (int, error) {
	total := 0.0
	for _, col := range StockColumns {
		v := ci.cell(row, col)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, errors.Errorf("column %s: %q is not a number", col, v)
		}
		total += f
	}
	return int(math.Round(total)), nil
}

// Load appends parts in batches. There is no overall transaction: a failure
// leaves the batches already written in place.
func Load(ctx context.Context, db *gorm.DB, parts []models.Part) error {
	if len(parts) == 0 {
		return nil
	}
	if err := db.WithContext(ctx).CreateInBatches(parts, insertBatchSize).Error; err != nil {
		return errors.Wrap(err, "insert parts")
	}
	return nil
}

// Run imports the workbook at path and returns the number of parts written.
func Run(ctx context.Context, db *gorm.DB, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrap(err, "open import file")
	}
	defer f.Close()

	sheet, err := ReadWorkbook(f)
	if err != nil {
		return 0, err
	}

	batch := uuid.NewString()
	parts, err := Transform(sheet, batch)
	if err != nil {
		return 0, err
	}

	logger := log.WithFields(log.Fields{"file": path, "batch": batch})
	logger.WithFields(log.Fields{"rows": len(sheet.Rows), "parts": len(parts)}).Info("workbook parsed")

	if err := Load(ctx, db, parts); err != nil {
		return 0, err
	}
	logger.WithField("parts", len(parts)).Info("import completed")
	return len(parts), nil
}
