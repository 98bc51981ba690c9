package catalog

import (
	"bytes"
	"context"
	"testing"

	"andes-autoparts/internal/config"
	"andes-autoparts/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func readExport(t *testing.T, data []byte) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	require.Len(t, sheets, 1)
	rows, err := f.GetRows(sheets[0])
	require.NoError(t, err)
	return rows
}

func TestExport_AllRowsUncappedWithHeader(t *testing.T) {
	parts := make([]models.Part, 0, MaxResults+10)
	for i := 0; i < MaxResults+10; i++ {
		parts = append(parts, models.Part{InternalCode: str("X"), ImportBatch: "batch-1"})
	}
	parts[0] = models.Part{
		InternalCode:  str("FIL-001"),
		Description:   str("Filtro <aceite>"),
		Brand:         str("Bosch"),
		ClientPrice:   12.5,
		Stock:         7,
		OEMCode:       str("90915"),
		Warehouse:     str(models.DefaultWarehouse),
		ImportBatch:   "batch-1",
		AlternateCode: nil,
	}
	svc := newDBService(t, config.RankPage, parts...)

	data, err := svc.Export(context.Background())
	require.NoError(t, err)

	rows := readExport(t, data)
	require.Len(t, rows, MaxResults+11)
	assert.Equal(t, ExportColumns, rows[0])
	assert.NotContains(t, rows[0], "lote_importacion")

	first := rows[1]
	assert.Equal(t, "1", first[0])
	assert.Equal(t, "FIL-001", first[1])
	assert.Equal(t, "Filtro <aceite>", first[2])
	assert.Equal(t, "Bosch", first[5])
	assert.Equal(t, "12.5", first[7])
	assert.Equal(t, "7", first[9])
	assert.Equal(t, "90915", first[11])
	assert.Equal(t, models.DefaultWarehouse, first[14])
}

func TestExport_EmptyCatalog(t *testing.T) {
	data, err := WriteWorkbook(nil)
	require.NoError(t, err)

	rows := readExport(t, data)
	require.Len(t, rows, 1)
	assert.Equal(t, ExportColumns, rows[0])
}
