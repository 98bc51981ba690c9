package models

const DefaultWarehouse = "Principal"

type Part struct {
	ID                  uint    `gorm:"column:id;primaryKey;autoIncrement"`
	InternalCode        *string `gorm:"column:codigo_interno"`
	Description         *string `gorm:"column:descripcion"`
	Model               *string `gorm:"column:modelo"`
	Engine              *string `gorm:"column:motor"`
	Brand               *string `gorm:"column:marca"`
	Cost                float64 `gorm:"column:costo;default:0"`
	ClientPrice         float64 `gorm:"column:precio_cliente;default:0"`
	WholesalePrice      float64 `gorm:"column:precio_mayor;default:0"`
	Stock               int     `gorm:"column:stock;default:0"`
	Measurements        *string `gorm:"column:medidas"`
	OEMCode             *string `gorm:"column:codigo_oem"`
	AlternateCode       *string `gorm:"column:codigo_alternativo"`
	ApprovedEquivalents *string `gorm:"column:homologados"`
	Warehouse           *string `gorm:"column:bodega"`

	// ImportBatch tags rows with the import run that created them. Never exported.
	ImportBatch string `gorm:"column:lote_importacion;size:36;index"`
}

func (Part) TableName() string { return "productos" }

// Text returns the value of a nullable text column, "" when NULL.
func Text(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// StrPtr returns nil for empty strings so blank cells are stored as NULL.
func StrPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
