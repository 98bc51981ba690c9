package catalog

import (
	"context"
	"fmt"
	"strings"

	"andes-autoparts/internal/models"

	"gorm.io/gorm"
)

// searchColumns are matched by every free-text term.
var searchColumns = []string{
	"codigo_interno",
	"descripcion",
	"modelo",
	"motor",
	"marca",
	"codigo_oem",
	"codigo_alternativo",
	"homologados",
}

// PartRepository is the read side of the catalog store.
type PartRepository interface {
	// Find returns matching parts in ascending id order. limit <= 0 means no cap.
	Find(ctx context.Context, q Query, limit int) ([]models.Part, error)
	// All returns every part in ascending id order.
	All(ctx context.Context) ([]models.Part, error)
}

type GORMPartRepository struct {
	db *gorm.DB
}

func NewGORMPartRepository(db *gorm.DB) *GORMPartRepository {
	return &GORMPartRepository{db: db}
}

// '!' is the LIKE escape character; a backslash is not portable to MySQL.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// containsPattern builds a LIKE pattern matching v anywhere, with LIKE
// wildcards in v taken literally.
func containsPattern(v string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(v)) + "%"
}

func containsClause(column string) string {
	return "LOWER(" + column + ") LIKE ? ESCAPE '!'"
}

func (r *GORMPartRepository) Find(ctx context.Context, q Query, limit int) ([]models.Part, error) {
	tx := r.db.WithContext(ctx).Model(&models.Part{})

	for _, term := range q.Terms() {
		pattern := containsPattern(term)
		clauses := make([]string, len(searchColumns))
		args := make([]interface{}, len(searchColumns))
		for i, col := range searchColumns {
			clauses[i] = containsClause(col)
			args[i] = pattern
		}
		tx = tx.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}

	for _, f := range q.Filters.columns() {
		tx = tx.Where(containsClause(f.column), containsPattern(f.value))
	}

	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var parts []models.Part
	if err := tx.Order("id asc").Find(&parts).Error; err != nil {
		return nil, fmt.Errorf("failed to search parts: %w", err)
	}
	return parts, nil
}

func (r *GORMPartRepository) All(ctx context.Context) ([]models.Part, error) {
	var parts []models.Part
	if err := r.db.WithContext(ctx).Order("id asc").Find(&parts).Error; err != nil {
		return nil, fmt.Errorf("failed to load parts: %w", err)
	}
	return parts, nil
}
