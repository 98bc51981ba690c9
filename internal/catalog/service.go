package catalog

import (
	"context"
	"strings"

	"andes-autoparts/internal/config"
	"andes-autoparts/internal/models"
)

// MaxResults caps every search response.
const MaxResults = 300

// Filters are per-column substring constraints, ANDed with the free text.
type Filters struct {
	Code        string `form:"f_codigo"`
	Description string `form:"f_desc"`
	Model       string `form:"f_modelo"`
	Brand       string `form:"f_marca"`
	OEM         string `form:"f_oem"`
}

type columnFilter struct {
	column string
	value  string
}

func (f Filters) columns() []columnFilter {
	all := []columnFilter{
		{"codigo_interno", f.Code},
		{"descripcion", f.Description},
		{"modelo", f.Model},
		{"marca", f.Brand},
		{"codigo_oem", f.OEM},
	}
	set := all[:0]
	for _, c := range all {
		if strings.TrimSpace(c.value) != "" {
			set = append(set, c)
		}
	}
	return set
}

type Query struct {
	Text    string `form:"q"`
	Filters Filters
}

func (q Query) Terms() []string { return Tokenize(q.Text) }

type Hit struct {
	Part  models.Part
	Score int
}

type Result struct {
	Terms []string
	Hits  []Hit
}

func (r Result) Count() int { return len(r.Hits) }

type Service struct {
	repo  PartRepository
	scope config.RankScope
}

func NewService(repo PartRepository, scope config.RankScope) *Service {
	if scope == "" {
		scope = config.RankPage
	}
	return &Service{repo: repo, scope: scope}
}

// Search runs the filtered query and orders the hits by relevance when free
// text is given. With RankPage only the first MaxResults store rows are
// ranked; with RankFull every match is ranked before the cap is applied.
func (s *Service) Search(ctx context.Context, q Query) (Result, error) {
	terms := q.Terms()

	limit := MaxResults
	if s.scope == config.RankFull && len(terms) > 0 {
		limit = 0
	}

	parts, err := s.repo.Find(ctx, q, limit)
	if err != nil {
		return Result{}, err
	}

	hits := Rank(parts, terms)
	if len(hits) > MaxResults {
		hits = hits[:MaxResults]
	}
	return Result{Terms: terms, Hits: hits}, nil
}

// All returns the whole catalog, uncapped.
func (s *Service) All(ctx context.Context) ([]models.Part, error) {
	return s.repo.All(ctx)
}
