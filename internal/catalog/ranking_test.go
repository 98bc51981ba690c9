package catalog

import (
	"testing"

	"andes-autoparts/internal/models"

	"github.com/stretchr/testify/assert"
)

func str(s string) *string { return &s }

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"filtro", "aceite", "filtro"}, Tokenize("  Filtro\tACEITE \n filtro "))
	assert.Empty(t, Tokenize("   "))
}

func TestScore_Weights(t *testing.T) {
	cases := []struct {
		name string
		part models.Part
		want int
	}{
		{"model", models.Part{Model: str("Hilux")}, 5},
		{"description", models.Part{Description: str("hilux kit")}, 4},
		{"brand", models.Part{Brand: str("HILUX")}, 3},
		{"engine", models.Part{Engine: str("1kd hilux")}, 2},
		{"oem", models.Part{OEMCode: str("hilux-01")}, 2},
		{"alternate", models.Part{AlternateCode: str("hilux")}, 1},
		{"approved", models.Part{ApprovedEquivalents: str("hilux")}, 1},
		{"internal code is not scored", models.Part{InternalCode: str("hilux")}, 0},
		{"all fields", models.Part{
			Model: str("hilux"), Description: str("hilux"), Brand: str("hilux"),
			Engine: str("hilux"), OEMCode: str("hilux"), AlternateCode: str("hilux"),
			ApprovedEquivalents: str("hilux"),
		}, 18},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Score(&tc.part, []string{"hilux"}))
		})
	}
}

func TestScore_EmptyFieldsAndNoMatch(t *testing.T) {
	p := models.Part{Model: str(""), Brand: nil}
	assert.Equal(t, 0, Score(&p, []string{"bosch"}))
	assert.Equal(t, 0, Score(&models.Part{}, nil))
}

func TestScore_SumsOverTermsAndIgnoresOrder(t *testing.T) {
	p := models.Part{Model: str("Corolla"), Brand: str("Bosch"), Description: str("Filtro de aceite")}

	forward := Score(&p, []string{"bosch", "filtro", "corolla"})
	backward := Score(&p, []string{"corolla", "filtro", "bosch"})

	assert.Equal(t, 3+4+5, forward)
	assert.Equal(t, forward, backward)
	// duplicates count twice
	assert.Equal(t, 6, Score(&p, []string{"bosch", "bosch"}))
}

func TestRank_ModelBeatsAlternateCode(t *testing.T) {
	parts := []models.Part{
		{ID: 1, AlternateCode: str("ABC123")},
		{ID: 2, Model: str("abc123")},
	}
	hits := Rank(parts, []string{"abc123"})
	assert.Equal(t, uint(2), hits[0].Part.ID)
	assert.Equal(t, 5, hits[0].Score)
	assert.Equal(t, uint(1), hits[1].Part.ID)
	assert.Equal(t, 1, hits[1].Score)
}

func TestRank_StableForEqualScores(t *testing.T) {
	parts := []models.Part{
		{ID: 1, Brand: str("bosch")},
		{ID: 2, Model: str("bosch")},
		{ID: 3, Brand: str("Bosch")},
		{ID: 4, Brand: str("BOSCH")},
	}
	hits := Rank(parts, []string{"bosch"})

	ids := make([]uint, len(hits))
	for i, h := range hits {
		ids[i] = h.Part.ID
	}
	assert.Equal(t, []uint{2, 1, 3, 4}, ids)
}

func TestRank_NoTermsKeepsOrder(t *testing.T) {
	parts := []models.Part{{ID: 3}, {ID: 1}, {ID: 2}}
	hits := Rank(parts, nil)
	assert.Equal(t, uint(3), hits[0].Part.ID)
	assert.Equal(t, uint(2), hits[2].Part.ID)
}

func TestHighlight(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		terms []string
		want  string
	}{
		{"case insensitive", "Filtro FILTRO", []string{"filtro"}, "<mark>Filtro</mark> <mark>FILTRO</mark>"},
		{"no terms", "Filtro", nil, "Filtro"},
		{"overlapping terms merge", "abcdef", []string{"abcd", "cdef"}, "<mark>abcdef</mark>"},
		{"adjacent terms merge", "abcdef", []string{"abc", "def"}, "<mark>abcdef</mark>"},
		{"term inside term", "bomba", []string{"bomba", "om"}, "<mark>bomba</mark>"},
		{"escapes markup", `<b>"x"</b> & x`, []string{"x"}, "&lt;b&gt;&#34;<mark>x</mark>&#34;&lt;/b&gt; &amp; <mark>x</mark>"},
		{"markup-like term is escaped", "a<b", []string{"<"}, "a<mark>&lt;</mark>b"},
		{"non-ascii", "Bujía BUJÍA", []string{"bujía"}, "<mark>Bujía</mark> <mark>BUJÍA</mark>"},
		{"empty text", "", []string{"x"}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, string(Highlight(tc.text, tc.terms)))
		})
	}
}
