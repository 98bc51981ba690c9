package catalog

import (
	"html/template"
	"sort"
	"strings"
	"unicode"

	"andes-autoparts/internal/models"
)

// Tokenize splits free text on whitespace into lowercase terms. Order and
// duplicates are kept.
func Tokenize(q string) []string {
	fields := strings.Fields(q)
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		terms = append(terms, strings.ToLower(f))
	}
	return terms
}

type weightedField struct {
	weight int
	value  func(p *models.Part) *string
}

var scoredFields = []weightedField{
	{5, func(p *models.Part) *string { return p.Model }},
	{4, func(p *models.Part) *string { return p.Description }},
	{3, func(p *models.Part) *string { return p.Brand }},
	{2, func(p *models.Part) *string { return p.Engine }},
	{2, func(p *models.Part) *string { return p.OEMCode }},
	{1, func(p *models.Part) *string { return p.AlternateCode }},
	{1, func(p *models.Part) *string { return p.ApprovedEquivalents }},
}

// Score sums, over every term, the weights of the fields containing it.
func Score(p *models.Part, terms []string) int {
	score := 0
	for _, w := range terms {
		w = strings.ToLower(w)
		for _, f := range scoredFields {
			v := f.value(p)
			if v == nil || *v == "" {
				continue
			}
			if strings.Contains(strings.ToLower(*v), w) {
				score += f.weight
			}
		}
	}
	return score
}

// Rank orders parts by descending score; equal scores keep their input order.
func Rank(parts []models.Part, terms []string) []Hit {
	hits := make([]Hit, len(parts))
	for i := range parts {
		hits[i] = Hit{Part: parts[i], Score: Score(&parts[i], terms)}
	}
	if len(terms) == 0 {
		return hits
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	return hits
}

// Highlight escapes text and wraps every case-insensitive occurrence of any
// term in <mark>. Overlapping or adjacent matches are merged into one range,
// so the output is always well-formed.
func Highlight(text string, terms []string) template.HTML {
	if text == "" {
		return ""
	}
	src := []rune(text)
	lower := make([]rune, len(src))
	for i, r := range src {
		lower[i] = unicode.ToLower(r)
	}

	marked := make([]bool, len(src))
	for _, t := range terms {
		tr := []rune(strings.ToLower(t))
		if len(tr) == 0 {
			continue
		}
		for i := 0; i+len(tr) <= len(lower); i++ {
			if runesEqual(lower[i:i+len(tr)], tr) {
				for j := i; j < i+len(tr); j++ {
					marked[j] = true
				}
			}
		}
	}

	var b strings.Builder
	open := false
	for i, r := range src {
		if marked[i] && !open {
			b.WriteString("<mark>")
			open = true
		} else if !marked[i] && open {
			b.WriteString("</mark>")
			open = false
		}
		b.WriteString(template.HTMLEscapeString(string(r)))
	}
	if open {
		b.WriteString("</mark>")
	}
	return template.HTML(b.String())
}

func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
