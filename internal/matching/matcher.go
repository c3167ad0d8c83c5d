// Package matching ranks catalog entries by how closely their names resemble
// free-text input.
package matching

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/icebutcher-assistant/internal/knowledge"
)

// DefaultLimit is the number of distinct names kept per query.
const DefaultLimit = 100

var validate = validator.New()

// ScoredName is one distinct normalized name and its similarity to a query.
type ScoredName struct {
	Name  string
	Score float64
}

// Index holds a catalog in load order plus a multimap from normalized name to
// the positions of every item carrying it. It is immutable once built and
// safe for concurrent use.
type Index struct {
	items  []knowledge.Item
	names  []string // distinct normalized names, first-seen order
	byName map[string][]int
}

// NewIndex validates items and builds the name index. items must be
// non-empty and every item must have a name.
func NewIndex(items []knowledge.Item) (*Index, error) {
	if len(items) == 0 {
		return nil, &ValidationError{Message: "catalog items must not be empty"}
	}

	ix := &Index{
		items:  items,
		byName: make(map[string][]int),
	}

	for i := range items {
		if err := validate.Struct(&items[i]); err != nil {
			return nil, &ValidationError{
				Message: fmt.Sprintf("catalog item %d has no name", i),
				Cause:   err,
			}
		}

		name := normalize(items[i].Name)
		if _, seen := ix.byName[name]; !seen {
			ix.names = append(ix.names, name)
		}
		ix.byName[name] = append(ix.byName[name], i)
	}

	return ix, nil
}

// Len returns the number of items in the index.
func (ix *Index) Len() int {
	return len(ix.items)
}

// DistinctNames returns the number of distinct normalized names.
func (ix *Index) DistinctNames() int {
	return len(ix.names)
}

// Rank scores every distinct name against query and returns the limit best,
// highest score first. Equal scores keep catalog order.
func (ix *Index) Rank(query string, limit int) ([]ScoredName, error) {
	if limit < 0 {
		return nil, &ValidationError{Message: fmt.Sprintf("limit must be non-negative, got %d", limit)}
	}

	q := normalize(query)
	scored := make([]ScoredName, len(ix.names))
	for i, name := range ix.names {
		scored[i] = ScoredName{Name: name, Score: QRatio(q, name)}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if limit < len(scored) {
		scored = scored[:limit]
	}
	return scored, nil
}

// Match returns the items whose names rank in the top limit for query.
// Items sharing a name are all returned, in catalog order, at that name's rank.
func (ix *Index) Match(query string, limit int) ([]knowledge.Item, error) {
	ranked, err := ix.Rank(query, limit)
	if err != nil {
		return nil, err
	}

	out := make([]knowledge.Item, 0, len(ranked))
	for _, r := range ranked {
		for _, i := range ix.byName[r.Name] {
			out = append(out, ix.items[i])
		}
	}
	return out, nil
}

// Match is a one-shot convenience over NewIndex and Index.Match.
func Match(query string, items []knowledge.Item, limit int) ([]knowledge.Item, error) {
	ix, err := NewIndex(items)
	if err != nil {
		return nil, err
	}
	return ix.Match(query, limit)
}

func normalize(s string) string {
	return strings.ToLower(s)
}
