package dataaccess

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Query is a chainable builder over one collection. Filter, sort and limit
// stages apply eagerly in call order to the working set, so limit-then-sort
// and sort-then-limit give different results, exactly as callers compose
// them. Terminal reads never fail; absence is an empty result, not an error.
type Query[T any] struct {
	client *Client
	info   collectionInfo
	known  bool
	seed   func() []T
	rows   []T
}

// OrCond is one branch of an Or filter: a (field, operator, value) triple.
// Supported operators are "eq" and "ilike"; anything else matches nothing.
type OrCond struct {
	Field string
	Op    string
	Value any
}

// Eq keeps rows whose field equals value. A field that does not resolve
// never equals anything.
func (q *Query[T]) Eq(field string, value any) *Query[T] {
	var kept []T
	for _, r := range q.rows {
		if v, ok := fieldValue(r, field); ok && looseEqual(v, value) {
			kept = append(kept, r)
		}
	}
	q.rows = kept
	return q
}

// Neq keeps rows whose field differs from value, including rows where the
// field does not resolve.
func (q *Query[T]) Neq(field string, value any) *Query[T] {
	var kept []T
	for _, r := range q.rows {
		if v, ok := fieldValue(r, field); !ok || !looseEqual(v, value) {
			kept = append(kept, r)
		}
	}
	q.rows = kept
	return q
}

// Ilike keeps rows whose string field contains the pattern
// case-insensitively. Percent wildcards are stripped, not interpreted;
// the match is always a substring match.
func (q *Query[T]) Ilike(field, pattern string) *Query[T] {
	needle := strings.ToLower(strings.ReplaceAll(pattern, "%", ""))
	var kept []T
	for _, r := range q.rows {
		if matchIlike(r, field, needle) {
			kept = append(kept, r)
		}
	}
	q.rows = kept
	return q
}

// In keeps rows whose field equals one of values.
func (q *Query[T]) In(field string, values ...any) *Query[T] {
	var kept []T
	for _, r := range q.rows {
		v, ok := fieldValue(r, field)
		if !ok {
			continue
		}
		for _, candidate := range values {
			if looseEqual(v, candidate) {
				kept = append(kept, r)
				break
			}
		}
	}
	q.rows = kept
	return q
}

// Or keeps rows matching at least one condition.
func (q *Query[T]) Or(conds ...OrCond) *Query[T] {
	var kept []T
	for _, r := range q.rows {
		for _, c := range conds {
			if matchCond(r, c) {
				kept = append(kept, r)
				break
			}
		}
	}
	q.rows = kept
	return q
}

func matchCond(rec any, c OrCond) bool {
	switch c.Op {
	case "eq":
		v, ok := fieldValue(rec, c.Field)
		return ok && looseEqual(v, c.Value)
	case "ilike":
		s, _ := asString(c.Value)
		return matchIlike(rec, c.Field, strings.ToLower(strings.ReplaceAll(s, "%", "")))
	default:
		return false
	}
}

func matchIlike(rec any, field, loweredNeedle string) bool {
	v, ok := fieldValue(rec, field)
	if !ok {
		return false
	}
	s, ok := asString(v)
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(s), loweredNeedle)
}

// OrderBy sorts the working set on a field. The sort is stable, so rows
// that compare equal keep their stored relative order and repeated queries
// over the same data return identical results.
func (q *Query[T]) OrderBy(field string, ascending bool) *Query[T] {
	sort.SliceStable(q.rows, func(i, j int) bool {
		vi, _ := fieldValue(q.rows[i], field)
		vj, _ := fieldValue(q.rows[j], field)
		if ascending {
			return compareValues(vi, vj) < 0
		}
		return compareValues(vi, vj) > 0
	})
	return q
}

// Limit truncates the working set to the first n rows.
func (q *Query[T]) Limit(n int) *Query[T] {
	if n >= 0 && n < len(q.rows) {
		q.rows = q.rows[:n]
	}
	return q
}

// All executes the chain and returns the remaining rows.
func (q *Query[T]) All() ([]T, error) {
	out := make([]T, len(q.rows))
	copy(out, q.rows)
	return out, nil
}

// Single executes the chain expecting at most one row. No match resolves to
// (nil, nil); absence is not an error.
func (q *Query[T]) Single() (*T, error) {
	if len(q.rows) == 0 {
		return nil, nil
	}
	row := q.rows[0]
	return &row, nil
}

// Insert appends a record to the stored collection. A missing id is
// replaced with a generated one, created/updated stamps are set, and
// collection defaults (pending statuses) fill empty fields. The whole
// collection is rewritten to the store.
func (q *Query[T]) Insert(rec T) (T, error) {
	if !q.known {
		return rec, nil
	}

	var zero T
	m, err := toMap(rec)
	if err != nil {
		return zero, err
	}

	if id, _ := m["id"].(string); id == "" {
		m["id"] = q.info.idPrefix + uuid.NewString()
	}
	now := time.Now().UTC()
	m["created_at"] = now
	m["updated_at"] = now
	if q.info.defaults != nil {
		q.info.defaults(m)
	}

	out, err := fromMap[T](m)
	if err != nil {
		return zero, err
	}

	all := q.load()
	all = append(all, out)
	persistRows(q.client.store, q.info, all)
	return out, nil
}

// Update merges a patch into the record whose id matches patch["id"],
// stamps updated_at, and rewrites the collection. ErrNotFound signals a
// missing id and leaves the collection untouched.
func (q *Query[T]) Update(patch map[string]any) (T, error) {
	if !q.known {
		out, _ := fromMap[T](patch)
		return out, nil
	}

	var zero T
	id, _ := patch["id"].(string)
	all := q.load()
	for i, existing := range all {
		current, ok := fieldValue(existing, "id")
		if !ok {
			continue
		}
		s, _ := asString(current)
		if s != id {
			continue
		}

		base, err := toMap(existing)
		if err != nil {
			return zero, err
		}
		for k, v := range patch {
			base[k] = v
		}
		base["updated_at"] = time.Now().UTC()

		merged, err := fromMap[T](base)
		if err != nil {
			return zero, err
		}
		all[i] = merged
		persistRows(q.client.store, q.info, all)
		return merged, nil
	}
	return zero, ErrNotFound
}

// load fetches the full stored collection, independent of any filters
// already applied to this query's working set.
func (q *Query[T]) load() []T {
	return loadRows(q.client.store, q.info, q.seed)
}
