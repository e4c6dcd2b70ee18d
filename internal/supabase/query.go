package supabase

import (
	"fmt"
	"net/url"
)

// Query accumulates PostgREST query parameters (?col=op.value&...)
type Query struct {
	params url.Values
}

func NewQuery() *Query {
	return &Query{params: url.Values{}}
}

// restricts returned columns (defaults to *)
func (q *Query) Columns(cols string) *Query {
	q.params.Set("select", cols)
	return q
}

func (q *Query) Eq(col, val string) *Query {
	q.params.Add(col, "eq."+val)
	return q
}

func (q *Query) Gte(col, val string) *Query {
	q.params.Add(col, "gte."+val)
	return q
}

func (q *Query) Lt(col, val string) *Query {
	q.params.Add(col, "lt."+val)
	return q
}

func (q *Query) OrderDesc(col string) *Query {
	q.params.Set("order", col+".desc")
	return q
}

func (q *Query) Limit(n int) *Query {
	q.params.Set("limit", fmt.Sprintf("%d", n))
	return q
}
