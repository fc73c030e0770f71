package cinder

import (
	"net/url"
	"strconv"
)

// ListParams configures pagination for list endpoints. Filters are passed
// through to the server verbatim; unrecognized keys are the server's problem.
type ListParams struct {
	Limit   *int
	Offset  *int
	Filters map[string]string
}

// Int returns a pointer to v, for filling optional ListParams fields inline.
func Int(v int) *int { return &v }

func (p *ListParams) values() url.Values {
	q := url.Values{}
	if p == nil {
		return q
	}
	if p.Limit != nil {
		q.Set("limit", strconv.Itoa(*p.Limit))
	}
	if p.Offset != nil {
		q.Set("offset", strconv.Itoa(*p.Offset))
	}
	for key, value := range p.Filters {
		if key == "" {
			continue
		}
		q.Set(key, value)
	}
	return q
}
