// Package holidayapi builds and sends requests to the holidayapi.com v1 API.
package holidayapi

import (
	"net/url"
	"strconv"
)

// Endpoint is a path relative to the API base URL.
type Endpoint string

const (
	EndpointHolidays  Endpoint = "holidays"
	EndpointCountries Endpoint = "countries"
	EndpointLanguages Endpoint = "languages"
	EndpointWorkday   Endpoint = "workday"
	EndpointWorkdays  Endpoint = "workdays"
)

// DefaultFormat is sent when the caller does not pick an output format.
const DefaultFormat = "json"

// Param is a single query parameter.
type Param struct {
	Name  string
	Value string
}

// Request describes one API call. Params keep insertion order; Key and
// Pretty are added when the request is sent.
type Request struct {
	Endpoint Endpoint
	Key      string
	Params   []Param
	Pretty   bool
}

// Lookup returns the value of the named parameter.
func (r Request) Lookup(name string) (string, bool) {
	for _, p := range r.Params {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// Query returns the full query string values, including key and pretty.
func (r Request) Query() url.Values {
	q := url.Values{}
	q.Set("key", r.Key)
	for _, p := range r.Params {
		q.Add(p.Name, p.Value)
	}
	if r.Pretty {
		q.Set("pretty", "true")
	}
	return q
}

// optional is one row of a builder's field table.
type optional struct {
	name    string
	value   string
	present bool
}

func optString(name string, v *string) optional {
	if v == nil {
		return optional{name: name}
	}
	return optional{name: name, value: *v, present: true}
}

func optInt(name string, v *int) optional {
	if v == nil {
		return optional{name: name}
	}
	return optional{name: name, value: strconv.Itoa(*v), present: true}
}

func optFlag(name string, set bool) optional {
	return optional{name: name, value: "true", present: set}
}

func appendOptional(params []Param, fields ...optional) []Param {
	for _, f := range fields {
		if f.present {
			params = append(params, Param{Name: f.name, Value: f.value})
		}
	}
	return params
}

func formatOrDefault(f string) string {
	if f == "" {
		return DefaultFormat
	}
	return f
}
