package holidayapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func names(r Request) []string {
	out := make([]string, 0, len(r.Params))
	for _, p := range r.Params {
		out = append(out, p.Name)
	}
	return out
}

func TestHolidays_RequiredOnly(t *testing.T) {
	r := Holidays("k", "US", 2024, HolidaysQuery{})

	assert.Equal(t, EndpointHolidays, r.Endpoint)
	assert.Equal(t, []Param{
		{Name: "country", Value: "US"},
		{Name: "year", Value: "2024"},
		{Name: "format", Value: DefaultFormat},
	}, r.Params)
	assert.False(t, r.Pretty)
}

func TestHolidays_AllFields(t *testing.T) {
	r := Holidays("k", "GB-SCT", 2025, HolidaysQuery{
		Month:        intPtr(12),
		Day:          intPtr(25),
		Public:       true,
		Subdivisions: true,
		Search:       strPtr("christmas"),
		Language:     strPtr("fr"),
		Previous:     true,
		Upcoming:     true,
		Format:       "xml",
		Pretty:       true,
	})

	assert.Equal(t, []string{
		"country", "year", "month", "day", "public", "subdivisions",
		"search", "language", "previous", "upcoming", "format",
	}, names(r))
	v, _ := r.Lookup("month")
	assert.Equal(t, "12", v)
	v, _ = r.Lookup("public")
	assert.Equal(t, "true", v)
	v, _ = r.Lookup("format")
	assert.Equal(t, "xml", v)
	assert.True(t, r.Pretty)
}

func TestHolidays_FalseFlagsOmitted(t *testing.T) {
	r := Holidays("k", "US", 2024, HolidaysQuery{Public: false, Previous: false})
	for _, name := range []string{"public", "subdivisions", "previous", "upcoming", "pretty"} {
		_, ok := r.Lookup(name)
		assert.False(t, ok, name)
	}

	r = Holidays("k", "US", 2024, HolidaysQuery{Public: true})
	v, ok := r.Lookup("public")
	require.True(t, ok)
	assert.Equal(t, "true", v)
}

func TestHolidays_ZeroValuedPointersStillSent(t *testing.T) {
	r := Holidays("k", "US", 2024, HolidaysQuery{Search: strPtr(""), Day: intPtr(0)})
	v, ok := r.Lookup("search")
	require.True(t, ok)
	assert.Equal(t, "", v)
	v, ok = r.Lookup("day")
	require.True(t, ok)
	assert.Equal(t, "0", v)
}

func TestCountries(t *testing.T) {
	r := Countries("k", CountriesQuery{})
	assert.Equal(t, EndpointCountries, r.Endpoint)
	assert.Equal(t, []string{"format"}, names(r))

	r = Countries("k", CountriesQuery{Country: strPtr("NO"), Search: strPtr("nor"), Public: true, Format: "csv", Pretty: true})
	assert.Equal(t, []string{"country", "search", "public", "format"}, names(r))
	assert.True(t, r.Pretty)
}

func TestLanguages(t *testing.T) {
	r := Languages("k", LanguagesQuery{Language: strPtr("es")})
	assert.Equal(t, EndpointLanguages, r.Endpoint)
	assert.Equal(t, []Param{
		{Name: "language", Value: "es"},
		{Name: "format", Value: DefaultFormat},
	}, r.Params)
}

func TestWorkday(t *testing.T) {
	r := Workday("k", "US", "2024-12-24", -3, WorkdayQuery{Format: "yaml"})
	assert.Equal(t, EndpointWorkday, r.Endpoint)
	assert.Equal(t, []Param{
		{Name: "country", Value: "US"},
		{Name: "start", Value: "2024-12-24"},
		{Name: "days", Value: "-3"},
		{Name: "format", Value: "yaml"},
	}, r.Params)
}

// The workdays endpoint does not take a format yet, so none is ever sent.
func TestWorkdays_NeverSendsFormat(t *testing.T) {
	r := Workdays("k", "US", "2024-01-01", "2024-01-31", WorkdaysQuery{Pretty: true})
	assert.Equal(t, EndpointWorkdays, r.Endpoint)
	_, ok := r.Lookup("format")
	assert.False(t, ok)
	assert.Equal(t, []string{"country", "start", "end"}, names(r))
	assert.True(t, r.Pretty)
	assert.Empty(t, r.Query().Get("format"))
	assert.Equal(t, "true", r.Query().Get("pretty"))
}

func TestQuery_AddsKeyAndPretty(t *testing.T) {
	r := Holidays("secret", "US", 2024, HolidaysQuery{Pretty: true})
	q := r.Query()
	assert.Equal(t, "secret", q.Get("key"))
	assert.Equal(t, "true", q.Get("pretty"))

	r.Pretty = false
	_, ok := r.Query()["pretty"]
	assert.False(t, ok)
}
