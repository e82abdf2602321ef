package holidayapi

import "strconv"

// HolidaysQuery holds the optional holidays filters.
type HolidaysQuery struct {
	Month        *int
	Day          *int
	Public       bool
	Subdivisions bool
	Search       *string
	Language     *string
	Previous     bool
	Upcoming     bool
	Format       string
	Pretty       bool
}

// Holidays builds a request for the holidays of country in year.
func Holidays(key, country string, year int, q HolidaysQuery) Request {
	params := []Param{
		{Name: "country", Value: country},
		{Name: "year", Value: strconv.Itoa(year)},
	}
	params = appendOptional(params,
		optInt("month", q.Month),
		optInt("day", q.Day),
		optFlag("public", q.Public),
		optFlag("subdivisions", q.Subdivisions),
		optString("search", q.Search),
		optString("language", q.Language),
		optFlag("previous", q.Previous),
		optFlag("upcoming", q.Upcoming),
	)
	params = append(params, Param{Name: "format", Value: formatOrDefault(q.Format)})
	return Request{Endpoint: EndpointHolidays, Key: key, Params: params, Pretty: q.Pretty}
}

// CountriesQuery holds the optional countries filters.
type CountriesQuery struct {
	Country *string
	Search  *string
	Public  bool
	Format  string
	Pretty  bool
}

func Countries(key string, q CountriesQuery) Request {
	params := appendOptional(nil,
		optString("country", q.Country),
		optString("search", q.Search),
		optFlag("public", q.Public),
	)
	params = append(params, Param{Name: "format", Value: formatOrDefault(q.Format)})
	return Request{Endpoint: EndpointCountries, Key: key, Params: params, Pretty: q.Pretty}
}

// LanguagesQuery holds the optional languages filters.
type LanguagesQuery struct {
	Language *string
	Search   *string
	Format   string
	Pretty   bool
}

func Languages(key string, q LanguagesQuery) Request {
	params := appendOptional(nil,
		optString("language", q.Language),
		optString("search", q.Search),
	)
	params = append(params, Param{Name: "format", Value: formatOrDefault(q.Format)})
	return Request{Endpoint: EndpointLanguages, Key: key, Params: params, Pretty: q.Pretty}
}

type WorkdayQuery struct {
	Format string
	Pretty bool
}

// Workday builds a request for the business day that is days working days
// after (or before, when negative) start in country.
func Workday(key, country, start string, days int, q WorkdayQuery) Request {
	params := []Param{
		{Name: "country", Value: country},
		{Name: "start", Value: start},
		{Name: "days", Value: strconv.Itoa(days)},
		{Name: "format", Value: formatOrDefault(q.Format)},
	}
	return Request{Endpoint: EndpointWorkday, Key: key, Params: params, Pretty: q.Pretty}
}

// WorkdaysQuery has no Format: the workdays endpoint does not accept one yet.
type WorkdaysQuery struct {
	Pretty bool
}

// Workdays builds a request counting business days between start and end.
func Workdays(key, country, start, end string, q WorkdaysQuery) Request {
	params := []Param{
		{Name: "country", Value: country},
		{Name: "start", Value: start},
		{Name: "end", Value: end},
	}
	return Request{Endpoint: EndpointWorkdays, Key: key, Params: params, Pretty: q.Pretty}
}
