package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/flarebyte/holidayapi-cli/internal/holidayapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmit_SuccessVerbatim(t *testing.T) {
	var buf bytes.Buffer
	body := "{\n  \"status\": 200\n}"
	require.NoError(t, Emit(&buf, body, nil, ""))
	assert.Equal(t, body+"\n", buf.String())
}

func TestEmit_RemoteErrorPrintsBody(t *testing.T) {
	var buf bytes.Buffer
	err := &holidayapi.RemoteError{StatusCode: 429, Body: `{"status":429,"error":"rate limited"}`}
	require.NoError(t, Emit(&buf, err.Body, err, ".status"))
	assert.Equal(t, `{"status":429,"error":"rate limited"}`+"\n", buf.String())
}

func TestEmit_TransportErrorPrintsMessage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Emit(&buf, "", errors.New("dial tcp: connection refused"), ""))
	assert.Equal(t, "dial tcp: connection refused\n", buf.String())
}

func TestEmit_Filter(t *testing.T) {
	var buf bytes.Buffer
	body := `{"status":200,"holidays":[{"name":"Christmas Day","date":"2024-12-25"},{"name":"Boxing Day","date":"2024-12-26"}]}`
	require.NoError(t, Emit(&buf, body, nil, ".holidays[].name"))
	assert.Equal(t, "\"Christmas Day\"\n\"Boxing Day\"\n", buf.String())
}

func TestEmit_FilterErrors(t *testing.T) {
	cases := map[string]struct {
		body   string
		filter string
		want   string
	}{
		"bad filter":   {body: `{}`, filter: ".[", want: "jq: filter parse error"},
		"not json":     {body: "country,name\nUS,United States", filter: ".", want: "jq: response is not JSON"},
		"runtime fail": {body: `{"a":1}`, filter: ".a[0]", want: "jq: execution error"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Emit(&buf, tc.body, nil, tc.filter)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
