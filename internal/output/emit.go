// Package output writes API responses to the terminal.
package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/flarebyte/holidayapi-cli/internal/holidayapi"
	"github.com/itchyny/gojq"
)

// Emit prints the outcome of one API call. Request failures are printed,
// not returned: an error body from the API is a valid answer. Only a failing
// jq filter produces an error.
func Emit(w io.Writer, body string, reqErr error, filter string) error {
	if reqErr != nil {
		var re *holidayapi.RemoteError
		if errors.As(reqErr, &re) {
			_, err := fmt.Fprintln(w, re.Body)
			return err
		}
		_, err := fmt.Fprintln(w, reqErr.Error())
		return err
	}
	if filter == "" {
		_, err := fmt.Fprintln(w, body)
		return err
	}
	return applyFilter(w, body, filter)
}

func applyFilter(w io.Writer, body, filter string) error {
	query, err := gojq.Parse(filter)
	if err != nil {
		return fmt.Errorf("jq: filter parse error: %v", err)
	}
	code, err := gojq.Compile(query)
	if err != nil {
		return fmt.Errorf("jq: compile error: %v", err)
	}

	var data any
	if err := json.Unmarshal([]byte(body), &data); err != nil {
		return fmt.Errorf("jq: response is not JSON (use --format json): %v", err)
	}

	iter := code.Run(data)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			return fmt.Errorf("jq: execution error: %v", err)
		}
		line, err := encodeCompact(v)
		if err != nil {
			return fmt.Errorf("jq: marshal error: %v", err)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func encodeCompact(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
