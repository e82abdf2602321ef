package apikey

import (
	"errors"
	"testing"
)

func ptr(s string) *string { return &s }

func TestResolve(t *testing.T) {
	cases := []struct {
		name     string
		stored   *string
		override *string
		want     string
		wantErr  error
	}{
		{name: "stored only", stored: ptr("abc"), want: "abc"},
		{name: "override only", override: ptr("xyz"), want: "xyz"},
		{name: "override wins", stored: ptr("abc"), override: ptr("xyz"), want: "xyz"},
		{name: "empty override still wins", stored: ptr("abc"), override: ptr(""), want: ""},
		{name: "both absent", wantErr: ErrMissingKey},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Resolve(tc.stored, tc.override)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("want %q, got %q", tc.want, got)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	valid := []string{
		"0f1e2d3c-4b5a-6978-8796-a5b4c3d2e1f0",
		"A1B2C3D4-E5F6-A7B8-C9D0-E1F2A3B4C5D6",
	}
	for _, k := range valid {
		if err := ValidateFormat(k); err != nil {
			t.Fatalf("%q: unexpected error: %v", k, err)
		}
	}
	invalid := []string{
		"",
		"abc",
		"0f1e2d3c4b5a69788796a5b4c3d2e1f0",
		"{0f1e2d3c-4b5a-6978-8796-a5b4c3d2e1f0}",
		"0f1e2d3c-4b5a-6978-8796-a5b4c3d2e1fz",
		"0f1e2d3c_4b5a_6978_8796_a5b4c3d2e1f0",
	}
	for _, k := range invalid {
		if err := ValidateFormat(k); err == nil {
			t.Fatalf("%q: expected error", k)
		}
	}
}
