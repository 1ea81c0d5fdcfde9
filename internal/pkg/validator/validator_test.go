package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "01-01-2023", "2023/01/01", "", "yesterday"}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"Pending", "Approved", "Rejected"}
	if !IsInSlice("Approved", slice) {
		t.Error(`IsInSlice("Approved") = false, want true`)
	}
	if IsInSlice("approved", slice) {
		t.Error(`IsInSlice("approved") = true, want false`)
	}
	if IsInSlice("", nil) {
		t.Error(`IsInSlice("", nil) = true, want false`)
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "code", Message: "is required"},
		{Field: "name", Message: "is required"},
	}

	if got := errs.Error(); got != "code: is required; name: is required" {
		t.Errorf("Error() = %q", got)
	}

	m := errs.ToMap()
	if m["code"] != "is required" || m["name"] != "is required" {
		t.Errorf("ToMap() = %v", m)
	}
}
