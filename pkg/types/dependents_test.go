package types

import (
	"testing"
)

func TestDependentsRoundTripPreservesOrder(t *testing.T) {
	in := Dependents{
		{FirstName: "Ana", LastName: "Ruiz", DOB: "2012-04-01", SSN: "111-22-3333"},
		{FirstName: "Leo", LastName: "Ruiz", DOB: "2015-09-12", SSN: "444-55-6666"},
		{FirstName: "Mia", LastName: "Ruiz"},
	}

	raw, err := in.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}

	var out Dependents
	if err := out.Scan(raw); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("expected %d dependents got %d", len(in), len(out))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("dependent %d mismatch: want %+v got %+v", i, in[i], out[i])
		}
	}
}

func TestDependentsNilValueIsEmptyArray(t *testing.T) {
	var d Dependents
	raw, err := d.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if raw != "[]" {
		t.Fatalf("expected [] got %v", raw)
	}
}

func TestDependentsScanDegradesToEmpty(t *testing.T) {
	cases := []any{nil, "", "not json", []byte("{\"firstName\":\"x\"}"), "null", 42}
	for _, c := range cases {
		var d Dependents
		if err := d.Scan(c); err != nil {
			t.Fatalf("scan %v returned error %v", c, err)
		}
		if d == nil || len(d) != 0 {
			t.Fatalf("scan %v expected empty list got %v", c, d)
		}
	}
}

func TestDependentsScanBytes(t *testing.T) {
	var d Dependents
	if err := d.Scan([]byte(`[{"firstName":"Ana","lastName":"Ruiz","dob":"","ssn":""}]`)); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(d) != 1 || d[0].FirstName != "Ana" {
		t.Fatalf("unexpected dependents %v", d)
	}
}
