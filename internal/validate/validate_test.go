package validate

import "testing"

func TestSolveRequestJSONAcceptsValidRequest(t *testing.T) {
	errs := SolveRequestJSON([]byte(`{"tiles":"aeiorstnldmh","deadline_ms":8000,"seed":1}`))
	if len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestSolveRequestJSONRejectsUppercase(t *testing.T) {
	errs := SolveRequestJSON([]byte(`{"tiles":"AEIORSTNLDMH"}`))
	if len(errs) == 0 {
		t.Error("expected uppercase tiles to fail validation")
	}
}

func TestSolveRequestJSONRejectsWrongLength(t *testing.T) {
	errs := SolveRequestJSON([]byte(`{"tiles":"abc"}`))
	if len(errs) == 0 {
		t.Error("expected a too-short tiles string to fail validation")
	}
}

func TestSolveRequestJSONRejectsUnknownFields(t *testing.T) {
	errs := SolveRequestJSON([]byte(`{"tiles":"aeiorstnldmh","bogus":true}`))
	if len(errs) == 0 {
		t.Error("expected an unknown field to fail validation")
	}
}

func TestSolveRequestJSONRejectsMalformedJSON(t *testing.T) {
	errs := SolveRequestJSON([]byte(`{not json`))
	if len(errs) == 0 {
		t.Fatal("expected malformed JSON to produce a validation error")
	}
	if errs[0].Path != "" {
		t.Errorf("expected a JSON-parse error to have no path, got %q", errs[0].Path)
	}
}

func TestSolveResultJSONAcceptsValidResult(t *testing.T) {
	errs := SolveResultJSON([]byte(`{
		"id": "c1b2d3e4-0000-0000-0000-000000000000",
		"success": true,
		"placements": [{"tile_id":"t0","row":3,"col":2}],
		"stats": {"attempts": 4, "milliseconds": 120, "phase": 1}
	}`))
	if len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestSolveResultJSONRejectsMissingID(t *testing.T) {
	errs := SolveResultJSON([]byte(`{
		"success": true,
		"placements": [{"tile_id":"t0","row":3,"col":2}]
	}`))
	if len(errs) == 0 {
		t.Error("expected a response with no id to fail validation, since every real service response carries one")
	}
}

func TestSolveResultJSONRejectsOutOfBoundsRow(t *testing.T) {
	errs := SolveResultJSON([]byte(`{
		"id": "c1b2d3e4-0000-0000-0000-000000000000",
		"success": true,
		"placements": [{"tile_id":"t0","row":9,"col":2}]
	}`))
	if len(errs) == 0 {
		t.Error("expected a row outside 0-7 to fail validation")
	}
}

func TestValidationErrorsErrorJoinsMessages(t *testing.T) {
	ve := ValidationErrors{{Path: "/a", Message: "bad"}, {Message: "also bad"}}
	want := "/a: bad; also bad"
	if ve.Error() != want {
		t.Errorf("Error() = %q, want %q", ve.Error(), want)
	}
}
