package validated

import "testing"

func TestResult_ZeroValueIsValidEmpty(t *testing.T) {
	var r Result
	if !r.IsOk() || r.IsError() || r.Value() != "" || r.Err() != nil {
		t.Fatalf("expected zero result to be Valid(\"\"), got %v", r)
	}
}

func TestResult_Variants(t *testing.T) {
	ok := Ok("ada")
	if !ok.IsOk() || ok.Value() != "ada" || ok.Description() != "" {
		t.Fatalf("unexpected valid result %v", ok)
	}
	if ok.String() != "Valid(ada)" {
		t.Fatalf("unexpected string %q", ok.String())
	}

	bad := Invalid("too short")
	if bad.IsOk() || !bad.IsError() || bad.Value() != "" {
		t.Fatalf("unexpected invalid result %v", bad)
	}
	if bad.Err() == nil || bad.Err().Error() != "too short" {
		t.Fatalf("expected validation error, got %v", bad.Err())
	}
	if bad.String() != "Invalid(too short)" {
		t.Fatalf("unexpected string %q", bad.String())
	}
}

func TestForwardAttrs_StripsReservedNames(t *testing.T) {
	got := forwardAttrs(map[string]any{
		PropValue:    "x",
		PropIsError:  true,
		PropOnChange: func(string) {},
		"name":       "email",
	})
	if len(got) != 1 || got["name"] != "email" {
		t.Fatalf("unexpected forwarded attrs %v", got)
	}
}
