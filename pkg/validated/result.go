package validated

// Result is the outcome of a single validation: either Valid, carrying the
// accepted value, or Invalid, carrying a human readable description. The zero
// value is Valid("").
type Result struct {
	invalid bool
	value   string
	err     *ValidationError
}

// ValidationError describes why a candidate value was rejected.
type ValidationError struct {
	Description string `json:"errorDescription"`
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Description
}

// Ok builds a Valid result.
func Ok(value string) Result {
	return Result{value: value}
}

// Invalid builds an Invalid result with the supplied description.
func Invalid(description string) Result {
	return Result{
		invalid: true,
		err:     &ValidationError{Description: description},
	}
}

// IsOk reports whether the result is Valid.
func (r Result) IsOk() bool {
	return !r.invalid
}

// IsError reports whether the result is Invalid.
func (r Result) IsError() bool {
	return r.invalid
}

// Value returns the accepted value. It is empty for Invalid results.
func (r Result) Value() string {
	return r.value
}

// Err returns the validation failure, or nil when the result is Valid.
func (r Result) Err() *ValidationError {
	if !r.invalid {
		return nil
	}
	return r.err
}

// Description returns the failure description, or "" when Valid.
func (r Result) Description() string {
	return r.Err().Error()
}

func (r Result) String() string {
	if r.invalid {
		return "Invalid(" + r.Description() + ")"
	}
	return "Valid(" + r.value + ")"
}
