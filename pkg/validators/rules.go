package validators

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cockroachdb/errors"

	"github.com/goliatone/go-validatedinput/pkg/validated"
)

// Func adapts a synchronous predicate that returns an empty description for
// accepted values.
func Func(check func(value string) (description string)) validated.Validator {
	return func(ctx context.Context, candidate string) (validated.Result, error) {
		if err := ctx.Err(); err != nil {
			return validated.Result{}, err
		}
		if desc := check(candidate); desc != "" {
			return validated.Invalid(desc), nil
		}
		return validated.Ok(candidate), nil
	}
}

// Required rejects blank values.
func Required(description string) validated.Validator {
	if description == "" {
		description = "required"
	}
	return Func(func(value string) string {
		if strings.TrimSpace(value) == "" {
			return description
		}
		return ""
	})
}

// RequireNonBlank rejects blank values, including whitespace only ones,
// before delegating to next. An empty description reads "required".
func RequireNonBlank(description string, next validated.Validator) validated.Validator {
	required := Required(description)
	return func(ctx context.Context, candidate string) (validated.Result, error) {
		result, err := required(ctx, candidate)
		if err != nil || !result.IsOk() {
			return result, err
		}
		return next(ctx, candidate)
	}
}

// MinLength rejects values shorter than n runes.
func MinLength(n int, description string) validated.Validator {
	if description == "" {
		description = fmt.Sprintf("min length %d", n)
	}
	return Func(func(value string) string {
		if utf8.RuneCountInString(value) < n {
			return description
		}
		return ""
	})
}

// MaxLength rejects values longer than n runes.
func MaxLength(n int, description string) validated.Validator {
	if description == "" {
		description = fmt.Sprintf("max length %d", n)
	}
	return Func(func(value string) string {
		if utf8.RuneCountInString(value) > n {
			return description
		}
		return ""
	})
}

// Pattern rejects values that do not match expr.
func Pattern(expr, description string) (validated.Validator, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.Wrapf(err, "validators: compile pattern %q", expr)
	}
	if description == "" {
		description = "does not match required pattern"
	}
	return Func(func(value string) string {
		if !re.MatchString(value) {
			return description
		}
		return ""
	}), nil
}

// WithLatency delays next by d. It simulates a remote check; the delay is not
// cut short by context cancellation, matching validators that ignore it.
func WithLatency(d time.Duration, next validated.Validator) validated.Validator {
	if d <= 0 {
		return next
	}
	return func(ctx context.Context, candidate string) (validated.Result, error) {
		time.Sleep(d)
		return next(ctx, candidate)
	}
}

// LatencyFor delays only the listed values. Unlisted values use fallback.
func LatencyFor(delays map[string]time.Duration, fallback time.Duration, next validated.Validator) validated.Validator {
	return func(ctx context.Context, candidate string) (validated.Result, error) {
		d, ok := delays[candidate]
		if !ok {
			d = fallback
		}
		if d > 0 {
			time.Sleep(d)
		}
		return next(ctx, candidate)
	}
}

// WithDescription replaces the description of every Invalid result of next.
// An empty description returns next unchanged.
func WithDescription(description string, next validated.Validator) validated.Validator {
	if strings.TrimSpace(description) == "" {
		return next
	}
	return func(ctx context.Context, candidate string) (validated.Result, error) {
		result, err := next(ctx, candidate)
		if err != nil || result.IsOk() {
			return result, err
		}
		return validated.Invalid(description), nil
	}
}
