package validators

import (
	"context"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/goliatone/go-validatedinput/pkg/validated"
)

var (
	tagEngineOnce sync.Once
	tagEngine     *validator.Validate
)

func engine() *validator.Validate {
	tagEngineOnce.Do(func() {
		tagEngine = validator.New(validator.WithRequiredStructEnabled())
	})
	return tagEngine
}

// Tag builds a validator from a go-playground/validator tag expression such
// as "email", "url" or "required,alphanum,max=16". An empty description
// reports the failing rule.
func Tag(tag, description string) (validated.Validator, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return nil, errors.New("validators: tag is required")
	}
	if err := checkTag(tag); err != nil {
		return nil, err
	}

	return func(ctx context.Context, candidate string) (validated.Result, error) {
		if err := ctx.Err(); err != nil {
			return validated.Result{}, err
		}
		err := engine().VarCtx(ctx, candidate, tag)
		if err == nil {
			return validated.Ok(candidate), nil
		}
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return validated.Result{}, errors.Wrap(err, "validators: evaluate tag")
		}
		if description != "" {
			return validated.Invalid(description), nil
		}
		return validated.Invalid(tagReason(fieldErrs)), nil
	}, nil
}

// checkTag surfaces unknown rules at construction; the validator panics on
// them at call time.
func checkTag(tag string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("validators: invalid tag %q: %v", tag, r)
		}
	}()
	_ = engine().Var("", tag)
	return nil
}

var tagMessages = map[string]string{
	"required":  "required",
	"alpha":     "must contain only letters",
	"alphanum":  "must contain only letters and digits",
	"numeric":   "must be numeric",
	"number":    "must be a number",
	"lowercase": "must be lowercase",
	"uppercase": "must be uppercase",
	"ascii":     "must contain only ASCII characters",
}

func tagReason(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return "invalid value"
	}
	fe := errs[0]
	tag, param := fe.Tag(), fe.Param()
	if msg, ok := tagMessages[tag]; ok {
		return msg
	}
	switch tag {
	case "min":
		return "min length " + param
	case "max":
		return "max length " + param
	case "len":
		return "length must be " + param
	case "oneof":
		return "must be one of " + strings.Join(strings.Fields(param), ", ")
	}
	if strings.HasPrefix(tag, "required") {
		return "required"
	}
	if param != "" {
		return "failed " + tag + "=" + param
	}
	return "must be a valid " + tag
}
