// Package validators provides ready made validated.Validator values: simple
// string rules, OpenAPI schema backed checks, and a latency decorator for
// demos and tests.
//
// Each constructor returns a single validator; there is no composition. A
// wrapper that needs several rules should express them as one schema.
package validators
