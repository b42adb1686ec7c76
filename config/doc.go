// Package config holds client configuration: transport selection and
// tuning, logging setup, and the metrics endpoint.
//
// Configuration loads from an optional JSON file over built-in defaults,
// with A2UI_* environment variables taking precedence over both. Duration
// fields accept Go duration strings ("30s", "2m") in the JSON form.
package config
