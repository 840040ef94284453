// Package config loads the validatedinput CLI configuration with viper from
// validatedinput.yaml and VALIDATEDINPUT_* environment variables, and builds
// the validator, theme tokens and logger it describes.
package config
