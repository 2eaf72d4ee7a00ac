// Package config loads runtime defaults: environment-driven settings for the
// CLI (optionally seeded from a .env file) and the YAML page configuration
// for the render command. Flags always override what is loaded here.
package config
