// Package config manages user-level settings stored at ~/.quizgen/config.yaml.
// Values come from the config file, QUIZGEN_* environment variables, and
// command-line flags bound by the cli package, in increasing precedence.
package config
