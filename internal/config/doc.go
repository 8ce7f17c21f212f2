// Package config loads and validates shinkoku.toml, the application
// configuration. The file is optional: every setting has a default, and the
// binary runs with no config at all (advice then depends only on whether
// GEMINI_API_KEY is set).
package config
