// Package config loads and exposes the service configuration.
//
// All values come from environment variables parsed with caarlos0/env;
// fields carry envDefault tags so the server starts with sensible local
// defaults (port 4000, 1h/7d token lifetimes, the insecure "secret" signing
// key).
package config
