// Package config loads and validates application configuration.
//
// Configuration is assembled from compiled-in defaults, CDP_-prefixed
// environment variables, and an optional YAML file; report settings in
// the file win over the environment, while the three input file paths
// keep environment precedence and are normally supplied as CLI flags,
// validated once the flags have been applied.
//
// The region map used by the regional aggregates is part of configuration
// so coverage can be extended without touching the aggregation code.
package config
