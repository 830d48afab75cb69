// Package config loads runtime configuration for the group planner CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv), with an optional .env file.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend HTTP endpoint
//	-i int      session check interval (seconds)
//
// Supported environment variables
//
//	GROUPPLAN_SERVER_URL              base URL of the backend HTTP endpoint
//	GROUPPLAN_SESSION_CHECK_INTERVAL  session check interval, Go duration syntax
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "30s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "http://127.0.0.1:8000",
//	  "session_check_interval": "30s"
//	}
package config
