// Package config loads runtime configuration for the creditapp terminal
// client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend server
//	-d string   local state database DSN
//	-t string   device type label
//
// # JSON schema
//
//	{
//	  "server_addr": "https://www.credit-app.ru/",
//	  "database_dsn": "creditapp.db",
//	  "device_type": "terminal"
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
