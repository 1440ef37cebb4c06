// Package config loads runtime configuration for the myFlix CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment variables (MYFLIX_*), read with cleanenv.
//  4. Command-line flags, which override everything above.
//
// Supported flags
//
//	-a string   base URL of the myFlix API
//	-d string   path of the local session database
//	-t int      request timeout in seconds (0 disables it)
//	-r float    outbound requests per second (0 means unlimited)
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
// Durations accept either strings like "30s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://moviewebapp.herokuapp.com/",
//	  "session_db_path": "session.db",
//	  "request_timeout": "30s",
//	  "requests_per_second": 0,
//	  "log_level": "info"
//	}
package config
