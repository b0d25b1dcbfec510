// Package config loads the settings of the example programs from
// environment variables using the env package. Every value has a default
// suitable for local runs.
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
