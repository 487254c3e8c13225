// Package config provides configuration loading, merging, and validation
// facilities for the testgen service.
//
// Configuration is assembled from multiple sources via a builder (earlier
// sources take priority for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The environment surface uses the platform's historical variable names
// (TG_METADATA_DB_*, TESTGEN_*, TG_DECRYPT_*, TG_JWT_HASHING_KEY); they are
// an external contract shared with the deployment tooling and must not be
// renamed. The package also contains the environment initializer ([Export],
// [ExportFile]) that binds a static entry table into the process environment
// before the rest of the application reads it, and the [Provider] abstraction
// that lets consuming code depend on a lookup interface instead of ambient
// process state.
package config
