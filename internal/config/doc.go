// Package config defines the janitor configuration and how it is loaded.
//
// Settings come from three layers, later ones winning: a YAML file, the
// process environment, and command line flags (applied by the CLI). The
// environment names match those of the scheduled job the janitor replaces,
// so HOSTED_ZONE_ID keeps working unchanged.
package config
