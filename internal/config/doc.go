// Package config provides configuration structures and utilities for
// procpipe. It defines the run options built from CLI flags and the
// `.procpipe` configuration file holding default feature flags and
// text-variant settings.
package config
