// Package config provides configuration management for gitrack.
//
// Configuration is loaded from YAML files and merged in order, later layers
// overriding earlier ones:
//
//  1. Default configuration (compiled in)
//  2. User configuration (~/.config/gitrack/config.yaml)
//  3. Project configuration (./.gitrack/config.yaml)
//
// LoadConfigFromPath skips the layering and reads a single file on top of
// the defaults.
//
// # Configuration Structure
//
//	github:
//	  apiURL: https://api.github.com
//	  perPage: 50
//	  timeout: 15s
//	session:
//	  path: ~/.config/gitrack/session.yaml
//	ui:
//	  colorMode: dark
//	  logLevel: info
//
// Command line flags and GITRACK_* environment variables are applied on top
// by the cmd package.
package config
