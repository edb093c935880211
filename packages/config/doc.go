// Package config loads reqwrap client configuration from YAML files.
//
// Configuration can come from an explicit path or from a filename
// search in a directory (.reqwrap.yaml, .reqwrap.yml, reqwrap.yaml).
// Files merge with later sources taking precedence, and convert into a
// client.Config for constructing a client.
package config
