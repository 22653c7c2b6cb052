// Package cli wires the vogel command line: cobra commands, flags bound
// into viper (VOGEL_* environment variables and an optional YAML config
// file), and a zap logger exposed to the solver as a logr.Logger.
package cli
