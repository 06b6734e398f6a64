// Package app wires fitpick's dependencies for the CLI and the server.
//
// Config is read from the environment and refined by command-line flags.
// NewWire loads the reference tables, builds the calculators and services on
// top of them, and exposes the result as a domain.Engine: LocalEngine computes
// in-process, while a configured server URL swaps in the HTTP client from
// package remote.
package app
