// Package app wires application dependencies for the CLI.
//
// It builds the concrete stores and services from Config and exposes them via
// the App struct for commands to use.
package app
