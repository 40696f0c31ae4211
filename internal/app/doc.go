// Package app wires application dependencies for the CLI.
//
// It builds the codec and the conversion services from Config, exposing them
// via the App struct for commands to use.
package app
