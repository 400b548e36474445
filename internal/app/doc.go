// Package app wires loaders, the namespace registry and the commands
// together. It is decoupled from any entrypoint: the CLI builds a Config,
// hands it to NewApp and calls Run.
package app
