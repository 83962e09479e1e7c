// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the bootstrap lifecycle (load manifests,
// declare types, build the container, run the wiring pass), decoupled from
// any specific entrypoint like a CLI.
package app
