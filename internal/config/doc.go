// Package config defines the format-agnostic service manifest model along
// with the Loader interface that fills it from a concrete source.
//
// The `config.Model` is the single source of truth for the `container`
// package. Concrete loaders, such as the HCL one, live in separate packages.
package config
