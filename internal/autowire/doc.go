// Package autowire implements the one-shot wiring pass that runs once at
// bootstrap. It discovers every factory definition in the object universe,
// reads each factory's target capability from a zero value of its type, and
// registers into each factory every candidate definition that implements that
// capability.
//
// The pass runs in one of two modes. In ModeEager factories hold live
// instances, so candidates are resolved and registered together with their
// sharing flag. In ModeLazy factories hold service ids and resolve them through
// the universe on every lookup; they are sealed once wiring completes.
//
// Two factories targeting the same capability abort the pass before anything
// is registered.
package autowire
