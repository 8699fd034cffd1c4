// Package strata is a lightweight in-process event notification and
// dispatch layer for interactive applications.
//
// Producers construct typed, categorized events and broadcast them with
// Dispatch. A Manager forwards each event to every registered Listener,
// resetting the consumed flag before each one so listeners stay
// independent. A Stack arranges layers and overlays into an ordered
// handler chain: events propagate top to bottom until consumed, while
// update and render passes run bottom to top with no early exit.
//
// The strataebiten subpackage binds a Stack to the ebitengine game loop
// and originates the built-in input and window events.
package strata
