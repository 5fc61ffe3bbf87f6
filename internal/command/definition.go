// Package command holds the pure core of the custom-command system: the
// command definition model, the composite key, the syntax parser and the
// response-template engine. Nothing in this package performs I/O.
package command

// Option is a single command option. Custom commands only ever carry
// required text options, so name and description are all there is.
type Option struct {
	Name        string
	Description string
}

// Definition is a parsed command ready to be pushed to the remote registry.
type Definition struct {
	Name        string
	Description string
	Options     []Option
}
