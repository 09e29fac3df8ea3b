package main

import "fmt"

// Run executes the rules command.
func (c *RulesCmd) Run(deps *Dependencies) error {
	for _, r := range deps.Rules.Rules() {
		fmt.Fprintf(deps.Stdout, "%-16s  %s\n", r.Name(), r.Category())
	}
	return nil
}
