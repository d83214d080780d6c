//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the arena with the example configuration.
func (Run) Arena() error {
	mg.Deps(Build.Arena)
	fmt.Println("Run arena...")
	if _, err := executeCmd("bin/arena", withArgs("-config", "configs/arena.toml"), withStream()); err != nil {
		return err
	}
	return nil
}
