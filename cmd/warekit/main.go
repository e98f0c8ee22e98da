// Command warekit is the teaching CLI: solve a map with UCS or A*, run
// an agent episode, or optimize a rack layout with a metaheuristic.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
