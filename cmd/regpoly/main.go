// Command regpoly prints regular polygon geometry and sequence reports.
package main

import "github.com/katalvlaran/regpoly/internal/cli"

func main() {
	cli.Execute()
}
