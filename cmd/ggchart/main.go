// Command ggchart renders line charts of large CSV series to PNG.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ggchart:", err)
		os.Exit(1)
	}
}
