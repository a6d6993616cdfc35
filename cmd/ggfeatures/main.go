// Command ggfeatures reports the rendering capabilities selected for a
// platform and generates feature headers from them.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var mismatch *mismatchError
		if !errors.As(err, &mismatch) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}
