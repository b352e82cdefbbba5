// Command mazectl generates mazes, prints them and stores them on disk.
package main

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/spf13/afero"
)

func main() {
	if err := newRootCmd(afero.NewOsFs()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s[ERROR]%s %v\n", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
}
