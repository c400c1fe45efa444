package main

import (
	"os"

	"github.com/mattmattheisen/smallcap-lab-study-coach/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
