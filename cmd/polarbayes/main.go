// Command polarbayes reshapes posterior draws stored in YAML or JSON files
// into wide, tidy or summarized tables.
//
// Usage:
//
//	polarbayes info    FILE
//	polarbayes spread  FILE [--var NAME]... [--filter like|regex] [--num-samples N --seed S]
//	polarbayes gather  FILE [--variable-name NAME] [--value-name NAME]
//	polarbayes summary FILE [--width 0.9]
//
// Every flag can also come from the environment (POLARBAYES_NUM_SAMPLES=100)
// or from a YAML / JSON file passed with --config.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(newApp()).Execute(); err != nil {
		os.Exit(1)
	}
}
