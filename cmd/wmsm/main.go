// Command wmsm is the CLI front end for the MSM library: it runs a single
// MSM against point/scalar files on disk, benchmarks random instances,
// enumerates WebGPU adapters, and reports its own version.
package main

import (
	"log"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Println("Error:", err)
		os.Exit(1)
	}
}
