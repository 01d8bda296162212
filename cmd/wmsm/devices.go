package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/webgpu-msm/internal/gpu"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "Enumerate available WebGPU adapters",
	RunE:  runDevices,
}

func init() {
	rootCmd.AddCommand(devicesCmd)
}

func runDevices(cmd *cobra.Command, args []string) error {
	adapters, err := gpu.EnumerateAdapters()
	if err != nil {
		if errors.Is(err, gpu.ErrBackendUnavailable) {
			fmt.Println("gpu build tag not set")
			return nil
		}
		return fmt.Errorf("devices: %w", err)
	}
	for _, a := range adapters {
		fmt.Printf("%s (%s, %s)\n", a.Name, a.Backend, a.DeviceType)
	}
	return nil
}
