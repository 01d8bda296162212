package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/cwbudde/webgpu-msm/internal/bigint"
	"github.com/cwbudde/webgpu-msm/internal/curve"
	"github.com/cwbudde/webgpu-msm/internal/msm"
)

var (
	runCurve     string
	runPoints    string
	runScalars   string
	runBackend   string
	runAlgorithm string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single MSM against point/scalar files on disk",
	RunE:  runMSM,
}

func init() {
	runCmd.Flags().StringVar(&runCurve, "curve", "bn254", "Curve: bn254 or pallas")
	runCmd.Flags().StringVar(&runPoints, "points", "", "Path to the point buffer (64 bytes/point, x||y little-endian)")
	runCmd.Flags().StringVar(&runScalars, "scalars", "", "Path to the scalar buffer (32 bytes/scalar, little-endian)")
	runCmd.Flags().StringVar(&runBackend, "backend", "auto", "Backend: auto, gpu, cpu")
	runCmd.Flags().StringVar(&runAlgorithm, "algorithm", "cuzk", "Algorithm: cuzk or pippenger")

	runCmd.MarkFlagRequired("points")
	runCmd.MarkFlagRequired("scalars")
	rootCmd.AddCommand(runCmd)
}

func runMSM(cmd *cobra.Command, args []string) error {
	p, err := curve.Lookup(curve.Name(runCurve))
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	points, err := readPoints(runPoints, p)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	scalars, err := readScalars(runScalars)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	opts := msm.DefaultOptions()
	opts.Backend = msm.Backend(runBackend)
	opts.Algorithm = msm.Algorithm(runAlgorithm)

	slog.Info("run: starting MSM", "curve", p.Name, "n", len(points), "backend", opts.Backend, "algorithm", opts.Algorithm)
	start := time.Now()

	result, err := msm.MSM(p.Name, points, scalars, opts)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	elapsed := time.Since(start)

	slog.Info("run: MSM complete", "elapsed", elapsed)
	fmt.Printf("X: %s\n", bigint.ToBig(result.X.ToCanonical()).Text(16))
	fmt.Printf("Y: %s\n", bigint.ToBig(result.Y.ToCanonical()).Text(16))
	fmt.Printf("Z: %s\n", bigint.ToBig(result.Z.ToCanonical()).Text(16))
	return nil
}
