// Package reduction implements the bucket-reduction stage of the cuZK
// pipeline: combining a subtask's per-magnitude bucket sums (buckets[i] is
// the point sum assigned to magnitude i+1) into that subtask's windowed
// total, sum_{i=0}^{n-1} (i+1)*buckets[i], and the Horner step that folds
// all subtasks' windowed totals into the final MSM result.
package reduction

import (
	"fmt"

	"github.com/cwbudde/webgpu-msm/internal/field"
	"github.com/cwbudde/webgpu-msm/internal/point"
)

// Strategy selects which bucket-reduction algorithm computes a window's
// weighted sum. All three are mathematically equivalent; they differ only
// in how the work could be parallelized across GPU invocations (serial is
// the textbook definition, RunningSum is the O(n) triangle-sum trick used
// by the production shader, Parallel is the log-step tree variant). The
// strategy is whatever the caller passes; none is picked by bucket count.
type Strategy string

const (
	StrategySerial     Strategy = "serial"
	StrategyRunningSum Strategy = "running-sum"
	StrategyParallel   Strategy = "parallel"
)

// Reduce computes sum_{i=0}^{n-1} (i+1)*buckets[i] using the named strategy.
func Reduce(buckets []point.Jacobian, strategy Strategy, m field.Modulus) (point.Jacobian, error) {
	switch strategy {
	case StrategySerial:
		return serial(buckets, m), nil
	case StrategyRunningSum, "":
		return runningSum(buckets, m), nil
	case StrategyParallel:
		return parallel(buckets, m), nil
	default:
		return point.Jacobian{}, fmt.Errorf("%w: %s", ErrUnknownStrategy, strategy)
	}
}

// serial is the direct textbook definition: an explicit scalar multiply per
// bucket. O(n) point additions but O(n log n) doublings; kept as the
// reference implementation other strategies are tested against.
func serial(buckets []point.Jacobian, m field.Modulus) point.Jacobian {
	total := point.Identity(m)
	for i, b := range buckets {
		weighted := b.ScalarMulNonNeg(int64(i + 1))
		total = total.Add(weighted)
	}
	return total
}

// runningSum computes the same quantity in O(n) point additions and no
// scalar multiplies, via the standard triangle-sum identity:
//
//	sum_i (i+1)*B_i = B_{n-1} + (B_{n-1}+B_{n-2}) + (B_{n-1}+B_{n-2}+B_{n-3}) + ...
//
// accumulated from the highest bucket down.
func runningSum(buckets []point.Jacobian, m field.Modulus) point.Jacobian {
	acc := point.Identity(m)
	total := point.Identity(m)
	for i := len(buckets) - 1; i >= 0; i-- {
		acc = acc.Add(buckets[i])
		total = total.Add(acc)
	}
	return total
}

// parallel computes the same weighted sum with a balanced binary
// combination rather than a single linear scan, mirroring how a log-step
// GPU reduction splits buckets across workgroups. For a half [lo,hi) the
// routine returns both the unweighted sum (needed by the caller to extend
// the weighting as halves are merged) and the weighted sum, then merges two
// halves by re-weighting the upper half's tail contribution.
func parallel(buckets []point.Jacobian, m field.Modulus) point.Jacobian {
	_, weighted := parallelHalf(buckets, m)
	return weighted
}

// parallelHalf returns (sum of buckets in this half, weighted sum assuming
// bucket 0 of this half has weight 1).
func parallelHalf(buckets []point.Jacobian, m field.Modulus) (point.Jacobian, point.Jacobian) {
	n := len(buckets)
	if n == 0 {
		id := point.Identity(m)
		return id, id
	}
	if n == 1 {
		return buckets[0], buckets[0]
	}

	mid := n / 2
	lowSum, lowWeighted := parallelHalf(buckets[:mid], m)
	highSum, highWeighted := parallelHalf(buckets[mid:], m)

	// The high half's buckets sit mid positions further along, so each of
	// its weighted terms needs an extra mid copies of highSum added in,
	// on top of its own internal weighting.
	extra := highSum.ScalarMulNonNeg(int64(mid))
	combinedWeighted := lowWeighted.Add(highWeighted).Add(extra)
	combinedSum := lowSum.Add(highSum)
	return combinedSum, combinedWeighted
}

// Horner folds one windowed total per subtask into the final MSM result:
// result = ((windows[k-1]*2^c + windows[k-2])*2^c + ... )*2^c + windows[0],
// where windows is ordered from least-significant chunk (index 0) to
// most-significant, and chunkBits is the window width used during
// decomposition.
func Horner(windows []point.Jacobian, chunkBits int, m field.Modulus) point.Jacobian {
	if len(windows) == 0 {
		return point.Identity(m)
	}
	result := windows[len(windows)-1]
	for i := len(windows) - 2; i >= 0; i-- {
		result = result.DoubleN(chunkBits).Add(windows[i])
	}
	return result
}
