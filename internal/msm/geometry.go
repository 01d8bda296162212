package msm

// Tier describes the workgroup/chunk geometry selected for a given input
// size. The tiers below are this package's own table (chunk widths of 8 to
// 18 bits, workgroups of 32 to 256): small inputs use narrow chunks and
// small workgroups (minimizing idle threads), large inputs widen both to
// amortize dispatch overhead.
type Tier struct {
	MaxInputSize  int
	ChunkBits     int
	WorkgroupSize int
}

var tiers = []Tier{
	{MaxInputSize: 1 << 12, ChunkBits: 8, WorkgroupSize: 32},
	{MaxInputSize: 1 << 16, ChunkBits: 12, WorkgroupSize: 64},
	{MaxInputSize: 1 << 20, ChunkBits: 16, WorkgroupSize: 128},
	{MaxInputSize: 1 << 24, ChunkBits: 18, WorkgroupSize: 256},
}

// GeometryFor returns the tier covering an MSM of the given input size,
// widening to the last (largest) tier for anything bigger than its bound.
func GeometryFor(inputSize int) Tier {
	for _, t := range tiers {
		if inputSize <= t.MaxInputSize {
			return t
		}
	}
	return tiers[len(tiers)-1]
}
