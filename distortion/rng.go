package distortion

import (
	"encoding/binary"
	"math/rand"
	"time"
)

// RNGState is the opaque byte state the dispatcher captures from or seeds
// into a PRNG, letting a caller replay a config-generator call
// deterministically. Implementations are free to treat it as an opaque
// blob; this one stores a little-endian int64 seed.
type RNGState []byte

// Generator produces a config value for a given source shape, consuming
// randomness from rng. Any config type may be driven by a Generator
// instead of a literal value.
type Generator[T any] func(shape Shape, rng *rand.Rand) T

// NewRNG seeds a PRNG from state (replay) or from the current time (fresh),
// returning both the PRNG and the state needed to replay this exact draw
// later.
func NewRNG(state RNGState) (*rand.Rand, RNGState) {

	var seed int64
	if len(state) >= 8 {
		seed = int64(binary.LittleEndian.Uint64(state))
	} else {
		seed = time.Now().UnixNano()
	}
	captured := make(RNGState, 8)
	binary.LittleEndian.PutUint64(captured, uint64(seed))
	return rand.New(rand.NewSource(seed)), captured
}

// ResolveConfig runs gen against a freshly seeded (or replayed) PRNG and
// returns both the resolved config and the RNGState a caller can persist
// to reproduce the identical config on a later call.
func ResolveConfig[T any](gen Generator[T], shape Shape, state RNGState) (T, RNGState) {

	rng, captured := NewRNG(state)
	return gen(shape, rng), captured
}
