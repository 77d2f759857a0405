// Package rng provides the small reentrant pseudo random generators used by
// the level generators. Each generator advances a caller owned seed, so a
// worker can keep its own sequence without locking.
package rng

import (
	"slices"

	"github.com/aukilabs/go-tooling/pkg/errors"
)

const ErrTypeUnknownGenerator = "unknown-generator"

// Generator advances seed and returns the next value.
type Generator func(seed *uint32) uint32

// CRand is the classic reentrant C library generator: three steps of a
// linear congruential generator, keeping 11 then 10 then 10 high bits.
// Values fall in [0, 2^31).
func CRand(seed *uint32) uint32 {
	next := *seed

	next = next*1103515245 + 12345
	result := (next / 65536) % 2048

	next = next*1103515245 + 12345
	result <<= 10
	result ^= (next / 65536) % 1024

	next = next*1103515245 + 12345
	result <<= 10
	result ^= (next / 65536) % 1024

	*seed = next
	return result
}

// Xor is a shift register generator: the state doubles, its low bit
// flips, and a feedback mask is applied whenever the top bit is set.
func Xor(seed *uint32) uint32 {
	gen := *seed
	gen += gen
	gen ^= 1
	if int32(gen) < 0 {
		gen ^= 0x88888eef
	}
	*seed = gen
	return gen
}

var generators = map[string]Generator{
	"crand": CRand,
	"xor":   Xor,
}

// ByName returns the generator registered under name.
func ByName(name string) (Generator, error) {
	g, ok := generators[name]
	if !ok {
		return nil, errors.New("unknown random generator").
			WithType(ErrTypeUnknownGenerator).
			WithTag("name", name)
	}
	return g, nil
}

// Names returns the registered generator names in sorted order.
func Names() []string {
	names := make([]string, 0, len(generators))
	for n := range generators {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Intn returns a value in [0, n) drawn from g. n must be positive.
func Intn(g Generator, seed *uint32, n uint32) uint32 {
	return g(seed) % n
}
