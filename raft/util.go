package raft

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

// RandomDuration returns a random duration in [min, max). It draws from
// crypto/rand rather than math/rand: node processes may start within the
// same millisecond, and correlated timeouts mean correlated elections.
// If max <= min, min is returned unchanged.
func RandomDuration(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	span := uint64(max - min)

	var n uint64
	if err := binary.Read(rand.Reader, binary.BigEndian, &n); err != nil {
		return min
	}
	return min + time.Duration(n%span)
}
