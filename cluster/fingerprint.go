package cluster

import (
	"encoding/binary"
	"math"

	"blainsmith.com/go/seahash"
)

// Fingerprint returns a content hash of the finished history and Qtot,
// grounded on encoding/bamprovider/concurrentmap.go's use of seahash.Sum64
// as a fast map/digest key. Used by the determinism law (spec section 8):
// two runs over the same inputs must produce the same Fingerprint.
func (cs *ClusterSequence) Fingerprint() uint64 {
	steps := cs.history.Steps()
	buf := make([]byte, 8, 8+32*len(steps))
	binary.LittleEndian.PutUint64(buf, math.Float64bits(cs.history.Qtot()))

	var tmp [8]byte
	for _, s := range steps {
		binary.LittleEndian.PutUint64(tmp[:], uint64(s.Parent1))
		buf = append(buf, tmp[:]...)
		binary.LittleEndian.PutUint64(tmp[:], uint64(s.Parent2))
		buf = append(buf, tmp[:]...)
		binary.LittleEndian.PutUint64(tmp[:], uint64(s.Child))
		buf = append(buf, tmp[:]...)
		binary.LittleEndian.PutUint64(tmp[:], math.Float64bits(s.Dij))
		buf = append(buf, tmp[:]...)
	}
	return seahash.Sum64(buf)
}
