/*Package jetstore implements the jet store (spec section 4.3): a growable,
  append-only sequence of recombined jets indexed by a stable cluster-history
  index. The first N entries (N = input count) are the converted inputs; the
  reduction loop appends exactly one new entry per merge, so the store never
  holds more than 2N-1 entries in the non-beam limit.

  Modelled on encoding/pam's unsafeArena: a single pre-sized backing buffer
  that the caller (the reduction loop) fills monotonically and never
  shrinks, generalised here from a raw byte arena to a slice of Jet values
  since jetstore has no on-disk/mmap requirement.
*/
package jetstore
