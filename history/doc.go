/*Package history implements the cluster-history recorder (spec section 4.2):
  an append-only log of merge and beam-termination steps, plus the total
  visible energy Qtot, fixed once at seed time.

  A history.Recorder never reasons about jets, tiles, or distances; it only
  ever accepts already-decided steps from the reduction loop and preserves
  their order, which keeps it trivial to test independently of either
  clustering strategy.
*/
package history
