/*Package tiling implements the hadron-collider tiled strategy's data model
  (spec sections 4.4 and 4.5): a fixed 2D grid over (rapidity, azimuth) whose
  cells each hold a doubly-linked list of live jets, a per-cell "tagged" bit
  used transiently during a single reduction-loop iteration, and the
  mutable per-jet tiled-jet records the reduction loop threads through.

  Modelled on circular.Bitmap's word-packed tagging table (generalised here
  from a circular 2D table to a flat per-tile tag set, since tile ids are not
  circular — only the phi *coordinate* a tile covers is periodic, which is
  handled once, in Grid.TileOf/Surrounding, not in the tag storage) and on
  the arena-allocator idiom in encoding/pam/unsafearena.go (generalised from
  a raw byte arena to a typed slice of TiledJet, with doubly-linked list
  pointers stored as arena indices rather than language pointers, per spec
  section 9's "Design Notes").
*/
package tiling
