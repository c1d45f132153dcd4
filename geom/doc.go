/*Package geom implements the geometry primitives shared by both jet-clustering
  strategies: the cylindrical (rapidity, azimuth) metric used by the
  hadron-collider tiled strategy, and the 3D direction-cosine metric used by
  the e+e- plain strategy.

  Nothing here is strategy-specific; geom only knows about bare coordinates
  (y, phi, direction cosines, transverse-momentum-squared) and never touches a
  jet record, a tile, or history. That keeps it trivially testable and lets
  both strategies share exactly one implementation of the formulas in
  spec section 4.1.
*/
package geom
