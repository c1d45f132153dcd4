// Package planar implements the plain (untiled) O(N^2) reduction strategy
// used for e+e- clustering (EEKt and Durham) (spec section 3, "Plain SoA
// record"; section 4.7). Every live jet's state lives in a handful of
// parallel columns rather than a struct-of-pointers, mirroring the columnar
// layout encoding/pam/fieldio used to pack one field per output column
// instead of one struct per record.
//
// Unlike the tiled strategy, the plain strategy never needs a spatial index:
// every update rescans all live jets directly, so there is no arena, no
// tile grid and no linked list — just the columns and a live count.
package planar
