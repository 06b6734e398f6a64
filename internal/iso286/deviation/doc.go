// Package deviation places tolerance zones relative to nominal size.
//
// Every supported letter carries a placement policy, fixed when the table is
// built:
//
//   - anchored by lower: the fundamental deviation is the lower bound (H, k to u)
//   - anchored by upper: the fundamental deviation is the upper bound (h)
//   - symmetric: the zone straddles nominal size by half the IT width (JS, js);
//     for IT7 to IT11 an odd width is reduced by 1 µm first, so JS7 at 25 mm
//     (IT7 = 21 µm) is ±10 µm
//
// H and h are the defining letters of the hole-basis and shaft-basis systems;
// their fundamental deviation is zero by definition and never read from
// table data. The letters k, m, n, p, r, s and u read their lower deviation
// (ei) from the reference tables per size band. k only applies its tabulated
// value for IT4 to IT7 and sits on zero for every other grade.
//
// Deviations are in micrometres; positive values lie above nominal size.
package deviation
