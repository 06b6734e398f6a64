// Package grade computes IT tolerance widths.
//
// The standard tolerance unit for a size step is
//
//	i = 0.45·∛D + 0.001·D   (micrometres, D in millimetres)
//
// where D is the geometric mean of the step's bounds. A grade's width is a
// fixed multiple of i (IT7 = 16i, for example), rounded to the nearest whole
// micrometre as published in ISO 286-1.
package grade
