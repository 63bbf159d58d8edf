// Package numeric holds the small array routines the spectroscopy tools are
// built from: searches over sorted axes, polynomial and Savitzky-Golay fits,
// linear interpolation and element-wise division of overlapping series.
package numeric
