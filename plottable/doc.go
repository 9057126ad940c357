// Package plottable provides the chart layers drawn by the plottables pass.
//
// [Signal] draws a large ordered series through a signal.Decimator, so the
// cost of a frame depends on the width of the data area rather than on the
// number of samples.
package plottable
