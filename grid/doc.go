// Package grid draws reference lines at tick positions across the data
// area.
//
// Tick positions follow a 1-2-5 progression sized so that major lines are
// roughly TargetSpacing pixels apart; each major interval is split into
// MinorDivisions minor intervals.
package grid
