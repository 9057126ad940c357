// Package overlay provides decorations drawn after the plottables.
package overlay
