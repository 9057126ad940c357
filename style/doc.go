// Package style holds the visual settings consumed by the render pipeline:
// colors, dash patterns, line and marker styles, and how consecutive points
// are connected.
package style
