package terminal

import "fmt"

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Hex formats the color as #rrggbb
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer
func (c RGB) String() string {
	return c.Hex()
}
