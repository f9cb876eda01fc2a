package panel

import "fmt"

// plasmaStops are evenly spaced anchor colors of the plasma colormap,
// sampled at 0, 1/9, ..., 1. Values in between are linearly interpolated.
var plasmaStops = [][3]uint8{
	{0x0d, 0x08, 0x87},
	{0x46, 0x03, 0x9f},
	{0x72, 0x01, 0xa8},
	{0x9c, 0x17, 0x9e},
	{0xbd, 0x37, 0x86},
	{0xd8, 0x57, 0x6b},
	{0xed, 0x79, 0x53},
	{0xfb, 0x9f, 0x3a},
	{0xfd, 0xca, 0x26},
	{0xf0, 0xf9, 0x21},
}

// TemperatureColor maps a temperature in [0, 1] to a hex color on the plasma
// gradient. Out-of-range values are clamped first.
func TemperatureColor(temperature float64) string {
	t := min(max(temperature, 0.0), 1.0)

	scaled := t * float64(len(plasmaStops)-1)
	idx := int(scaled)
	if idx >= len(plasmaStops)-1 {
		last := plasmaStops[len(plasmaStops)-1]
		return fmt.Sprintf("#%02x%02x%02x", last[0], last[1], last[2])
	}

	frac := scaled - float64(idx)
	lo, hi := plasmaStops[idx], plasmaStops[idx+1]

	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*frac)
	}

	return fmt.Sprintf("#%02x%02x%02x", lerp(lo[0], hi[0]), lerp(lo[1], hi[1]), lerp(lo[2], hi[2]))
}
