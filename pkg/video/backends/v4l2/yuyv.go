//go:build linux
// +build linux

package v4l2

// yuyvToRGB expands a packed YUYV 4:2:2 buffer into 8-bit RGB. Every
// four input bytes describe two horizontally adjacent pixels sharing
// one chroma pair.
func yuyvToRGB(yuyv []byte, width, height int) []uint8 {
	rgb := make([]uint8, width*height*3)
	for i, j := 0, 0; i+3 < len(yuyv) && j+5 < len(rgb); i, j = i+4, j+6 {
		y0 := int32(yuyv[i])
		u := int32(yuyv[i+1]) - 128
		y1 := int32(yuyv[i+2])
		v := int32(yuyv[i+3]) - 128

		rgb[j+0] = clampByte(y0 + (351*v)>>8)
		rgb[j+1] = clampByte(y0 - ((179*v + 86*u) >> 8))
		rgb[j+2] = clampByte(y0 + (443*u)>>8)
		rgb[j+3] = clampByte(y1 + (351*v)>>8)
		rgb[j+4] = clampByte(y1 - ((179*v + 86*u) >> 8))
		rgb[j+5] = clampByte(y1 + (443*u)>>8)
	}
	return rgb
}

func clampByte(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
