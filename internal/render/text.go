package render

import "strings"

// Text renders cells as size rows of glyphs: '.' for dead cells, the
// vitality digit for 1 to 9 and '+' above that.
func Text(cells []int, size int) string {
	if size <= 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(cells) + len(cells)/size)
	for i, v := range cells {
		switch {
		case v <= 0:
			sb.WriteByte('.')
		case v < 10:
			sb.WriteByte(byte('0' + v))
		default:
			sb.WriteByte('+')
		}
		if (i+1)%size == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
