package utils

import (
	"strconv"
	"strings"
)

const byteUnit = 1024

var sizeUnits = [...]string{"b", "kb", "mb", "gb", "tb", "pb"}

// FormatFileSize renders a byte count for tree output, e.g. "584b", "1.5kb", "46mb".
// Values below ten keep one decimal; negative counts render as zero.
func FormatFileSize(bytes int64) string {
	if bytes < byteUnit {
		return strconv.FormatInt(max(bytes, 0), 10) + sizeUnits[0]
	}
	scaled := float64(bytes)
	unit := 0
	for scaled >= byteUnit && unit < len(sizeUnits)-1 {
		scaled /= byteUnit
		unit++
	}
	precision := 0
	if scaled < 10 {
		precision = 1
	}
	return strings.TrimSuffix(strconv.FormatFloat(scaled, 'f', precision, 64), ".0") + sizeUnits[unit]
}
