// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"errors"
	"math"
)

// ErrOutOfRange means a value does not fit the target integer width.
var ErrOutOfRange = errors.New("value out of range")

// ClampRoundInt16 clamps x to the int16 range and rounds to the nearest
// integer, ties away from zero. NaN maps to 0.
func ClampRoundInt16(x float64) int16 {
	if math.IsNaN(x) {
		return 0
	}

	if x < math.MinInt16 {
		x = math.MinInt16
	} else if x > math.MaxInt16 {
		x = math.MaxInt16
	}

	return int16(math.Round(x))
}

// ClampRoundUint8 clamps x to [0,255] and rounds half up. NaN maps to 0.
func ClampRoundUint8(x float64) uint8 {
	if math.IsNaN(x) || x < 0 {
		x = 0
	} else if x > math.MaxUint8 {
		x = math.MaxUint8
	}

	return uint8(x + 0.5)
}

// ScaleUint32 returns truncate(v*factor + 0.5). The result must fit in
// 32 bits and factor must not be negative.
func ScaleUint32(v uint32, factor float64) (uint32, error) {
	x := float64(v)*factor + 0.5
	if math.IsNaN(x) || x < 0 || x >= math.MaxUint32+1 {
		return 0, ErrOutOfRange
	}

	return uint32(x), nil
}
