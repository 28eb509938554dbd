// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrUnknownChannel = errors.New("channel must be left or right")
	ErrInvalidTone    = errors.New("invalid tone parameters")
)
