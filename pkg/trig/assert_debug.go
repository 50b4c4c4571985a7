//go:build raydebug

package trig

import "fmt"

func checkIndex(deg int) {
	if deg < 0 || deg >= Degrees {
		panic(fmt.Errorf("%w: %d", ErrInvalidAngle, deg))
	}
}
