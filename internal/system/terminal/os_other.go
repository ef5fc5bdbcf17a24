// Released under an MIT license. See LICENSE.

//go:build !darwin && !dragonfly && !freebsd && !linux && !netbsd && !openbsd
// +build !darwin,!dragonfly,!freebsd,!linux,!netbsd,!openbsd

package terminal

func width(int) int {
	return 0
}
