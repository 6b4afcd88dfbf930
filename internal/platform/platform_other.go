// SPDX-License-Identifier: Unlicense OR MIT

//go:build !android

package platform

func hostLevel() (int, bool) {
	return 0, false
}
