// SPDX-License-Identifier: Unlicense OR MIT

package platform

import "os/exec"

func hostLevel() (int, bool) {
	out, err := exec.Command("/system/bin/getprop", "ro.build.version.sdk").Output()
	if err != nil {
		return 0, false
	}
	return parseLevel(string(out))
}
