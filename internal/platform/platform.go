// SPDX-License-Identifier: Unlicense OR MIT

// Package platform reports the API level of the host platform.
package platform

import (
	"os"
	"strconv"
	"strings"
	"sync"
)

// Latest is the level reported by hosts without API levels. It is
// above every level that gates a compatibility workaround.
const Latest = 1<<31 - 1

// EnvLevel overrides the detected level when set to an integer.
const EnvLevel = "SAFEAREA_API_LEVEL"

var (
	once  sync.Once
	level int
)

// Level returns the API level of the host. It is computed once.
func Level() int {
	once.Do(func() {
		level = detect()
	})
	return level
}

func detect() int {
	if v, ok := parseLevel(os.Getenv(EnvLevel)); ok {
		return v
	}
	if v, ok := hostLevel(); ok {
		return v
	}
	return Latest
}

func parseLevel(s string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
