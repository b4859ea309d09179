//go:build darwin

package platform

import "os/exec"

func newWakeLock(string) WakeLock {
	path, err := exec.LookPath("caffeinate")
	if err != nil {
		return unsupportedWakeLock{}
	}
	return &inhibitorWakeLock{path: path, args: []string{"-d"}}
}
