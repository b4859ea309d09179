//go:build linux

package platform

import "os/exec"

func newWakeLock(appName string) WakeLock {
	path, err := exec.LookPath("systemd-inhibit")
	if err != nil {
		return unsupportedWakeLock{}
	}
	sleepPath, err := exec.LookPath("sleep")
	if err != nil {
		return unsupportedWakeLock{}
	}
	return &inhibitorWakeLock{
		path: path,
		args: []string{
			"--what=idle",
			"--who=" + appName,
			"--why=Pomodoro session running",
			"--mode=block",
			sleepPath, "infinity",
		},
	}
}
