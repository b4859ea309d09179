//go:build !linux && !darwin && !windows

package platform

import "path/filepath"

func newWakeLock(string) WakeLock {
	return unsupportedWakeLock{}
}

func (service *platformService) EnableAutostart(AutostartEntry) error {
	return ErrUnsupported
}

func (service *platformService) DisableAutostart(string) error {
	return ErrUnsupported
}

func (service *platformService) AutostartEnabled(string) (bool, error) {
	return false, ErrUnsupported
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config")
}
