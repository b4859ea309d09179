//go:build linux

package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (service *platformService) EnableAutostart(entry AutostartEntry) error {
	if err := entry.validate(); err != nil {
		return err
	}

	desktopFilePath, err := service.desktopFilePath(entry.AppName)
	if err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(desktopFilePath), 0o755); err != nil {
		return fmt.Errorf("enable autostart: create autostart dir: %w", err)
	}
	if err := os.WriteFile(desktopFilePath, []byte(buildDesktopEntry(entry)), 0o644); err != nil {
		return fmt.Errorf("enable autostart: write desktop entry: %w", err)
	}
	return nil
}

func (service *platformService) DisableAutostart(appName string) error {
	desktopFilePath, err := service.desktopFilePath(appName)
	if err != nil {
		return fmt.Errorf("disable autostart: %w", err)
	}
	if err := os.Remove(desktopFilePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("disable autostart: remove desktop entry: %w", err)
	}
	return nil
}

func (service *platformService) AutostartEnabled(appName string) (bool, error) {
	desktopFilePath, err := service.desktopFilePath(appName)
	if err != nil {
		return false, fmt.Errorf("autostart status: %w", err)
	}
	return fileExists(desktopFilePath)
}

func (service *platformService) desktopFilePath(appName string) (string, error) {
	configDir, err := service.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "autostart", slugName(appName)+".desktop"), nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config")
}

func buildDesktopEntry(entry AutostartEntry) string {
	parts := make([]string, 0, len(entry.Args)+1)
	for _, part := range append([]string{entry.ExecPath}, entry.Args...) {
		if strings.Contains(part, " ") && !strings.HasPrefix(part, `"`) {
			part = `"` + part + `"`
		}
		parts = append(parts, part)
	}

	return fmt.Sprintf(
		`[Desktop Entry]
Type=Application
Name=%s
Comment=Work and break timer
Exec=%s
X-GNOME-Autostart-enabled=true
Terminal=false
`,
		entry.AppName,
		strings.Join(parts, " "),
	)
}
