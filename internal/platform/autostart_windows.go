//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

const registryRunKey = `HKCU\Software\Microsoft\Windows\CurrentVersion\Run`

func (service *platformService) EnableAutostart(entry AutostartEntry) error {
	if err := entry.validate(); err != nil {
		return err
	}

	command := exec.Command(
		"reg", "add", registryRunKey,
		"/v", entry.AppName,
		"/t", "REG_SZ",
		"/d", buildRunCommand(entry),
		"/f",
	)
	output, err := command.CombinedOutput()
	if err != nil {
		return fmt.Errorf("enable autostart: reg add failed: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

func (service *platformService) DisableAutostart(appName string) error {
	if appName == "" {
		return fmt.Errorf("disable autostart: app name is empty")
	}

	command := exec.Command("reg", "delete", registryRunKey, "/v", appName, "/f")
	output, err := command.CombinedOutput()
	if err != nil {
		return fmt.Errorf("disable autostart: reg delete failed: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

func (service *platformService) AutostartEnabled(appName string) (bool, error) {
	if appName == "" {
		return false, fmt.Errorf("autostart status: app name is empty")
	}
	err := exec.Command("reg", "query", registryRunKey, "/v", appName).Run()
	if err == nil {
		return true, nil
	}
	if _, ok := err.(*exec.ExitError); ok {
		return false, nil
	}
	return false, fmt.Errorf("autostart status: %w", err)
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "AppData", "Roaming")
}

func buildRunCommand(entry AutostartEntry) string {
	parts := []string{fmt.Sprintf(`"%s"`, strings.Trim(entry.ExecPath, `"`))}
	for _, argument := range entry.Args {
		if strings.Contains(argument, " ") {
			argument = fmt.Sprintf(`"%s"`, argument)
		}
		parts = append(parts, argument)
	}
	return strings.Join(parts, " ")
}
