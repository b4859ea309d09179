package platform

import (
	"fmt"
	"os"
	"strings"
)

// Service defines OS-specific helpers needed by the application.
type Service interface {
	GetConfigDir() (string, error)
	EnableAutostart(entry AutostartEntry) error
	DisableAutostart(appName string) error
	AutostartEnabled(appName string) (bool, error)
}

// AutostartEntry describes the command launched at login.
type AutostartEntry struct {
	AppName  string
	ExecPath string
	Args     []string
}

func (entry AutostartEntry) validate() error {
	if strings.TrimSpace(entry.AppName) == "" {
		return fmt.Errorf("enable autostart: app name is empty")
	}
	if strings.TrimSpace(entry.ExecPath) == "" {
		return fmt.Errorf("enable autostart: exec path is empty")
	}
	return nil
}

type platformService struct{}

// NewService returns a platform-specific implementation.
func NewService() Service {
	return &platformService{}
}

// GetConfigDir returns the OS-standard configuration directory.
func (service *platformService) GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return configDir, nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}

	return fallbackConfigDir(homeDir), nil
}

func slugName(appName string) string {
	name := strings.TrimSpace(appName)
	if name == "" {
		name = "pomodoro"
	}
	name = strings.ToLower(name)
	return strings.ReplaceAll(name, " ", "-")
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
