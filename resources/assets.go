package resources

import (
	"embed"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
)

const (
	iconDir  = "icons/"
	soundDir = "sounds/"
)

// Icon names.
const (
	IconApp    = "tomato.svg"
	IconPaused = "tomato_paused.svg"
	IconBreak  = "break.svg"
)

// Sound names.
const SoundComplete = "complete.wav"

//go:embed icons/*.svg
var iconFS embed.FS

//go:embed sounds/*.wav
var soundFS embed.FS

var iconCache sync.Map

// Icon returns a Fyne resource for the given icon file.
func Icon(fileName string) (fyne.Resource, error) {
	path := iconDir + fileName
	if cached, ok := iconCache.Load(path); ok {
		return cached.(fyne.Resource), nil
	}

	data, err := iconFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load icon %s: %w", path, err)
	}

	resource := fyne.NewStaticResource(fileName, data)
	iconCache.Store(path, resource)
	return resource, nil
}

// MustIcon returns a Fyne resource or panics on error.
func MustIcon(fileName string) fyne.Resource {
	resource, err := Icon(fileName)
	if err != nil {
		panic(err)
	}
	return resource
}

// Sound returns the bytes of an embedded sound file.
func Sound(fileName string) ([]byte, error) {
	data, err := soundFS.ReadFile(soundDir + fileName)
	if err != nil {
		return nil, fmt.Errorf("load sound %s: %w", fileName, err)
	}
	return data, nil
}

// MustSound returns an embedded sound or panics on error.
func MustSound(fileName string) []byte {
	data, err := Sound(fileName)
	if err != nil {
		panic(err)
	}
	return data
}
