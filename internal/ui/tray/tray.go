package tray

import (
	"fmt"

	"fyne.io/fyne/v2"

	"pomodoro/internal/ui/view"
)

// App is the part of desktop.App the tray needs.
type App interface {
	SetSystemTrayMenu(menu *fyne.Menu)
	SetSystemTrayIcon(icon fyne.Resource)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow      func()
	OnToggle    func()
	OnReset     func()
	OnQuickTime func(minutes int)
	OnSettings  func()
	OnQuit      func()
}

// Icons used by the tray.
type Icons struct {
	Work   fyne.Resource
	Break  fyne.Resource
	Paused fyne.Resource
}

// Manager handles system tray state.
type Manager struct {
	app        App
	callbacks  Callbacks
	icons      Icons
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	quickItem  *fyne.MenuItem
	lastIcon   fyne.Resource
}

// New creates a tray manager with the provided callbacks.
func New(app App, icons Icons, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		icons:     icons,
	}

	manager.statusItem = fyne.NewMenuItem("Work Session 25:00", nil)
	manager.statusItem.Disabled = true

	manager.toggleItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnToggle != nil {
			manager.callbacks.OnToggle()
		}
	})

	var quickItems []*fyne.MenuItem
	for _, minutes := range view.QuickMinutes {
		quickItems = append(quickItems, fyne.NewMenuItem(fmt.Sprintf("%d minutes", minutes), func() {
			if manager.callbacks.OnQuickTime != nil {
				manager.callbacks.OnQuickTime(minutes)
			}
		}))
	}
	manager.quickItem = fyne.NewMenuItem("Work duration", nil)
	manager.quickItem.ChildMenu = fyne.NewMenu("", quickItems...)

	manager.refreshMenu()
	return manager
}

// Update reflects the latest view model in the menu and icon.
func (manager *Manager) Update(model view.Model) {
	manager.statusItem.Label = fmt.Sprintf("%s %s", model.Label, model.Time)
	if model.IsRunning {
		manager.toggleItem.Label = "Pause"
	} else {
		manager.toggleItem.Label = "Start"
	}
	manager.quickItem.Disabled = model.IsRunning
	manager.refreshMenu()
	manager.refreshIcon(model)
}

// StatusLabel returns the current status line.
func (manager *Manager) StatusLabel() string {
	return manager.statusItem.Label
}

// ToggleLabel returns the current start/pause label.
func (manager *Manager) ToggleLabel() string {
	return manager.toggleItem.Label
}

func (manager *Manager) refreshIcon(model view.Model) {
	icon := manager.icons.Paused
	if model.IsRunning {
		icon = manager.icons.Work
		if !model.IsWork {
			icon = manager.icons.Break
		}
	}
	if icon == nil || icon == manager.lastIcon {
		return
	}
	manager.lastIcon = icon
	manager.app.SetSystemTrayIcon(icon)
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("Pomodoro",
		manager.statusItem,
		fyne.NewMenuItem("Show timer", func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
		}),
		fyne.NewMenuItemSeparator(),
		manager.toggleItem,
		fyne.NewMenuItem("Reset", func() {
			if manager.callbacks.OnReset != nil {
				manager.callbacks.OnReset()
			}
		}),
		manager.quickItem,
		fyne.NewMenuItem("Settings", func() {
			if manager.callbacks.OnSettings != nil {
				manager.callbacks.OnSettings()
			}
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}
