// Package overlay is the small always-visible reminder shown on the desktop
// when a break begins.
package overlay

import (
	"context"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"pomodoro/internal/ui/animation"
	"pomodoro/internal/ui/view"
)

// Config defines overlay visuals.
type Config struct {
	Opacity uint8
	// Frames are cycled by the animation engine while the reminder is open.
	Frames []fyne.Resource
}

// Window manages the break reminder.
type Window struct {
	window        fyne.Window
	config        Config
	image         *canvas.Image
	timerLabel    *canvas.Text
	titleLabel    *canvas.Text
	subtitleLabel *canvas.Text
	dismissButton *widget.Button
	background    *canvas.Rectangle
	engine        *animation.Engine
	cancelCtx     context.CancelFunc
	visible       bool
	primed        bool
	lastWork      bool
}

const (
	overlayWidthFraction  = float32(0.16)
	overlayHeightFraction = float32(0.16)
	defaultScreenWidth    = float32(1920)
	defaultScreenHeight   = float32(1080)
)

var textColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// New creates the hidden reminder window. The engine drives the sprite.
func New(app fyne.App, config Config) *Window {
	window := app.NewWindow("Break")
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		// Splash window is undecorated (no native frame/buttons).
		window = driver.CreateSplashWindow()
	}
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	background := canvas.NewRectangle(color.NRGBA{A: config.Opacity})

	image := canvas.NewImageFromResource(nil)
	image.FillMode = canvas.ImageFillContain
	if len(config.Frames) > 0 {
		image.Resource = config.Frames[0]
	}

	titleLabel := canvas.NewText("Break time!", textColor)
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	titleLabel.TextSize = 21

	subtitleLabel := canvas.NewText("Take a rest.", textColor)
	subtitleLabel.TextSize = 14

	timerLabel := canvas.NewText(view.FormatTime(0), view.BreakColor)
	timerLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	timerLabel.TextSize = 18

	overlay := &Window{
		window:        window,
		config:        config,
		image:         image,
		timerLabel:    timerLabel,
		titleLabel:    titleLabel,
		subtitleLabel: subtitleLabel,
		background:    background,
		lastWork:      true,
	}
	overlay.engine = animation.New(animation.DefaultConfig(), overlay.SetSprite)
	overlay.dismissButton = widget.NewButton("Dismiss", overlay.Hide)

	leftContent := container.New(&leftPanelLayout{}, titleLabel, subtitleLabel, timerLabel)
	rightContent := container.New(&rightPanelLayout{}, image, overlay.dismissButton)
	content := container.NewGridWithColumns(2, leftContent, rightContent)
	window.SetContent(container.NewStack(background, content))
	window.SetCloseIntercept(overlay.Hide)
	return overlay
}

// Render follows the session. The reminder opens when a work session turns
// into a break and closes when work starts again; it must be called on the
// UI goroutine.
func (overlay *Window) Render(model view.Model) {
	if !overlay.primed {
		overlay.primed = true
		overlay.lastWork = model.IsWork
	}
	enteredBreak := overlay.lastWork && !model.IsWork
	overlay.lastWork = model.IsWork

	if model.IsWork {
		overlay.Hide()
		return
	}
	overlay.timerLabel.Text = model.Time
	overlay.timerLabel.Refresh()
	if enteredBreak {
		overlay.show()
	}
}

// Hide closes the reminder and stops the animation.
func (overlay *Window) Hide() {
	overlay.stopEngine()
	if !overlay.visible {
		return
	}
	overlay.visible = false
	overlay.window.Hide()
}

// Visible reports whether the reminder is on screen.
func (overlay *Window) Visible() bool {
	return overlay.visible
}

// SetSprite updates the sprite from any goroutine.
func (overlay *Window) SetSprite(resource fyne.Resource) {
	fyne.Do(func() {
		overlay.image.Resource = resource
		overlay.image.Refresh()
	})
}

func (overlay *Window) show() {
	overlay.stopEngine()
	ctx, cancel := context.WithCancel(context.Background())
	overlay.cancelCtx = cancel

	overlay.visible = true
	overlay.resizeToScreenFraction()
	overlay.window.Show()
	overlay.applyNativeOpacity(overlay.config.Opacity)
	overlay.window.RequestFocus()

	if len(overlay.config.Frames) > 1 {
		overlay.engine.Start(ctx, overlay.config.Frames)
	}
}

func (overlay *Window) stopEngine() {
	if overlay.cancelCtx != nil {
		overlay.cancelCtx()
		overlay.cancelCtx = nil
	}
	overlay.engine.Stop()
}

func (overlay *Window) resizeToScreenFraction() {
	screenSize := fyne.NewSize(defaultScreenWidth, defaultScreenHeight)
	canvasSize := overlay.window.Canvas().Size()
	// Canvas size can be reused as a proxy for monitor size when it is clearly screen-like.
	if canvasSize.Width >= 1024 && canvasSize.Height >= 720 {
		screenSize = canvasSize
	}

	width := screenSize.Width * overlayWidthFraction
	height := screenSize.Height * overlayHeightFraction
	minSize := overlay.window.Content().MinSize()
	if width < minSize.Width {
		width = minSize.Width
	}
	if height < minSize.Height {
		height = minSize.Height
	}

	overlay.window.Resize(fyne.NewSize(width, height))
	overlay.window.CenterOnScreen()
}

type rightPanelLayout struct{}

func (layout *rightPanelLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 2 {
		return
	}
	image := objects[0]
	dismiss := objects[1]

	dismissSize := dismiss.MinSize()
	dismissHeight := min(dismissSize.Height, size.Height*0.3)
	imageAreaHeight := max(size.Height-dismissHeight, 0)

	margin := imageAreaHeight * 0.05
	side := max(min(imageAreaHeight*0.90, size.Width-margin), 0)
	x := max(size.Width-margin-side, 0)
	image.Move(fyne.NewPos(x, margin))
	image.Resize(fyne.NewSize(side, side))

	dismissWidth := min(dismissSize.Width*1.4, size.Width)
	dismissX := max(x+side-dismissWidth, 0)
	dismissY := max(imageAreaHeight+(dismissHeight-dismissSize.Height)/2, 0)
	dismiss.Move(fyne.NewPos(dismissX, dismissY))
	dismiss.Resize(fyne.NewSize(dismissWidth, dismissSize.Height))
}

func (layout *rightPanelLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 2 {
		return fyne.NewSize(0, 0)
	}
	imageMin := objects[0].MinSize()
	dismissMin := objects[1].MinSize()
	return fyne.NewSize(max(imageMin.Width, dismissMin.Width), imageMin.Height+dismissMin.Height)
}

type leftPanelLayout struct{}

func (layout *leftPanelLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 3 {
		return
	}
	title := objects[0]
	subtitle := objects[1]
	timer := objects[2]

	pad := size.Height * 0.05
	availableWidth := max(size.Width-pad*2, 0)

	titleSize := title.MinSize()
	title.Move(fyne.NewPos(pad, pad))
	title.Resize(fyne.NewSize(availableWidth, titleSize.Height))

	subtitleSize := subtitle.MinSize()
	subtitle.Move(fyne.NewPos(pad, pad+titleSize.Height+6))
	subtitle.Resize(fyne.NewSize(availableWidth, subtitleSize.Height))

	timerSize := timer.MinSize()
	timer.Move(fyne.NewPos(pad, max(size.Height-pad-timerSize.Height, 0)))
	timer.Resize(timerSize)
}

func (layout *leftPanelLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 3 {
		return fyne.NewSize(0, 0)
	}
	titleSize := objects[0].MinSize()
	subtitleSize := objects[1].MinSize()
	timerSize := objects[2].MinSize()

	width := max(titleSize.Width, subtitleSize.Width, timerSize.Width)
	height := titleSize.Height + subtitleSize.Height + timerSize.Height + 30
	return fyne.NewSize(width+20, height)
}
