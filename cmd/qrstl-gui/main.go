package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	qrapp "github.com/philipparndt/qrstl/internal/app"
	"github.com/philipparndt/qrstl/internal/config"
	"github.com/philipparndt/qrstl/internal/logger"
	"github.com/philipparndt/qrstl/pkg/analysis"
	"github.com/philipparndt/qrstl/pkg/mesh"
	"github.com/philipparndt/qrstl/pkg/viewer"
	"github.com/philipparndt/qrstl/pkg/wifi"
	"github.com/philipparndt/qrstl/version"
)

type App struct {
	window    fyne.Window
	profile   *config.Profile
	generator *qrapp.Generator
	viewer    *viewer.SceneViewer

	ssidEntry      *widget.Entry
	securitySelect *widget.Select
	passwordEntry  *widget.Entry
	hiddenCheck    *widget.Check

	footprintEntry *widget.Entry
	borderEntry    *widget.Entry
	moduleEntry    *widget.Entry
	baseEntry      *widget.Entry

	payloadLabel *widget.Label
	infoLabel    *widget.Label
}

func main() {
	profile, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(profile.Logging.Level, profile.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	generator, err := qrapp.NewGenerator(profile)
	if err != nil {
		logger.Fatal("invalid profile", zap.Error(err))
	}

	a := app.New()
	w := a.NewWindow(fmt.Sprintf("qrstl v%s - WiFi QR Tag Builder", version.GetVersion()))

	appInstance := &App{
		window:    w,
		profile:   profile,
		generator: generator,
	}
	appInstance.setupMainUI()

	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
}

func (a *App) setupMainUI() {
	a.ssidEntry = widget.NewEntry()
	a.ssidEntry.SetPlaceHolder("Network name")

	a.securitySelect = widget.NewSelect([]string{"WPA", "WEP", "none"}, nil)
	a.securitySelect.SetSelected(string(wifi.DefaultSecurity))

	a.passwordEntry = widget.NewPasswordEntry()
	a.passwordEntry.SetPlaceHolder("Password")

	a.hiddenCheck = widget.NewCheck("Hidden network", nil)

	tag := a.profile.Tag
	a.footprintEntry = newDimensionEntry(tag.FootprintMM)
	a.borderEntry = newDimensionEntry(tag.BorderMM)
	a.moduleEntry = newDimensionEntry(tag.ModuleThicknessMM)
	a.baseEntry = newDimensionEntry(tag.BaseThicknessMM)

	a.payloadLabel = widget.NewLabel("Payload: -")
	a.payloadLabel.Wrapping = fyne.TextWrapBreak

	a.infoLabel = widget.NewLabel("Generate a tag to see its properties")

	generateButton := widget.NewButton("Generate", func() {
		a.regenerate()
	})
	generateButton.Importance = widget.HighImportance

	exportButton := widget.NewButton("Export STL", func() {
		a.export()
	})

	a.viewer = viewer.NewSceneViewer(a.generator.Scene)

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Fill in the network credentials\n" +
			"• Drag to rotate the preview\n" +
			"• Scroll to zoom in/out\n" +
			"• Export writes a binary STL",
	)
	instructions.Wrapping = fyne.TextWrapWord

	formPanel := container.NewVBox(
		widget.NewLabel("WiFi Network:"),
		widget.NewSeparator(),
		widget.NewLabel("SSID"),
		a.ssidEntry,
		widget.NewLabel("Security"),
		a.securitySelect,
		widget.NewLabel("Password"),
		a.passwordEntry,
		a.hiddenCheck,
		widget.NewSeparator(),
		widget.NewLabel("Tag Dimensions (mm):"),
		widget.NewLabel("Footprint"),
		a.footprintEntry,
		widget.NewLabel("Border"),
		a.borderEntry,
		widget.NewLabel("Module height"),
		a.moduleEntry,
		widget.NewLabel("Base height"),
		a.baseEntry,
		widget.NewSeparator(),
		generateButton,
		exportButton,
		widget.NewSeparator(),
		a.payloadLabel,
		a.infoLabel,
		widget.NewSeparator(),
		instructions,
	)

	formScroll := container.NewVScroll(formPanel)
	formScroll.SetMinSize(fyne.NewSize(320, 0))

	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		formScroll, // left
		nil,        // right
		a.viewer,   // center
	)

	a.window.SetContent(content)
	a.viewer.Render(800, 600)
}

func newDimensionEntry(value float64) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetText(strconv.FormatFloat(value, 'f', -1, 64))
	return entry
}

// regenerate rebuilds the scene from the form. On any error the
// previous scene stays on screen.
func (a *App) regenerate() {
	options, err := a.parseOptions()
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	security, err := wifi.ParseSecurity(a.securitySelect.Selected)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	network := wifi.Network{
		SSID:     a.ssidEntry.Text,
		Security: security,
		Password: a.passwordEntry.Text,
		Hidden:   a.hiddenCheck.Checked,
	}

	a.generator.SetOptions(options)
	result, err := a.generator.Generate(network.Payload())
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	a.viewer.ReloadScene()
	a.updateInfo(result)

	logger.Info("generated model",
		zap.Int("grid_size", result.GridSize),
		zap.Int("solids", result.SolidCount))
}

func (a *App) parseOptions() (mesh.Options, error) {
	footprint, err := parseDimension("footprint", a.footprintEntry.Text)
	if err != nil {
		return mesh.Options{}, err
	}
	border, err := parseDimension("border", a.borderEntry.Text)
	if err != nil {
		return mesh.Options{}, err
	}
	moduleHeight, err := parseDimension("module height", a.moduleEntry.Text)
	if err != nil {
		return mesh.Options{}, err
	}
	baseHeight, err := parseDimension("base height", a.baseEntry.Text)
	if err != nil {
		return mesh.Options{}, err
	}

	return mesh.Options{
		FootprintMM:       footprint,
		BorderMM:          border,
		ModuleThicknessMM: moduleHeight,
		BaseThicknessMM:   baseHeight,
	}, nil
}

func parseDimension(name, text string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q is not a number", name, text)
	}
	return value, nil
}

func (a *App) updateInfo(result *qrapp.Result) {
	a.payloadLabel.SetText("Payload: " + result.Payload)

	summary := analysis.Summarize(a.generator.ExportModel("preview"))
	a.infoLabel.SetText(fmt.Sprintf(
		"Grid: %dx%d\nDark modules: %d\nSolids: %d\nTriangles: %d\n\nDimensions:\n  X: %.2f mm\n  Y: %.2f mm\n  Z: %.2f mm",
		result.GridSize,
		result.GridSize,
		result.DarkModules,
		result.SolidCount,
		summary.TriangleCount,
		summary.Dimensions.X,
		summary.Dimensions.Y,
		summary.Dimensions.Z,
	))
}

// export hands the serialized scene to a save dialog
func (a *App) export() {
	if a.generator.Scene.Len() == 0 {
		dialog.ShowInformation("Nothing to export", "Generate a tag first", a.window)
		return
	}

	suggested := a.profile.Export.SuggestedName
	name := strings.TrimSuffix(suggested, ".stl")

	data, err := a.generator.Export(name)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		if _, err := writer.Write(data); err != nil {
			dialog.ShowError(fmt.Errorf("failed to write STL: %w", err), a.window)
			return
		}
		logger.Info("exported model",
			zap.String("uri", writer.URI().String()),
			zap.Int("bytes", len(data)))
	}, a.window)

	saveDialog.SetFileName(suggested)
	saveDialog.Show()
}
