// Package gui implementa la interfaz de escritorio con Fyne: una ventana con
// una pestaña por variante de formulario. Todo el estado vive en los
// controladores de aplicación; los widgets solo reflejan y mutan ese estado a
// través de sus comandos.
package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"github.com/jhoicas/asset-forms/internal/application/forms"
	"github.com/jhoicas/asset-forms/pkg/logger"
)

const (
	appTitle     = "Main Store - Asset Forms"
	windowWidth  = 1000
	windowHeight = 760
)

// App ventana principal con las dos pestañas de formulario.
type App struct {
	receipt    *forms.Controller
	transfer   *forms.Controller
	samplesDir string
	log        *logger.Logger
}

// New crea la aplicación de escritorio sobre los controladores ya armados.
// samplesDir, si existe, es la ubicación inicial del diálogo de importación.
func New(receipt, transfer *forms.Controller, samplesDir string, log *logger.Logger) *App {
	return &App{receipt: receipt, transfer: transfer, samplesDir: samplesDir, log: log}
}

// Run muestra la ventana y bloquea hasta que el usuario la cierra.
func (a *App) Run() {
	fa := app.New()
	w := fa.NewWindow(appTitle)
	w.Resize(fyne.NewSize(windowWidth, windowHeight))

	tabs := container.NewAppTabs(
		container.NewTabItem("Acknowledgment of Receipt", newReceiptTab(w, a.receipt, a.samplesDir, a.log)),
		container.NewTabItem("Asset Transfer (ATF)", newTransferTab(w, a.transfer, a.samplesDir, a.log)),
	)
	tabs.SetTabLocation(container.TabLocationTop)

	w.SetContent(tabs)
	w.CenterOnScreen()

	a.log.Info().Msg("interfaz iniciada")
	w.ShowAndRun()
}
