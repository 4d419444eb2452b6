package main

import (
	"github.com/jhoicas/asset-forms/internal/application/forms"
	"github.com/jhoicas/asset-forms/internal/domain/entity"
	infrapdf "github.com/jhoicas/asset-forms/internal/infrastructure/pdf"
	"github.com/jhoicas/asset-forms/internal/infrastructure/storage"
	"github.com/jhoicas/asset-forms/internal/infrastructure/xlsx"
	"github.com/jhoicas/asset-forms/internal/interfaces/gui"
	"github.com/jhoicas/asset-forms/pkg/config"
	"github.com/jhoicas/asset-forms/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("output", cfg.Forms.OutputDir).
		Msg("iniciando aplicación")

	layout := infrapdf.Layout{
		FirstPageRows:    cfg.Layout.FirstPageRows,
		OverflowPageRows: cfg.Layout.OverflowPageRows,
		CellPaddingMM:    cfg.Layout.CellPaddingMM,
		LogoPath:         cfg.Forms.LogoPath,
	}

	docs, err := storage.NewPdfStore(cfg.Forms.OutputDir)
	if err != nil {
		log.Fatal().Err(err).Msg("directorio de salida")
	}

	receiptCtrl := forms.NewController(
		entity.VariantReceipt,
		xlsx.NewImporter(entity.VariantReceipt, log),
		infrapdf.NewReceiptRenderer(layout),
		infrapdf.NewSignatureFieldInjector(infrapdf.ReceiptSignatureField),
		docs,
		log,
	)
	transferCtrl := forms.NewController(
		entity.VariantTransfer,
		xlsx.NewImporter(entity.VariantTransfer, log),
		infrapdf.NewTransferRenderer(layout),
		infrapdf.NewSignatureFieldInjector(infrapdf.TransferSignatureField),
		docs,
		log,
	)

	app := gui.New(receiptCtrl, transferCtrl, cfg.Forms.SamplesDir, log)
	app.Run()

	log.Info().Msg("aplicación finalizada")
}
