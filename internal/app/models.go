package app

import (
	"context"
	"fmt"

	"go.trai.ch/zerr"
)

// ListModels returns the language codes of the installed models.
func (a *App) ListModels(ctx context.Context, configPath string) ([]string, error) {
	settings, err := a.loadSettings(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return a.providers.ModelManager(settings.Provider).ListModels(ctx)
}

// DownloadModel installs the model for each language.
func (a *App) DownloadModel(ctx context.Context, configPath string, langs ...string) error {
	settings, err := a.loadSettings(configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	models := a.providers.ModelManager(settings.Provider)
	for _, lang := range langs {
		a.logger.Info(fmt.Sprintf("downloading language model %s...", lang))
		if err := models.DownloadModel(ctx, lang); err != nil {
			return err
		}
		a.logger.Info(fmt.Sprintf("downloaded language model %s", lang))
	}
	return nil
}

// DeleteModel removes the model for each language.
func (a *App) DeleteModel(ctx context.Context, configPath string, langs ...string) error {
	settings, err := a.loadSettings(configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	models := a.providers.ModelManager(settings.Provider)
	for _, lang := range langs {
		if err := models.DeleteModel(ctx, lang); err != nil {
			return err
		}
		a.logger.Info(fmt.Sprintf("deleted language model %s", lang))
	}
	return nil
}
