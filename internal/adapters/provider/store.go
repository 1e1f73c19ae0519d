package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ModelManager = (*ModelStore)(nil)

const (
	modelExt = ".yaml"
	// maxModelSize bounds a downloaded model file.
	maxModelSize = 8 << 20
)

// ModelStore keeps glossary models in a directory, one file per language.
// English is the pivot language and always installed.
type ModelStore struct {
	dir     string
	baseURL string
	client  *http.Client
}

// NewModelStore creates a store in dir. Models are downloaded from baseURL/<lang>.yaml;
// an empty baseURL disables downloads.
func NewModelStore(dir, baseURL string, client *http.Client) *ModelStore {
	if client == nil {
		client = http.DefaultClient
	}
	return &ModelStore{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/"), client: client}
}

// Dir returns the model directory.
func (s *ModelStore) Dir() string {
	return s.dir
}

// CanDownload reports whether a download location is configured.
func (s *ModelStore) CanDownload() bool {
	return s.baseURL != ""
}

// ListModels returns the installed languages in sorted order.
func (s *ModelStore) ListModels(_ context.Context) ([]string, error) {
	langs := []string{PivotLanguage}

	entries, err := os.ReadDir(s.dir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, zerr.With(zerr.Wrap(err, "failed to list language models"), "dir", s.dir)
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != modelExt {
			continue
		}
		lang := strings.TrimSuffix(name, modelExt)
		if lang != PivotLanguage {
			langs = append(langs, lang)
		}
	}

	slices.Sort(langs)
	return langs, nil
}

// Installed reports whether the model for lang is present.
func (s *ModelStore) Installed(lang string) bool {
	if lang == PivotLanguage {
		return true
	}
	info, err := os.Stat(s.path(lang))
	return err == nil && !info.IsDir()
}

// Load reads the model for lang. The pivot language has no model and returns nil.
func (s *ModelStore) Load(lang string) (*Model, error) {
	if lang == PivotLanguage {
		return nil, nil
	}

	data, err := os.ReadFile(s.path(lang))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, zerr.With(domain.ErrModelNotFound, "language", lang)
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read language model"), "language", lang)
	}
	return ParseModel(data, lang)
}

// DownloadModel fetches the model for lang and installs it atomically.
func (s *ModelStore) DownloadModel(ctx context.Context, lang string) error {
	lang, err := domain.NormalizeLanguage(lang)
	if err != nil {
		return err
	}
	if lang == PivotLanguage {
		return nil
	}
	if !s.CanDownload() {
		return zerr.With(zerr.Wrap(errors.New("no model URL configured"), domain.ErrModelDownloadFailed.Error()),
			"language", lang)
	}

	data, err := s.fetch(ctx, lang)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrModelDownloadFailed.Error()), "language", lang)
	}
	if _, err := ParseModel(data, lang); err != nil {
		return zerr.Wrap(err, domain.ErrModelDownloadFailed.Error())
	}

	return s.install(lang, data)
}

// DeleteModel removes the model for lang.
func (s *ModelStore) DeleteModel(_ context.Context, lang string) error {
	lang, err := domain.NormalizeLanguage(lang)
	if err != nil {
		return err
	}
	if lang == PivotLanguage {
		return zerr.With(domain.ErrBuiltinModel, "language", lang)
	}

	err = os.Remove(s.path(lang))
	if errors.Is(err, fs.ErrNotExist) {
		return zerr.With(domain.ErrModelNotFound, "language", lang)
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrModelDeleteFailed.Error()), "language", lang)
	}
	return nil
}

func (s *ModelStore) path(lang string) string {
	return filepath.Join(s.dir, lang+modelExt)
}

func (s *ModelStore) fetch(ctx context.Context, lang string) ([]byte, error) {
	url := s.baseURL + "/" + lang + modelExt
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, zerr.With(fmt.Errorf("unexpected status %s", resp.Status), "url", url)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxModelSize))
}

// install writes the model to a temporary file and renames it into place.
func (s *ModelStore) install(lang string, data []byte) error {
	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrModelStoreCreateFailed.Error()), "dir", s.dir)
	}

	tmp, err := os.CreateTemp(s.dir, "."+lang+"-*.tmp")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrModelDownloadFailed.Error()), "language", lang)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrModelDownloadFailed.Error()), "language", lang)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrModelDownloadFailed.Error()), "language", lang)
	}
	if err := os.Chmod(tmp.Name(), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrModelDownloadFailed.Error()), "language", lang)
	}
	if err := os.Rename(tmp.Name(), s.path(lang)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrModelDownloadFailed.Error()), "language", lang)
	}
	return nil
}
