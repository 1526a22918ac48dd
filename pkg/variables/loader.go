package variables

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/pihello/pkg/errors"
	"github.com/arthur-debert/pihello/pkg/logging"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/afero"
)

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "not implemented")
}

// Loader reads variable files. TOML and YAML are supported, chosen by the
// file extension.
type Loader struct {
	fs afero.Fs
}

// NewLoader returns a Loader reading from fs.
func NewLoader(fs afero.Fs) *Loader {
	return &Loader{fs: fs}
}

// Load reads every file in order and returns the merged Store. Keys in later
// files override the same keys in earlier ones; nested tables merge.
func (l *Loader) Load(paths ...string) (Store, error) {
	logger := logging.GetLogger("variables.loader")
	k := koanf.New(".")

	for _, path := range paths {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}

		data, err := afero.ReadFile(l.fs, path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.Wrap(err, errors.ErrFileNotFound, "variables file not found").
					WithDetail("path", path)
			}
			return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to read variables file").
				WithDetail("path", path)
		}

		if err := k.Load(&rawBytesProvider{bytes: data}, parser); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse variables file").
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("loaded variables file")
	}

	store, err := FromMap(k.Raw())
	if err != nil {
		return nil, err
	}
	logger.Debug().Int("count", len(store)).Msg("variables ready")
	return store, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	}
	return nil, errors.Newf(errors.ErrInvalidInput, "unsupported variables file %q (want .toml, .yaml or .yml)", path).
		WithDetail("path", path)
}
