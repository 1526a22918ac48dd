// Package templates provides the built-in dashboard template and loads
// user templates from disk.
package templates

import (
	"embed"
	"os"

	"github.com/arthur-debert/pihello/pkg/errors"
	"github.com/arthur-debert/pihello/pkg/variables"
	"github.com/spf13/afero"
)

// DefaultName selects the built-in template.
const DefaultName = "default"

//go:embed default.tmpl sample.toml
var files embed.FS

// Default returns the built-in Pi-hole dashboard template.
func Default() string {
	data, _ := files.ReadFile("default.tmpl")
	return string(data)
}

// Load returns the template named by path. An empty path or DefaultName
// selects the built-in template; anything else is read from fs.
func Load(fs afero.Fs, path string) (string, error) {
	if path == "" || path == DefaultName {
		return Default(), nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrap(err, errors.ErrFileNotFound, "template not found").WithDetail("path", path)
		}
		return "", errors.Wrap(err, errors.ErrFileAccess, "failed to read template").WithDetail("path", path)
	}
	return string(data), nil
}

// SampleVariables returns example values for every placeholder of the
// built-in template.
func SampleVariables() (variables.Store, error) {
	return variables.NewLoader(afero.FromIOFS{FS: files}).Load("sample.toml")
}
