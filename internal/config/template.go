package config

import (
	"os"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"justfetch/internal/errors"
)

// DefaultTemplate is used when no template file exists.
const DefaultTemplate = `rgb["Distro", 97, 175, 239]: [distro]
rgb["Kernel", 97, 175, 239]: [kernel]
rgb["User", 97, 175, 239]:   [username]
`

// Template is the text to resolve and where it came from.
type Template struct {
	Text    string
	Path    string
	Default bool
}

// LoadTemplate reads the template at path. A missing file falls back to
// DefaultTemplate with a warning; any other read failure is an error.
func LoadTemplate(path string, logger zerolog.Logger) (Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("path", path).Msg("Template not found, using the default template")
			return Template{Text: DefaultTemplate, Path: path, Default: true}, nil
		}
		return Template{}, errors.Wrapf(err, errors.ErrTemplateRead, "failed to read template %s", path).
			WithDetail("path", path)
	}
	if !utf8.Valid(data) {
		return Template{}, errors.Newf(errors.ErrTemplateRead, "template %s is not valid UTF-8", path).
			WithDetail("path", path)
	}
	logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("Template loaded")
	return Template{Text: string(data), Path: path}, nil
}
