package plugin

import (
	"regexp"

	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
)

var containerTypePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// ContainerHandler registers a custom "::: type" block.
type ContainerHandler struct{}

type containerOptions struct {
	Type    string            `yaml:"type"`
	Locales map[string]Locale `yaml:"locales"`
}

func (ContainerHandler) Name() string { return "container" }

func (ContainerHandler) Apply(options map[string]any, _ Env, set *Set) error {
	var opts containerOptions
	if err := decodeOptions(options, &opts); err != nil {
		return err
	}
	if opts.Type == "" {
		return ferrors.ConfigError("container plugin requires a type").
			WithContext("field", "type").
			Build()
	}
	if !containerTypePattern.MatchString(opts.Type) {
		return ferrors.ConfigError("container type must be a lowercase identifier").
			WithContext("field", "type").
			WithContext("value", opts.Type).
			Build()
	}
	if existing, ok := set.Container(opts.Type); ok && existing.BuiltIn {
		return ferrors.ConfigError("container type shadows a built-in block").
			WithContext("field", "type").
			WithContext("value", opts.Type).
			Build()
	}
	set.AddContainer(Container{Type: opts.Type, Locales: opts.Locales})
	return nil
}
