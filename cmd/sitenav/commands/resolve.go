package commands

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/sitenav/internal/generator"
)

// ResolveCmd implements the 'resolve' command.
type ResolveCmd struct {
	Format string `short:"f" default:"yaml" help:"Output format (yaml or json)" enum:"yaml,json"`
}

func (r *ResolveCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()

	site, err := generator.New(cfg, generator.WithRecorder(g.Recorder)).Resolve(ctx)
	if err != nil {
		return err
	}

	if r.Format == "json" {
		enc := json.NewEncoder(g.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(site.Menu)
	}
	enc := yaml.NewEncoder(g.Out)
	enc.SetIndent(2)
	if err := enc.Encode(site.Menu); err != nil {
		return err
	}
	return enc.Close()
}
