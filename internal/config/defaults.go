package config

// applyDefaults fills unset fields. Unrecognized enum spellings are left
// untouched so Validate can report them.
func applyDefaults(c *Config) {
	if c.Lang == "" {
		c.Lang = DefaultLang
	}
	if b, err := ParseBundler(string(c.Bundler)); err == nil {
		c.Bundler = b
	}
	if m, err := ParseColorMode(string(c.Theme.ColorMode)); err == nil {
		c.Theme.ColorMode = m
	}
	if c.Docs.Dir == "" {
		c.Docs.Dir = DefaultDocsDir
	}
	if c.Output.Directory == "" {
		c.Output.Directory = DefaultOutputDir
	}
}
