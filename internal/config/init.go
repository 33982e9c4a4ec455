package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
	"git.home.luguber.info/inful/sitenav/internal/nav"
)

// Init writes a starter configuration to path. An existing file is only
// replaced when force is set. A non-nil sidebar replaces the example sidebar.
func Init(path string, force bool, sidebar nav.Tree) error {
	cfg := Example()
	if sidebar != nil {
		cfg.Theme.Sidebar = sidebar
	}
	return Write(path, force, cfg)
}

// Write stores cfg at path, refusing to replace an existing file unless
// force is set.
func Write(path string, force bool, cfg *Config) error {
	if _, err := os.Stat(path); err == nil && !force {
		return ferrors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", path).
			Build()
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return ferrors.FileSystemError("failed to inspect configuration path").
			WithContext("path", path).
			WithCause(err).
			Build()
	}

	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return ferrors.FileSystemError("failed to create configuration directory").
				WithContext("path", dir).
				WithCause(err).
				Build()
		}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return ferrors.FileSystemError("failed to write configuration file").
			WithContext("path", path).
			WithCause(err).
			Build()
	}
	return nil
}

// Example returns the C++ course site configuration.
func Example() *Config {
	depth := 0
	colorSwitch := false
	return &Config{
		Lang:        DefaultLang,
		Title:       "C++",
		Description: "C++ Programming Course for VIVES University of Applied Sciences (Bachelor Degree)",
		Theme: ThemeConfig{
			ColorMode:       ColorModeLight,
			ColorModeSwitch: &colorSwitch,
			Sidebar:         courseSidebar(),
			SidebarDepth:    &depth,
			SmoothScroll:    true,
		},
		ServiceWorker: true,
		Plugins: []PluginConfig{
			{
				Name: "container",
				Options: map[string]any{
					"type": "codeoutput",
					"locales": map[string]any{
						"/": map[string]any{"default_info": "Output"},
					},
				},
			},
			{
				Name:    "register-components",
				Options: map[string]any{"components_dir": "docs/.vuepress/components"},
			},
		},
		Bundler: BundlerVite,
		Docs:    DocsConfig{Dir: DefaultDocsDir},
		Output:  OutputConfig{Directory: DefaultOutputDir},
	}
}

func courseSidebar() nav.Tree {
	section := func(text string, paths ...string) nav.Section {
		s := nav.Section{Text: text}
		for _, p := range paths {
			s.Children = append(s.Children, nav.Page(p))
		}
		return s
	}
	return nav.Tree{
		section("Developer tools",
			"/developer-tools/01-visual-code/",
			"/developer-tools/02-mingw/"),
		section("Introduction",
			"/a-introductory/01-about-this-course/",
			"/a-introductory/02-what-is-cpp/",
			"/a-introductory/03-hello-world/"),
		section("Fundamentals",
			"/b-fundamentals/01-variables-and-datatypes/",
			"/b-fundamentals/02-operators/",
			"/b-fundamentals/03-input-output/",
			"/b-fundamentals/04-conditional-constructs/",
			"/b-fundamentals/05-loops/",
			"/b-fundamentals/06-arrays/",
			"/b-fundamentals/07-enums/",
			"/b-fundamentals/08-functions/"),
		section("Object Oriented Thinking",
			"/c-object-oriented-thinking/",
			"/c-object-oriented-thinking/01-abstraction/",
			"/c-object-oriented-thinking/02-all_about_objects/"),
		section("Object Oriented Programming",
			"/d-object-oriented-programming/01-using-objects/",
			"/d-object-oriented-programming/02-creating-classes/",
			"/d-object-oriented-programming/03-constructors/",
			"/d-object-oriented-programming/04-composition/"),
		section("Compiling and Linking",
			"/e-compiling-and-linking/01-the-compilation-process/",
			"/e-compiling-and-linking/02-makefiles/"),
		section("More Advanced C++",
			"/f-more-advanced-cpp/01-pointers/",
			"/f-more-advanced-cpp/02-dynamic-memory-allocation/",
			"/f-more-advanced-cpp/03-exceptions/",
			"/f-more-advanced-cpp/04-file-streams/"),
		section("Inheritance",
			"/g-inheritance/01-basic-inheritance/",
			"/g-inheritance/02-polymorphism/",
			"/g-inheritance/03-abstract-methods-classes-interfaces/"),
		section("Mental Topics",
			"/h-mental-topics/01-operator-overloading/"),
		section("Standard Library",
			"/y-standard-library/std-vector/"),
		{
			Text: "References",
			Children: []nav.Item{
				nav.External("https://www.stroustrup.com/bs_faq2.html", "Bjarne Stroustrups C++ Style and Technique FAQ"),
			},
		},
	}
}
