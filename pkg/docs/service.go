// Package docs implements the compdoc operations on top of the scanner,
// extractor and generator packages. Both the CLI and the MCP server call
// into a Service.
package docs

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gnana997/compdoc/pkg/catalog"
	"github.com/gnana997/compdoc/pkg/config"
	"github.com/gnana997/compdoc/pkg/extractor"
	"github.com/gnana997/compdoc/pkg/generator"
	"github.com/gnana997/compdoc/pkg/scanner"
	"github.com/gnana997/compdoc/pkg/util"
)

// Service runs operations against one project. It keeps no state between
// calls: every operation walks the tree and reads files again.
type Service struct {
	cfg    *config.Config
	logger *slog.Logger
}

// Component is a resolved component with its extracted metadata.
type Component struct {
	Name string
	Path string
	extractor.Metadata
}

// NewService returns a Service for cfg.Root. A nil logger discards output.
func NewService(cfg *config.Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = util.NopLogger()
	}
	return &Service{cfg: cfg, logger: logger}
}

// Root returns the project root.
func (s *Service) Root() string {
	return s.cfg.Root
}

// Catalog builds the component catalog.
func (s *Service) Catalog() *catalog.Catalog {
	start := time.Now()
	cat := catalog.Build(s.cfg.Root, s.cfg.Conventions, s.cfg.ScanConfig())
	s.logger.Debug("catalog built",
		"root", s.cfg.Root,
		"components", cat.Len(),
		"duration", time.Since(start))
	return cat
}

// Component resolves name and extracts its metadata.
func (s *Service) Component(name string) (*Component, error) {
	path, err := scanner.ResolveComponentFile(name, s.cfg.Root, s.cfg.ScanConfig())
	if err != nil {
		s.logger.Debug("component not resolved", "name", name, "error", err)
		return nil, err
	}

	src, err := util.ReadSource(path, s.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to read component %s: %w", name, err)
	}

	meta := extractor.Extract(src)
	s.logger.Debug("component extracted",
		"name", name,
		"path", path,
		"props", len(meta.Props),
		"has_description", meta.Description.Present)
	return &Component{Name: name, Path: path, Metadata: meta}, nil
}

// ListComponents renders the catalog listing.
func (s *Service) ListComponents() (string, error) {
	return s.Catalog().Format(), nil
}

// AnalyzeComponent renders the documentation report for name.
func (s *Service) AnalyzeComponent(name string) (string, error) {
	c, err := s.Component(name)
	if err != nil {
		return "", err
	}
	return generator.FormatDocumentation(generator.NewReport(c.Name, c.Path, c.Metadata)), nil
}

// UsageExample renders a usage snippet for name.
func (s *Service) UsageExample(name string) (string, error) {
	c, err := s.Component(name)
	if err != nil {
		return "", err
	}
	return generator.UsageExample(c.Name, c.Path, c.Props), nil
}

// CreateStory writes a story scaffold next to the component file of name,
// replacing any existing one.
func (s *Service) CreateStory(name string) (string, error) {
	c, err := s.Component(name)
	if err != nil {
		return "", err
	}
	path, err := generator.GenerateStoryScaffold(c.Name, c.Path, c.Props)
	if err != nil {
		return "", err
	}
	s.logger.Info("story scaffold written", "name", name, "path", path)
	return fmt.Sprintf("Storybook file created: %s", path), nil
}

// SearchComponents renders the catalog entries matching query.
func (s *Service) SearchComponents(query string) (string, error) {
	return catalog.FormatSearch(query, s.Catalog().Search(query)), nil
}

// SuggestDescription renders the context for writing a description of name.
func (s *Service) SuggestDescription(name string) (string, error) {
	c, err := s.Component(name)
	if err != nil {
		return "", err
	}
	return generator.FormatSuggestion(generator.Suggestion{
		Name:  c.Name,
		Path:  c.Path,
		Props: c.Props,
	}), nil
}
