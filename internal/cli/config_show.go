package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/textsign/internal/config"
	"github.com/mrz1836/textsign/internal/constants"
	"github.com/mrz1836/textsign/internal/errors"
	"github.com/mrz1836/textsign/internal/tui"
)

// ConfigShowFlags holds flags specific to the config show command.
type ConfigShowFlags struct {
	// Format specifies the output format (yaml or json).
	Format string
}

// newConfigShowCmd creates the 'config show' subcommand for displaying configuration.
func newConfigShowCmd(flags *ConfigShowFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display the effective textsign configuration with source annotations.

Each value is annotated with where it came from:
  - default: Built-in default value
  - global: From ~/.textsign/config.yaml
  - project: From .textsign/config.yaml
  - env: From a TEXTSIGN_* environment variable

Examples:
  textsign config show                # YAML with source comments
  textsign config show --format json  # JSON with value/source pairs`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigShow(cmd.Context(), cmd.OutOrStdout(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.Format, "format", "yaml", "output format (yaml or json)")

	return cmd
}

// AddConfigShowCommand adds the show subcommand to the config command.
func AddConfigShowCommand(configCmd *cobra.Command) {
	flags := &ConfigShowFlags{}
	configCmd.AddCommand(newConfigShowCmd(flags))
}

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	// SourceDefault indicates the value is a built-in default.
	SourceDefault ConfigSource = "default"
	// SourceGlobal indicates the value came from global config.
	SourceGlobal ConfigSource = "global"
	// SourceProject indicates the value came from project config.
	SourceProject ConfigSource = "project"
	// SourceEnv indicates the value came from an environment variable.
	SourceEnv ConfigSource = "env"
)

// ConfigValueWithSource represents a configuration value with its source.
type ConfigValueWithSource struct {
	Value  any          `json:"value" yaml:"value"`
	Source ConfigSource `json:"source" yaml:"source"`
}

// AnnotatedConfig represents configuration with source annotations.
type AnnotatedConfig struct {
	Crypto  map[string]ConfigValueWithSource `json:"crypto" yaml:"crypto"`
	Keys    map[string]ConfigValueWithSource `json:"keys" yaml:"keys"`
	Logging map[string]ConfigValueWithSource `json:"logging" yaml:"logging"`
}

// configField is one leaf of the configuration in display order.
type configField struct {
	section string
	key     string
	value   any
}

func (f configField) path() string {
	return f.section + "." + f.key
}

// configFields lists every configuration leaf in the order it is shown.
func configFields(cfg *config.Config) []configField {
	return []configField{
		{"crypto", "scheme", cfg.Crypto.Scheme},
		{"crypto", "encoding", cfg.Crypto.Encoding},
		{"keys", "dir", cfg.Keys.Dir},
		{"logging", "file", cfg.Logging.File},
		{"logging", "path", cfg.Logging.Path},
		{"logging", "max_size_mb", cfg.Logging.MaxSizeMB},
		{"logging", "max_backups", cfg.Logging.MaxBackups},
		{"logging", "max_age_days", cfg.Logging.MaxAgeDays},
		{"logging", "compress", cfg.Logging.Compress},
	}
}

// configShowStyles contains styling for the config show header.
type configShowStyles struct {
	header lipgloss.Style
	dim    lipgloss.Style
}

func newConfigShowStyles() *configShowStyles {
	return &configShowStyles{
		header: lipgloss.NewStyle().Bold(true).Foreground(tui.ColorPrimary),
		dim:    lipgloss.NewStyle().Foreground(tui.ColorMuted),
	}
}

// runConfigShow executes the config show command.
func runConfigShow(ctx context.Context, w io.Writer, flags *ConfigShowFlags) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	format := strings.ToLower(strings.TrimSpace(flags.Format))
	if format != "yaml" && format != "json" {
		return fmt.Errorf("%w: %s (use yaml or json)", errors.ErrUnsupportedOutputFormat, flags.Format)
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	globalValues := loadGlobalConfigOnly()
	projectValues := loadConfigValues(config.ProjectConfigPath())
	annotated := buildAnnotatedConfig(cfg, globalValues, projectValues)

	if format == "json" {
		return tui.NewTTYOutput(w).JSON(annotated)
	}
	return outputYAML(w, cfg, globalValues, projectValues)
}

// buildAnnotatedConfig pairs every value of cfg with the layer it came from.
func buildAnnotatedConfig(cfg *config.Config, globalValues, projectValues configValues) *AnnotatedConfig {
	annotated := &AnnotatedConfig{
		Crypto:  make(map[string]ConfigValueWithSource),
		Keys:    make(map[string]ConfigValueWithSource),
		Logging: make(map[string]ConfigValueWithSource),
	}

	sections := map[string]map[string]ConfigValueWithSource{
		"crypto":  annotated.Crypto,
		"keys":    annotated.Keys,
		"logging": annotated.Logging,
	}
	for _, f := range configFields(cfg) {
		sections[f.section][f.key] = ConfigValueWithSource{
			Value:  f.value,
			Source: determineSource(f.path(), globalValues, projectValues),
		}
	}
	return annotated
}

// configValues is a config file flattened to dotted keys.
type configValues map[string]any

// loadGlobalConfigOnly loads only the global config for source comparison.
func loadGlobalConfigOnly() configValues {
	path, err := config.GlobalConfigPath()
	if err != nil {
		return nil
	}
	return loadConfigValues(path)
}

// loadConfigValues reads a YAML config file into dotted keys. A missing or
// unreadable file yields nil; config.Load has already reported real errors.
func loadConfigValues(path string) configValues {
	data, err := os.ReadFile(path) //#nosec G304 -- config file path
	if err != nil {
		return nil
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil
	}

	values := make(configValues)
	flattenInto(values, "", raw)
	return values
}

func flattenInto(dst configValues, prefix string, src map[string]any) {
	for k, v := range src {
		key := strings.ToLower(k)
		if prefix != "" {
			key = prefix + "." + key
		}
		if nested, ok := v.(map[string]any); ok {
			flattenInto(dst, key, nested)
			continue
		}
		dst[key] = v
	}
}

// envKey returns the environment variable that sets a dotted config key.
func envKey(key string) string {
	return constants.EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// determineSource determines where a configuration value came from.
func determineSource(key string, globalValues, projectValues configValues) ConfigSource {
	if os.Getenv(envKey(key)) != "" {
		return SourceEnv
	}
	if _, ok := projectValues[key]; ok {
		return SourceProject
	}
	if _, ok := globalValues[key]; ok {
		return SourceGlobal
	}
	return SourceDefault
}

// outputYAML writes the configuration as YAML with each value's source as a
// line comment, so the output can be pasted back into a config file.
func outputYAML(w io.Writer, cfg *config.Config, globalValues, projectValues configValues) error {
	styles := newConfigShowStyles()

	_, _ = fmt.Fprintln(w, styles.header.Render("# Effective textsign configuration"))
	_, _ = fmt.Fprintln(w, styles.dim.Render("# Sources: env > project > global > default"))

	doc, err := annotatedYAMLNode(cfg, globalValues, projectValues)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding configuration: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding configuration: %w", err)
	}

	_, _ = fmt.Fprintln(w, styles.dim.Render("# Configuration files:"))
	if globalPath, err := config.GlobalConfigPath(); err == nil {
		_, _ = fmt.Fprintln(w, styles.dim.Render("#   global:  "+describeConfigFile(globalPath)))
	}
	_, _ = fmt.Fprintln(w, styles.dim.Render("#   project: "+describeConfigFile(config.ProjectConfigPath())))

	return nil
}

// annotatedYAMLNode builds a YAML mapping of cfg where every scalar carries
// its source as a line comment.
func annotatedYAMLNode(cfg *config.Config, globalValues, projectValues configValues) (*yaml.Node, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	sections := make(map[string]*yaml.Node)

	for _, f := range configFields(cfg) {
		section, ok := sections[f.section]
		if !ok {
			section = &yaml.Node{Kind: yaml.MappingNode}
			sections[f.section] = section
			root.Content = append(root.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: f.section}, section)
		}

		value := &yaml.Node{}
		if err := value.Encode(f.value); err != nil {
			return nil, fmt.Errorf("encoding %s: %w", f.path(), err)
		}
		value.LineComment = string(determineSource(f.path(), globalValues, projectValues))

		section.Content = append(section.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: f.key}, value)
	}

	return root, nil
}

func describeConfigFile(path string) string {
	if _, err := os.Stat(path); err != nil {
		return path + " (not found)"
	}
	return path
}
