package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"imglab-urls/internal/imglab"
	"imglab-urls/internal/platform/config"
	"imglab-urls/internal/platform/logger"
	"imglab-urls/internal/urlbuilder"
)

const (
	FlagSource        = "source"
	FlagHost          = "host"
	FlagPort          = "port"
	FlagHTTP          = "http"
	FlagNoSubdomains  = "no-subdomains"
	FlagSecureKey     = "secure-key"
	FlagSecureSalt    = "secure-salt"
	FlagSourcesFile   = "sources-file"
	FlagParam         = "param"
	FlagParamShort    = "p"
	FlagLogLevel      = "log-level"
	FlagLogLevelValue = "warn"
)

// New returns the imglab root command.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "imglab [sub-command]",
		Short: "Build imglab image URLs and srcsets",
		Long: `imglab builds transformation URLs for imglab sources, signs them for
  secure sources and expands width or density ranges into srcset candidates.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		DisableAutoGenTag: true,
		SilenceUsage:      true,
	}

	cmd.PersistentFlags().String(FlagLogLevel, FlagLogLevelValue, `Log level written to stderr (debug, info, warn, error).`)

	cmd.AddCommand(newURLCommand())
	cmd.AddCommand(newSrcsetCommand())
	cmd.AddCommand(newSequenceCommand())
	return cmd
}

// addSourceFlags registers the flags that select or describe a source.
func addSourceFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String(FlagSource, "", `Source name. Falls back to IMGLAB_SOURCE.`)
	f.String(FlagSourcesFile, "", `YAML source catalog to look the source up in.`)
	f.String(FlagHost, "", `Host of the source (default "`+imglab.DefaultHost+`").`)
	f.Int(FlagPort, 0, `Explicit port of the source.`)
	f.Bool(FlagHTTP, false, `Use plain http instead of https.`)
	f.Bool(FlagNoSubdomains, false, `Put the source name in the path instead of the host.`)
	f.String(FlagSecureKey, "", `Base64 secure key; URLs are signed when key and salt are set.`)
	f.String(FlagSecureSalt, "", `Base64 secure salt.`)
	f.StringArrayP(FlagParam, FlagParamShort, nil, `Transformation parameter as key=value, key=a..b or bare key. Repeat a key to build a list.`)
}

func commandLogger(cmd *cobra.Command) *slog.Logger {
	level, _ := cmd.Flags().GetString(FlagLogLevel)
	return logger.NewWithWriter(cmd.ErrOrStderr(), level, "text")
}

// resolveService registers the catalog (if any) and the source described by
// flags and environment, and returns the name the command should build for.
// Explicit flags override catalog and environment values.
func resolveService(cmd *cobra.Command) (*urlbuilder.Service, urlbuilder.SourceName, error) {
	f := cmd.Flags()
	name, _ := f.GetString(FlagSource)
	envCfg, fromEnv := config.SourceFromEnv()
	if name == "" && fromEnv {
		name = envCfg.Name
	}
	if name == "" {
		return nil, "", fmt.Errorf("%w: --%s is required", imglab.ErrInvalidSource, FlagSource)
	}

	base := config.SourceConfig{Name: name}
	if fromEnv && envCfg.Name == name {
		base = envCfg
	}

	var catalog []config.SourceConfig
	if path, _ := f.GetString(FlagSourcesFile); path != "" {
		cfgs, err := config.LoadSources(path)
		if err != nil {
			return nil, "", err
		}
		for _, c := range cfgs {
			if c.Name == name {
				base = c
				continue
			}
			catalog = append(catalog, c)
		}
	}

	repo := urlbuilder.NewInMemoryRepository()
	if err := urlbuilder.RegisterAll(repo, append(catalog, applySourceFlags(cmd, base))); err != nil {
		return nil, "", err
	}
	return urlbuilder.NewService(repo), urlbuilder.SourceName(name), nil
}

func applySourceFlags(cmd *cobra.Command, c config.SourceConfig) config.SourceConfig {
	f := cmd.Flags()
	if f.Changed(FlagHost) {
		c.Host, _ = f.GetString(FlagHost)
	}
	if f.Changed(FlagPort) {
		c.Port, _ = f.GetInt(FlagPort)
	}
	if f.Changed(FlagHTTP) {
		plain, _ := f.GetBool(FlagHTTP)
		https := !plain
		c.HTTPS = &https
	}
	if f.Changed(FlagNoSubdomains) {
		off, _ := f.GetBool(FlagNoSubdomains)
		subdomains := !off
		c.Subdomains = &subdomains
	}
	if f.Changed(FlagSecureKey) {
		c.SecureKey, _ = f.GetString(FlagSecureKey)
	}
	if f.Changed(FlagSecureSalt) {
		c.SecureSalt, _ = f.GetString(FlagSecureSalt)
	}
	return c
}

func paramsFromFlags(cmd *cobra.Command) (*imglab.Params, error) {
	assignments, err := cmd.Flags().GetStringArray(FlagParam)
	if err != nil {
		return nil, err
	}
	return urlbuilder.ParseAssignments(assignments)
}
