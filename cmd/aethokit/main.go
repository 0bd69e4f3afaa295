package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	aethokit "github.com/aethokit/aethokit-go"
	"github.com/aethokit/aethokit-go/internal/cliconfig"
	logpkg "github.com/aethokit/aethokit-go/pkg/log"
	"github.com/aethokit/aethokit-go/pkg/network"
)

const helpDescription = `
Talk to the Aethokit gas-sponsorship relay from the command line.

The relay pays transaction fees on your behalf: fetch the sponsor address,
build and partially sign your transaction against it, then submit the
serialized transaction here to have it countersigned and broadcast.

Configure via flags, AETHOKIT_* environment variables, or a TOML config file
(default ~/.aethokit/config.toml). Flags win over env, env wins over file.
`

var exampleUsage = strings.TrimSpace(`
  aethokit gas-address --network devnet
  aethokit sponsor-tx AQAAAbCd... --network mainnet
  cat tx.b64 | aethokit sponsor-tx - --gas-key <key>
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "aethokit",
		Short:         "Client for the Aethokit gas-sponsorship relay",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default ~/.aethokit/config.toml)")
	root.PersistentFlags().StringVar(&cfg.GasKey, "gas-key", cfg.GasKey, "gas key authenticating you to the relay")
	root.PersistentFlags().StringVar(&cfg.Network, "network", cfg.Network, "network name (devnet, testnet, mainnet) or relay base URL")
	root.PersistentFlags().DurationVar(&cfg.HTTPTimeout, "timeout", cfg.HTTPTimeout, "per-request timeout")
	root.PersistentFlags().StringVar(&cfg.NetworksFile, "networks-file", cfg.NetworksFile, "TOML file overriding the built-in network table")
	root.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "log request details to stderr")

	gasAddress := &cobra.Command{
		Use:   "gas-address",
		Short: "Print the sponsor address that pays fees for your gas key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildClient(cmd, &cfg, cfgPath)
			if err != nil {
				return err
			}
			addr, err := c.GetGasAddress(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), addr)
			return nil
		},
	}

	sponsorTx := &cobra.Command{
		Use:   "sponsor-tx <serialized-tx>",
		Short: "Submit a serialized transaction for sponsorship and print its hash",
		Long: "Submit a serialized transaction for sponsorship and print its hash.\n" +
			"Pass \"-\" to read the serialized transaction from stdin.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tx := args[0]
			if tx == "-" {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read transaction from stdin: %w", err)
				}
				tx = strings.TrimSpace(string(b))
			}

			c, err := buildClient(cmd, &cfg, cfgPath)
			if err != nil {
				return err
			}
			hash, err := c.SponsorTx(cmd.Context(), tx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}

	root.AddCommand(gasAddress, sponsorTx)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// buildClient resolves configuration precedence (flags > env > file) and
// constructs the relay client.
func buildClient(cmd *cobra.Command, cfg *cliconfig.Config, cfgPath string) (*aethokit.Client, error) {
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}
	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(cfg, fc, changed); err != nil {
			return nil, err
		}
	}

	if err := cliconfig.ApplyEnvConfig(cfg, changed); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	libCfg := aethokit.DefaultConfig()
	libCfg.GasKey = cfg.GasKey
	libCfg.Network = cfg.Network
	libCfg.HTTPTimeout = cfg.HTTPTimeout
	libCfg.DialTimeout = cfg.DialTimeout

	if cfg.NetworksFile != "" {
		reg, err := network.LoadRegistry(cfg.NetworksFile)
		if err != nil {
			return nil, err
		}
		libCfg.Networks = reg
	}

	opts := []aethokit.Option{}
	if cfg.Verbose {
		zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger().Level(zerolog.DebugLevel)
		opts = append(opts, aethokit.WithLogger(logpkg.NewZerologAdapterWithLogger(zl)))
	}

	return aethokit.New(libCfg, opts...)
}
