package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every configuration key looked up in the
// environment, e.g. VOGEL_FORMAT or VOGEL_SUPPLY_POINTS.
const EnvPrefix = "VOGEL"

// Execute runs the vogel command with os.Args.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree. Every call gets its own viper
// instance, so commands built in tests never share settings.
func NewRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "vogel",
		Short:         "Transportation cost calculator using Vogel's Approximation Method",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return readConfigFile(v)
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.String(keyConfig, "", "YAML config file with flag values")
	pf.BoolP(keyVerbose, "v", false, "log every allocation step to stderr")
	bindFlags(v, pf)

	root.AddCommand(newSolveCommand(v))

	return root
}

// bindFlags accepts underscores in flag names and binds fs into v.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) {
	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})
	_ = v.BindPFlags(fs)
}

// readConfigFile loads the --config file, if any, underneath flags and env.
func readConfigFile(v *viper.Viper) error {
	path := v.GetString(keyConfig)
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return nil
}
