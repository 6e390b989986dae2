// Command ckparams encodes PKCS#11 mechanism parameters and prints their
// native layout, lists the PKCS#11 constants it knows, and runs derivations
// against an in-memory token.
//
// Every flag can also be set with a CKPARAMS_ environment variable, like
// CKPARAMS_ABI=llp64, or in a config file passed with --config.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ansel1/merry"
	"github.com/gemalto/ckparams/ckabi"
	"github.com/gemalto/flume"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if os.Getenv("CKPARAMS_DEBUG") != "" {
			fmt.Fprintln(os.Stderr, merry.Details(err))
		}
		os.Exit(1)
	}
}

// app holds the configuration shared by all commands.
type app struct {
	v *viper.Viper
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	a.v.SetEnvPrefix("CKPARAMS")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "ckparams",
		Short: "ckparams - PKCS#11 mechanism parameter tool",
		Long: `ckparams encodes PKCS#11 mechanism parameters into the native
structures a token reads, for any of the supported ABIs, and prints
the layout: the parameter structure, the buffers it points to, and
the pointer slots which tie them together.

ABIs:
  lp64:   64-bit Linux, macOS, BSD
  ilp32:  32-bit Linux
  llp64:  64-bit Windows (packed)
  win32:  32-bit Windows (packed)
  native: the platform ckparams was built for`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().String("config", "", "config file (yaml, json, or toml)")
	root.PersistentFlags().String("abi", "native", "native ABI: "+strings.Join(ckabi.ABINames(), ", "))
	root.PersistentFlags().String("log-level", "info", "log level: debug, info, or error")

	root.AddCommand(a.encodeCmd(), a.constsCmd(), a.abisCmd(), a.deriveCmd())
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return merry.Wrap(err)
	}
	if file := a.v.GetString("config"); file != "" {
		a.v.SetConfigFile(file)
		if err := a.v.ReadInConfig(); err != nil {
			return merry.Prepend(err, "reading config file")
		}
	}

	var level flume.Level
	switch strings.ToLower(a.v.GetString("log-level")) {
	case "debug":
		level = flume.DebugLevel
	case "info", "":
		level = flume.InfoLevel
	case "error":
		level = flume.ErrorLevel
	default:
		return merry.Errorf("invalid log level %q", a.v.GetString("log-level"))
	}
	return flume.Configure(flume.Config{
		Development:  true,
		DefaultLevel: level,
	})
}

func (a *app) abi() (ckabi.ABI, error) {
	return ckabi.LookupABI(a.v.GetString("abi"))
}
