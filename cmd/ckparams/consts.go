package main

import (
	"fmt"
	"strings"

	"github.com/ansel1/merry"
	"github.com/gemalto/ckparams"
	"github.com/gemalto/ckparams/ck"
	"github.com/gemalto/ckparams/ckabi"
	"github.com/gemalto/ckparams/internal/ckutil"
	"github.com/spf13/cobra"
)

func (a *app) constsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "consts [enum]",
		Short: "list PKCS#11 constants",
		Long: `consts lists the registered constant families, or the names and
values in one family.  The family can be given as its name, like
"Mechanism Type" or MechanismType, or its prefix, like CKM_.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, name := range ckabi.EnumNames() {
					e, _ := ckabi.LookupEnum(name)
					fmt.Fprintf(out, "%-26s %s\n", name, e.Prefix())
				}
				return nil
			}
			e, err := findEnum(args[0])
			if err != nil {
				return err
			}
			parameterized := a.v.GetBool("parameterized")
			for _, v := range e.Values() {
				if parameterized && !(e == &ck.MechanismTypeEnum && ckparams.TakesParameters(ck.MechanismType(v))) {
					continue
				}
				fmt.Fprintf(out, "%#08x %s\n", v, e.Format(v))
			}
			return nil
		},
	}
	cmd.Flags().Bool("parameterized", false, "only list mechanisms which take parameters")
	return cmd
}

func findEnum(s string) (*ckabi.Enum, error) {
	want := ckutil.NormalizeName(s)
	for _, name := range ckabi.EnumNames() {
		e, _ := ckabi.LookupEnum(name)
		if strings.EqualFold(ckutil.NormalizeName(name), want) || strings.EqualFold(e.Prefix(), s) {
			return e, nil
		}
	}
	return nil, merry.Errorf("unknown constant family %q, try one of: %s", s, strings.Join(ckabi.EnumNames(), ", "))
}

func (a *app) abisCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "abis",
		Short: "list the native ABIs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range ckabi.ABINames() {
				abi, err := ckabi.LookupABI(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-7s ulong=%d pointer=%d packed=%v\n", name, abi.ULongSize, abi.PointerSize, abi.Packed)
			}
			return nil
		},
	}
}
