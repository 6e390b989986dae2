package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/ansel1/merry"
	"github.com/gemalto/ckparams"
	"github.com/gemalto/ckparams/ck"
	"github.com/gemalto/ckparams/mock"
	"github.com/spf13/cobra"
)

func (a *app) deriveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive",
		Short: "run a TLS key derivation against an in-memory token",
		Long: `derive creates a token in memory, imports a pre-master secret, and
runs CKM_TLS_MASTER_KEY_DERIVE and CKM_TLS_KEY_AND_MAC_DERIVE, with the
parameters encoded for --abi.  It prints the protocol version, key
handles, and IVs the token returned through the parameters.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.derive(cmd)
		},
	}
	cmd.Flags().String("pre-master", "", "pre-master secret, 48 bytes hex (default random, with version 3.3)")
	randomFlags(cmd)
	cmd.Flags().Uint64("mac-bits", 256, "MAC secret size in bits")
	cmd.Flags().Uint64("key-bits", 128, "key size in bits")
	cmd.Flags().Uint64("iv-bits", 128, "IV size in bits")
	cmd.Flags().Bool("export", false, "derive export keys")
	cmd.Flags().String("key-type", "AES", "key type of the derived keys")
	return cmd
}

func (a *app) derive(cmd *cobra.Command) error {
	abi, err := a.abi()
	if err != nil {
		return err
	}
	keyType, err := ck.ParseKeyType(a.v.GetString("key-type"))
	if err != nil {
		return merry.Prepend(err, "--key-type")
	}
	preMaster, err := a.bytesFlag("pre-master")
	if err != nil {
		return err
	}
	if preMaster == nil {
		preMaster = make([]byte, 48)
		if _, err := rand.Read(preMaster); err != nil {
			return merry.Wrap(err)
		}
		preMaster[0], preMaster[1] = 3, 3
	}

	ctx := context.Background()
	s := mock.NewToken(abi).OpenSession()
	defer s.Close()

	base, err := s.CreateSecretKey(ck.KeyTypeGENERIC_SECRET, preMaster)
	if err != nil {
		return err
	}

	r, err := a.randomData()
	if err != nil {
		return err
	}
	masterParams, err := ckparams.NewSSL3MasterKeyDeriveParameters(r, &ckparams.Version{})
	if err != nil {
		return err
	}
	m, err := ckparams.NewMechanism(ck.MechanismTypeTLS_MASTER_KEY_DERIVE, masterParams)
	if err != nil {
		return err
	}
	master, err := s.DeriveKey(ctx, m, base, ck.KeyTypeGENERIC_SECRET)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "abi:               %v\n", abi)
	fmt.Fprintf(out, "version:           %v\n", masterParams.Version())
	fmt.Fprintf(out, "master secret:     %v\n", master)

	keyMatParams, err := a.keyMaterialParameters()
	if err != nil {
		return err
	}
	m, err = ckparams.NewMechanism(ck.MechanismTypeTLS_KEY_AND_MAC_DERIVE, keyMatParams)
	if err != nil {
		return err
	}
	if _, err := s.DeriveKey(ctx, m, master, keyType); err != nil {
		return err
	}

	km := keyMatParams.ReturnedKeyMaterial()
	fmt.Fprintf(out, "client MAC secret: %v\n", km.ClientMacSecret())
	fmt.Fprintf(out, "server MAC secret: %v\n", km.ServerMacSecret())
	fmt.Fprintf(out, "client key:        %v\n", km.ClientKey())
	fmt.Fprintf(out, "server key:        %v\n", km.ServerKey())
	fmt.Fprintf(out, "client IV:         %s\n", hex.EncodeToString(km.IVClient()))
	fmt.Fprintf(out, "server IV:         %s\n", hex.EncodeToString(km.IVServer()))
	return nil
}
