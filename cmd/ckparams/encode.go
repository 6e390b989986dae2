package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ansel1/merry"
	"github.com/gemalto/ckparams"
	"github.com/gemalto/ckparams/ck"
	"github.com/gemalto/ckparams/internal/ckutil"
	"github.com/spf13/cobra"
)

// paramsCmd describes one "encode" subcommand.
type paramsCmd struct {
	use       string
	short     string
	mechanism ck.MechanismType
	flags     func(cmd *cobra.Command)
	build     func(a *app, mt ck.MechanismType) (ckparams.Parameters, error)
}

func (a *app) encodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "encode mechanism parameters and print the native block",
		Long: `encode builds mechanism parameters from flags, validates them, and
prints the encoded block.  Byte buffer flags take hex; a flag which
isn't set is a NULL buffer, and a flag set to "" is an empty one.

With --pack, the block is also flattened into a single image at
--base, with every pointer slot filled in.`,
	}
	cmd.PersistentFlags().String("mechanism", "", "mechanism type, as CKM_ name or number (default depends on the parameters)")
	cmd.PersistentFlags().Bool("pack", false, "also print the packed image")
	cmd.PersistentFlags().String("base", "0x10000", "address to pack the image at")

	for _, pc := range a.paramsCmds() {
		cmd.AddCommand(a.newParamsCmd(pc))
	}
	return cmd
}

func (a *app) newParamsCmd(pc paramsCmd) *cobra.Command {
	cmd := &cobra.Command{
		Use:   pc.use,
		Short: pc.short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mt := pc.mechanism
			if s := a.v.GetString("mechanism"); s != "" {
				var err error
				if mt, err = ck.ParseMechanismType(s); err != nil {
					return merry.Prepend(err, "--mechanism")
				}
			}
			p, err := pc.build(a, mt)
			if err != nil {
				return err
			}
			m, err := ckparams.NewMechanism(mt, p)
			if err != nil {
				return err
			}
			return a.printMechanism(cmd, m)
		},
	}
	pc.flags(cmd)
	return cmd
}

func (a *app) printMechanism(cmd *cobra.Command, m *ckparams.Mechanism) error {
	abi, err := a.abi()
	if err != nil {
		return err
	}
	mt, blk, err := ckparams.NewEncoder(abi, nil).EncodeMechanism(m)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%v (%#x)\n", mt, uint32(mt))
	fmt.Fprint(out, blk.String())

	if !a.v.GetBool("pack") || blk == nil {
		return nil
	}
	base, err := ckutil.ParseUint64(a.v.GetString("base"))
	if err != nil {
		return merry.Prepend(err, "--base")
	}
	image, err := blk.Pack(base)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "packed @%#x: %s\n", base, hex.EncodeToString(image))
	return nil
}

// bytesFlag reads a hex flag.  Unset flags are nil.
func (a *app) bytesFlag(name string) ([]byte, error) {
	if !a.v.IsSet(name) {
		return nil, nil
	}
	s := strings.Join(strings.Fields(a.v.GetString(name)), "")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, merry.Prependf(err, "--%s", name)
	}
	if b == nil {
		b = []byte{}
	}
	return b, nil
}

// stringFlag reads a text flag as bytes.  Unset flags are nil.
func (a *app) stringFlag(name string) []byte {
	if !a.v.IsSet(name) {
		return nil
	}
	return []byte(a.v.GetString(name))
}

// bytesFlags reads several hex flags, in order.
func (a *app) bytesFlags(names ...string) ([][]byte, error) {
	bufs := make([][]byte, len(names))
	for i, name := range names {
		b, err := a.bytesFlag(name)
		if err != nil {
			return nil, err
		}
		bufs[i] = b
	}
	return bufs, nil
}

func (a *app) paramsCmds() []paramsCmd {
	return []paramsCmd{
		{
			use:       "oaep",
			short:     "CK_RSA_PKCS_OAEP_PARAMS",
			mechanism: ck.MechanismTypeRSA_PKCS_OAEP,
			flags: func(cmd *cobra.Command) {
				cmd.Flags().String("hash", "SHA_1", "digest mechanism")
				cmd.Flags().String("mgf", "MGF1_SHA1", "mask generation function")
				cmd.Flags().String("source-data", "", "encoding parameter (an OAEP label), hex")
			},
			build: func(a *app, _ ck.MechanismType) (ckparams.Parameters, error) {
				hashAlg, mgf, err := a.hashAndMGF()
				if err != nil {
					return nil, err
				}
				data, err := a.bytesFlag("source-data")
				if err != nil {
					return nil, err
				}
				source := ck.OAEPSourceEMPTY
				if data != nil {
					source = ck.OAEPSourceDATA_SPECIFIED
				}
				return ckparams.NewRSAPkcsOAEPParameters(hashAlg, mgf, source, data)
			},
		},
		{
			use:       "pss",
			short:     "CK_RSA_PKCS_PSS_PARAMS",
			mechanism: ck.MechanismTypeRSA_PKCS_PSS,
			flags: func(cmd *cobra.Command) {
				cmd.Flags().String("hash", "SHA_1", "digest mechanism")
				cmd.Flags().String("mgf", "MGF1_SHA1", "mask generation function")
				cmd.Flags().Uint64("salt-length", 20, "salt length in bytes")
			},
			build: func(a *app, _ ck.MechanismType) (ckparams.Parameters, error) {
				hashAlg, mgf, err := a.hashAndMGF()
				if err != nil {
					return nil, err
				}
				return ckparams.NewRSAPkcsPSSParameters(hashAlg, mgf, a.v.GetUint64("salt-length"))
			},
		},
		{
			use:       "iv",
			short:     "an initialization vector, for CBC, OFB, and CFB modes",
			mechanism: ck.MechanismTypeAES_CBC_PAD,
			flags: func(cmd *cobra.Command) {
				cmd.Flags().String("iv", "00000000000000000000000000000000", "initialization vector, hex")
			},
			build: func(a *app, _ ck.MechanismType) (ckparams.Parameters, error) {
				iv, err := a.bytesFlag("iv")
				if err != nil {
					return nil, err
				}
				return ckparams.NewInitializationVectorParameters(iv)
			},
		},
		{
			use:       "cbc-encrypt-data",
			short:     "CK_AES_CBC_ENCRYPT_DATA_PARAMS or CK_DES_CBC_ENCRYPT_DATA_PARAMS",
			mechanism: ck.MechanismTypeAES_CBC_ENCRYPT_DATA,
			flags: func(cmd *cobra.Command) {
				cmd.Flags().String("iv", "", "initialization vector, hex")
				cmd.Flags().String("data", "", "data to encrypt, hex")
			},
			build: func(a *app, mt ck.MechanismType) (ckparams.Parameters, error) {
				bufs, err := a.bytesFlags("iv", "data")
				if err != nil {
					return nil, err
				}
				if mt == ck.MechanismTypeAES_CBC_ENCRYPT_DATA {
					return ckparams.NewAESCBCEncryptDataParameters(bufs[0], bufs[1])
				}
				return ckparams.NewDESCBCEncryptDataParameters(bufs[0], bufs[1])
			},
		},
		{
			use:       "ecdh1",
			short:     "CK_ECDH1_DERIVE_PARAMS",
			mechanism: ck.MechanismTypeECDH1_DERIVE,
			flags: func(cmd *cobra.Command) {
				cmd.Flags().String("kdf", "NULL", "key derivation function")
				cmd.Flags().String("shared-data", "", "shared data, hex")
				cmd.Flags().String("public-data", "", "other party's public value, hex")
			},
			build: func(a *app, _ ck.MechanismType) (ckparams.Parameters, error) {
				kdf, err := ck.ParseKeyDerivationFunction(a.v.GetString("kdf"))
				if err != nil {
					return nil, merry.Prepend(err, "--kdf")
				}
				bufs, err := a.bytesFlags("shared-data", "public-data")
				if err != nil {
					return nil, err
				}
				return ckparams.NewECDH1DeriveParameters(kdf, bufs[0], bufs[1])
			},
		},
		{
			use:       "pbkd2",
			short:     "CK_PKCS5_PBKD2_PARAMS",
			mechanism: ck.MechanismTypePKCS5_PBKD2,
			flags: func(cmd *cobra.Command) {
				cmd.Flags().String("salt", "", "salt, hex")
				cmd.Flags().Uint64("iterations", 1000, "iteration count")
				cmd.Flags().String("prf", "PKCS5_PBKD2_HMAC_SHA1", "pseudo random function")
				cmd.Flags().String("prf-data", "", "pseudo random function data, hex")
				cmd.Flags().String("password", "", "password")
			},
			build: func(a *app, _ ck.MechanismType) (ckparams.Parameters, error) {
				prf, err := ck.ParsePseudoRandomFunction(a.v.GetString("prf"))
				if err != nil {
					return nil, merry.Prepend(err, "--prf")
				}
				bufs, err := a.bytesFlags("salt", "prf-data")
				if err != nil {
					return nil, err
				}
				if bufs[1] == nil {
					bufs[1] = []byte{}
				}
				return ckparams.NewPKCS5PBKD2Parameters(ckparams.PKCS5PBKD2Options{
					SaltSource:     ck.SaltSourceSALT_SPECIFIED,
					SaltSourceData: bufs[0],
					Iterations:     a.v.GetUint64("iterations"),
					PRF:            prf,
					PRFData:        bufs[1],
					Password:       a.stringFlag("password"),
				})
			},
		},
		{
			use:       "pbe",
			short:     "CK_PBE_PARAMS",
			mechanism: ck.MechanismTypePBE_SHA1_DES3_EDE_CBC,
			flags: func(cmd *cobra.Command) {
				cmd.Flags().Bool("iv", true, "allocate the 8 byte buffer the token returns the IV in")
				cmd.Flags().String("password", "", "password")
				cmd.Flags().String("salt", "", "salt, hex")
				cmd.Flags().Uint64("iterations", 1000, "iteration count")
			},
			build: func(a *app, _ ck.MechanismType) (ckparams.Parameters, error) {
				var iv []byte
				if a.v.GetBool("iv") {
					iv = make([]byte, ckparams.PBEInitVectorSize)
				}
				salt, err := a.bytesFlag("salt")
				if err != nil {
					return nil, err
				}
				return ckparams.NewPBEParameters(iv, a.stringFlag("password"), salt, a.v.GetUint64("iterations"))
			},
		},
		{
			use:       "rc2-cbc",
			short:     "CK_RC2_CBC_PARAMS",
			mechanism: ck.MechanismTypeRC2_CBC,
			flags: func(cmd *cobra.Command) {
				cmd.Flags().Uint64("effective-bits", 128, "effective key bits")
				cmd.Flags().String("iv", "0000000000000000", "initialization vector, hex")
			},
			build: func(a *app, _ ck.MechanismType) (ckparams.Parameters, error) {
				iv, err := a.bytesFlag("iv")
				if err != nil {
					return nil, err
				}
				return ckparams.NewRC2CBCParameters(a.v.GetUint64("effective-bits"), iv)
			},
		},
		{
			use:       "rc5-cbc",
			short:     "CK_RC5_CBC_PARAMS",
			mechanism: ck.MechanismTypeRC5_CBC,
			flags: func(cmd *cobra.Command) {
				cmd.Flags().Uint64("word-size", 4, "word size in bytes")
				cmd.Flags().Uint64("rounds", 12, "number of rounds")
				cmd.Flags().String("iv", "0000000000000000", "initialization vector, hex")
			},
			build: func(a *app, _ ck.MechanismType) (ckparams.Parameters, error) {
				iv, err := a.bytesFlag("iv")
				if err != nil {
					return nil, err
				}
				return ckparams.NewRC5CBCParameters(a.v.GetUint64("word-size"), a.v.GetUint64("rounds"), iv)
			},
		},
		{
			use:       "tls-master",
			short:     "CK_SSL3_MASTER_KEY_DERIVE_PARAMS",
			mechanism: ck.MechanismTypeTLS_MASTER_KEY_DERIVE,
			flags:     randomFlags,
			build: func(a *app, _ ck.MechanismType) (ckparams.Parameters, error) {
				r, err := a.randomData()
				if err != nil {
					return nil, err
				}
				return ckparams.NewSSL3MasterKeyDeriveParameters(r, &ckparams.Version{})
			},
		},
		{
			use:       "tls-key-mat",
			short:     "CK_SSL3_KEY_MAT_PARAMS",
			mechanism: ck.MechanismTypeTLS_KEY_AND_MAC_DERIVE,
			flags: func(cmd *cobra.Command) {
				randomFlags(cmd)
				cmd.Flags().Uint64("mac-bits", 160, "MAC secret size in bits")
				cmd.Flags().Uint64("key-bits", 128, "key size in bits")
				cmd.Flags().Uint64("iv-bits", 128, "IV size in bits")
				cmd.Flags().Bool("export", false, "derive export keys")
			},
			build: func(a *app, _ ck.MechanismType) (ckparams.Parameters, error) {
				return a.keyMaterialParameters()
			},
		},
	}
}

func randomFlags(cmd *cobra.Command) {
	cmd.Flags().String("client-random", strings.Repeat("00", 32), "client random, hex")
	cmd.Flags().String("server-random", strings.Repeat("00", 32), "server random, hex")
}

func (a *app) randomData() (*ckparams.SSL3RandomData, error) {
	bufs, err := a.bytesFlags("client-random", "server-random")
	if err != nil {
		return nil, err
	}
	// the defaults apply even though the flags aren't set
	for i, name := range []string{"client-random", "server-random"} {
		if bufs[i] == nil {
			bufs[i], _ = hex.DecodeString(a.v.GetString(name))
		}
	}
	return ckparams.NewSSL3RandomData(bufs[0], bufs[1])
}

func (a *app) keyMaterialParameters() (*ckparams.SSL3KeyMaterialParameters, error) {
	r, err := a.randomData()
	if err != nil {
		return nil, err
	}
	ivBits := a.v.GetUint64("iv-bits")
	ivLen := int((ivBits + 7) / 8)
	return ckparams.NewSSL3KeyMaterialParameters(ckparams.SSL3KeyMaterialOptions{
		MACSizeInBits:       a.v.GetUint64("mac-bits"),
		KeySizeInBits:       a.v.GetUint64("key-bits"),
		IVSizeInBits:        ivBits,
		IsExport:            a.v.GetBool("export"),
		RandomInfo:          r,
		ReturnedKeyMaterial: ckparams.NewSSL3KeyMaterialOutParameters(make([]byte, ivLen), make([]byte, ivLen)),
	})
}

func (a *app) hashAndMGF() (ck.MechanismType, ck.MaskGenerationFunction, error) {
	hashAlg, err := ck.ParseMechanismType(a.v.GetString("hash"))
	if err != nil {
		return 0, 0, merry.Prepend(err, "--hash")
	}
	mgf, err := ck.ParseMaskGenerationFunction(a.v.GetString("mgf"))
	if err != nil {
		return 0, 0, merry.Prepend(err, "--mgf")
	}
	return hashAlg, mgf, nil
}
