// dogewallet is a thin CLI over the Dogecoin key-and-address engine: key
// generation, HD derivation, address derivation, and message signing.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/study/crypto-accounts/pkgs/address"
	"github.com/study/crypto-accounts/pkgs/bip32"
	"github.com/study/crypto-accounts/pkgs/bip39"
	"github.com/study/crypto-accounts/pkgs/chainparams"
	"github.com/study/crypto-accounts/pkgs/dogecoin"
)

const usage = `dogewallet — Dogecoin key and address engine CLI

Usage:
  dogewallet <command> [options]

Commands:
  genkey      Generate a fresh private key (WIF + P2PKH address)
  pubkey      Derive the public key for a WIF
  addresses   Derive P2PKH / P2SH-P2WPKH / P2WPKH addresses for a pubkey
  hdmaster    Generate a fresh BIP-32 master key
  hdderive    Derive a child extended key from an xprv/xpub and a path
  mnemonic    Generate a fresh BIP-39 mnemonic and its wallet's master key
  sign        Sign a message with a hex-encoded private key
  verify      Verify a message signature against an address

Examples:
  dogewallet genkey --network main
  dogewallet addresses --pubkey 039ca1fdedbe160cb7b14df2a798c8fed41ad4ed30b06a85ad23e03abe43c413b2
  dogewallet hdderive --key dgpv... --path "m/44'/3'/0'/0/0"
`

func parseNetwork(name string) (chainparams.Params, error) {
	switch strings.ToLower(name) {
	case "", "main", "mainnet":
		return chainparams.MainNetParams, nil
	case "test", "testnet":
		return chainparams.TestNetParams, nil
	case "regtest":
		return chainparams.RegressionNetParams, nil
	case "signet":
		return chainparams.SignetParams, nil
	default:
		return chainparams.Params{}, fmt.Errorf("unknown network: %s", name)
	}
}

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "genkey":
		cmdGenkey(os.Args[2:])
	case "pubkey":
		cmdPubkey(os.Args[2:])
	case "addresses":
		cmdAddresses(os.Args[2:])
	case "hdmaster":
		cmdHDMaster(os.Args[2:])
	case "hdderive":
		cmdHDDerive(os.Args[2:])
	case "mnemonic":
		cmdMnemonic(os.Args[2:])
	case "sign":
		cmdSign(os.Args[2:])
	case "verify":
		cmdVerify(os.Args[2:])
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		fmt.Print(usage)
		os.Exit(1)
	}
}

func cmdGenkey(args []string) {
	fs := flag.NewFlagSet("genkey", flag.ExitOnError)
	network := fs.String("network", "main", "main, test, regtest, or signet")
	fs.Parse(args)

	chain, err := parseNetwork(*network)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	wif, p2pkh, err := dogecoin.GeneratePrivPubKeypair(chain)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("WIF:   %s\n", wif)
	fmt.Printf("P2PKH: %s\n", p2pkh)
}

func cmdPubkey(args []string) {
	fs := flag.NewFlagSet("pubkey", flag.ExitOnError)
	network := fs.String("network", "main", "main, test, regtest, or signet")
	wif := fs.String("wif", "", "WIF-encoded private key")
	fs.Parse(args)

	if *wif == "" {
		fmt.Println("Error: --wif is required")
		os.Exit(1)
	}

	chain, err := parseNetwork(*network)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	pub, err := dogecoin.PubkeyFromPrivatekey(chain, *wif)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(pub)
}

func cmdAddresses(args []string) {
	fs := flag.NewFlagSet("addresses", flag.ExitOnError)
	network := fs.String("network", "main", "main, test, regtest, or signet")
	pubkey := fs.String("pubkey", "", "compressed public key, hex")
	fs.Parse(args)

	if *pubkey == "" {
		fmt.Println("Error: --pubkey is required")
		os.Exit(1)
	}

	chain, err := parseNetwork(*network)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	p2pkh, p2shSegwit, p2wpkh, err := dogecoin.AddressesFromPubkey(chain, *pubkey)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("P2PKH:       %s\n", p2pkh)
	fmt.Printf("P2SH-P2WPKH: %s\n", p2shSegwit)
	fmt.Printf("P2WPKH:      %s\n", p2wpkh)
}

func cmdHDMaster(args []string) {
	fs := flag.NewFlagSet("hdmaster", flag.ExitOnError)
	network := fs.String("network", "main", "main, test, regtest, or signet")
	fs.Parse(args)

	chain, err := parseNetwork(*network)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	xpriv, p2pkh, err := dogecoin.GenerateHDMasterKeypair(chain)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("xprv:  %s\n", xpriv)
	fmt.Printf("P2PKH: %s\n", p2pkh)
}

func cmdHDDerive(args []string) {
	fs := flag.NewFlagSet("hdderive", flag.ExitOnError)
	key := fs.String("key", "", "extended key (xprv/xpub)")
	path := fs.String("path", "", "derivation path, e.g. m/44'/3'/0'/0/0")
	fs.Parse(args)

	if *key == "" || *path == "" {
		fmt.Println("Error: --key and --path are required")
		os.Exit(1)
	}

	derived, err := dogecoin.DeriveByPath(*key, *path, true)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(derived)
}

func cmdMnemonic(args []string) {
	fs := flag.NewFlagSet("mnemonic", flag.ExitOnError)
	network := fs.String("network", "main", "main, test, regtest, or signet")
	bits := fs.Int("bits", 128, "entropy bits: 128, 160, 192, 224, or 256")
	passphrase := fs.String("passphrase", "", "optional BIP-39 passphrase")
	fs.Parse(args)

	chain, err := parseNetwork(*network)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	mnemonic, seed, err := bip39.GenerateMnemonicAndSeed(*bits, *passphrase)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	master, err := bip32.NewMasterKey(seed, chain)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	xprv := master.String()
	p2pkh, err := address.P2PKH(chain, master.PublicKeyBytes())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Mnemonic: %s\n", mnemonic)
	fmt.Printf("xprv:     %s\n", xprv)
	fmt.Printf("P2PKH:    %s\n", p2pkh)
}

func cmdSign(args []string) {
	fs := flag.NewFlagSet("sign", flag.ExitOnError)
	privHex := fs.String("priv", "", "hex-encoded 32-byte private key")
	msg := fs.String("message", "", "message to sign")
	fs.Parse(args)

	if *privHex == "" || *msg == "" {
		fmt.Println("Error: --priv and --message are required")
		os.Exit(1)
	}

	sig, err := dogecoin.SignMessage(*privHex, *msg)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(sig)
}

func cmdVerify(args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	network := fs.String("network", "main", "main, test, regtest, or signet")
	addr := fs.String("address", "", "P2PKH address")
	sig := fs.String("sig", "", "base64-encoded signature")
	msg := fs.String("message", "", "signed message")
	fs.Parse(args)

	if *addr == "" || *sig == "" || *msg == "" {
		fmt.Println("Error: --address, --sig, and --message are required")
		os.Exit(1)
	}

	chain, err := parseNetwork(*network)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	ok := dogecoin.VerifyMessage(chain, *addr, *sig, *msg)
	fmt.Println(ok)
}
