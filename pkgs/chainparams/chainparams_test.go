package chainparams

import "testing"

func TestWireConstants(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		addr   byte
		script byte
		wif    byte
		hrp    string
	}{
		{"main", MainNetParams, 0x1E, 0x16, 0x9E, "doge"},
		{"test", TestNetParams, 0x71, 0xC4, 0xF1, "tdge"},
		{"regtest", RegressionNetParams, 0x6F, 0xC4, 0xEF, "dcrt"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.params.PubKeyHashAddrID != tc.addr {
				t.Errorf("PubKeyHashAddrID = %#x, want %#x", tc.params.PubKeyHashAddrID, tc.addr)
			}
			if tc.params.ScriptHashAddrID != tc.script {
				t.Errorf("ScriptHashAddrID = %#x, want %#x", tc.params.ScriptHashAddrID, tc.script)
			}
			if tc.params.PrivateKeyID != tc.wif {
				t.Errorf("PrivateKeyID = %#x, want %#x", tc.params.PrivateKeyID, tc.wif)
			}
			if tc.params.Bech32HRP != tc.hrp {
				t.Errorf("Bech32HRP = %q, want %q", tc.params.Bech32HRP, tc.hrp)
			}
		})
	}
}

func TestPrefixesDisjointAcrossMainAndTest(t *testing.T) {
	if MainNetParams.PubKeyHashAddrID == TestNetParams.PubKeyHashAddrID {
		t.Fatal("main and test P2PKH prefixes must be disjoint")
	}
	if MainNetParams.PrivateKeyID == TestNetParams.PrivateKeyID {
		t.Fatal("main and test WIF prefixes must be disjoint")
	}
}

func TestFromB58PubKeyPrefix(t *testing.T) {
	p, ok := FromB58PubKeyPrefix(0x1E)
	if !ok || p.Network != Main {
		t.Fatalf("FromB58PubKeyPrefix(0x1E) = %v, %v; want MainNetParams, true", p, ok)
	}

	if _, ok := FromB58PubKeyPrefix(0xFF); ok {
		t.Fatal("FromB58PubKeyPrefix(0xFF) should not resolve to any network")
	}
}

func TestFromExtendedKeyMagic(t *testing.T) {
	p, isPrivate, ok := FromExtendedKeyMagic(MainNetParams.HDPrivateKeyID)
	if !ok || !isPrivate || p.Network != Main {
		t.Fatalf("FromExtendedKeyMagic(main xprv) = %v, %v, %v", p, isPrivate, ok)
	}

	p, isPrivate, ok = FromExtendedKeyMagic(MainNetParams.HDPublicKeyID)
	if !ok || isPrivate || p.Network != Main {
		t.Fatalf("FromExtendedKeyMagic(main xpub) = %v, %v, %v", p, isPrivate, ok)
	}
}

func TestRegtestAndSignetShareMagics(t *testing.T) {
	if RegressionNetParams.HDPrivateKeyID != SignetParams.HDPrivateKeyID {
		t.Fatal("regtest and signet are documented to share HD magics")
	}
}
