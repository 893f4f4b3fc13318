package derivetestcases

// RootPublicKey is the MPC signer root key all the test vectors are derived
// from.
const RootPublicKey = "secp256k1:4NfTiv3UsGahebgTaHyD9vF8KYKMBnfd6kh94mK6xv8fGBiJB8TBtFMP5WWXz6B89Ac1fbpzPwAvoyQebemHFwx3"

// RootUncompressed is the hex encoding of RootPublicKey point.
const RootUncompressed = "04a8bb8176747682aab5c681d4ef375ca537023b2b287d8b5f9d89505277a5a291538ef3680882d8fb793a62a5fdb4c6974c7cd8f9eb0b9cbbf659314c30347000"

// Dtype represents derivation testcase values (different encodings of the
// key derived for AccountID and Path).
type Dtype struct {
	AccountID,
	Path,
	Epsilon,
	Uncompressed,
	Compressed,
	PubKeyHash,
	WitnessPubKeyHash,
	EVM,
	LegacyMainnet,
	LegacyTestnet,
	SegwitMainnet,
	SegwitTestnet,
	SegwitRegtest string
}

// Arr contains a set of known derivations in Dtype format.
var Arr = []Dtype{
	{
		AccountID:         "omnitester.testnet",
		Path:              "bitcoin-1",
		Epsilon:           "af4760e0bf773bd0f1b0585c4702e2f4fe6f1d5becf706426794b288aea7803a",
		Uncompressed:      "0471f75dc56b971fbe52dd3e80d2f8532eb8905157556df39cb7338a67c80412640c869f717217ba5b916db6d7dc7d6a84220f8251e626adad62cac9c7d6f8e032",
		Compressed:        "0271f75dc56b971fbe52dd3e80d2f8532eb8905157556df39cb7338a67c8041264",
		PubKeyHash:        "d75e0a62a76ef092a02bb4019189136ddcb3f7c0",
		WitnessPubKeyHash: "dde09c125e050207e7d9d670999534f450c5cf6d",
		EVM:               "0x413006a043257ab04972239fd7663a693124dc65",
		LegacyMainnet:     "1LdkwJDFDJbHQYpe9xDkT5enY2xQWmczoN",
		LegacyTestnet:     "n19iEMJE2L2YBfJFsXC8Gzs7Q2Z7TwdCqv",
		SegwitMainnet:     "bc1qmhsfcyj7q5pq0e7e6ecfn9f573gvtnmd8yg275",
		SegwitTestnet:     "tb1qmhsfcyj7q5pq0e7e6ecfn9f573gvtnmddzne98",
		SegwitRegtest:     "bcrt1qmhsfcyj7q5pq0e7e6ecfn9f573gvtnmd0t25jw",
	},
	{
		AccountID:         "omnitester.testnet",
		Path:              "ethereum-1",
		Epsilon:           "1022cdfca8111ff01115c4fc3a20ea3ff93d27bca5fe4407aece2d4479f675f6",
		Uncompressed:      "04e612e7650febebc50b448bf790f6bdd70a8a6ce3b111a1d7e72c87afe84be776e36226e3f89de1ba3cbb62c0f3fc05bffae672c9c59d5fa8a4737b6547c64eb7",
		Compressed:        "03e612e7650febebc50b448bf790f6bdd70a8a6ce3b111a1d7e72c87afe84be776",
		PubKeyHash:        "0e08f259e047b31acabaaba8b3417de201fe9ad4",
		WitnessPubKeyHash: "c332d7f44d92475e71c01d251f01e98f844197f3",
		EVM:               "0xd8d25820c9b9e2aa9cce55504355e500efcce715",
		LegacyMainnet:     "12HDBK6yaNEwVYCJoTWvkfVXNjjefCfmLK",
		LegacyTestnet:     "mgoAUNBxPPgCGefvX2VJaahrEjLMYZGyMU",
		SegwitMainnet:     "bc1qcved0azdjfr4uuwqr5j37q0f37zyr9lntklgyq",
		SegwitTestnet:     "tb1qcved0azdjfr4uuwqr5j37q0f37zyr9lnpsymln",
		SegwitRegtest:     "bcrt1qcved0azdjfr4uuwqr5j37q0f37zyr9lnreakg6",
	},
	{
		AccountID:         "alice.testnet",
		Path:              "bitcoin-1",
		Epsilon:           "cc259791f8768505eb871b1f36e3cdfd665a839d1ff12fac43a73b0260426176",
		Uncompressed:      "04b1ad496981ddf13b1bb6c29be3863a61f95fd96241cda80a256322015d3896ab15fb4888fe0077c37713acf5540d6925b429428e2a41aaf048be5561e4fb75ab",
		Compressed:        "03b1ad496981ddf13b1bb6c29be3863a61f95fd96241cda80a256322015d3896ab",
		PubKeyHash:        "2125f85529c48f17a323b620bec4cd8478ca5223",
		WitnessPubKeyHash: "6fae66c01deebfaffffde9500c6199117d5a8ce2",
		EVM:               "0xe58e36c0431b2bc64889f9a5cfdb7ffd6d3a6b6b",
		LegacyMainnet:     "142GnY558y4zGQQmeVUNPvy7vcocS9zZVH",
		LegacyTestnet:     "miYE5bA3wzWF3WtPN4SkDrBSncQKHPyVYB",
		SegwitMainnet:     "bc1qd7hxdsqaa6l6lllaa9gqccvez9744r8z0hk9x8",
		SegwitTestnet:     "tb1qd7hxdsqaa6l6lllaa9gqccvez9744r8z93dka5",
		SegwitRegtest:     "bcrt1qd7hxdsqaa6l6lllaa9gqccvez9744r8z8c5m2a",
	},
}
