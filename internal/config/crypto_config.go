package config

// CryptoConfig holds the defaults for signing operations.
type CryptoConfig struct {
	// Scheme selects the signing scheme ("blake3" or "ed25519").
	// Default: "blake3"
	Scheme string `yaml:"scheme" json:"scheme" mapstructure:"scheme"`

	// Encoding selects the signature text encoding ("base64url" or "base58").
	// Default: "base64url"
	Encoding string `yaml:"encoding" json:"encoding" mapstructure:"encoding"`
}
