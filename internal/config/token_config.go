package config

type Token struct {
	Issuer  string `env:"ISSUER"`
	JWKSURL string `env:"JWKS_URL"`
}

var _ TokenConfig = Token{}

func (t Token) GetTokenIssuer() string {
	return t.Issuer
}

// GetJWKSURL is empty when signature verification is disabled.
func (t Token) GetJWKSURL() string {
	return t.JWKSURL
}
