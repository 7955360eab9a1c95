package configs

// Auth configures bearer token verification. Tokens are HS256 JWTs whose
// subject is the caller identity. An empty Issuer accepts any issuer.
type Auth struct {
	JWTSecret string `env:"JWT_SECRET,required,notEmpty"`
	Issuer    string `env:"ISSUER"`
}
