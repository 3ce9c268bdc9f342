package config

import (
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	DBPath          string        `envconfig:"DB_PATH" default:"./grocery.db"`
	CookieDomain    string        `envconfig:"COOKIE_DOMAIN" default:""`
	CookieSecure    bool          `envconfig:"COOKIE_SECURE" default:"false"`
	UploadDir       string        `envconfig:"UPLOAD_DIR" default:"./static/uploads"`
	PaymentDelay    time.Duration `envconfig:"PAYMENT_DELAY" default:"2s"`
	CheckoutTimeout time.Duration `envconfig:"CHECKOUT_TIMEOUT" default:"30s"`
	Seed            bool          `envconfig:"SEED" default:"true"`

	CSRFKey    []byte `ignored:"true"`
	SessionKey []byte `ignored:"true"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, errors.Wrap(err, "reading environment")
	}

	cfg.CSRFKey = loadKey("CSRF_KEY")
	cfg.SessionKey = loadKey("SESSION_KEY")

	return cfg, nil
}

// loadKey reads a base64-encoded 32-byte key from the environment,
// falling back to a random key so development works out of the box.
// Random keys change on every restart.
func loadKey(name string) []byte {
	raw := os.Getenv(name)
	if raw == "" {
		slog.Warn("Key not set, generating a random one. PLEASE SET IT IN PRODUCTION!", "key", name)
		return generateRandomBytes(32)
	}
	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil || len(decoded) < 32 {
		slog.Warn("Key is invalid or too short (min 32 bytes). Generating a random one. PLEASE SET A SECURE KEY IN PRODUCTION!", "key", name)
		return generateRandomBytes(32)
	}
	return decoded
}

func generateRandomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing means something is deeply wrong with
		// the host; refuse to run with a predictable key.
		slog.Error("Failed to read random bytes", "error", err)
		os.Exit(1)
	}
	return b
}
