package trietesting

import (
	"math/rand"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
)

type TestContext struct {
	Log  logger.Logger
	Rand *rand.Rand
	T    *testing.T
}

type TestConfig struct {
	// The RNG is seeded from Seed. It is normal to force it to some fixed
	// value so that the generated data is the same from run to run.
	Seed            int64
	TestLabelPrefix string
	LogLevel        string // defaults to "NOOP"
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	level := cfg.LogLevel
	if level == "" {
		level = "NOOP"
	}
	logger.New(level)

	label := cfg.TestLabelPrefix
	if label == "" {
		label = t.Name()
	}
	return TestContext{
		Log:  logger.Sugar.WithServiceName(label),
		Rand: rand.New(rand.NewSource(cfg.Seed)),
		T:    t,
	}
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// KeyConfig shapes generated keys.
type KeyConfig struct {
	Alphabet []rune
	MinLen   int
	MaxLen   int
	// MixCase randomly upper cases generated characters.
	MixCase bool
}

// LatinLower is a small alphabet that produces plenty of shared prefixes.
var LatinLower = []rune("abcde")

// CyrillicLower is the alphabet of the demo keys.
var CyrillicLower = []rune("абвгдежзийклмнопрстуфхцчшщъыьэюя")

// Keys returns n random keys. Keys may repeat, which exercises update
// semantics.
func (c *TestContext) Keys(n int, cfg KeyConfig) []string {
	if len(cfg.Alphabet) == 0 {
		cfg.Alphabet = LatinLower
	}
	if cfg.MinLen < 1 {
		cfg.MinLen = 1
	}
	if cfg.MaxLen < cfg.MinLen {
		cfg.MaxLen = cfg.MinLen
	}
	keys := make([]string, n)
	for i := range keys {
		l := cfg.MinLen + c.Rand.Intn(cfg.MaxLen-cfg.MinLen+1)
		rs := make([]rune, l)
		for j := range rs {
			r := cfg.Alphabet[c.Rand.Intn(len(cfg.Alphabet))]
			if cfg.MixCase && c.Rand.Intn(2) == 0 {
				r = upper(r)
			}
			rs[j] = r
		}
		keys[i] = string(rs)
	}
	return keys
}
