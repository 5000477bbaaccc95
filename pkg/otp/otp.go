package otp

import (
	"math/rand"
	"time"

	"github.com/xlzd/gotp"
)

// Generator issues numeric one-time verification codes.
type Generator interface {
	RandomCode(length int) string
}

type GOTPGenerator struct {
	rnd *rand.Rand
}

func NewGOTPGenerator() *GOTPGenerator {
	return &GOTPGenerator{
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (g *GOTPGenerator) RandomCode(length int) string {
	secret := gotp.RandomSecret(16)
	return gotp.NewHOTP(secret, length, nil).At(g.rnd.Int())
}
