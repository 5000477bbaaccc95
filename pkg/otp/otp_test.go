package otp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGOTPGenerator_RandomCode(t *testing.T) {
	generator := NewGOTPGenerator()

	for _, length := range []int{4, 6, 8} {
		code := generator.RandomCode(length)

		assert.Len(t, code, length)
		for _, ch := range code {
			assert.GreaterOrEqual(t, ch, '0')
			assert.LessOrEqual(t, ch, '9')
		}
	}
}
