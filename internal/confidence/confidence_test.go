package confidence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		score float64
		want  Band
	}{
		{0.95, High},
		{0.8, High}, // boundary is inclusive
		{0.79, Medium},
		{0.6, Medium},
		{0.59, Low},
		{0, Low},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Classify(c.score), "score %v", c.score)
	}
}

func TestClassifyOutOfRange(t *testing.T) {
	// no clamping: the same thresholds apply outside [0,1]
	assert.Equal(t, High, Classify(1.7))
	assert.Equal(t, Low, Classify(-0.3))
}
