package day20

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClosestLongTerm(t *testing.T) {
	particles, err := ParseParticles(`p=< 3,0,0>, v=< 2,0,0>, a=<-1,0,0>
p=< 4,0,0>, v=< 0,0,0>, a=<-2,0,0>
`)
	require.NoError(t, err)
	assert.Equal(t, 0, ClosestLongTerm(particles))
}

func TestSurvivors(t *testing.T) {
	particles, err := ParseParticles(`p=<-6,0,0>, v=< 3,0,0>, a=< 0,0,0>
p=<-4,0,0>, v=< 2,0,0>, a=< 0,0,0>
p=<-2,0,0>, v=< 1,0,0>, a=< 0,0,0>
p=< 3,0,0>, v=<-1,0,0>, a=< 0,0,0>
`)
	require.NoError(t, err)
	assert.Equal(t, 1, Survivors(particles))
}

func TestParseParticlesError(t *testing.T) {
	_, err := ParseParticles("p=<1,2>, v=<0,0,0>, a=<0,0,0>")
	assert.Error(t, err)
}
