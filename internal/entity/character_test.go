package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationFinite(t *testing.T) {
	loc := Location{Zone: "Iskirra", X: 1, Y: 2, Z: 3}
	assert.True(t, loc.Finite())

	loc.Zone = ""
	assert.False(t, loc.Finite())

	loc = Location{Zone: "Iskirra", X: math.NaN()}
	assert.False(t, loc.Finite())

	loc = Location{Zone: "Iskirra", Yaw: math.Inf(1)}
	assert.False(t, loc.Finite())
}

func TestStatsBounded(t *testing.T) {
	s := Stats{HP: 10, MaxHP: 10, BP: 3, MaxBP: 5, MP: 0, MaxMP: 0, EP: 1, MaxEP: 2}
	assert.True(t, s.Bounded())

	s.HP = 11
	assert.False(t, s.Bounded())

	s = Stats{MP: 5, MaxMP: 4}
	assert.False(t, s.Bounded())
}

func TestSkillsInRange(t *testing.T) {
	var s Skills
	assert.True(t, s.InRange(), "zero value means untrained everywhere")

	s.Sword = SkillMax
	assert.True(t, s.InRange())

	s.Sword = SkillMax + 1
	assert.False(t, s.InRange())

	s.Sword = 10
	s.Runic = -1
	assert.False(t, s.InRange())
}

func TestDisplayName(t *testing.T) {
	c := Character{Firstname: "Poop", Lastname: "Stain"}
	assert.Equal(t, "Poop Stain", c.DisplayName())
}
