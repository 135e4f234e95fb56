package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_Has(t *testing.T) {
	tests := []struct {
		name string
		mask Category
		flag Category
		want bool
	}{
		{"targets has enemy", CategoryTargets, CategoryEnemy, true},
		{"targets has box", CategoryTargets, CategoryBoxCollider, true},
		{"targets lacks player", CategoryTargets, CategoryPlayer, false},
		{"solids lacks enemy", CategorySolids, CategoryEnemy, false},
		{"obstructions has door", CategoryObstructions, CategoryDoor, true},
		{"obstructions lacks painting", CategoryObstructions, CategoryPainting, false},
		{"none matches nothing", CategoryTargets, CategoryNone, false},
		{"combined flag", CategoryTargets, CategoryDoor | CategoryEnemy, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mask.Has(tt.flag))
		})
	}
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "none", CategoryNone.String())
	assert.Equal(t, "enemy", CategoryEnemy.String())
	assert.Equal(t, "door|box", CategoryObstructions.String())
	assert.Equal(t, "door|enemy|painting|box", CategoryTargets.String())
	assert.Equal(t, "unknown", Category(1<<7).String())
}

func TestRef_Valid(t *testing.T) {
	assert.False(t, NoRef.Valid())
	assert.True(t, PlayerRef.Valid())
	assert.True(t, Ref{Category: CategoryEnemy, Index: 3}.Valid())
	assert.False(t, Ref{Category: CategoryEnemy, Index: -1}.Valid())
}
