package entity_test

import (
	"testing"

	"go-clinic-registry/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestNewSpecialty_NormalizesDays(t *testing.T) {
	s := entity.NewSpecialty("Cardiology", []string{"Monday", "WEDNESDAY", "monday", "Friday", "wednesday"})

	assert.Equal(t, "Cardiology", s.Type)
	assert.Equal(t, []string{"monday", "wednesday", "friday"}, s.Days)
}

func TestNewSpecialty_EmptyDays(t *testing.T) {
	s := entity.NewSpecialty("Dermatology", nil)

	assert.Empty(t, s.Days)
	assert.False(t, s.Offers("monday"))
}

func TestSpecialty_Offers(t *testing.T) {
	s := entity.NewSpecialty("Cardiology", []string{"monday", "wednesday"})

	assert.True(t, s.Offers("monday"))
	assert.True(t, s.Offers("MONDAY"))
	assert.True(t, s.Offers("Wednesday"))
	assert.False(t, s.Offers("tuesday"))
	assert.False(t, s.Offers(""))
}
