package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentTransitions(t *testing.T) {
	cases := []struct {
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{AppointmentStatusScheduled, AppointmentStatusConfirmed, true},
		{AppointmentStatusScheduled, AppointmentStatusCancelled, true},
		{AppointmentStatusScheduled, AppointmentStatusCompleted, false},
		{AppointmentStatusConfirmed, AppointmentStatusCompleted, true},
		{AppointmentStatusConfirmed, AppointmentStatusCancelled, true},
		{AppointmentStatusConfirmed, AppointmentStatusScheduled, false},
		{AppointmentStatusCompleted, AppointmentStatusCancelled, false},
		{AppointmentStatusCancelled, AppointmentStatusConfirmed, false},
	}

	for _, tc := range cases {
		a := Appointment{Status: tc.from}
		assert.Equal(t, tc.allowed, a.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestIsValidAppointmentStatus(t *testing.T) {
	assert.True(t, IsValidAppointmentStatus(AppointmentStatusScheduled))
	assert.True(t, IsValidAppointmentStatus(AppointmentStatusCancelled))
	assert.False(t, IsValidAppointmentStatus("rescheduled"))
	assert.False(t, IsValidAppointmentStatus(""))
}
