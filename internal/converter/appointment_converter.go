package converter

import (
	"symptocare-backend/internal/delivery/dto"
	"symptocare-backend/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to an
// AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	resp := &dto.AppointmentResponse{
		ID:               appointment.ID,
		PatientID:        appointment.PatientID,
		DoctorID:         appointment.DoctorID,
		ScheduledAt:      appointment.ScheduledAt,
		DurationMinutes:  appointment.DurationMinutes,
		Status:           string(appointment.Status),
		ConsultationType: appointment.ConsultationType,
		Reason:           appointment.Reason,
		PatientNotes:     appointment.PatientNotes,
		CreatedAt:        appointment.CreatedAt,
	}

	if appointment.Patient.Profile != nil {
		resp.PatientName = appointment.Patient.Profile.FullName
	}
	resp.Specialization = appointment.Doctor.Specialization
	if appointment.Doctor.User.Profile != nil {
		resp.DoctorName = appointment.Doctor.User.Profile.FullName
	}

	return resp
}

// AppointmentsToResponses converts a slice of Appointment entities to
// AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
