package converter

import (
	"symptocare-backend/internal/delivery/dto"
	"symptocare-backend/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to a DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	resp := &dto.DoctorResponse{
		ID:              doctor.UserID,
		Email:           doctor.User.Email,
		LicenseNumber:   doctor.LicenseNumber,
		Specialization:  doctor.Specialization,
		ExperienceYears: doctor.ExperienceYears,
		ConsultationFee: doctor.ConsultationFee,
		Location:        doctor.Location,
		Address:         doctor.Address,
		Qualifications:  doctor.Qualifications,
		Languages:       doctor.Languages,
		Bio:             doctor.Bio,
		IsVerified:      doctor.IsVerified,
		VerifiedAt:      doctor.VerifiedAt,
	}

	if doctor.User.Profile != nil {
		resp.FullName = doctor.User.Profile.FullName
		resp.Phone = doctor.User.Profile.Phone
	}

	return resp
}

// DoctorsToResponses converts a slice of Doctor entities to DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}
