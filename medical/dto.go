package medical

import "github.com/itm-clinic/clinic-client/users"

type CreateAppointment struct {
	DoctorID         int             `json:"doctorId"`
	TreatmentCycleID *int            `json:"treatmentCycleId,omitempty"`
	Type             AppointmentType `json:"type"`
	AppointmentDate  string          `json:"appointmentDate"`
	StartTime        string          `json:"startTime"`
	EndTime          string          `json:"endTime,omitempty"`
	Notes            string          `json:"notes,omitempty"`
}

type UpdateAppointment struct {
	Type   AppointmentType   `json:"type,omitempty"`
	Status AppointmentStatus `json:"status,omitempty"`
	Notes  string            `json:"notes,omitempty"`
}

type RescheduleAppointment struct {
	AppointmentDate string `json:"appointmentDate"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime,omitempty"`
	Reason          string `json:"reason,omitempty"`
}

type CancelAppointment struct {
	Reason string `json:"reason,omitempty"`
}

type DoctorInput struct {
	UserID            int     `json:"userId,omitempty"`
	Specialization    string  `json:"specialization"`
	LicenseNumber     string  `json:"licenseNumber,omitempty"`
	YearsOfExperience int     `json:"yearsOfExperience"`
	Education         string  `json:"education,omitempty"`
	Biography         string  `json:"biography,omitempty"`
	ConsultationFee   float64 `json:"consultationFee"`
	IsAvailable       *bool   `json:"isAvailable,omitempty"`
}

type DoctorScheduleInput struct {
	DoctorID    int    `json:"doctorId,omitempty"`
	DayOfWeek   int    `json:"dayOfWeek"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable *bool  `json:"isAvailable,omitempty"`
}

type CreateCycle struct {
	ServiceID int    `json:"serviceId"`
	PackageID *int   `json:"packageId,omitempty"`
	DoctorID  *int   `json:"doctorId,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

type UpdateCycle struct {
	Status          CycleStatus `json:"status,omitempty"`
	EndDate         string      `json:"endDate,omitempty"`
	ExpectedEndDate string      `json:"expectedEndDate,omitempty"`
	Notes           string      `json:"notes,omitempty"`
}

type AssignDoctor struct {
	DoctorID int    `json:"doctorId"`
	Notes    string `json:"notes,omitempty"`
}

type TreatmentServiceInput struct {
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	BasePrice    float64 `json:"basePrice"`
	DurationDays int     `json:"durationDays"`
	IsActive     *bool   `json:"isActive,omitempty"`
}

type TreatmentPackageInput struct {
	ServiceID        int      `json:"serviceId"`
	Name             string   `json:"name"`
	Description      string   `json:"description,omitempty"`
	Price            float64  `json:"price"`
	IncludedServices []string `json:"includedServices,omitempty"`
	IsActive         *bool    `json:"isActive,omitempty"`
}

type CreateNotification struct {
	UserID            int              `json:"userId"`
	Title             string           `json:"title"`
	Message           string           `json:"message"`
	Type              NotificationType `json:"type"`
	RelatedEntityType string           `json:"relatedEntityType,omitempty"`
	RelatedEntityID   *int             `json:"relatedEntityId,omitempty"`
}

type UnreadCount struct {
	Count int `json:"count"`
}

type UpdateProfile struct {
	FullName              string       `json:"fullName"`
	Email                 string       `json:"email"`
	PhoneNumber           string       `json:"phoneNumber,omitempty"`
	Gender                users.Gender `json:"gender,omitempty"`
	Address               string       `json:"address,omitempty"`
	EmergencyContactName  string       `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone string       `json:"emergencyContactPhone,omitempty"`
	MaritalStatus         string       `json:"maritalStatus,omitempty"`
	Occupation            string       `json:"occupation,omitempty"`
}

type ChangePassword struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type Avatar struct {
	AvatarURL string `json:"avatarUrl"`
}
