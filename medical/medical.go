// Package medical holds the resources the clinic API serves to patients.
package medical

import "github.com/itm-clinic/clinic-client/users"

type AppointmentStatus string

const (
	AppointmentScheduled  AppointmentStatus = "Scheduled"
	AppointmentConfirmed  AppointmentStatus = "Confirmed"
	AppointmentInProgress AppointmentStatus = "InProgress"
	AppointmentCompleted  AppointmentStatus = "Completed"
	AppointmentCancelled  AppointmentStatus = "Cancelled"
	AppointmentNoShow     AppointmentStatus = "NoShow"
)

// Open reports whether the appointment can still be changed or cancelled.
func (s AppointmentStatus) Open() bool {
	return s == AppointmentScheduled || s == AppointmentConfirmed
}

type AppointmentType string

const (
	AppointmentConsultation AppointmentType = "Consultation"
	AppointmentFollowUp     AppointmentType = "FollowUp"
	AppointmentProcedure    AppointmentType = "Procedure"
	AppointmentTest         AppointmentType = "Test"
)

type CycleStatus string

const (
	CyclePlanning  CycleStatus = "Planning"
	CycleActive    CycleStatus = "Active"
	CyclePaused    CycleStatus = "Paused"
	CycleCompleted CycleStatus = "Completed"
	CycleCancelled CycleStatus = "Cancelled"
)

type NotificationType string

const (
	NotificationAppointment NotificationType = "Appointment"
	NotificationTreatment   NotificationType = "Treatment"
	NotificationReminder    NotificationType = "Reminder"
	NotificationSystem      NotificationType = "System"
)

// Timestamps are kept as the server sends them; the API emits local times
// without a zone.

type Appointment struct {
	ID                 int               `json:"id"`
	CustomerID         int               `json:"customerId"`
	DoctorID           int               `json:"doctorId"`
	TreatmentCycleID   *int              `json:"treatmentCycleId,omitempty"`
	Type               AppointmentType   `json:"type"`
	Status             AppointmentStatus `json:"status"`
	AppointmentDate    string            `json:"appointmentDate"`
	StartTime          string            `json:"startTime"`
	EndTime            string            `json:"endTime"`
	Notes              string            `json:"notes,omitempty"`
	CancellationReason string            `json:"cancellationReason,omitempty"`
	Doctor             *Doctor           `json:"doctor,omitempty"`
	CreatedAt          string            `json:"createdAt,omitempty"`
	UpdatedAt          string            `json:"updatedAt,omitempty"`
}

type Doctor struct {
	ID                int         `json:"id"`
	UserID            int         `json:"userId"`
	User              *users.User `json:"user,omitempty"`
	Specialization    string      `json:"specialization"`
	LicenseNumber     string      `json:"licenseNumber,omitempty"`
	YearsOfExperience int         `json:"yearsOfExperience"`
	Education         string      `json:"education,omitempty"`
	Biography         string      `json:"biography,omitempty"`
	ConsultationFee   float64     `json:"consultationFee"`
	SuccessRate       *float64    `json:"successRate,omitempty"`
	IsAvailable       bool        `json:"isAvailable"`
}

// DisplayName is the doctor's full name, or the specialization when the
// user record was not expanded.
func (d Doctor) DisplayName() string {
	if d.User != nil && d.User.FullName != "" {
		return d.User.FullName
	}
	return d.Specialization
}

type DoctorSchedule struct {
	ID          int    `json:"id"`
	DoctorID    int    `json:"doctorId"`
	DayOfWeek   int    `json:"dayOfWeek"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
}

type AvailableSlot struct {
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
}

type TreatmentCycle struct {
	ID              int         `json:"id"`
	CustomerID      int         `json:"customerId"`
	DoctorID        *int        `json:"doctorId,omitempty"`
	ServiceID       int         `json:"serviceId"`
	PackageID       *int        `json:"packageId,omitempty"`
	CycleNumber     int         `json:"cycleNumber"`
	Status          CycleStatus `json:"status"`
	StartDate       string      `json:"startDate,omitempty"`
	EndDate         string      `json:"endDate,omitempty"`
	ExpectedEndDate string      `json:"expectedEndDate,omitempty"`
	TotalCost       float64     `json:"totalCost"`
	Notes           string      `json:"notes,omitempty"`
	CreatedAt       string      `json:"createdAt,omitempty"`
	UpdatedAt       string      `json:"updatedAt,omitempty"`
}

type TreatmentService struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	BasePrice    float64 `json:"basePrice"`
	DurationDays int     `json:"durationDays"`
	IsActive     bool    `json:"isActive"`
}

type TreatmentPackage struct {
	ID               int      `json:"id"`
	ServiceID        int      `json:"serviceId"`
	Name             string   `json:"name"`
	Description      string   `json:"description,omitempty"`
	Price            float64  `json:"price"`
	IncludedServices []string `json:"includedServices,omitempty"`
	IsActive         bool     `json:"isActive"`
}

type Notification struct {
	ID                int              `json:"id"`
	UserID            int              `json:"userId"`
	Title             string           `json:"title"`
	Message           string           `json:"message"`
	Type              NotificationType `json:"type"`
	IsRead            bool             `json:"isRead"`
	ReadAt            string           `json:"readAt,omitempty"`
	RelatedEntityType string           `json:"relatedEntityType,omitempty"`
	RelatedEntityID   *int             `json:"relatedEntityId,omitempty"`
	CreatedAt         string           `json:"createdAt,omitempty"`
}

type MedicalHistory struct {
	ID            int    `json:"id,omitempty"`
	UserID        int    `json:"userId"`
	Condition     string `json:"condition"`
	Description   string `json:"description,omitempty"`
	DiagnosisDate string `json:"diagnosisDate,omitempty"`
	Treatment     string `json:"treatment,omitempty"`
	IsActive      bool   `json:"isActive"`
	CreatedAt     string `json:"createdAt,omitempty"`
	UpdatedAt     string `json:"updatedAt,omitempty"`
}

type EmergencyContact struct {
	ID           int    `json:"id,omitempty"`
	UserID       int    `json:"userId"`
	FullName     string `json:"fullName"`
	Relationship string `json:"relationship"`
	PhoneNumber  string `json:"phoneNumber"`
	Email        string `json:"email,omitempty"`
	Address      string `json:"address,omitempty"`
	IsPrimary    bool   `json:"isPrimary"`
	CreatedAt    string `json:"createdAt,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}

type MedicalDocument struct {
	ID          int    `json:"id"`
	UserID      int    `json:"userId"`
	FileName    string `json:"fileName"`
	FileURL     string `json:"fileUrl"`
	FileType    string `json:"fileType"`
	UploadDate  string `json:"uploadDate"`
	Description string `json:"description,omitempty"`
}

type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext,omitempty"`
	HasPrev    bool `json:"hasPrev,omitempty"`
}

// Paginated is one page of a list endpoint.
type Paginated[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// More reports whether a later page exists. Older API builds omit hasNext.
func (p Paginated[T]) More() bool {
	return p.Pagination.HasNext || p.Pagination.Page < p.Pagination.TotalPages
}
