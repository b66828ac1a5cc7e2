package query

import (
	"fmt"
	"strings"

	"github.com/itm-clinic/clinic-client/medical"
)

// Key identifies a cached query. Keys sharing a prefix form a group that can
// be invalidated or removed together.
type Key []any

func (k Key) String() string {
	parts := make([]string, len(k))
	for i, p := range k {
		parts[i] = fmt.Sprint(p)
	}
	return strings.Join(parts, "/")
}

func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}
	for i := range prefix {
		if fmt.Sprint(k[i]) != fmt.Sprint(prefix[i]) {
			return false
		}
	}
	return true
}

// Keys builds the keys the CLI and the api callers share.
var Keys = struct {
	Profile            func(userID int) Key
	MedicalHistory     func(userID int) Key
	EmergencyContacts  func(userID int) Key
	MedicalDocuments   func(userID int) Key
	Doctors            func() Key
	DoctorList         func(f medical.DoctorFilter) Key
	Doctor             func(id int) Key
	DoctorSearch       func(q medical.DoctorSearch) Key
	DoctorAvailability func(doctorID int) Key
	Appointments       func(userID int) Key
	AppointmentList    func(userID int, f medical.AppointmentFilter) Key
	Appointment        func(id int) Key
	Treatments         func(userID int) Key
	TreatmentList      func(userID int, f medical.TreatmentCycleFilter) Key
	Treatment          func(id int) Key
	Notifications      func(userID int) Key
	NotificationList   func(userID int, f medical.NotificationFilter) Key
	UnreadCount        func(userID int) Key
}{
	Profile:            func(userID int) Key { return Key{"profile", userID} },
	MedicalHistory:     func(userID int) Key { return Key{"medical-history", userID} },
	EmergencyContacts:  func(userID int) Key { return Key{"emergency-contacts", userID} },
	MedicalDocuments:   func(userID int) Key { return Key{"medical-documents", userID} },
	Doctors:            func() Key { return Key{"doctors"} },
	DoctorList:         func(f medical.DoctorFilter) Key { return Key{"doctors", "list", f.Values().Encode()} },
	Doctor:             func(id int) Key { return Key{"doctors", "detail", id} },
	DoctorSearch:       func(q medical.DoctorSearch) Key { return Key{"doctors", "search", q.Query, q.Specialization, q.Date} },
	DoctorAvailability: func(doctorID int) Key { return Key{"doctor-schedules", "available", doctorID} },
	Appointments:       func(userID int) Key { return Key{"appointments", userID} },
	AppointmentList: func(userID int, f medical.AppointmentFilter) Key {
		return Key{"appointments", userID, f.Values().Encode()}
	},
	Appointment: func(id int) Key { return Key{"appointments", "detail", id} },
	Treatments:  func(userID int) Key { return Key{"treatments", userID} },
	TreatmentList: func(userID int, f medical.TreatmentCycleFilter) Key {
		return Key{"treatments", userID, f.Values().Encode()}
	},
	Treatment:     func(id int) Key { return Key{"treatments", "detail", id} },
	Notifications: func(userID int) Key { return Key{"notifications", userID} },
	NotificationList: func(userID int, f medical.NotificationFilter) Key {
		return Key{"notifications", userID, f.Values().Encode()}
	},
	UnreadCount: func(userID int) Key { return Key{"notifications", userID, "unread-count"} },
}

// userScoped are the key roots holding one patient's data.
var userScoped = []string{
	"profile",
	"medical-history",
	"emergency-contacts",
	"medical-documents",
	"appointments",
	"treatments",
	"notifications",
}

// userRecords are refetched after the profile changes.
var userRecords = []string{"profile", "medical-history", "emergency-contacts", "medical-documents"}
