// Package api exposes the clinic REST resources as typed calls over a
// client.Client. Every call issues exactly one request and returns the
// unwrapped envelope data.
package api

import (
	"fmt"

	"github.com/itm-clinic/clinic-client/client"
)

type API struct {
	Auth          Auth
	Profile       Profile
	Appointments  Appointments
	Doctors       Doctors
	Schedules     Schedules
	Cycles        Cycles
	Services      Services
	Packages      Packages
	Notifications Notifications
	History       History
	Contacts      Contacts
	Documents     Documents
}

func New(c *client.Client) *API {
	return &API{
		Auth:          Auth{c: c},
		Profile:       Profile{c: c},
		Appointments:  Appointments{c: c},
		Doctors:       Doctors{c: c},
		Schedules:     Schedules{c: c},
		Cycles:        Cycles{c: c},
		Services:      Services{c: c},
		Packages:      Packages{c: c},
		Notifications: Notifications{c: c},
		History:       History{c: c},
		Contacts:      Contacts{c: c},
		Documents:     Documents{c: c},
	}
}

// Path templates.
const (
	usersPath             = "/users"
	medicalHistoryPath    = "/medical-history"
	emergencyContactsPath = "/emergency-contacts"
	medicalDocumentsPath  = "/medical-documents"
	doctorsPath           = "/doctors"
	doctorSchedulesPath   = "/doctor-schedules"
	appointmentsPath      = "/appointments"
	treatmentCyclesPath   = "/treatment-cycles"
	treatmentServicesPath = "/treatment-services"
	treatmentPackagesPath = "/treatment-packages"
	notificationsPath     = "/notifications"
)

func byID(base string, id int) string {
	return fmt.Sprintf("%s/%d", base, id)
}

func byUser(base string, userID int) string {
	return fmt.Sprintf("%s/user/%d", base, userID)
}

func action(base string, id int, name string) string {
	return fmt.Sprintf("%s/%d/%s", base, id, name)
}
