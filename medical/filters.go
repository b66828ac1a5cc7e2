package medical

import (
	"net/url"
	"strconv"
	"strings"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

type PaginationQuery struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder SortOrder
	Search    string
}

// DateRange is flattened into startDate and endDate parameters.
type DateRange struct {
	StartDate string
	EndDate   string
}

type AppointmentFilter struct {
	PaginationQuery
	Status    AppointmentStatus
	Type      AppointmentType
	DoctorID  int
	DateRange *DateRange
}

type DoctorFilter struct {
	PaginationQuery
	Specialization string
	IsAvailable    *bool
	MinExperience  int
	MaxFee         float64
}

type TreatmentCycleFilter struct {
	PaginationQuery
	Status    CycleStatus
	DoctorID  int
	DateRange *DateRange
}

type NotificationFilter struct {
	PaginationQuery
	Type      NotificationType
	IsRead    *bool
	DateRange *DateRange
}

// DoctorSearch is the body of the doctor search call.
type DoctorSearch struct {
	Query          string `json:"query,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	Date           string `json:"date,omitempty"`
}

// params builds query values, skipping anything unset.
type params url.Values

func (p params) str(key, value string) {
	if strings.TrimSpace(value) != "" {
		url.Values(p).Add(key, value)
	}
}

func (p params) num(key string, value int) {
	if value != 0 {
		url.Values(p).Add(key, strconv.Itoa(value))
	}
}

func (p params) float(key string, value float64) {
	if value != 0 {
		url.Values(p).Add(key, strconv.FormatFloat(value, 'f', -1, 64))
	}
}

func (p params) flag(key string, value *bool) {
	if value != nil {
		url.Values(p).Add(key, strconv.FormatBool(*value))
	}
}

func (p params) dates(r *DateRange) {
	if r == nil {
		return
	}
	p.str("startDate", r.StartDate)
	p.str("endDate", r.EndDate)
}

func (q PaginationQuery) into(p params) {
	p.num("page", q.Page)
	p.num("limit", q.Limit)
	p.str("sortBy", q.SortBy)
	p.str("sortOrder", string(q.SortOrder))
	p.str("search", q.Search)
}

func (q PaginationQuery) Values() url.Values {
	p := params{}
	q.into(p)
	return url.Values(p)
}

func (f AppointmentFilter) Values() url.Values {
	p := params{}
	f.PaginationQuery.into(p)
	p.str("status", string(f.Status))
	p.str("type", string(f.Type))
	p.num("doctorId", f.DoctorID)
	p.dates(f.DateRange)
	return url.Values(p)
}

func (f DoctorFilter) Values() url.Values {
	p := params{}
	f.PaginationQuery.into(p)
	p.str("specialization", f.Specialization)
	p.flag("isAvailable", f.IsAvailable)
	p.num("minExperience", f.MinExperience)
	p.float("maxFee", f.MaxFee)
	return url.Values(p)
}

func (f TreatmentCycleFilter) Values() url.Values {
	p := params{}
	f.PaginationQuery.into(p)
	p.str("status", string(f.Status))
	p.num("doctorId", f.DoctorID)
	p.dates(f.DateRange)
	return url.Values(p)
}

func (f NotificationFilter) Values() url.Values {
	p := params{}
	f.PaginationQuery.into(p)
	p.str("type", string(f.Type))
	p.flag("isRead", f.IsRead)
	p.dates(f.DateRange)
	return url.Values(p)
}
