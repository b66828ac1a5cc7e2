package users

// RoleType is the numeric role the clinic API assigns to an account.
type RoleType int

const (
	RoleCustomer RoleType = 1 // Patient
	RoleDoctor   RoleType = 2
	RoleManager  RoleType = 3
	RoleAdmin    RoleType = 4
)

func (r RoleType) String() string {
	switch r {
	case RoleCustomer:
		return "customer"
	case RoleDoctor:
		return "doctor"
	case RoleManager:
		return "manager"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// Gender as encoded by the clinic API.
type Gender int

const (
	GenderMale   Gender = 1
	GenderFemale Gender = 2
	GenderOther  Gender = 3
)

// User is the profile of the signed-in account, as returned by login and register.
type User struct {
	ID          int      `json:"id"`
	Email       string   `json:"email"`
	FullName    string   `json:"fullName"`
	PhoneNumber string   `json:"phoneNumber,omitempty"`
	Gender      Gender   `json:"gender,omitempty"`
	Role        RoleType `json:"role"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	IsActive    bool     `json:"isActive"`
}

// HasRole reports whether the user holds any of roles.
func (u *User) HasRole(roles ...RoleType) bool {
	if u == nil {
		return false
	}
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}

func (u *User) IsCustomer() bool { return u.HasRole(RoleCustomer) }
func (u *User) IsDoctor() bool   { return u.HasRole(RoleDoctor) }
func (u *User) IsManager() bool  { return u.HasRole(RoleManager) }
func (u *User) IsAdmin() bool    { return u.HasRole(RoleAdmin) }

// Clone returns a copy that shares nothing with u.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
