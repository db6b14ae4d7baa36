package models

const (
	ShiftMorning = "morning"
	ShiftEvening = "evening"
	ShiftFull    = "full"
)

const (
	StaffStatusActive   = "active"
	StaffStatusInactive = "inactive"
)

// StaffMember lives in the staff-roster snapshot. StaffID is the
// human-facing identifier ("STF" + 2-digit year + 3-digit random).
type StaffMember struct {
	ID       string `json:"id"`
	StaffID  string `json:"staffId"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Shift    string `json:"shift" validate:"required,oneof=morning evening full"`
	Status   string `json:"status"`
	Role     string `json:"role"`
	Password string `json:"-"`
}
