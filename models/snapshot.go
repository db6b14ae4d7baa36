package models

// AdminSnapshot is the denormalized aggregate record the admin dashboard
// keeps in the local store for offline-ish continuity. Best-effort mirror
// of server state; last write wins.
type AdminSnapshot struct {
	Users      []User      `json:"users"`
	Complaints []Complaint `json:"complaints"`
	Feedback   []Feedback  `json:"feedback"`
	Menus      []DailyMenu `json:"menus"`
}
