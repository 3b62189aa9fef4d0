package member

import "fmt"

type Member struct {
	MemberNo  int     `json:"memberNo"`
	FirstName string  `json:"firstName"`
	Surname   string  `json:"surname"`
	CellPhone string  `json:"cellPhone"`
	Email     string  `json:"email"`
	Credit    float64 `json:"credit"`
	Blocked   bool    `json:"blocked"`
}

// DisplayName is the short form written into the booking grid,
// e.g. "J Smith".
func (m Member) DisplayName() string {
	if len(m.FirstName) == 0 {
		return m.Surname
	}
	return fmt.Sprintf("%c %s", m.FirstName[0], m.Surname)
}

// Limitations holds a member's per-period booking caps. Caps align with the
// ordered period list by position; zero caps are filtered out on read and
// mean "no limit configured".
type Limitations struct {
	MemberNo     int   `json:"memberNo"`
	DailyLimits  []int `json:"dailyLimits"`
	WeeklyLimits []int `json:"weeklyLimits"`
}

type ProfileUpdate struct {
	FirstName string `json:"firstName"`
	Surname   string `json:"surname"`
	CellPhone string `json:"cellPhone"`
	Email     string `json:"email"`
}
