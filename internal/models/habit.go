package models

import "fmt"

// Domain is one of the five life areas a habit belongs to
type Domain string

const (
	DomainSleep     Domain = "Sleep"
	DomainPhysical  Domain = "Physical"
	DomainAttention Domain = "Attention"
	DomainControl   Domain = "Control"
	DomainOrder     Domain = "Order"
)

// Domains lists all domains in display order.
func Domains() []Domain {
	return []Domain{DomainSleep, DomainPhysical, DomainAttention, DomainControl, DomainOrder}
}

func ParseDomain(s string) (Domain, error) {
	for _, d := range Domains() {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("invalid domain: %q (expected Sleep|Physical|Attention|Control|Order)", s)
}

// Habit represents a recurring practice to track
type Habit struct {
	ID     string `json:"id"`
	Domain Domain `json:"domain"`
	Name   string `json:"name"`
}

// HabitLog holds the set of habit ids completed on a single day. Ids are
// unique within CompletedHabitIDs; ordering carries no meaning.
type HabitLog struct {
	Date              string   `json:"date"` // YYYY-MM-DD format
	CompletedHabitIDs []string `json:"completedHabitIds"`
}

// Completed reports whether the given habit id is marked done in this log.
func (l HabitLog) Completed(habitID string) bool {
	for _, id := range l.CompletedHabitIDs {
		if id == habitID {
			return true
		}
	}
	return false
}
