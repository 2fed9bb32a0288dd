package models

import (
	"time"
)

// AttendanceLogEntry представляет отметку прихода/ухода патрульного
type AttendanceLogEntry struct {
	ID       int64      `json:"id"`
	Person   string     `json:"person"`
	TimeIn   time.Time  `json:"time_in"`
	TimeOut  *time.Time `json:"time_out,omitempty"`
	Location string     `json:"location"`
	LogDate  time.Time  `json:"log_date"`
}

// DutyRecord - вычисляемая запись о том, что человек сейчас на дежурстве
type DutyRecord struct {
	Person      string    `json:"person"`
	OnDutySince time.Time `json:"on_duty_since"`
}

// DutyRoster - список дежурных, отсортированный по идентификатору человека
type DutyRoster []DutyRecord

func (r DutyRoster) Contains(person string) bool {
	_, ok := r.Find(person)
	return ok
}

func (r DutyRoster) Find(person string) (DutyRecord, bool) {
	for _, rec := range r {
		if rec.Person == person {
			return rec, true
		}
	}
	return DutyRecord{}, false
}

func (r DutyRoster) Persons() []string {
	out := make([]string, len(r))
	for i, rec := range r {
		out[i] = rec.Person
	}
	return out
}

// DutyAnomaly - у человека несколько открытых отметок за одну дату
type DutyAnomaly struct {
	Person  string `json:"person"`
	Entries int    `json:"entries"`
	Chosen  int64  `json:"chosen_entry_id"`
}
