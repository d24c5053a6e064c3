package domain

import "time"

// Schedule - событие клуба. ChecklistID указывает на живой (активный)
// чек-лист, если он есть; у расписания не бывает двух живых чек-листов.
type Schedule struct {
	ID          int
	ClubID      int
	Title       string
	IsActive    bool
	ChecklistID *int
	CreatedAt   time.Time
}

type Checklist struct {
	ID         int
	ScheduleID int
	Title      string
	IsActive   bool
	CreatedAt  time.Time
}
