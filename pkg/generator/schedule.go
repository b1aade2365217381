package generator

import "lifeplan/entities"

// WeeklySchedule returns the fixed week skeleton. It does not depend on the input;
// a fresh copy is returned so callers may mutate it.
func WeeklySchedule() []entities.ScheduleDay {
	block := func(label, start, end string) entities.ScheduleBlock {
		return entities.ScheduleBlock{Label: label, Start: start, End: end}
	}
	return []entities.ScheduleDay{
		{Day: "Mon", Blocks: []entities.ScheduleBlock{block("Cowork", "09:30", "13:00"), block("Gym", "17:30", "19:00")}},
		{Day: "Tue", Blocks: []entities.ScheduleBlock{block("Cowork", "10:00", "14:00"), block("Social", "19:30", "22:00")}},
		{Day: "Wed", Blocks: []entities.ScheduleBlock{block("Cowork", "09:30", "13:00"), block("Gym", "17:30", "19:00")}},
		{Day: "Thu", Blocks: []entities.ScheduleBlock{block("Cowork", "10:00", "14:00"), block("Social", "19:30", "22:00")}},
		{Day: "Fri", Blocks: []entities.ScheduleBlock{block("Cowork", "09:30", "12:30"), block("Social", "20:00", "23:00")}},
		{Day: "Sat", Blocks: []entities.ScheduleBlock{block("Explore", "11:00", "16:00")}},
		{Day: "Sun", Blocks: []entities.ScheduleBlock{block("Reset", "12:00", "14:00")}},
	}
}
