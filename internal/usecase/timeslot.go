package usecase

import (
	"strconv"
	"strings"
)

// Time-slot buckets for departure/arrival filtering. One canonical six-bucket
// scheme: the 0-3h range is always late_night, never folded into
// early_morning.
const (
	SlotLateNight    = "late_night"
	SlotEarlyMorning = "early_morning"
	SlotMorning      = "morning"
	SlotAfternoon    = "afternoon"
	SlotEvening      = "evening"
	SlotNight        = "night"
	SlotUnknown      = "unknown"
)

// timeSlotLabels maps slot keys to the labels shown in filter options.
var timeSlotLabels = map[string]string{
	SlotLateNight:    "Late Night (12AM - 3AM)",
	SlotEarlyMorning: "Early Morning (3AM - 6AM)",
	SlotMorning:      "Morning (6AM - 12PM)",
	SlotAfternoon:    "Afternoon (12PM - 6PM)",
	SlotEvening:      "Evening (6PM - 8PM)",
	SlotNight:        "Night (8PM - 12AM)",
}

// TimeSlotLabel returns the display label for a slot key, or the key itself
// for anything outside the fixed table.
func TimeSlotLabel(slot string) string {
	if label, ok := timeSlotLabels[slot]; ok {
		return label
	}
	return slot
}

// GetTimeSlot buckets an "HH:MM" time string. Unparseable or missing input
// maps to SlotUnknown.
func GetTimeSlot(timeStr string) string {
	if timeStr == "" {
		return SlotUnknown
	}

	hourStr, _, found := strings.Cut(timeStr, ":")
	if !found {
		return SlotUnknown
	}
	hour, err := strconv.Atoi(strings.TrimSpace(hourStr))
	if err != nil {
		return SlotUnknown
	}

	switch {
	case hour >= 0 && hour < 3:
		return SlotLateNight
	case hour >= 3 && hour < 6:
		return SlotEarlyMorning
	case hour >= 6 && hour < 12:
		return SlotMorning
	case hour >= 12 && hour < 18:
		return SlotAfternoon
	case hour >= 18 && hour < 20:
		return SlotEvening
	case hour >= 20 && hour <= 23:
		return SlotNight
	default:
		return SlotUnknown
	}
}
