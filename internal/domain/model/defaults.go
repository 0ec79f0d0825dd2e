package model

import "time"

// Default resolution helpers shared by the entity builders. A nil
// pointer means the caller never touched the field; resolution happens
// once, inside Build, so defaults can depend on runtime state.

func stringOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// stringOrGenerated treats both "never set" and "set to blank" as
// absent, deferring to the generator.
func stringOrGenerated(v *string, gen func() string) string {
	if v == nil || *v == "" {
		return gen()
	}
	return *v
}

func intOrDefault(v *int, gen func() int) int {
	if v == nil || *v == 0 {
		return gen()
	}
	return *v
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func timeOrNow(v *time.Time) time.Time {
	if v == nil || v.IsZero() {
		return time.Now()
	}
	return *v
}
