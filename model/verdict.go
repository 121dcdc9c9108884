package model

import "fmt"

// Verdict returns the closing message for a run that ended at generation
func Verdict(generation int) string {
	switch {
	case generation <= 0:
		return fmt.Sprintf("Ouch! The cells did not enjoy life. Generation = %d", generation)
	case generation < 100:
		return fmt.Sprintf("Not bad! The cells enjoyed life for %d generations.", generation)
	case generation < 1000:
		return fmt.Sprintf("Wow! The cells enjoyed life for %d generations. Well played!", generation)
	default:
		return fmt.Sprintf("Holy moly! The cells enjoyed life for %d generations. You must be a genius!", generation)
	}
}
