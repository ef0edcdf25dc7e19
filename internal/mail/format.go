package mail

import (
	"fmt"
	"time"
)

// pt-BR calendar names. The standard library formats dates in English only,
// so the locale tables live here.
var (
	weekdaysPtBR = [...]string{
		"domingo", "segunda-feira", "terça-feira", "quarta-feira",
		"quinta-feira", "sexta-feira", "sábado",
	}
	monthsPtBR = [...]string{
		"janeiro", "fevereiro", "março", "abril", "maio", "junho",
		"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
	}
)

// FormatDate renders a date as "segunda-feira, 10 de março de 2025"
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s de %d",
		weekdaysPtBR[t.Weekday()], t.Day(), monthsPtBR[t.Month()-1], t.Year())
}

// FormatTime renders a 24-hour clock time as "14:00"
func FormatTime(t time.Time) string {
	return t.Format("15:04")
}

// ParseSchedule combines the stored date (YYYY-MM-DD) and clock
// (HH:MM or HH:MM:SS) into a single timestamp.
func ParseSchedule(date, clock string) (time.Time, error) {
	if len(clock) == 5 {
		clock += ":00"
	}
	return time.Parse("2006-01-02 15:04:05", date+" "+clock)
}
