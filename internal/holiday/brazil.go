// Package holiday resolves whether a date counts as a holiday for timesheet
// rule purposes, merging the algorithmic Brazilian calendar (national plus
// Ceará state dates) with administrator-maintained custom and ignored sets.
package holiday

import "time"

// easterSunday computes Gregorian Easter for a year with the anonymous
// (Meeus/Jones/Butcher) algorithm.
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// brazilCE returns the algorithmic holiday set for one year: the Brazilian
// national calendar plus Ceará state holidays, keyed by ISO date.
func brazilCE(year int) map[string]string {
	set := map[string]string{}
	fixed := func(month time.Month, day int, name string) {
		set[time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")] = name
	}

	fixed(time.January, 1, "Confraternização Universal")
	fixed(time.April, 21, "Tiradentes")
	fixed(time.May, 1, "Dia do Trabalhador")
	fixed(time.September, 7, "Independência do Brasil")
	fixed(time.October, 12, "Nossa Senhora Aparecida")
	fixed(time.November, 2, "Finados")
	fixed(time.November, 15, "Proclamação da República")
	fixed(time.December, 25, "Natal")

	// Ceará state holidays
	fixed(time.March, 19, "São José")
	fixed(time.March, 25, "Data Magna do Ceará")

	easter := easterSunday(year)
	movable := func(offsetDays int, name string) {
		set[easter.AddDate(0, 0, offsetDays).Format("2006-01-02")] = name
	}
	movable(-47, "Carnaval")
	movable(-2, "Sexta-feira Santa")
	movable(60, "Corpus Christi")

	return set
}
