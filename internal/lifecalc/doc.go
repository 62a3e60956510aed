// Package lifecalc converts a birth date into week counts, age, life
// completion percentage and per-week status for the life grid.
//
// A Calculator holds only configuration (total week budget, maximum age,
// calendar location) and a timex.Clock for "now"; every method is a pure
// function of its arguments and the clock reading.
//
//	calc := lifecalc.New(timex.SystemClock)
//	stats := calc.All(user.BirthDate)
//	if err := calc.ValidateBirthDate(b); err != nil { ... }
package lifecalc
