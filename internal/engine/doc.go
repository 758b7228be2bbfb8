// Package engine holds the stat and damage rules. Everything here is pure:
// functions read a character and return values without mutating it.
//
// Effective stats are folded in two passes. Equipment goes first: a weapon
// adds damage and replaces attack speed, armor adds armor and health, and
// trinkets add primary attributes. Attribute bonuses are applied once
// afterwards from the resulting totals, so slot order never changes the
// outcome.
package engine
