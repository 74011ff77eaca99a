package validate

import "fmt"

type Rule string

const (
	RuleCanBalance       Rule = "can_balance"
	RuleCharacterBalance Rule = "character_balance"
	RuleDragonPairing    Rule = "dragon_pairing"
	RuleWarpPairing      Rule = "warp_pairing"
)

// RuleError names the export rule a level breaks. For pairing rules Color is
// the offending palette color; for dragon pairing Actual counts dragons and
// Required counts fire buttons.
type RuleError struct {
	Rule     Rule
	Color    string
	Actual   int
	Required int
}

func (e *RuleError) Error() string {
	switch e.Rule {
	case RuleCanBalance:
		return fmt.Sprintf("cannot complete level: the number of cans must equal the number of flowers (current: %d, required: %d)", e.Actual, e.Required)
	case RuleCharacterBalance:
		return fmt.Sprintf("cannot complete level: character count does not match (current: %d, required: %d = cans + switches + fire buttons)", e.Actual, e.Required)
	case RuleDragonPairing:
		return fmt.Sprintf("cannot complete level: dragons and fire buttons do not match (color: %s, dragons: %d, buttons: %d)", e.Color, e.Actual, e.Required)
	case RuleWarpPairing:
		return fmt.Sprintf("cannot complete level: warps (%s) must be placed in pairs of 2 (current: %d)", e.Color, e.Actual)
	}
	return fmt.Sprintf("cannot complete level: rule %s failed", e.Rule)
}
