package domain

// SymbolRule is a transition's matching criterion: either a literal single
// character or a named character-category token.
type SymbolRule string

// Category tokens understood by the default matcher.
const (
	// RuleDigit matches any ASCII digit '0'-'9'.
	RuleDigit SymbolRule = "DIGIT"
	// RuleAlpha matches any ASCII letter, either case.
	RuleAlpha SymbolRule = "ALPHA"
	// RuleAlphaNum matches an ASCII digit or letter.
	RuleAlphaNum SymbolRule = "ALPHANUM"
)

// Transition defines a rule to move from one state to another.
// The transition table is ordered; the engine fires the first rule that
// matches the consumed symbol (definitions must be deterministic, so at most
// one rule per state should match any concrete symbol).
type Transition struct {
	From string     `json:"from" yaml:"from"`
	To   string     `json:"to" yaml:"to"`
	Rule SymbolRule `json:"rule" yaml:"rule"`
}

// Matcher is the predicate deciding whether a rule accepts a symbol.
// It must be pure: identical (rule, symbol) pairs always yield the same
// result. Definitions may supply their own Matcher to add or restrict
// categories, but overrides must delegate to MatchSymbol for any symbol they
// do not explicitly special-case, preserving literal-equality semantics.
type Matcher func(rule SymbolRule, symbol rune) bool

// MatchSymbol is the default matching predicate: category wildcards for the
// three built-in tokens, literal equality for everything else.
func MatchSymbol(rule SymbolRule, symbol rune) bool {
	switch rule {
	case RuleDigit:
		return isDigit(symbol)
	case RuleAlpha:
		return isAlpha(symbol)
	case RuleAlphaNum:
		return isDigit(symbol) || isAlpha(symbol)
	default:
		return string(rule) == string(symbol)
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
