package definitions

import (
	"fmt"
	"strings"

	"github.com/fsmlab/automata/pkg/domain"
)

const emailGrammar = "# Address grammar\n" +
	"\n" +
	"```\n" +
	"address   -> local '@' domain '.' extension\n" +
	"local     -> alnum | alnum local\n" +
	"domain    -> alnum | alnum domain\n" +
	"extension -> alnum | alnum extension\n" +
	"alnum     -> 'a'..'z' | 'A'..'Z' | '0'..'9'\n" +
	"```\n"

// Email builds the validation automaton: it accepts strings shaped like a
// simple e-mail address (local part, a single '@', a domain, a single '.'
// and an extension, all sections alphanumeric).
func Email() *Definition {
	return &Definition{
		Kind:    KindEmail,
		Name:    "address validator",
		Grammar: emailGrammar,
		States: []domain.State{
			{ID: "q0", Label: "start", IsStart: true},
			{ID: "q1", Label: "local part"},
			{ID: "q2", Label: "at sign"},
			{ID: "q3", Label: "domain"},
			{ID: "q4", Label: "dot"},
			{ID: "q5", Label: "extension", IsFinal: true},
		},
		Transitions: []domain.Transition{
			{From: "q0", To: "q1", Rule: domain.RuleAlphaNum},
			{From: "q1", To: "q1", Rule: domain.RuleAlphaNum},
			{From: "q1", To: "q2", Rule: "@"},
			{From: "q2", To: "q3", Rule: domain.RuleAlphaNum},
			{From: "q3", To: "q3", Rule: domain.RuleAlphaNum},
			{From: "q3", To: "q4", Rule: "."},
			{From: "q4", To: "q5", Rule: domain.RuleAlphaNum},
			{From: "q5", To: "q5", Rule: domain.RuleAlphaNum},
		},
		Matcher:  emailMatcher,
		Conclude: emailConclusion,
	}
}

// emailMatcher pins the two separators to literal equality so no category
// token can ever swallow them, and delegates everything else to the default
// predicate.
func emailMatcher(rule domain.SymbolRule, symbol rune) bool {
	if symbol == '@' || symbol == '.' {
		return string(rule) == string(symbol)
	}
	return domain.MatchSymbol(rule, symbol)
}

// emailConclusion explains the outcome of a run over the address automaton.
//
// For rejected inputs it diagnoses the input itself, independent of the state
// trace, scanning an ordered list of lexical checks and returning the first
// one that fires. For fully-consumed inputs that stop short of the accepting
// state, the phrasing is keyed to the state that was reached.
func emailConclusion(input string, valid bool, final *domain.State) string {
	if valid && final != nil && final.IsFinal {
		return fmt.Sprintf("%q is a valid address: a local part, a single '@', a domain and a dot-separated extension", input)
	}

	if !valid {
		return diagnoseEmailInput(input)
	}

	switch id := stateID(final); id {
	case "q0":
		return "nothing was read: an address needs at least a local part before '@'"
	case "q1":
		return "only a local part was read: the '@' separator and the domain section are missing"
	case "q2":
		return "the input ends right after '@': a domain name must follow the separator"
	case "q3":
		return "the domain was read, but the '.' separator and the extension are missing"
	case "q4":
		return "the input cannot end on a dangling '.': an extension must follow the dot"
	default:
		return fmt.Sprintf("the run stopped at %q, which is not an accepting state", stateLabel(final))
	}
}

func diagnoseEmailInput(input string) string {
	if input != "" {
		first := rune(input[0])
		if !isEmailAlnum(first) {
			return fmt.Sprintf("the address starts with %q: it must begin with a letter or digit", string(first))
		}
	}
	if strings.Contains(input, "@.") || strings.Contains(input, ".@") {
		return "the separators '@' and '.' may not be adjacent: each section between them must be non-empty"
	}
	if n := strings.Count(input, "@"); n > 1 {
		return fmt.Sprintf("the address contains %d '@' symbols: exactly one is allowed", n)
	}
	for _, r := range input {
		if !isEmailAlnum(r) && r != '@' && r != '.' {
			return fmt.Sprintf("the address contains %q, which is outside the allowed alphabet (letters, digits, '@' and '.')", string(r))
		}
	}
	if strings.Contains(input, "..") {
		return "the address contains consecutive dots: empty sections between separators are not allowed"
	}
	return "the address does not follow the required structure"
}

func isEmailAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func stateID(s *domain.State) string {
	if s == nil {
		return ""
	}
	return s.ID
}

func stateLabel(s *domain.State) string {
	if s == nil {
		return ""
	}
	return s.Label
}
