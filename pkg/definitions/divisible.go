package definitions

import (
	"fmt"

	"github.com/fsmlab/automata/pkg/domain"
)

// Private category tokens for the remainder automaton: digits grouped by
// their value modulo 3.
const (
	ruleMod0 domain.SymbolRule = "DIGIT_MOD0" // 0 3 6 9
	ruleMod1 domain.SymbolRule = "DIGIT_MOD1" // 1 4 7
	ruleMod2 domain.SymbolRule = "DIGIT_MOD2" // 2 5 8
)

const divisibleGrammar = "# Divisibility by 3\n" +
	"\n" +
	"The machine reads a decimal number digit by digit and tracks the digit\n" +
	"sum modulo 3. A number is divisible by 3 exactly when its digit sum is.\n" +
	"\n" +
	"```\n" +
	"number -> digit | digit number\n" +
	"digit  -> '0'..'9'\n" +
	"```\n"

// DivisibleBy3 builds the numeric remainder automaton: three states, one per
// remainder class of the running digit sum, accepting in remainder 0.
func DivisibleBy3() *Definition {
	return &Definition{
		Kind:    KindDivisibleBy3,
		Name:    "divisibility-by-3 checker",
		Grammar: divisibleGrammar,
		States: []domain.State{
			{ID: "r0", Label: "remainder 0", IsStart: true, IsFinal: true},
			{ID: "r1", Label: "remainder 1"},
			{ID: "r2", Label: "remainder 2"},
		},
		Transitions: []domain.Transition{
			{From: "r0", To: "r0", Rule: ruleMod0},
			{From: "r0", To: "r1", Rule: ruleMod1},
			{From: "r0", To: "r2", Rule: ruleMod2},
			{From: "r1", To: "r1", Rule: ruleMod0},
			{From: "r1", To: "r2", Rule: ruleMod1},
			{From: "r1", To: "r0", Rule: ruleMod2},
			{From: "r2", To: "r2", Rule: ruleMod0},
			{From: "r2", To: "r0", Rule: ruleMod1},
			{From: "r2", To: "r1", Rule: ruleMod2},
		},
		Matcher:  mod3Matcher,
		Conclude: divisibleConclusion,
	}
}

// mod3Matcher resolves the private remainder categories and delegates any
// other rule to the default predicate.
func mod3Matcher(rule domain.SymbolRule, symbol rune) bool {
	switch rule {
	case ruleMod0, ruleMod1, ruleMod2:
		if symbol < '0' || symbol > '9' {
			return false
		}
		mod := int(symbol-'0') % 3
		return (rule == ruleMod0 && mod == 0) ||
			(rule == ruleMod1 && mod == 1) ||
			(rule == ruleMod2 && mod == 2)
	default:
		return domain.MatchSymbol(rule, symbol)
	}
}

func divisibleConclusion(input string, valid bool, final *domain.State) string {
	if !valid {
		for _, r := range input {
			if r < '0' || r > '9' {
				return fmt.Sprintf("the input contains %q, which is not a decimal digit", string(r))
			}
		}
		return "the input is not a sequence of decimal digits"
	}

	sum := digitSum(input)
	if final != nil && final.IsFinal {
		if input == "" {
			return "the input is empty: the digit sum is 0, which is divisible by 3"
		}
		return fmt.Sprintf("the digit sum of %q is %d, which is divisible by 3, so the number is divisible by 3", input, sum)
	}

	switch id := stateID(final); id {
	case "r1":
		return fmt.Sprintf("the digit sum of %q is %d, which leaves remainder 1 when divided by 3", input, sum)
	case "r2":
		return fmt.Sprintf("the digit sum of %q is %d, which leaves remainder 2 when divided by 3", input, sum)
	default:
		return fmt.Sprintf("the run stopped at %q, which is not an accepting state", stateLabel(final))
	}
}

func digitSum(input string) int {
	sum := 0
	for _, r := range input {
		if r >= '0' && r <= '9' {
			sum += int(r - '0')
		}
	}
	return sum
}
