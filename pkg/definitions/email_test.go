package definitions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsmlab/automata/pkg/definitions"
	"github.com/fsmlab/automata/pkg/domain"
)

func findState(t *testing.T, def *definitions.Definition, id string) *domain.State {
	t.Helper()
	for i := range def.States {
		if def.States[i].ID == id {
			return &def.States[i]
		}
	}
	t.Fatalf("state %q not found", id)
	return nil
}

func TestEmail_MatcherOverride(t *testing.T) {
	def := definitions.Email()
	require.NotNil(t, def.Matcher)

	// Separators only match their literal rules, never a category.
	assert.True(t, def.Matcher("@", '@'))
	assert.False(t, def.Matcher(domain.RuleAlphaNum, '@'))
	assert.True(t, def.Matcher(".", '.'))
	assert.False(t, def.Matcher(domain.RuleAlphaNum, '.'))

	// Everything else delegates to the default predicate.
	assert.True(t, def.Matcher(domain.RuleAlphaNum, 'a'))
	assert.True(t, def.Matcher(domain.RuleAlphaNum, '7'))
	assert.False(t, def.Matcher(domain.RuleAlphaNum, '!'))
	assert.True(t, def.Matcher("x", 'x'))
}

func TestEmail_Conclusion_Accepted(t *testing.T) {
	def := definitions.Email()
	final := findState(t, def, "q5")

	msg := def.Conclude("a@b.com", true, final)
	assert.Contains(t, msg, "a@b.com")
	assert.Contains(t, msg, "valid address")
}

func TestEmail_Conclusion_Rejected(t *testing.T) {
	def := definitions.Email()
	// The rejected branch diagnoses the input itself; the state the run
	// halted in is irrelevant.
	start := findState(t, def, "q0")

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"starts with separator", "@abc.com", "must begin with a letter or digit"},
		{"adjacent separators", "a@.com", "may not be adjacent"},
		{"multiple at signs", "a@b@c.com", "exactly one is allowed"},
		{"foreign character", "ab#c@d.com", `"#"`},
		{"consecutive dots", "a..b@c.com", "consecutive dots"},
		{"fallback", "a.b@c.com", "does not follow the required structure"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg := def.Conclude(tc.input, false, start)
			assert.Contains(t, msg, tc.want)
		})
	}
}

func TestEmail_Conclusion_Incomplete(t *testing.T) {
	def := definitions.Email()

	cases := []struct {
		state string
		input string
		want  string
	}{
		{"q0", "", "nothing was read"},
		{"q1", "abc", "'@'"},
		{"q2", "abc@", "domain name must follow"},
		{"q3", "abc@def", "'.'"},
		{"q4", "abc@def.", "dangling '.'"},
	}

	for _, tc := range cases {
		t.Run(tc.state, func(t *testing.T) {
			msg := def.Conclude(tc.input, true, findState(t, def, tc.state))
			assert.Contains(t, msg, tc.want)
		})
	}
}
