package runner_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsmlab/automata/pkg/domain"
	"github.com/fsmlab/automata/pkg/runner"
)

func TestTextHandler_HeadlessNotify(t *testing.T) {
	var buf bytes.Buffer
	h := runner.NewTextHandler(&buf, true)

	err := h.Notify(context.Background(), domain.EventBase{
		Timestamp: time.Now(),
		Type:      domain.EventStep,
		Severity:  domain.SeverityInfo,
		Message:   "read 'a', moved to \"q1\"",
	})
	require.NoError(t, err)
	assert.Equal(t, "read 'a', moved to \"q1\"\n", buf.String())
}

func TestTextHandler_ConcludeShowsOutcome(t *testing.T) {
	var buf bytes.Buffer
	h := runner.NewTextHandler(&buf, true)

	err := h.Conclude(context.Background(), &domain.RunRecord{
		Outcome:    domain.OutcomeAccepted,
		Conclusion: "all good",
	})
	require.NoError(t, err)
	assert.Equal(t, "[accepted] all good\n", buf.String())
}

func TestTextHandler_ConcludeUsesRenderer(t *testing.T) {
	var buf bytes.Buffer
	h := runner.NewTextHandler(&buf, true)
	h.Renderer = func(content string) (string, error) {
		return "rendered: " + content + "\n", nil
	}

	err := h.Conclude(context.Background(), &domain.RunRecord{
		Outcome:    domain.OutcomeRejected,
		Conclusion: "nope",
	})
	require.NoError(t, err)
	assert.Equal(t, "[rejected] rendered: nope\n", buf.String())
}

func TestTextHandler_SystemOutput(t *testing.T) {
	var buf bytes.Buffer
	h := runner.NewTextHandler(&buf, true)

	require.NoError(t, h.SystemOutput(context.Background(), "grammar follows"))
	assert.Equal(t, "grammar follows\n", buf.String())
}
