package hook_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/bjaus/xuma"
	"github.com/bjaus/xuma/domain/hook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegister_BlocksDangerousBashCommand wires the hook domain's
// registered inputs into a live Registry and loads a matcher that
// denies any Bash invocation whose command contains "rm -rf", letting
// everything else through.
func TestRegister_BlocksDangerousBashCommand(t *testing.T) {
	reg := hook.NewRegistry()

	raw := []byte(`{
		"matchers": [{
			"predicate": {
				"type": "and",
				"predicates": [
					{
						"type": "single",
						"input": {"type_url": "xuma.claude.v1.ToolNameInput"},
						"value_match": {"Exact": "Bash"}
					},
					{
						"type": "single",
						"input": {"type_url": "xuma.claude.v1.ToolArgInput", "config": {"name": "command"}},
						"value_match": {"Contains": "rm -rf"}
					}
				]
			},
			"on_match": {"type": "action", "action": "deny"}
		}],
		"on_no_match": {"type": "action", "action": "allow"}
	}`)
	var cfg xuma.MatcherConfig[hook.NamedAction]
	require.NoError(t, json.Unmarshal(raw, &cfg))

	m, err := reg.LoadMatcher(context.Background(), cfg)
	require.NoError(t, err)

	dangerous := hook.PreToolUse("Bash").WithArg("command", "rm -rf /tmp/build")
	a, ok := m.Evaluate(dangerous)
	require.True(t, ok)
	assert.Equal(t, hook.NamedAction("deny"), a)

	safe := hook.PreToolUse("Bash").WithArg("command", "ls -la")
	a, ok = m.Evaluate(safe)
	require.True(t, ok)
	assert.Equal(t, hook.NamedAction("allow"), a)

	otherTool := hook.PreToolUse("Read").WithArg("command", "rm -rf /")
	a, ok = m.Evaluate(otherTool)
	require.True(t, ok)
	assert.Equal(t, hook.NamedAction("allow"), a)
}

func TestRegister_AllInputsWired(t *testing.T) {
	reg := hook.NewRegistry()
	urls := reg.InputTypeURLs()
	assert.Contains(t, urls, hook.EventTypeInputTypeURL)
	assert.Contains(t, urls, hook.ToolNameInputTypeURL)
	assert.Contains(t, urls, hook.ToolArgInputTypeURL)
	assert.Contains(t, urls, hook.SessionIDInputTypeURL)
	assert.Contains(t, urls, hook.CwdInputTypeURL)
	assert.Contains(t, urls, hook.GitBranchInputTypeURL)
}
