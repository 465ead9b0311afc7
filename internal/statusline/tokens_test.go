package statusline

import "testing"

func TestTokenCounts_PercentOfContextWindowRemaining(t *testing.T) {
	cases := []struct {
		name   string
		counts TokenCounts
		window uint64
		want   int
	}{
		{"empty window", TokenCounts{InputTokens: 100}, 0, 0},
		{"unused", TokenCounts{}, 1000, 100},
		{"half used", TokenCounts{InputTokens: 400, OutputTokens: 100}, 1000, 50},
		{"fully used", TokenCounts{InputTokens: 1000}, 1000, 0},
		{"overfull clamps", TokenCounts{InputTokens: 5000}, 1000, 0},
		{"rounds down", TokenCounts{InputTokens: 1}, 1000, 99},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.counts.PercentOfContextWindowRemaining(tc.window); got != tc.want {
				t.Errorf("got %d%%, want %d%%", got, tc.want)
			}
		})
	}
}

func TestTokenCounts_TokensInContextWindow(t *testing.T) {
	c := TokenCounts{
		TotalTokens:       1000,
		InputTokens:       700,
		CachedInputTokens: 500, // already included in InputTokens
		OutputTokens:      300,
	}
	if got := c.TokensInContextWindow(); got != 1000 {
		t.Fatalf("got %d, want 1000 (input+output, cache not double-counted)", got)
	}
}

func TestTokenSnapshotFromInfo(t *testing.T) {
	info := TokenUsageInfo{
		TotalTokenUsage: TokenCounts{TotalTokens: 900, InputTokens: 600, OutputTokens: 300, ReasoningOutputTokens: 50},
		LastTokenUsage:  TokenCounts{TotalTokens: 90, InputTokens: 60, OutputTokens: 30},
	}

	tokens, context := tokenSnapshotFromInfo(info, 0)
	if tokens.Total != info.TotalTokenUsage {
		t.Errorf("total: got %+v", tokens.Total)
	}
	if tokens.Last == nil || *tokens.Last != info.LastTokenUsage {
		t.Errorf("last sub-snapshot must always be present: got %+v", tokens.Last)
	}
	if context != nil {
		t.Errorf("no window, no context snapshot: got %+v", context)
	}

	_, context = tokenSnapshotFromInfo(info, 9000)
	if context == nil {
		t.Fatal("context snapshot missing with a resolvable window")
	}
	if context.Window != 9000 || context.TokensInContext != 900 || context.PercentRemaining != 90 {
		t.Errorf("context: got %+v", context)
	}
}
