package statusline

// TokenUsageInfo is the shape of a provider usage report as consumed by the
// status line: cumulative session totals, the last turn's delta, and the
// context window the model itself reported (0 when it did not).
type TokenUsageInfo struct {
	TotalTokenUsage    TokenCounts
	LastTokenUsage     TokenCounts
	ModelContextWindow uint64
}

// TokensInContextWindow estimates how many tokens currently occupy the
// context window. Cached input is already included in InputTokens on the
// providers we consume, so input+output covers the window contents without
// double counting.
func (c TokenCounts) TokensInContextWindow() uint64 {
	return c.InputTokens + c.OutputTokens
}

// PercentOfContextWindowRemaining returns the whole-percent share of the
// window still free, clamped to [0, 100].
func (c TokenCounts) PercentOfContextWindowRemaining(window uint64) int {
	if window == 0 {
		return 0
	}
	used := c.TokensInContextWindow()
	if used >= window {
		return 0
	}
	return int((window - used) * 100 / window)
}

// tokenSnapshotFromInfo derives the render-ready token snapshot and, when a
// window size is resolvable, the context snapshot. The window argument is
// the already-resolved precedence result (model-reported, else configured
// hint); zero means no context snapshot.
func tokenSnapshotFromInfo(info TokenUsageInfo, window uint64) (*TokenSnapshot, *ContextSnapshot) {
	last := info.LastTokenUsage
	tokens := &TokenSnapshot{
		Total: info.TotalTokenUsage,
		Last:  &last,
	}
	if window == 0 {
		return tokens, nil
	}
	return tokens, &ContextSnapshot{
		PercentRemaining: info.TotalTokenUsage.PercentOfContextWindowRemaining(window),
		TokensInContext:  info.TotalTokenUsage.TokensInContextWindow(),
		Window:           window,
	}
}
