package auth

// Known OAuth scopes used by the wrapped service.
const (
	ScopeExportsAnalyze = "exports:analyze"
)
