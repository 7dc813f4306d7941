package handler

type ContextKey string

var (
	ServiceCtx ContextKey = "service"
)
