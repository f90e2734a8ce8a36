package handler

type ContextKey string

var (
	EmployeeCtx       ContextKey = "employee"
	TargetEmployeeCtx ContextKey = "targetEmployee"
	ManagerCtx        ContextKey = "manager"
	ProjectCtx        ContextKey = "project"
	TaskCtx           ContextKey = "task"
	UpdateCtx         ContextKey = "update"
	ArtifactCtx       ContextKey = "artifact"
	CommentCtx        ContextKey = "comment"
)
