package domain

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyUserEmail CtxKey = "Email"
	KeyAdmin     CtxKey = "Admin"
	KeyRequestID CtxKey = "RequestID"
)
