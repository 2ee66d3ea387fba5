package apierrors

const (
	MsgTodoNotFound      = "todoNotFound"
	MsgInvalidPayload    = "invalidPayload"
	MsgInvalidTodoID     = "invalidTodoID"
	MsgInvalidStatus     = "invalidStatus"
	MsgInternalError     = "internalError"
	MsgTitleRequired     = "titleRequired"
	MsgInvalidDateFormat = "invalidDateFormat"
	MsgInvalidPriority   = "invalidPriority"
	MsgInvalidTags       = "invalidTags"
)
