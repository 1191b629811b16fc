package apierrors

const (
	MsgFailListTask       = "errorListTask"
	MsgInvalidTaskID      = "invalidTaskID"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgInvalidTaskFilter  = "invalidTaskFilter"
	MsgTaskNotFound       = "taskNotFound"
	MsgFailGetTask        = "failGetTask"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"
	MsgFailAssignTask     = "failAssignTask"
	MsgTaskDeleted        = "taskDeleted"
	MsgForbidden          = "forbidden"
	MsgUnauthorized       = "unauthorized"
	MsgInvalidAssignee    = "invalidAssignee"
	MsgValidationFailed   = "validationFailed"
	MsgFailAuthenticate   = "failAuthenticate"
)

// ruleMessages maps a validation rule to its message id.
var ruleMessages = map[string]string{
	"required":       "validationRequired",
	"min":            "validationMin",
	"max":            "validationMax",
	"oneof":          "validationOneof",
	"after_or_equal": "validationAfterOrEqual",
	"exists":         "validationExists",
}
