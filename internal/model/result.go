package model

// ActionResult is the uniform outcome of a mutating action: whether it worked
// and the message to show the user.
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func Succeeded(message string) ActionResult {
	return ActionResult{Success: true, Message: message}
}

func Failed(message string) ActionResult {
	return ActionResult{Success: false, Message: message}
}
