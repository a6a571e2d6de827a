package components

// FormSubmittedMsg is sent when enter is pressed on a form.
type FormSubmittedMsg struct {
	ID     string
	Values []string
}
