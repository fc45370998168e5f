package testutil

// FakeDialogs is a scripted controller.Dialogs.
type FakeDialogs struct {
	// ConfirmAnswer is returned by Confirm.
	ConfirmAnswer bool

	// PromptAnswer and PromptOK are returned by Prompt.
	PromptAnswer string
	PromptOK     bool

	Alerts   []string
	Confirms []string
	Prompts  []Prompted
}

// Prompted records one Prompt call.
type Prompted struct {
	Msg  string
	Seed string
}

// Alert records msg.
func (d *FakeDialogs) Alert(msg string) {
	d.Alerts = append(d.Alerts, msg)
}

// Confirm records msg and returns ConfirmAnswer.
func (d *FakeDialogs) Confirm(msg string) bool {
	d.Confirms = append(d.Confirms, msg)
	return d.ConfirmAnswer
}

// Prompt records the call and returns PromptAnswer, PromptOK.
func (d *FakeDialogs) Prompt(msg, seed string) (string, bool) {
	d.Prompts = append(d.Prompts, Prompted{Msg: msg, Seed: seed})
	return d.PromptAnswer, d.PromptOK
}
