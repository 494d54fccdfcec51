package forms

// FieldView is a field prepared for rendering.
type FieldView struct {
	Field
	Form    string
	Value   string
	Values  []string
	Error   string
	Control bool
}

// Checked reports whether option is among the field's values.
func (f FieldView) Checked(option string) bool {
	for _, v := range f.Values {
		if v == option {
			return true
		}
	}
	return false
}

// Selected reports whether option is the field's value.
func (f FieldView) Selected(option string) bool { return f.Value == option }

// View is everything a template needs to render one form instance.
type View struct {
	ID             string
	Name           string
	Path           string
	Multipart      bool
	Hidden         []FieldView
	Honeypot       []FieldView
	Fields         []FieldView
	State          State
	Message        string
	SubmitDisabled bool
	SubmitLabel    string
	SuccessMessage string
	Disclaimer     string
}

// Success reports whether the success notice is shown.
func (v View) Success() bool { return v.State == StateSuccess }

// Failed reports whether the error notice is shown.
func (v View) Failed() bool { return v.State == StateError }

// Sending reports whether a submission is in flight.
func (v View) Sending() bool { return v.State == StateSending }

// NewView renders inst in the given state. Fields inside hidden blocks are omitted.
func NewView(inst *Instance, path string, state State, message string, errs FieldErrors) View {
	def := inst.Def
	controls := map[string]bool{}
	for _, b := range def.Blocks {
		controls[b.Control] = true
	}
	v := View{
		ID:             inst.ID,
		Name:           def.Name,
		Path:           path,
		Multipart:      def.Multipart(),
		State:          state,
		Message:        message,
		SubmitDisabled: state.SubmitDisabled(),
		SubmitLabel:    def.SubmitLabel,
		SuccessMessage: def.SuccessMessage,
		Disclaimer:     def.Disclaimer,
	}
	if state == StateError && v.Message == "" {
		v.Message = GenericErrorMessage
	}
	for _, f := range def.Fields {
		if !inst.BlockVisible(f.Block) {
			continue
		}
		fv := FieldView{
			Field:   f,
			Form:    def.Name,
			Value:   inst.Value(f.Name),
			Values:  inst.Values(f.Name),
			Error:   errs[f.Name],
			Control: controls[f.Name],
		}
		switch f.Kind {
		case KindHidden:
			v.Hidden = append(v.Hidden, fv)
		case KindHoneypot:
			v.Honeypot = append(v.Honeypot, fv)
		default:
			v.Fields = append(v.Fields, fv)
		}
	}
	return v
}

// View renders the controller's instance in its current state.
func (c *Controller) View(path string) View {
	c.mu.Lock()
	state, msg, errs := c.state, c.errMsg, c.fieldErrs
	c.mu.Unlock()
	return NewView(c.inst, path, state, msg, errs)
}
