package view

// FlashKind says how a one-shot message after a build change is styled.
type FlashKind string

const (
	FlashInfo    FlashKind = "info"
	FlashSuccess FlashKind = "success"
	FlashError   FlashKind = "error"
)

// Flash is carried across the 303 redirect that follows every build change.
type Flash struct {
	Kind    FlashKind `json:"kind"`
	Message string    `json:"message"`
}

// Class is the CSS class of the banner; unknown kinds render as info.
func (f Flash) Class() string {
	switch f.Kind {
	case FlashSuccess, FlashError:
		return "flash flash-" + string(f.Kind)
	}
	return "flash flash-" + string(FlashInfo)
}

// Role lets screen readers announce failed changes immediately.
func (f Flash) Role() string {
	if f.Kind == FlashError {
		return "alert"
	}
	return "status"
}
