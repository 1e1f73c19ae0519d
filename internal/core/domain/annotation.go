package domain

// Style is the presentation state of an annotation.
type Style uint8

const (
	// StylePending marks an annotation that still shows the untranslated source text.
	StylePending Style = iota
	// StyleTranslated marks an annotation that shows translated text.
	StyleTranslated
)

// String returns the lowercase name of the style.
func (s Style) String() string {
	switch s {
	case StylePending:
		return "pending"
	case StyleTranslated:
		return "translated"
	default:
		return "unknown"
	}
}

// Annotation is a renderable overlay label.
// Serial is assigned once when the object is constructed and identifies it on the surface
// across reuse. An annotation is bound to at most one identity at a time.
type Annotation struct {
	Serial  uint64
	Text    string
	Style   Style
	Bounds  Rect
	Visible bool
}

// Reset clears the annotation so it can be handed out again.
func (a *Annotation) Reset() {
	a.Text = ""
	a.Style = StylePending
	a.Bounds = Rect{}
	a.Visible = false
}

// Appearance carries the display settings that apply to every annotation.
type Appearance struct {
	TextSize float64
	Opacity  float64
}
