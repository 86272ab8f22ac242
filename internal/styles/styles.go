package styles

// Option is one entry of a style catalog. Prompt is the generation
// template handed to the synthesis call.
type Option struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
	Prompt      string `json:"-"`
}

// Catalog is an immutable set of style options for one workflow. Style
// identifiers from one workflow are not valid in another.
type Catalog []Option

// Find returns the option with the given identifier, or false when the
// identifier is not part of this catalog.
func (c Catalog) Find(value string) (Option, bool) {
	for _, o := range c {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}
