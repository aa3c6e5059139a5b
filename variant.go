package genlogo

import (
	"fmt"
	"strings"
)

// Variant is a preset logo text and luminance threshold.
type Variant struct {
	Name      string
	Text      string
	Threshold uint8
}

var (
	// TangCore is the logo used by the TangCore firmware
	TangCore = Variant{Name: "tangcore", Text: "TangCore", Threshold: 127}
	// SMSTang is the logo used by the SMSTang core, its thinner strokes
	// need a lower threshold
	SMSTang = Variant{Name: "smstang", Text: "SMSTang", Threshold: 50}
)

// Variants lists the known presets, the default first.
var Variants = []Variant{TangCore, SMSTang}

// LookupVariant returns the preset with the given name.
func LookupVariant(name string) (Variant, error) {
	for _, v := range Variants {
		if strings.EqualFold(v.Name, name) {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("unknown variant \"%s\"", name)
}

// Apply copies the text and threshold of v into o.
func (v Variant) Apply(o *Options) {
	o.Text = v.Text
	o.Threshold = v.Threshold
}
