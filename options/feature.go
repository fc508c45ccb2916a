package options

import "strings"

type FeatureEnum int

const (
	FeatureUnexported        FeatureEnum = 1 << iota // read and write unexported struct fields
	FeatureInitializers                              // build aggregates through registered initializers
	FeatureContainerFallback                         // replace unknown containers with the category default
	FeatureInteriorPointers                          // resolve pointers into struct fields and array slots of the copy

	FeatureAll  FeatureEnum = (1 << iota) - 1 // all features combined
	FeatureNone FeatureEnum = 0               // no features selected
)

var featureNames = []struct {
	feature FeatureEnum
	name    string
}{
	{FeatureUnexported, "unexported"},
	{FeatureInitializers, "initializers"},
	{FeatureContainerFallback, "container_fallback"},
	{FeatureInteriorPointers, "interior_pointers"},
}

// Has reports whether every feature in want is enabled.
func (f FeatureEnum) Has(want FeatureEnum) bool {
	return f&want == want
}

// With returns f with the given features switched on or off.
func (f FeatureEnum) With(feature FeatureEnum, on bool) FeatureEnum {
	if on {
		return f | feature
	}

	return f &^ feature
}

func (f FeatureEnum) String() string {
	if f == FeatureNone {
		return "none"
	}

	var parts []string
	for _, fn := range featureNames {
		if f.Has(fn.feature) {
			parts = append(parts, fn.name)
		}
	}

	return strings.Join(parts, "|")
}
