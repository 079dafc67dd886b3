package form2

import (
	"runtime/debug"

	"github.com/soypat/paramak"
	"github.com/soypat/paramak/form2/must2"
)

// NewProfile returns an empty profile builder.
func NewProfile() *must2.ProfileBuilder {
	return must2.NewProfile()
}

// Build returns the profile held by a builder.
func Build(b *must2.ProfileBuilder) (p paramak.Profile, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return b.Profile(), err
}
