// Code generated by hand. DO NOT EDIT.

package generated

type Dropper interface{ Drop() }

type S struct{}

func (*S) Drop() {} // want "empty drop implementation"
