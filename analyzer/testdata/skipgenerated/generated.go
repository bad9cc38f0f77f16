// Code generated by hand. DO NOT EDIT.

package skipgenerated

type Dropper interface{ Drop() }

type S struct{}

func (*S) Drop() {}
