package model

// InputFile is a fully buffered upload. Name must contain a "." so output
// names can be derived from it.
type InputFile struct {
	Name string
	Data []byte
}

// Variant is one serialized output document and the archive entry name it goes under.
type Variant struct {
	Name string
	Data []byte
}

type Result struct {
	// BaseName is the input stem; the archive is offered as BaseName + ".zip"
	BaseName  string
	FileNames []string
	Zip       []byte
}

func (r Result) ZipName() string {
	return r.BaseName + ".zip"
}
