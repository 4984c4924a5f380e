package provider

// Ref is the token the soft cache references weakly. A file object holds
// its Ref and the Ref points back at the object, so the pair is
// collected together once callers drop the object.
type Ref struct {
	file FileObject
}

// NewRef returns the token for file.
func NewRef(file FileObject) *Ref {
	return &Ref{file: file}
}

// File returns the object the token belongs to.
func (r *Ref) File() FileObject {
	return r.file
}
