package domain

// Field is one named value of a request payload.
// Fragment marks a value that is already serialized XML and is embedded as-is.
type Field struct {
	Name     string
	Value    string
	Fragment bool
}

// SignedRequest is a fully formed payload for one operation. Fields are kept
// as an ordered slice: the digest covers their values in exactly this order.
type SignedRequest struct {
	Operation Operation
	Fields    []Field
	Digest    string
	Body      string // rendered XML document, hash element last
}

// FieldOrder returns the field names in signing order.
func (r *SignedRequest) FieldOrder() []string {
	names := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		names[i] = f.Name
	}
	return names
}

// Values returns the field values in signing order.
func (r *SignedRequest) Values() []string {
	values := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		values[i] = f.Value
	}
	return values
}

// Value looks up a field by name.
func (r *SignedRequest) Value(name string) (string, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}
