package simplex

// Dual would construct the dual linear program of the current dictionary.
// It is a declared extension point, deliberately left unimplemented: calling
// it always fails with ErrNotImplemented and never mutates the receiver.
func (d *Dictionary) Dual() (*Dictionary, error) {
	if d == nil {
		return nil, ErrNilDictionary
	}

	return nil, ErrNotImplemented
}
