package ports

// Actions are operator requests passed through to the host UI. A request
// against an identity that no longer resolves is a silent no-op, not an
// error: the backing object was destroyed after the caller last looked.
type Actions interface {
	// OpenProperties asks the host to open the properties dialog for a source.
	OpenProperties(uuid string) error

	// OpenFilters asks the host to open the filters editor for a source.
	OpenFilters(uuid string) error
}
