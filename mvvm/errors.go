package mvvm

import "errors"

var (
	// ErrInvalidConstructor is returned when a constructor is not a func producing one named type.
	ErrInvalidConstructor = errors.New("mvvm: invalid constructor")
	// ErrNotInterface is returned when an interface declaration names a non-interface type.
	ErrNotInterface = errors.New("mvvm: not an interface type")
	// ErrConflictingDeclaration indicates two different types declared under the same full name.
	ErrConflictingDeclaration = errors.New("mvvm: conflicting type declaration")
	// ErrDuplicateKey is returned by Templates.Add when the key is already present.
	ErrDuplicateKey = errors.New("mvvm: duplicated template key")
	// ErrMalformedTemplate indicates a matched view that cannot produce a template.
	ErrMalformedTemplate = errors.New("mvvm: malformed template")
	// ErrNotImplemented indicates a view-model that does not implement its sibling interface.
	ErrNotImplemented = errors.New("mvvm: view-model does not implement interface")
	// ErrNoTemplate is returned when no template is registered for a view-model.
	ErrNoTemplate = errors.New("mvvm: no template for view-model")
	// ErrViewModelMismatch is returned when a view factory receives the wrong view-model type.
	ErrViewModelMismatch = errors.New("mvvm: view-model type mismatch")
)
