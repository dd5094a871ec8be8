package ports

// WorkingDir owns the process working directory.
// Every change it makes through Preserve or Scope is undone before they return.
//
//go:generate mockgen -source=workdir.go -destination=mocks/mock_workdir.go -package=mocks
type WorkingDir interface {
	// SetWorkingDir changes into dirname(<entry script>)/rel, where the entry
	// script path is read from the environment variable envVar.
	// It returns the directory it changed into.
	SetWorkingDir(rel, envVar string) (string, error)

	// Preserve records the working directory, runs fn and changes back,
	// whether fn returns an error, succeeds or panics.
	Preserve(fn func() error) error

	// Scope changes into dir for the duration of fn. An empty dir runs fn in place.
	Scope(dir string, fn func() error) error
}
