package domain

// Command describes one external tool invocation.
type Command struct {
	// Name is the executable, resolved against PATH when not absolute.
	Name string
	// Args are the arguments, excluding the executable itself.
	Args []string
	// Dir is the working directory; empty means the caller's cwd.
	Dir string
	// Env holds overrides applied on top of the process environment.
	Env map[string]string
}
