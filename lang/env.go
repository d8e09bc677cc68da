package lang

// Env holds the global variable bindings for one interpreter session.
// The language has a single scope, so there is no parent chain.
type Env struct {
	values map[string]Value
}

// NewEnv creates an empty environment.
func NewEnv() *Env {
	return &Env{
		values: make(map[string]Value),
	}
}

// Define binds name to value, overwriting any existing binding.
func (e *Env) Define(name string, val Value) {
	e.values[name] = val
}

// Get retrieves a binding.
func (e *Env) Get(name string) (Value, bool) {
	val, ok := e.values[name]
	return val, ok
}

// Len reports the number of bindings.
func (e *Env) Len() int {
	return len(e.values)
}
