package demo

// Version is the demo module version.
const Version = "1.0"

var internalCounter int

// Greeter greets by name.
type Greeter struct {
	Name string
}

// Greet returns a greeting.
func (g *Greeter) Greet() string {
	return "hello " + g.Name
}

func (g *Greeter) reset() {
	g.Name = ""
}

// New creates a Greeter.
func New(name string) *Greeter {
	return &Greeter{Name: name}
}

func helper() int {
	internalCounter++
	return internalCounter
}
