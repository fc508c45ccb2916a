// Package fixture holds the sample graphs the CLI demo copies and the tests
// share.
package fixture

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"deepcopier/collection"
	"deepcopier/copier"
)

// Person is a plain aggregate without a parameterless initializer.
type Person struct {
	Name          string
	Age           int
	FavoriteBooks *collection.List[string]
}

// NewPerson builds a person from all of its fields.
func NewPerson(name string, age int, books *collection.List[string]) *Person {
	return &Person{Name: name, Age: age, FavoriteBooks: books}
}

// NewPersonNamed builds a person knowing only the name.
func NewPersonNamed(name string) *Person {
	return &Person{Name: name}
}

// SamplePerson returns the person used by the demo.
func SamplePerson() *Person {
	return NewPerson("Smith", 40, collection.NewList("Book_1", "Book_2", "Book_3"))
}

// Possibility is an ability an agent has.
type Possibility int

const (
	PossibilityKick Possibility = iota
	PossibilityPunch
)

func (p Possibility) String() string {
	switch p {
	case PossibilityKick:
		return "KICK"
	case PossibilityPunch:
		return "PUNCH"
	default:
		return "Possibility(" + strconv.Itoa(int(p)) + ")"
	}
}

// Power returns the strength of the possibility.
func (p Possibility) Power() int {
	switch p {
	case PossibilityKick:
		return 5
	case PossibilityPunch:
		return 10
	default:
		return 0
	}
}

var agentCounter atomic.Int64

// AgentCounter returns how many agents NewAgent has created so far.
func AgentCounter() int64 {
	return agentCounter.Load()
}

// Agent is an aggregate made of unexported fields only, with a counting
// parameterless initializer and a two-parameter one.
type Agent struct {
	age           *int
	zionCodes     [3]int
	suspectNames  []any
	possibilities *collection.SortedSet[Possibility]
	name          string
	left          *Agent
	right         *Agent
}

// NewAgent builds a numbered agent and bumps the agent counter.
func NewAgent() *Agent {
	a := newAgent()
	a.name += strconv.FormatInt(agentCounter.Add(1), 10)

	return a
}

// NewAgentPair builds an agent commanding left and right. It does not count.
func NewAgentPair(left, right *Agent) *Agent {
	a := newAgent()
	a.left, a.right = left, right

	return a
}

func newAgent() *Agent {
	age := 42

	return &Agent{
		age:          &age,
		zionCodes:    [3]int{111, 222, 333},
		suspectNames: []any{"Neo", "Trinity", "Morpheus"},
		name:         "Smith_",
	}
}

func (a *Agent) Name() string                                      { return a.name }
func (a *Agent) Age() *int                                         { return a.age }
func (a *Agent) Left() *Agent                                      { return a.left }
func (a *Agent) Right() *Agent                                     { return a.right }
func (a *Agent) ZionCodes() [3]int                                 { return a.zionCodes }
func (a *Agent) SuspectNames() []any                               { return a.suspectNames }
func (a *Agent) Possibilities() *collection.SortedSet[Possibility] { return a.possibilities }

func (a *Agent) SetPossibilities(p *collection.SortedSet[Possibility]) {
	a.possibilities = p
}

// SampleAgents returns the agent trio used by the demo: a commander built
// by the pair initializer and two counted agents.
func SampleAgents() *Agent {
	left, right := NewAgent(), NewAgent()
	smith := NewAgentPair(left, right)

	smith.SetPossibilities(collection.NewSortedSet(PossibilityPunch, PossibilityKick))
	left.SetPossibilities(collection.NewSortedSet(PossibilityPunch))
	right.SetPossibilities(collection.NewSortedSet(PossibilityPunch))

	return smith
}

// Node is a graph vertex used for cycle samples.
type Node struct {
	Name  string
	Left  *Node
	Other *Node
}

// SampleCycle returns a self-referencing node and a mutually referencing pair.
func SampleCycle() []*Node {
	x := &Node{Name: "X"}
	x.Left = x

	a, b := &Node{Name: "A"}, &Node{Name: "B"}
	a.Other, b.Other = b, a

	return []*Node{x, a, b}
}

// Samples lists the named samples the CLI understands.
var Samples = map[string]func() any{
	"person": func() any { return SamplePerson() },
	"agents": func() any { return SampleAgents() },
	"list":   func() any { return collection.NewList("Book_1", "Book_2", "Book_3") },
	"cycle":  func() any { return SampleCycle() },
}

// Sample builds the sample called name.
func Sample(name string) (any, error) {
	build, ok := Samples[name]
	if !ok {
		return nil, fmt.Errorf("unknown sample %q", name)
	}

	return build(), nil
}

// Register adds the fixture initializers to r.
func Register(r *copier.Registry) error {
	for _, fn := range []any{NewPerson, NewPersonNamed, NewAgent, NewAgentPair} {
		if err := r.RegisterInitializer(fn); err != nil {
			return fmt.Errorf("fixture: %w", err)
		}
	}

	return nil
}
