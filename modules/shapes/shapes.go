// Package shapes is a demo module: a Shape capability, a few implementations,
// and one factory of each kind targeting Shape.
package shapes

import (
	"fmt"
	"math"
)

// Shape is the capability both shape factories target.
type Shape interface {
	Area() float64
	Describe() string
}

// Circle is a Shape.
type Circle struct {
	Radius float64
}

func (c *Circle) Area() float64 { return math.Pi * c.Radius * c.Radius }

func (c *Circle) Describe() string { return fmt.Sprintf("circle r=%g", c.Radius) }

// Clone returns an independent copy for exclusive registrations.
func (c *Circle) Clone() any {
	cp := *c
	return &cp
}

// Square is a Shape.
type Square struct {
	Side float64
}

func (s *Square) Area() float64 { return s.Side * s.Side }

func (s *Square) Describe() string { return fmt.Sprintf("square side=%g", s.Side) }

// Logger implements no capability. Auto-wiring leaves it alone.
type Logger struct {
	Prefix string
}

func (l *Logger) Printf(format string, args ...any) string {
	return l.Prefix + fmt.Sprintf(format, args...)
}
