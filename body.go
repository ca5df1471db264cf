package broadphase

import "fmt"

// Body is a participant tracked by a broad phase. The broad phase keys on
// pointer identity, never mutates a Body, and never frees one. UserData is
// free for the caller.
type Body struct {
	id       int
	UserData interface{}
}

var bodyCur int

func NewBody() *Body {
	body := &Body{id: bodyCur}
	bodyCur++
	return body
}

func (b *Body) String() string {
	return fmt.Sprint("Body ", b.id)
}
