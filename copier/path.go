package copier

import (
	"fmt"
	"strconv"
	"strings"
)

// trail tracks the location of the value being copied as a stack of
// segments: ".Field", "[3]" or "[key]". The root segment is the type name.
type trail struct {
	segments []string
}

func (p *trail) push(seg string) {
	p.segments = append(p.segments, seg)
}

func (p *trail) pop() {
	if len(p.segments) > 0 {
		p.segments = p.segments[:len(p.segments)-1]
	}
}

func (p *trail) reset(root string) {
	p.segments = append(p.segments[:0], root)
}

func (p *trail) String() string {
	return strings.Join(p.segments, "")
}

func fieldSegment(name string) string {
	return "." + name
}

func indexSegment(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}

func keySegment(key any) string {
	return fmt.Sprintf("[%v]", key)
}
