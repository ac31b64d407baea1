// Package svg is the drawing surface a roll is rendered into: a small
// element tree that can be cleared, queried by class and written out as a
// standalone SVG document.
package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/jsphweid/pianoroll/model"
)

const namespace = "http://www.w3.org/2000/svg"

type Attr struct {
	Name  string
	Value string
}

type Element struct {
	Tag   string
	ID    string
	Class string
	Attrs []Attr

	// Rect holds the geometry of <rect> elements. It is the value queries
	// read; the x/y/width/height attributes are derived from it on output.
	Rect *model.NormalizedRect

	Children []*Element
	parent   *Element
}

func NewElement(tag, class string) *Element {
	return &Element{Tag: tag, Class: class}
}

func NewRect(class string, r model.NormalizedRect) *Element {
	return &Element{Tag: "rect", Class: class, Rect: &r}
}

func (e *Element) Set(name, value string) *Element {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return e
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
	return e
}

func (e *Element) Get(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

func (e *Element) Parent() *Element {
	return e.parent
}

func (e *Element) Append(child *Element) {
	child.detachFromParent()
	child.parent = e
	e.Children = append(e.Children, child)
}

func (e *Element) InsertFirst(child *Element) {
	child.detachFromParent()
	child.parent = e
	e.Children = append([]*Element{child}, e.Children...)
}

func (e *Element) detachFromParent() {
	if e.parent != nil {
		e.parent.removeChild(e)
	}
}

func (e *Element) removeChild(child *Element) bool {
	for i, c := range e.Children {
		if c == child {
			e.Children = append(e.Children[:i], e.Children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// walk visits e and its descendants in document order.
func (e *Element) walk(fn func(*Element)) {
	fn(e)
	for _, c := range e.Children {
		c.walk(fn)
	}
}

func (e *Element) QueryClass(class string) []*Element {
	var res []*Element
	for _, c := range e.Children {
		c.walk(func(el *Element) {
			if el.Class == class {
				res = append(res, el)
			}
		})
	}
	return res
}

func (e *Element) QueryFirst(class string) *Element {
	if found := e.QueryClass(class); len(found) > 0 {
		return found[0]
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (e *Element) MarshalXML(enc *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: e.Tag}
	start.Attr = nil
	if e.ID != "" {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "id"}, Value: e.ID})
	}
	if e.Class != "" {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "class"}, Value: e.Class})
	}
	if e.Rect != nil {
		start.Attr = append(start.Attr,
			xml.Attr{Name: xml.Name{Local: "x"}, Value: formatFloat(e.Rect.X)},
			xml.Attr{Name: xml.Name{Local: "y"}, Value: formatFloat(e.Rect.Y)},
			xml.Attr{Name: xml.Name{Local: "width"}, Value: formatFloat(e.Rect.Width)},
			xml.Attr{Name: xml.Name{Local: "height"}, Value: formatFloat(e.Rect.Height)},
		)
	}
	for _, a := range e.Attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}

	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, c := range e.Children {
		if err := enc.Encode(c); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

// Surface is the root <svg> of one roll card. A nil or detached surface is
// an invalid target and ignores every mutation.
type Surface struct {
	root     *Element
	detached bool
}

func NewSurface(id string) *Surface {
	root := NewElement("svg", "piano-roll-svg")
	root.ID = id
	root.Set("xmlns", namespace)
	root.Set("preserveAspectRatio", "none")
	return &Surface{root: root}
}

func (s *Surface) Valid() bool {
	return s != nil && !s.detached
}

func (s *Surface) ID() string {
	if s == nil {
		return ""
	}
	return s.root.ID
}

// Root exposes the tree for rendering; nil for an invalid surface.
func (s *Surface) Root() *Element {
	if !s.Valid() {
		return nil
	}
	return s.root
}

func (s *Surface) Detach() {
	if s != nil {
		s.detached = true
	}
}

func (s *Surface) Detached() bool {
	return s == nil || s.detached
}

func (s *Surface) Clear() {
	if !s.Valid() {
		return
	}
	for _, c := range s.root.Children {
		c.parent = nil
	}
	s.root.Children = nil
}

func (s *Surface) SetViewBox(x, y, w, h float64) {
	if !s.Valid() {
		return
	}
	s.root.Set("viewBox", fmt.Sprintf("%v %v %v %v", formatFloat(x), formatFloat(y), formatFloat(w), formatFloat(h)))
}

func (s *Surface) ViewBox() (string, bool) {
	if s == nil {
		return "", false
	}
	return s.root.Get("viewBox")
}

func (s *Surface) SetSize(width, height string) {
	if !s.Valid() {
		return
	}
	s.root.Set("width", width)
	s.root.Set("height", height)
}

func (s *Surface) Append(e *Element) {
	if s.Valid() {
		s.root.Append(e)
	}
}

func (s *Surface) InsertFirst(e *Element) {
	if s.Valid() {
		s.root.InsertFirst(e)
	}
}

// Remove takes e out of the tree wherever it sits.
func (s *Surface) Remove(e *Element) bool {
	if !s.Valid() || e == nil || e.parent == nil {
		return false
	}
	return e.parent.removeChild(e)
}

func (s *Surface) QueryClass(class string) []*Element {
	if !s.Valid() {
		return nil
	}
	return s.root.QueryClass(class)
}

func (s *Surface) QueryFirst(class string) *Element {
	if !s.Valid() {
		return nil
	}
	return s.root.QueryFirst(class)
}

func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	if s != nil {
		enc := xml.NewEncoder(&buf)
		if err := enc.Encode(s.root); err != nil {
			return 0, err
		}
		if err := enc.Flush(); err != nil {
			return 0, err
		}
	}
	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

func (s *Surface) String() string {
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return ""
	}
	return buf.String()
}
