package export

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/milk9111/gardenpuzzle/levels"
)

type nodeKind int

const (
	nodeObject nodeKind = iota
	nodeArray
	nodeNumber
	nodeString
	nodeBool
	// nodeSymbol is written verbatim, without quotes.
	nodeSymbol
)

type field struct {
	key   string
	value *node
}

// node is one value of the document tree. Objects keep their key order.
type node struct {
	kind   nodeKind
	fields []field
	items  []*node
	num    int
	str    string
	b      bool
}

func objectNode(fields ...field) *node { return &node{kind: nodeObject, fields: fields} }
func arrayNode(items ...*node) *node   { return &node{kind: nodeArray, items: items} }
func numberNode(n int) *node           { return &node{kind: nodeNumber, num: n} }
func stringNode(s string) *node        { return &node{kind: nodeString, str: s} }
func boolNode(b bool) *node            { return &node{kind: nodeBool, b: b} }
func symbolNode(s string) *node        { return &node{kind: nodeSymbol, str: s} }

func (n *node) scalar() bool {
	return n.kind != nodeObject && n.kind != nodeArray
}

// numeric arrays are written on one line.
func (n *node) numeric() bool {
	if n.kind != nodeArray || len(n.items) == 0 {
		return false
	}
	for _, it := range n.items {
		if it.kind != nodeNumber {
			return false
		}
	}
	return true
}

// flat objects hold only scalar values and are written on one line.
func (n *node) flat() bool {
	if n.kind != nodeObject || len(n.fields) == 0 {
		return false
	}
	for _, f := range n.fields {
		if !f.value.scalar() {
			return false
		}
	}
	return true
}

// documentNode builds the tree for a level document. Key names and order
// follow the json tags of levels.Document.
func documentNode(doc levels.Document) *node {
	rows := make([]*node, 0, len(doc.Map))
	for _, row := range doc.Map {
		cells := make([]*node, 0, len(row))
		for _, v := range row {
			cells = append(cells, numberNode(v))
		}
		rows = append(rows, arrayNode(cells...))
	}

	objects := make([]*node, 0, len(doc.Objects))
	for _, o := range doc.Objects {
		fields := []field{
			{"type", stringNode(o.Type)},
			{"x", numberNode(o.X)},
			{"y", numberNode(o.Y)},
			{"dir", stringNode(o.Dir)},
		}
		if o.IsSafe != nil {
			fields = append(fields, field{"isSafe", boolNode(*o.IsSafe)})
		}
		if o.IsActive != nil {
			fields = append(fields, field{"isActive", boolNode(*o.IsActive)})
		}
		if o.Color != "" {
			fields = append(fields, field{"color", stringNode(o.Color)})
		}
		objects = append(objects, objectNode(fields...))
	}

	items := make([]*node, 0, len(doc.Items))
	for _, it := range doc.Items {
		items = append(items, objectNode(
			field{"type", stringNode(it.Type)},
			field{"x", numberNode(it.X)},
			field{"y", numberNode(it.Y)},
		))
	}

	chars := make([]*node, 0, len(doc.Characters))
	for _, c := range doc.Characters {
		chars = append(chars, stringNode(c))
	}

	return objectNode(
		field{"map", arrayNode(rows...)},
		field{"objects", arrayNode(objects...)},
		field{"items", arrayNode(items...)},
		field{"characters", arrayNode(chars...)},
	)
}

type writer struct {
	sb         strings.Builder
	bareKeys   bool
	indentUnit string
}

func (w *writer) indent(depth int) {
	for i := 0; i < depth; i++ {
		w.sb.WriteString(w.indentUnit)
	}
}

func (w *writer) key(k string) {
	if w.bareKeys {
		w.sb.WriteString(k)
	} else {
		w.sb.WriteString(strconv.Quote(k))
	}
	w.sb.WriteString(": ")
}

func (w *writer) write(n *node, depth int) {
	switch n.kind {
	case nodeNumber:
		w.sb.WriteString(strconv.Itoa(n.num))
	case nodeString:
		b, _ := json.Marshal(n.str)
		w.sb.Write(b)
	case nodeBool:
		w.sb.WriteString(strconv.FormatBool(n.b))
	case nodeSymbol:
		w.sb.WriteString(n.str)
	case nodeArray:
		w.writeArray(n, depth)
	case nodeObject:
		w.writeObject(n, depth)
	}
}

func (w *writer) writeArray(n *node, depth int) {
	if len(n.items) == 0 {
		w.sb.WriteString("[]")
		return
	}
	if n.numeric() {
		w.sb.WriteByte('[')
		for i, it := range n.items {
			if i > 0 {
				w.sb.WriteString(", ")
			}
			w.write(it, depth+1)
		}
		w.sb.WriteByte(']')
		return
	}
	w.sb.WriteString("[\n")
	for i, it := range n.items {
		w.indent(depth + 1)
		w.write(it, depth+1)
		if i < len(n.items)-1 {
			w.sb.WriteByte(',')
		}
		w.sb.WriteByte('\n')
	}
	w.indent(depth)
	w.sb.WriteByte(']')
}

func (w *writer) writeObject(n *node, depth int) {
	if len(n.fields) == 0 {
		w.sb.WriteString("{}")
		return
	}
	if n.flat() {
		w.sb.WriteString("{ ")
		for i, f := range n.fields {
			if i > 0 {
				w.sb.WriteString(", ")
			}
			w.key(f.key)
			w.write(f.value, depth+1)
		}
		w.sb.WriteString(" }")
		return
	}
	w.sb.WriteString("{\n")
	for i, f := range n.fields {
		w.indent(depth + 1)
		w.key(f.key)
		w.write(f.value, depth+1)
		if i < len(n.fields)-1 {
			w.sb.WriteByte(',')
		}
		w.sb.WriteByte('\n')
	}
	w.indent(depth)
	w.sb.WriteByte('}')
}
