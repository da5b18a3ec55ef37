package treap

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[T any] struct {
	idTable map[*node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(n *node[T]) int {
	return ids.idTable[n]
}

func (ids *nodeids[T]) alloc(n *node[T]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// eachNode visits the nodes of t in physical pre-order, i.e. with children
// as stored, regardless of pending reversals.
func (t *Tree[T]) eachNode(fn func(n *node[T], depth int) error) error {
	var walk func(*node[T], int) error
	walk = func(n *node[T], depth int) error {
		if n == nil {
			return nil
		}
		if err := fn(n, depth); err != nil {
			return err
		}
		if err := walk(n.left, depth+1); err != nil {
			return err
		}
		return walk(n.right, depth+1)
	}
	return walk(t.root, 0)
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Children are drawn as stored, nodes with pending
// tags are highlighted.
func Tree2Dot[T any](t *Tree[T], w io.Writer) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrIllegalArguments)
	}
	ids := newtable[T]()
	var nodelist, edgelist strings.Builder
	nilid := 100000
	edge := func(from int, child *node[T]) {
		if child == nil {
			nilid++
			fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode())
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", from, nilid)
			return
		}
		fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", from, ids.alloc(child))
	}
	_ = t.eachNode(func(n *node[T], _ int) error {
		ID := ids.alloc(n)
		label := fmt.Sprintf("%v\\n#%d Σ%v", n.value, n.size, n.sum)
		if n.rev {
			label += "\\n⇄"
		}
		if n.hasAdd {
			label += fmt.Sprintf("\\n+%v", n.add)
		}
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(n.rev || n.hasAdd))
		if n.left != nil || n.right != nil {
			edge(ID, n.left)
			edge(ID, n.right)
		}
		return nil
	})
	var err error
	write := func(s string) {
		if err == nil {
			_, err = io.WriteString(w, s)
		}
	}
	write("strict digraph {\n")
	write("\tnode [fontname=Arial,fontsize=12];\n")
	write(nodelist.String())
	write(edgelist.String())
	write("}\n")
	if err != nil {
		tracer().Errorf("treap DOT: %s", err.Error())
	}
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=point]"
}

func nodeDotStyles(tagged bool) string {
	s := ",style=filled,shape=box"
	if tagged {
		s += ",fillcolor=\"#FFBB88\""
	} else {
		s += ",fillcolor=\"#a3d7e4\""
	}
	return s
}
