package voronoi

// Красно-черное дерево с дополнительными ссылками previous/next на соседей
// в порядке обхода. Ключей нет: порядок задается местом вставки (insertSuccessor),
// поэтому одно и то же дерево служит пляжной линией и очередью событий.
type rbt struct {
	root *rbtNode
	// самый левый узел
	first *rbtNode
	size  int
}

type rbtNodeValue interface {
	bindToNode(node *rbtNode)
	treeNode() *rbtNode
}

type rbtNode struct {
	value    rbtNodeValue
	left     *rbtNode
	right    *rbtNode
	parent   *rbtNode
	previous *rbtNode
	next     *rbtNode
	red      bool
}

func (t *rbt) empty() bool { return t.root == nil }

// insertSuccessor вставляет значение сразу после node; node == nil - вставка в начало
func (t *rbt) insertSuccessor(node *rbtNode, vsuccessor rbtNodeValue) *rbtNode {
	successor := &rbtNode{value: vsuccessor}
	vsuccessor.bindToNode(successor)
	t.size++

	var parent *rbtNode
	if node != nil {
		successor.previous = node
		successor.next = node.next
		if node.next != nil {
			node.next.previous = successor
		}
		node.next = successor
		if node.right != nil {
			node = t.getFirst(node.right)
			node.left = successor
		} else {
			node.right = successor
		}
		parent = node
	} else if t.root != nil {
		node = t.getFirst(t.root)
		successor.next = node
		node.previous = successor
		node.left = successor
		parent = node
		t.first = successor
	} else {
		t.root = successor
		t.first = successor
	}
	successor.parent = parent
	successor.red = true

	var grandpa, uncle *rbtNode
	node = successor
	for parent != nil && parent.red {
		grandpa = parent.parent
		if parent == grandpa.left {
			uncle = grandpa.right
			if uncle != nil && uncle.red {
				parent.red = false
				uncle.red = false
				grandpa.red = true
				node = grandpa
			} else {
				if node == parent.right {
					t.rotateLeft(parent)
					node = parent
					parent = node.parent
				}
				parent.red = false
				grandpa.red = true
				t.rotateRight(grandpa)
			}
		} else {
			uncle = grandpa.left
			if uncle != nil && uncle.red {
				parent.red = false
				uncle.red = false
				grandpa.red = true
				node = grandpa
			} else {
				if node == parent.left {
					t.rotateRight(parent)
					node = parent
					parent = node.parent
				}
				parent.red = false
				grandpa.red = true
				t.rotateLeft(grandpa)
			}
		}
		parent = node.parent
	}
	t.root.red = false
	return successor
}

func (t *rbt) removeNode(node *rbtNode) {
	t.size--
	if t.first == node {
		t.first = node.next
	}
	if node.next != nil {
		node.next.previous = node.previous
	}
	if node.previous != nil {
		node.previous.next = node.next
	}
	node.next = nil
	node.previous = nil

	parent := node.parent
	left := node.left
	right := node.right
	var next *rbtNode
	if left == nil {
		next = right
	} else if right == nil {
		next = left
	} else {
		next = t.getFirst(right)
	}
	if parent != nil {
		if parent.left == node {
			parent.left = next
		} else {
			parent.right = next
		}
	} else {
		t.root = next
	}

	var isRed bool
	if left != nil && right != nil {
		isRed = next.red
		next.red = node.red
		next.left = left
		left.parent = next
		if next != right {
			parent = next.parent
			next.parent = node.parent
			node = next.right
			parent.left = node
			next.right = right
			right.parent = next
		} else {
			next.parent = parent
			parent = next
			node = next.right
		}
	} else {
		isRed = node.red
		node = next
	}
	if node != nil {
		node.parent = parent
	}
	if isRed {
		return
	}
	if node != nil && node.red {
		node.red = false
		return
	}

	var sibling *rbtNode
	for node != t.root {
		if node == parent.left {
			sibling = parent.right
			if sibling.red {
				sibling.red = false
				parent.red = true
				t.rotateLeft(parent)
				sibling = parent.right
			}
			if (sibling.left != nil && sibling.left.red) || (sibling.right != nil && sibling.right.red) {
				if sibling.right == nil || !sibling.right.red {
					sibling.left.red = false
					sibling.red = true
					t.rotateRight(sibling)
					sibling = parent.right
				}
				sibling.red = parent.red
				parent.red = false
				sibling.right.red = false
				t.rotateLeft(parent)
				node = t.root
				break
			}
		} else {
			sibling = parent.left
			if sibling.red {
				sibling.red = false
				parent.red = true
				t.rotateRight(parent)
				sibling = parent.left
			}
			if (sibling.left != nil && sibling.left.red) || (sibling.right != nil && sibling.right.red) {
				if sibling.left == nil || !sibling.left.red {
					sibling.right.red = false
					sibling.red = true
					t.rotateLeft(sibling)
					sibling = parent.left
				}
				sibling.red = parent.red
				parent.red = false
				sibling.left.red = false
				t.rotateRight(parent)
				node = t.root
				break
			}
		}
		sibling.red = true
		node = parent
		parent = parent.parent
		if node.red {
			break
		}
	}
	if node != nil {
		node.red = false
	}
}

func (t *rbt) rotateLeft(node *rbtNode) {
	p := node
	q := node.right
	parent := p.parent
	if parent != nil {
		if parent.left == p {
			parent.left = q
		} else {
			parent.right = q
		}
	} else {
		t.root = q
	}
	q.parent = parent
	p.parent = q
	p.right = q.left
	if p.right != nil {
		p.right.parent = p
	}
	q.left = p
}

func (t *rbt) rotateRight(node *rbtNode) {
	p := node
	q := node.left
	parent := p.parent
	if parent != nil {
		if parent.left == p {
			parent.left = q
		} else {
			parent.right = q
		}
	} else {
		t.root = q
	}
	q.parent = parent
	p.parent = q
	p.left = q.right
	if p.left != nil {
		p.left.parent = p
	}
	q.right = p
}

func (t *rbt) getFirst(node *rbtNode) *rbtNode {
	for node.left != nil {
		node = node.left
	}
	return node
}
