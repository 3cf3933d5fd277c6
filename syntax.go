package textlens

import (
	"strings"
)

// Relation labels used on syntax tree nodes.
const (
	RelPredicate   = "pred"
	RelRoot        = "root"
	RelSubject     = "subj"
	RelObject      = "obj"
	RelAuxiliary   = "aux"
	RelDeterminer  = "det"
	RelModifier    = "mod"
	RelPreposition = "prep"
	RelPrepObject  = "pobj"
	RelCoordinator = "cc"
	RelConjunct    = "conj"
	RelPunct       = "punct"
	RelDependent   = "dep"
	RelLeaf        = "leaf"
	RelDocument    = "document"
)

// depArena holds one sentence's dependency structure addressed by token
// index. head[i] is -1 only for the root.
type depArena struct {
	words []string
	tags  []Tag
	head  []int
	rel   []string
	root  int

	numeral []bool
	punct   []bool

	// phead[i] is the head noun of the phrase token i opens or continues,
	// or -1. nextVerb[i] is the first verb after i across adverbs, or -1.
	phead    []int
	nextVerb []int

	// Nearest index before i, or -1. lastBare tracks nouns and pronouns
	// that head no following phrase.
	lastVerb     []int
	lastNominal  []int
	lastModifier []int
	lastBare     []int
	lastNonAdv   []int

	// premodStart[i] starts the run of non-noun pre-modifiers ending at i-1.
	premodStart []int
}

// BuildSyntax builds one dependency tree per sentence. A single sentence
// yields its own root; several are gathered under a "document" node. tags
// holds one entry per token across all sentences, in order.
func BuildSyntax(sents []Sentence, tags []POSTag) SyntaxNode {
	var roots []SyntaxNode
	offset := 0
	for _, s := range sents {
		n := len(s.Tokens)
		if n == 0 {
			continue
		}
		words := make([]string, n)
		stags := make([]Tag, n)
		for i, tok := range s.Tokens {
			words[i] = tok.Word
			if offset+i < len(tags) {
				stags[i] = tags[offset+i].Tag
			} else {
				stags[i] = TagOther
			}
		}
		offset += n
		roots = append(roots, buildArena(words, stags).materialize())
	}

	switch len(roots) {
	case 0:
		return SyntaxNode{Tag: TagOther, Relation: RelLeaf, Children: []SyntaxNode{}}
	case 1:
		return roots[0]
	}
	return SyntaxNode{Tag: TagOther, Relation: RelDocument, Children: roots}
}

// buildArena runs in time linear in the sentence length.
func buildArena(words []string, tags []Tag) *depArena {
	n := len(words)
	a := &depArena{
		words: words,
		tags:  tags,
		head:  make([]int, n),
		rel:   make([]string, n),
	}
	a.index()
	a.root = a.findRoot()
	for i := range a.head {
		a.head[i] = -1
	}
	for i := 0; i < n; i++ {
		if i == a.root {
			continue
		}
		a.head[i], a.rel[i] = a.attach(i)
	}
	a.repair()
	return a
}

// index fills the per-token lookup tables used by attach.
func (a *depArena) index() {
	n := len(a.tags)

	a.numeral = make([]bool, n)
	a.punct = make([]bool, n)
	for i, t := range a.tags {
		if t == TagOther {
			a.numeral[i] = numeralRE.MatchString(a.words[i])
			a.punct[i] = !isWordToken(a.words[i])
		}
	}

	a.phead = make([]int, n)
	a.nextVerb = make([]int, n)
	for i := n - 1; i >= 0; i-- {
		a.phead[i], a.nextVerb[i] = -1, -1
		k := i + 1
		if k == n {
			continue
		}
		switch {
		case a.tags[k] == TagNoun && (k+1 == n || a.tags[k+1] != TagNoun):
			a.phead[i] = k
		case a.isPremod(k):
			a.phead[i] = a.phead[k]
		}
		switch a.tags[k] {
		case TagVerb:
			a.nextVerb[i] = k
		case TagAdverb:
			a.nextVerb[i] = a.nextVerb[k]
		}
	}

	a.lastVerb = make([]int, n)
	a.lastNominal = make([]int, n)
	a.lastModifier = make([]int, n)
	a.lastBare = make([]int, n)
	a.lastNonAdv = make([]int, n)
	a.premodStart = make([]int, n)
	verb, nominal, modifier, bare, nonAdv := -1, -1, -1, -1, -1
	for i, t := range a.tags {
		a.lastVerb[i] = verb
		a.lastNominal[i] = nominal
		a.lastModifier[i] = modifier
		a.lastBare[i] = bare
		a.lastNonAdv[i] = nonAdv

		a.premodStart[i] = i
		if i > 0 && a.isPremod(i-1) && a.tags[i-1] != TagNoun {
			a.premodStart[i] = a.premodStart[i-1]
		}

		switch t {
		case TagVerb:
			verb = i
		case TagNoun, TagPronoun:
			nominal = i
			if a.phead[i] < 0 {
				bare = i
			}
		case TagAdjective, TagAdverb:
			modifier = i
		}
		if t != TagAdverb {
			nonAdv = i
		}
	}
}

// isPremod reports whether token i can sit inside a noun phrase before its head.
func (a *depArena) isPremod(i int) bool {
	switch a.tags[i] {
	case TagDeterminer, TagAdjective, TagNoun:
		return true
	}
	return a.numeral[i]
}

func (a *depArena) findRoot() int {
	for i, t := range a.tags {
		if t != TagVerb {
			continue
		}
		// Last verb of the first verb group; adverbs may sit inside it.
		last := i
		for k := i + 1; k < len(a.tags); k++ {
			if a.tags[k] == TagVerb {
				last = k
			} else if a.tags[k] != TagAdverb {
				break
			}
		}
		a.rel[last] = RelPredicate
		return last
	}
	for _, want := range []Tag{TagNoun, TagPronoun} {
		for i, t := range a.tags {
			if t == want {
				a.rel[i] = RelRoot
				return i
			}
		}
	}
	for i := range a.tags {
		if !a.punct[i] {
			a.rel[i] = RelRoot
			return i
		}
	}
	a.rel[0] = RelRoot
	return 0
}

// backHead finds the nearest preceding head by precedence verb > noun >
// modifier, falling back to the root.
func (a *depArena) backHead(i int) int {
	for _, k := range [...]int{a.lastVerb[i], a.lastNominal[i], a.lastModifier[i]} {
		if k >= 0 {
			return k
		}
	}
	return a.root
}

func (a *depArena) attach(i int) (int, string) {
	tag := a.tags[i]

	switch {
	case a.punct[i]:
		return a.root, RelPunct

	case tag == TagDeterminer || tag == TagAdjective || a.numeral[i]:
		if h := a.phead[i]; h >= 0 {
			if tag == TagDeterminer {
				return h, RelDeterminer
			}
			return h, RelModifier
		}
		if tag == TagDeterminer {
			// "I like that": the determiner stands alone.
			return a.attachNominal(i)
		}
		return a.backHead(i), RelModifier

	case tag == TagNoun:
		if i+1 < len(a.tags) && a.tags[i+1] == TagNoun {
			if h := a.phead[i]; h >= 0 {
				return h, RelModifier
			}
		}
		return a.attachNominal(i)

	case tag == TagPronoun:
		return a.attachNominal(i)

	case tag == TagAdverb:
		if i+1 < len(a.tags) && a.tags[i+1] == TagAdjective {
			return i + 1, RelModifier
		}
		if v := a.lastVerb[i]; v >= 0 {
			return v, RelModifier
		}
		return a.root, RelModifier

	case tag == TagPreposition:
		return a.backHead(i), RelPreposition

	case tag == TagConjunction:
		return a.backHead(i), RelCoordinator

	case tag == TagVerb:
		if isAuxiliary(a.words[i]) {
			if v := a.nextVerb[i]; v >= 0 {
				return v, RelAuxiliary
			}
		}
		if p := a.lastNonAdv[i]; p >= 0 && a.tags[p] == TagConjunction {
			if v := a.lastVerb[p]; v >= 0 {
				return v, RelConjunct
			}
		}
		return a.root, RelDependent
	}

	return a.backHead(i), RelDependent
}

// phraseStart walks back from a head noun over the pre-modifiers that
// attach to it.
func (a *depArena) phraseStart(i int) int {
	s := a.premodStart[i]
	for s > 0 && a.tags[s-1] == TagNoun && a.phead[s-1] == i {
		s = a.premodStart[s-1]
	}
	return s
}

// attachNominal places a head noun or pronoun.
func (a *depArena) attachNominal(i int) (int, string) {
	if p := a.phraseStart(i) - 1; p >= 0 {
		switch a.tags[p] {
		case TagPreposition:
			return p, RelPrepObject
		case TagConjunction:
			if k := a.lastBare[p]; k >= 0 {
				return k, RelConjunct
			}
		}
	}
	if i < a.root {
		return a.root, RelSubject
	}
	if v := a.lastVerb[i]; v >= 0 {
		return v, RelObject
	}
	return a.root, RelDependent
}

// repair reattaches to the root any token whose head chain does not reach
// the root, which removes self-loops, cycles and orphans. Tokens are
// visited in order, so reattaching one also reconnects everything hanging
// below it.
func (a *depArena) repair() {
	n := len(a.head)
	children := make([][]int, n)
	for i, h := range a.head {
		if i != a.root && h >= 0 && h < n && h != i {
			children[h] = append(children[h], i)
		}
	}

	reached := make([]bool, n)
	var stack []int
	mark := func(from int) {
		stack = append(stack[:0], from)
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if reached[top] {
				continue
			}
			reached[top] = true
			stack = append(stack, children[top]...)
		}
	}

	mark(a.root)
	for i := 0; i < n; i++ {
		if !reached[i] {
			a.head[i], a.rel[i] = a.root, RelDependent
			mark(i)
		}
	}
}

// materialize converts the arena into a SyntaxNode tree without recursion.
// Children keep token order.
func (a *depArena) materialize() SyntaxNode {
	n := len(a.head)
	children := make([][]int, n)
	for i := 0; i < n; i++ {
		if i != a.root {
			children[a.head[i]] = append(children[a.head[i]], i)
		}
	}

	// Reverse preorder visits every child before its parent.
	order := make([]int, 0, n)
	stack := []int{a.root}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, top)
		stack = append(stack, children[top]...)
	}

	nodes := make([]SyntaxNode, n)
	for k := len(order) - 1; k >= 0; k-- {
		i := order[k]
		kids := make([]SyntaxNode, 0, len(children[i]))
		for _, c := range children[i] {
			kids = append(kids, nodes[c])
		}
		rel := a.rel[i]
		if len(kids) == 0 {
			rel = RelLeaf
		}
		nodes[i] = SyntaxNode{Word: a.words[i], Tag: a.tags[i], Relation: rel, Children: kids}
	}
	return nodes[a.root]
}

// Walk visits every node of the tree in preorder with its depth, using an
// explicit stack. Returning false from fn skips the node's children.
func (n SyntaxNode) Walk(fn func(node *SyntaxNode, depth int) bool) {
	type frame struct {
		node  *SyntaxNode
		depth int
	}
	stack := []frame{{&n, 0}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(top.node, top.depth) {
			continue
		}
		for k := len(top.node.Children) - 1; k >= 0; k-- {
			stack = append(stack, frame{&top.node.Children[k], top.depth + 1})
		}
	}
}

// Size returns the number of nodes in the tree.
func (n SyntaxNode) Size() int {
	count := 0
	n.Walk(func(*SyntaxNode, int) bool {
		count++
		return true
	})
	return count
}

// Format renders the tree one node per line, indented by depth.
func (n SyntaxNode) Format() string {
	var b strings.Builder
	n.Walk(func(node *SyntaxNode, depth int) bool {
		b.WriteString(strings.Repeat("  ", depth))
		word := node.Word
		if word == "" {
			word = "·"
		}
		b.WriteString(word)
		b.WriteString(" [")
		b.WriteString(string(node.Tag))
		if node.Relation != "" {
			b.WriteString(" ")
			b.WriteString(node.Relation)
		}
		b.WriteString("]\n")
		return true
	})
	return b.String()
}
