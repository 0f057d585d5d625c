package parquet

// Schema represents the schema of parquet files, modeled as the root of the
// tree of nodes that the file's rows are shaped after.
//
// A *Schema is itself a Node (its methods forward to the wrapped root),
// so the rest of the package can walk a Schema exactly the way it walks a
// Group or a Column: the Name is only needed at the edges, when producing
// or parsing the file's schema element list, where the root element carries
// the name recorded by the writer that produced the file, or the name passed
// to NewSchema for a programmatically constructed one.
type Schema struct {
	name string
	root Node
}

// NewSchema constructs a Schema from the root node of a tree, giving it the
// name that will be written to (or was read from) the first entry of the
// file's flattened schema element list.
func NewSchema(name string, root Node) *Schema {
	return &Schema{name: name, root: root}
}

// Name returns the name of the schema's root node.
func (s *Schema) Name() string { return s.name }

func (s *Schema) String() string { return s.name }

func (s *Schema) Type() Type { return s.root.Type() }

func (s *Schema) Optional() bool { return s.root.Optional() }

func (s *Schema) Repeated() bool { return s.root.Repeated() }

func (s *Schema) Required() bool { return s.root.Required() }

func (s *Schema) NumChildren() int { return s.root.NumChildren() }

func (s *Schema) ChildNames() []string { return s.root.ChildNames() }

func (s *Schema) ChildByName(name string) Node { return s.root.ChildByName(name) }

var _ Node = (*Schema)(nil)
