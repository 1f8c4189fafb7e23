package js

// Value is the runtime value this engine knows about, spec.md §4.4's closed
// RuntimeValue set: a single Number variant wrapping uint64 arithmetic.
type Value struct {
	Number uint64
}

func (v Value) Add(other Value) Value { return Value{Number: v.Number + other.Number} }
func (v Value) Sub(other Value) Value { return Value{Number: v.Number - other.Number} }

// Runtime is a tree-walking evaluator over the AST Parser builds.
type Runtime struct{}

// NewRuntime constructs a Runtime.
func NewRuntime() *Runtime { return &Runtime{} }

// Execute evaluates every top-level statement in program, discarding the
// results — this engine has no observable side effect beyond its return
// values, so Execute produces nothing a caller can observe.
func (r *Runtime) Execute(program *Program) {
	for _, node := range program.Body() {
		r.Evaluate(node)
	}
}

// Evaluate walks node and returns its value, or (Value{}, false) for nodes
// this engine does not assign a value to (nil nodes, or the as-yet
// unimplemented assignment/member expressions spec.md §4.4 reserves space
// for but does not require).
func (r *Runtime) Evaluate(node *Node) (Value, bool) {
	if node == nil {
		return Value{}, false
	}

	switch node.Type {
	case ExpressionStatementNode:
		return r.Evaluate(node.Left)

	case AdditiveExpressionNode:
		left, ok := r.Evaluate(node.Left)
		if !ok {
			return Value{}, false
		}
		right, ok := r.Evaluate(node.Right)
		if !ok {
			return Value{}, false
		}
		switch node.Operator {
		case '+':
			return left.Add(right), true
		case '-':
			return left.Sub(right), true
		default:
			return Value{}, false
		}

	case AssignmentExpressionNode, MemberExpressionNode:
		return Value{}, false

	case NumericLiteralNode:
		return Value{Number: node.Value}, true

	default:
		return Value{}, false
	}
}
