package gen

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// SetupPriority orders generation tasks. Higher priorities run first so that
// driver instances exist in the object table before sensor platforms look
// them up.
type SetupPriority int

const (
	PriorityBus    SetupPriority = 200
	PriorityDriver SetupPriority = 100
	PrioritySensor SetupPriority = 50
)

// PendingError reports an identifier that is not declared yet. A task
// returning it is deferred, its buffered statements are discarded, and it is
// retried after the remaining tasks of the round have run.
type PendingError struct {
	ID string
}

func (e *PendingError) Error() string {
	return fmt.Sprintf("identifier %q not declared yet", e.ID)
}

// Pending returns a PendingError for the given identifier.
func Pending(id string) error { return &PendingError{ID: id} }

// TaskFunc is one generation task. All statements emitted through the
// TaskContext are committed only when the task returns nil.
type TaskFunc func(tc *TaskContext) error

type task struct {
	priority  SetupPriority
	seq       int
	name      string
	fn        TaskFunc
	waitingOn string
}

// Context accumulates the generated setup code. It is not safe for
// concurrent use; generation is strictly sequential.
type Context struct {
	cfg     GeneratorConfig
	vars    map[string]*Variable
	names   *namespace
	stmts   []Statement
	imports map[string]struct{}
	tasks   []*task
	seq     int
}

// NewContext creates an empty generation context.
func NewContext(cfg GeneratorConfig) *Context {
	return &Context{
		cfg:     cfg,
		vars:    map[string]*Variable{},
		names:   newNamespace(),
		imports: map[string]struct{}{},
	}
}

// EnqueueTask registers a generation task. Tasks run in priority order;
// within one priority, in enqueue order.
func (c *Context) EnqueueTask(priority SetupPriority, name string, fn TaskFunc) {
	c.seq++
	c.tasks = append(c.tasks, &task{priority: priority, seq: c.seq, name: name, fn: fn})
}

// Run executes all enqueued tasks. Deferred tasks are retried in rounds; a
// full round without progress means an identifier can never resolve and the
// build fails before any of the waiting tasks emit a statement.
func (c *Context) Run() error {
	pending := append([]*task(nil), c.tasks...)
	sort.SliceStable(pending, func(i, j int) bool {
		if pending[i].priority != pending[j].priority {
			return pending[i].priority > pending[j].priority
		}

		return pending[i].seq < pending[j].seq
	})

	for len(pending) > 0 {
		var deferred []*task

		progress := false

		for _, t := range pending {
			tc := newTaskContext(c)

			err := t.fn(tc)

			var pe *PendingError

			switch {
			case err == nil:
				tc.commit()

				progress = true
			case errors.As(err, &pe):
				tc.discard()

				t.waitingOn = pe.ID
				deferred = append(deferred, t)
			default:
				tc.discard()

				return fmt.Errorf("%s: %w", t.name, err)
			}
		}

		if !progress {
			return unresolvedError(deferred)
		}

		pending = deferred
	}

	return nil
}

func unresolvedError(deferred []*task) error {
	var parts []string
	for _, t := range deferred {
		parts = append(parts, fmt.Sprintf("%s waits for undefined identifier %q", t.name, t.waitingOn))
	}

	return fmt.Errorf("unresolved identifiers: %s", strings.Join(parts, "; "))
}

// Config returns the generator configuration.
func (c *Context) Config() GeneratorConfig { return c.cfg }

// Statements returns the committed statements in emission order.
func (c *Context) Statements() []Statement {
	return append([]Statement(nil), c.stmts...)
}

// TaskContext is the per-attempt view of the Context handed to a task.
// Statements, imports, and declarations are buffered and either committed
// (task succeeded) or discarded (task deferred or failed).
type TaskContext struct {
	parent   *Context
	stmts    []Statement
	imports  []string
	declared map[string]*Variable
	names    []string
}

func newTaskContext(c *Context) *TaskContext {
	return &TaskContext{parent: c, declared: map[string]*Variable{}}
}

// Config returns the generator configuration.
func (tc *TaskContext) Config() GeneratorConfig { return tc.parent.cfg }

// GetVariable resolves a configuration ID against the object table, checking
// the declared type. A miss suspends the task via PendingError.
func (tc *TaskContext) GetVariable(id, typeTag string) (*Variable, error) {
	v, ok := tc.parent.vars[id]
	if !ok {
		v, ok = tc.declared[id]
	}

	if !ok {
		return nil, Pending(id)
	}

	if v.TypeTag != typeTag {
		return nil, fmt.Errorf("identifier %q is a %s, not a %s", id, v.TypeTag, typeTag)
	}

	return v, nil
}

// Declare adds a variable to the object table and emits its declaration.
// id may be empty for anonymous variables; nameHint drives the Go name.
func (tc *TaskContext) Declare(id, nameHint, typeTag, importPath, expr string) (*Variable, error) {
	if id != "" {
		if _, exists := tc.parent.vars[id]; exists {
			return nil, fmt.Errorf("identifier %q declared twice", id)
		}

		if _, exists := tc.declared[id]; exists {
			return nil, fmt.Errorf("identifier %q declared twice", id)
		}
	}

	hint := id
	if hint == "" {
		hint = nameHint
	}

	name := tc.parent.names.Claim(hint)
	tc.names = append(tc.names, name)

	v := &Variable{Name: name, TypeTag: typeTag}
	if id != "" {
		tc.declared[id] = v
	}

	tc.AddImport(importPath)
	tc.Add(DeclStmt{V: v, Expr: expr})

	return v, nil
}

// Add buffers a statement.
func (tc *TaskContext) Add(stmt Statement) {
	tc.stmts = append(tc.stmts, stmt)
}

// AddImport buffers an import needed by emitted statements.
func (tc *TaskContext) AddImport(path string) {
	if path == "" {
		return
	}

	tc.imports = append(tc.imports, path)
}

func (tc *TaskContext) commit() {
	tc.parent.stmts = append(tc.parent.stmts, tc.stmts...)

	for id, v := range tc.declared {
		tc.parent.vars[id] = v
	}

	for _, p := range tc.imports {
		tc.parent.imports[p] = struct{}{}
	}
}

func (tc *TaskContext) discard() {
	for _, name := range tc.names {
		tc.parent.names.Release(name)
	}
}
