// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sourabhkumawat/healops/ent/knowledgechunk"
)

// KnowledgeChunkCreate is the builder for creating a KnowledgeChunk entity.
type KnowledgeChunkCreate struct {
	config
	mutation *KnowledgeChunkMutation
	hooks    []Hook
}

// SetContent sets the "content" field.
func (_c *KnowledgeChunkCreate) SetContent(v string) *KnowledgeChunkCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *KnowledgeChunkCreate) SetSource(v knowledgechunk.Source) *KnowledgeChunkCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *KnowledgeChunkCreate) SetMetadata(v map[string]interface{}) *KnowledgeChunkCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *KnowledgeChunkCreate) SetEmbedding(v []float64) *KnowledgeChunkCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *KnowledgeChunkCreate) SetContentHash(v string) *KnowledgeChunkCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *KnowledgeChunkCreate) SetCreatedAt(v time.Time) *KnowledgeChunkCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *KnowledgeChunkCreate) SetNillableCreatedAt(v *time.Time) *KnowledgeChunkCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *KnowledgeChunkCreate) SetID(v string) *KnowledgeChunkCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the KnowledgeChunkMutation object of the builder.
func (_c *KnowledgeChunkCreate) Mutation() *KnowledgeChunkMutation {
	return _c.mutation
}

// Save creates the KnowledgeChunk in the database.
func (_c *KnowledgeChunkCreate) Save(ctx context.Context) (*KnowledgeChunk, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *KnowledgeChunkCreate) SaveX(ctx context.Context) *KnowledgeChunk {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnowledgeChunkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnowledgeChunkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *KnowledgeChunkCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := knowledgechunk.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *KnowledgeChunkCreate) check() error {
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "KnowledgeChunk.content"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "KnowledgeChunk.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := knowledgechunk.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "KnowledgeChunk.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Embedding(); !ok {
		return &ValidationError{Name: "embedding", err: errors.New(`ent: missing required field "KnowledgeChunk.embedding"`)}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "KnowledgeChunk.content_hash"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "KnowledgeChunk.created_at"`)}
	}
	return nil
}

func (_c *KnowledgeChunkCreate) sqlSave(ctx context.Context) (*KnowledgeChunk, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected KnowledgeChunk.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *KnowledgeChunkCreate) createSpec() (*KnowledgeChunk, *sqlgraph.CreateSpec) {
	var (
		_node = &KnowledgeChunk{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(knowledgechunk.Table, sqlgraph.NewFieldSpec(knowledgechunk.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(knowledgechunk.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(knowledgechunk.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(knowledgechunk.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(knowledgechunk.FieldEmbedding, field.TypeJSON, value)
		_node.Embedding = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(knowledgechunk.FieldContentHash, field.TypeString, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(knowledgechunk.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// KnowledgeChunkCreateBulk is the builder for creating many KnowledgeChunk entities in bulk.
type KnowledgeChunkCreateBulk struct {
	config
	err      error
	builders []*KnowledgeChunkCreate
}

// Save creates the KnowledgeChunk entities in the database.
func (_c *KnowledgeChunkCreateBulk) Save(ctx context.Context) ([]*KnowledgeChunk, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*KnowledgeChunk, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*KnowledgeChunkMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *KnowledgeChunkCreateBulk) SaveX(ctx context.Context) []*KnowledgeChunk {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnowledgeChunkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnowledgeChunkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
