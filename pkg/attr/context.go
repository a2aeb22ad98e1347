package attr

import (
	"fmt"
	"strconv"
	"strings"
)

// Context identifies where in the entity graph a screen or control instance
// lives. Entity is "global" for the root object or an entity name; ID is set
// only for entity instances; Parent encodes the chain of <entity>/<index>
// segments above this instance. The global root never appears in the chain.
type Context struct {
	Entity string `json:"entity"`
	ID     string `json:"id,omitempty"`
	Parent string `json:"parent,omitempty"`
}

// GlobalContext returns the context of the root object.
func GlobalContext() Context {
	return Context{Entity: GlobalEntity}
}

// IsGlobal reports whether the context addresses the root object.
func (c Context) IsGlobal() bool { return c.Entity == GlobalEntity }

// ParentSegment is one <entity>/<index> step in a context's parent chain.
type ParentSegment struct {
	Entity string
	Index  int
}

// Validate checks the structural invariants: a non-empty entity, no instance
// id on the global context, and a well formed parent chain.
func (c Context) Validate() error {
	if strings.TrimSpace(c.Entity) == "" {
		return fmt.Errorf("attr: context entity is required")
	}
	if c.IsGlobal() && c.ID != "" {
		return fmt.Errorf("attr: global context must not carry an instance id (got %q)", c.ID)
	}
	if _, err := c.ParentSegments(); err != nil {
		return err
	}
	return nil
}

// ParentSegments parses the parent chain into entity/index pairs.
func (c Context) ParentSegments() ([]ParentSegment, error) {
	if c.Parent == "" {
		return nil, nil
	}
	parts := strings.Split(c.Parent, "/")
	if len(parts)%2 != 0 {
		return nil, fmt.Errorf("attr: parent chain %q has an unpaired segment", c.Parent)
	}
	segments := make([]ParentSegment, 0, len(parts)/2)
	for i := 0; i < len(parts); i += 2 {
		entity := parts[i]
		if entity == "" {
			return nil, fmt.Errorf("attr: parent chain %q has an empty entity name", c.Parent)
		}
		if entity == GlobalEntity {
			return nil, fmt.Errorf("attr: parent chain %q must not include the global root", c.Parent)
		}
		index, err := strconv.Atoi(parts[i+1])
		if err != nil || index < 0 {
			return nil, fmt.Errorf("attr: parent chain %q has an invalid index %q", c.Parent, parts[i+1])
		}
		segments = append(segments, ParentSegment{Entity: entity, Index: index})
	}
	return segments, nil
}
