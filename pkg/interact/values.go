package interact

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Value returns the value under key asserted to T. The second result is
// false when the key is absent or holds a value of another type.
func Value[T any](c *Context, key string) (T, bool) {
	v, ok := c.values[key].(T)
	return v, ok
}

// ValueOr returns the value under key asserted to T, or def.
func ValueOr[T any](c *Context, key string, def T) T {
	if v, ok := Value[T](c, key); ok {
		return v
	}
	return def
}

// Decode decodes the value stored under key into out, which must be a
// pointer. Map values are decoded field by field using mapstructure tags.
func (c *Context) Decode(key string, out any) error {
	v, ok := c.values[key]
	if !ok {
		return fmt.Errorf("decode %q: key not set", key)
	}
	if err := decode(v, out); err != nil {
		return fmt.Errorf("decode %q: %w", key, err)
	}
	return nil
}

// DecodeAll decodes every stored value into out as if the Context were a
// single map.
func (c *Context) DecodeAll(out any) error {
	if err := decode(c.values, out); err != nil {
		return fmt.Errorf("decode context: %w", err)
	}
	return nil
}

func decode(in, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return err
	}
	return dec.Decode(in)
}

// MarshalYAML renders the Context for debugging: values in insertion order,
// then the failure bookkeeping.
func (c *Context) MarshalYAML() (any, error) {
	values := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range c.keys {
		var vn yaml.Node
		if err := vn.Encode(c.values[k]); err != nil {
			return nil, fmt.Errorf("encode %q: %w", k, err)
		}
		values.Content = append(values.Content, scalar(k), &vn)
	}

	var errs yaml.Node
	if err := errs.Encode(c.Errors()); err != nil {
		return nil, err
	}
	if len(c.errors) == 0 {
		errs = yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle, Tag: "!!seq"}
	}

	return &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			scalar("id"), scalar(c.id.String()),
			scalar("values"), values,
			scalar("errors"), &errs,
			scalar("strict"), {Kind: yaml.ScalarNode, Tag: "!!bool", Value: fmt.Sprint(c.strict)},
		},
	}, nil
}

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
