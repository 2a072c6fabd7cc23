package ai

import "google.golang.org/genai"

type Type string

const (
	TypeObject  Type = "object"
	TypeArray   Type = "array"
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeInteger Type = "integer"
	TypeBoolean Type = "boolean"
)

// Schema is a backend-neutral description of a structured reply. It converts
// to JSON Schema for OpenAI-compatible endpoints and to genai.Schema for Gemini.
type Schema struct {
	Type        Type
	Description string
	Properties  map[string]*Schema
	// Order lists property names in prompt order; it is also the required set.
	Order []string
	Items *Schema
	Enum  []string
}

// Object builds an object schema whose properties are all required, in order.
func Object(desc string, props ...Property) *Schema {
	s := &Schema{Type: TypeObject, Description: desc, Properties: make(map[string]*Schema, len(props))}
	for _, p := range props {
		s.Properties[p.Name] = p.Schema
		s.Order = append(s.Order, p.Name)
	}
	return s
}

type Property struct {
	Name   string
	Schema *Schema
}

func Prop(name string, s *Schema) Property { return Property{Name: name, Schema: s} }

func String(desc string) *Schema { return &Schema{Type: TypeString, Description: desc} }

func Number(desc string) *Schema { return &Schema{Type: TypeNumber, Description: desc} }

func Enum(desc string, values ...string) *Schema {
	return &Schema{Type: TypeString, Description: desc, Enum: values}
}

func Array(desc string, items *Schema) *Schema {
	return &Schema{Type: TypeArray, Description: desc, Items: items}
}

// JSONSchema renders s in the strict subset accepted by OpenAI structured
// outputs: every property required, no additional properties.
func (s *Schema) JSONSchema() map[string]any {
	if s == nil {
		return nil
	}
	out := map[string]any{"type": string(s.Type)}
	if s.Description != "" {
		out["description"] = s.Description
	}
	if len(s.Enum) > 0 {
		out["enum"] = append([]string(nil), s.Enum...)
	}
	if s.Items != nil {
		out["items"] = s.Items.JSONSchema()
	}
	if s.Type == TypeObject {
		props := make(map[string]any, len(s.Properties))
		for name, p := range s.Properties {
			props[name] = p.JSONSchema()
		}
		out["properties"] = props
		out["required"] = append([]string{}, s.Order...)
		out["additionalProperties"] = false
	}
	return out
}

var genaiTypes = map[Type]genai.Type{
	TypeObject:  genai.TypeObject,
	TypeArray:   genai.TypeArray,
	TypeString:  genai.TypeString,
	TypeNumber:  genai.TypeNumber,
	TypeInteger: genai.TypeInteger,
	TypeBoolean: genai.TypeBoolean,
}

// GenAI renders s as a Gemini response schema.
func (s *Schema) GenAI() *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Type:        genaiTypes[s.Type],
		Description: s.Description,
	}
	if len(s.Enum) > 0 {
		out.Enum = append([]string(nil), s.Enum...)
	}
	if s.Items != nil {
		out.Items = s.Items.GenAI()
	}
	if s.Type == TypeObject {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, p := range s.Properties {
			out.Properties[name] = p.GenAI()
		}
		out.Required = append([]string(nil), s.Order...)
		out.PropertyOrdering = append([]string(nil), s.Order...)
	}
	return out
}
