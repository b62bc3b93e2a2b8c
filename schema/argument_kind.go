package schema

import (
	"fmt"
	"math"
)

// Category enumerates the argument categories the schema recognises.
type Category int

const (
	CategoryBool Category = iota
	CategoryInteger
	CategoryFloat
	CategoryDouble
	CategoryString
	CategoryEntity
	CategoryScoreHolder
	CategoryTime
	CategoryResource
	CategoryResourceKey
	CategoryResourceOrTag
	CategoryResourceOrTagKey
	CategoryAngle
	CategoryBlockPos
	CategoryColumnPos
	CategoryVec2
	CategoryVec3
	CategoryColor
	// CategoryOpaque covers every category the schema recognises but this
	// compiler does not parse semantically (NBT, item stacks, particles,
	// and the rest). An opaque argument consumes one whitespace-delimited
	// token and records a not-implemented diagnostic.
	CategoryOpaque
)

// StringKind classifies how a CategoryString argument is written.
type StringKind int

const (
	StringSingleWord StringKind = iota
	StringQuotablePhrase
	StringGreedyPhrase
)

// ArgumentKind is the tagged-variant parameterisation of an argument
// schema node. Only the fields relevant to Category are meaningful; the
// rest are zero.
type ArgumentKind struct {
	Category Category

	IntMin, IntMax       int32
	FloatMin, FloatMax   float32
	DoubleMin, DoubleMax float64

	StringKind StringKind

	EntitySingle      bool
	EntityPlayersOnly bool

	ScoreHolderSingle bool

	TimeMin int32

	Registry string

	// OpaqueParserID is the namespaced parser id as written in the
	// schema (e.g. "minecraft:nbt_compound_tag"), carried through to the
	// not-implemented diagnostic so it names what it could not parse.
	OpaqueParserID string
}

type properties map[string]any

var builders = map[string]func(props properties) (ArgumentKind, error){
	"brigadier:bool": func(properties) (ArgumentKind, error) {
		return ArgumentKind{Category: CategoryBool}, nil
	},
	"brigadier:integer": func(props properties) (ArgumentKind, error) {
		min, err := props.intOr("min", math.MinInt32)
		if err != nil {
			return ArgumentKind{}, err
		}
		max, err := props.intOr("max", math.MaxInt32)
		if err != nil {
			return ArgumentKind{}, err
		}
		return ArgumentKind{Category: CategoryInteger, IntMin: min, IntMax: max}, nil
	},
	"brigadier:float": func(props properties) (ArgumentKind, error) {
		min, err := props.floatOr("min", -math.MaxFloat32)
		if err != nil {
			return ArgumentKind{}, err
		}
		max, err := props.floatOr("max", math.MaxFloat32)
		if err != nil {
			return ArgumentKind{}, err
		}
		return ArgumentKind{Category: CategoryFloat, FloatMin: float32(min), FloatMax: float32(max)}, nil
	},
	"brigadier:double": func(props properties) (ArgumentKind, error) {
		min, err := props.floatOr("min", -math.MaxFloat64)
		if err != nil {
			return ArgumentKind{}, err
		}
		max, err := props.floatOr("max", math.MaxFloat64)
		if err != nil {
			return ArgumentKind{}, err
		}
		return ArgumentKind{Category: CategoryDouble, DoubleMin: min, DoubleMax: max}, nil
	},
	"brigadier:string": func(props properties) (ArgumentKind, error) {
		kind, err := props.stringOr("type", "word")
		if err != nil {
			return ArgumentKind{}, err
		}
		var sk StringKind
		switch kind {
		case "word":
			sk = StringSingleWord
		case "phrase":
			sk = StringQuotablePhrase
		case "greedy":
			sk = StringGreedyPhrase
		default:
			return ArgumentKind{}, fmt.Errorf("schema: invalid type %q for brigadier:string parser", kind)
		}
		return ArgumentKind{Category: CategoryString, StringKind: sk}, nil
	},
	"minecraft:entity": func(props properties) (ArgumentKind, error) {
		single, err := amountIsSingle(props, "minecraft:entity")
		if err != nil {
			return ArgumentKind{}, err
		}
		typ, err := props.stringOr("type", "entities")
		if err != nil {
			return ArgumentKind{}, err
		}
		var playersOnly bool
		switch typ {
		case "entities":
		case "players":
			playersOnly = true
		default:
			return ArgumentKind{}, fmt.Errorf("schema: invalid type %q for minecraft:entity parser", typ)
		}
		return ArgumentKind{Category: CategoryEntity, EntitySingle: single, EntityPlayersOnly: playersOnly}, nil
	},
	"minecraft:score_holder": func(props properties) (ArgumentKind, error) {
		single, err := amountIsSingle(props, "minecraft:score_holder")
		if err != nil {
			return ArgumentKind{}, err
		}
		return ArgumentKind{Category: CategoryScoreHolder, ScoreHolderSingle: single}, nil
	},
	"minecraft:time": func(props properties) (ArgumentKind, error) {
		min, err := props.intOr("min", 0)
		if err != nil {
			return ArgumentKind{}, err
		}
		return ArgumentKind{Category: CategoryTime, TimeMin: min}, nil
	},
	"minecraft:resource":            registryBuilder(CategoryResource),
	"minecraft:resource_key":        registryBuilder(CategoryResourceKey),
	"minecraft:resource_or_tag":     registryBuilder(CategoryResourceOrTag),
	"minecraft:resource_or_tag_key": registryBuilder(CategoryResourceOrTagKey),
	"minecraft:angle":               parameterless(CategoryAngle),
	"minecraft:block_pos":           parameterless(CategoryBlockPos),
	"minecraft:column_pos":          parameterless(CategoryColumnPos),
	"minecraft:vec2":                parameterless(CategoryVec2),
	"minecraft:vec3":                parameterless(CategoryVec3),
	"minecraft:color":               parameterless(CategoryColor),
}

// opaqueParserIDs lists every parser id the schema recognises without a
// semantic parser behind it.
var opaqueParserIDs = []string{
	"minecraft:block_predicate", "minecraft:block_state", "minecraft:component",
	"minecraft:dimension", "minecraft:entity_anchor", "minecraft:function",
	"minecraft:game_profile", "minecraft:gamemode", "minecraft:heightmap",
	"minecraft:int_range", "minecraft:item_predicate", "minecraft:item_slot",
	"minecraft:item_slots", "minecraft:item_stack", "minecraft:loot_modifier",
	"minecraft:loot_predicate", "minecraft:loot_table", "minecraft:message",
	"minecraft:nbt_compound_tag", "minecraft:nbt_path", "minecraft:nbt_tag",
	"minecraft:objective", "minecraft:objective_criteria", "minecraft:operation",
	"minecraft:particle", "minecraft:resource_location", "minecraft:rotation",
	"minecraft:scoreboard_slot", "minecraft:style", "minecraft:swizzle",
	"minecraft:team", "minecraft:template_mirror", "minecraft:template_rotation",
}

func init() {
	for _, id := range opaqueParserIDs {
		id := id
		builders[id] = func(properties) (ArgumentKind, error) {
			return ArgumentKind{Category: CategoryOpaque, OpaqueParserID: id}, nil
		}
	}
}

// ResolveArgumentKind maps a namespaced parser id (e.g. "brigadier:integer",
// "minecraft:entity") and its JSON properties object to a concrete
// ArgumentKind. An unrecognised parser id or a malformed property is a
// fatal schema error.
func ResolveArgumentKind(parserID string, props map[string]any) (ArgumentKind, error) {
	build, ok := builders[parserID]
	if !ok {
		return ArgumentKind{}, fmt.Errorf("schema: unknown parser %q", parserID)
	}
	return build(props)
}

func parameterless(c Category) func(properties) (ArgumentKind, error) {
	return func(properties) (ArgumentKind, error) {
		return ArgumentKind{Category: c}, nil
	}
}

func registryBuilder(c Category) func(properties) (ArgumentKind, error) {
	return func(props properties) (ArgumentKind, error) {
		reg, ok := props["registry"]
		if !ok {
			return ArgumentKind{}, fmt.Errorf("schema: missing registry property")
		}
		s, ok := reg.(string)
		if !ok {
			return ArgumentKind{}, fmt.Errorf("schema: registry must be a string, got %T", reg)
		}
		return ArgumentKind{Category: c, Registry: s}, nil
	}
}

func amountIsSingle(props properties, parserID string) (bool, error) {
	amount, err := props.stringOr("amount", "multiple")
	if err != nil {
		return false, err
	}
	switch amount {
	case "multiple":
		return false, nil
	case "single":
		return true, nil
	default:
		return false, fmt.Errorf("schema: invalid amount %q for %s parser", amount, parserID)
	}
}

// JSON numbers decode as float64, so both numeric accessors go through it.
func (p properties) intOr(key string, def int32) (int32, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("schema: property %q must be a number, got %T", key, v)
	}
	return int32(f), nil
}

func (p properties) floatOr(key string, def float64) (float64, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("schema: property %q must be a number, got %T", key, v)
	}
	return f, nil
}

func (p properties) stringOr(key, def string) (string, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("schema: property %q must be a string, got %T", key, v)
	}
	return s, nil
}
