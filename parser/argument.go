package parser

import (
	"github.com/kaoru-ogata/dpctree/cst"
	"github.com/kaoru-ogata/dpctree/intern"
	"github.com/kaoru-ogata/dpctree/parse"
	"github.com/kaoru-ogata/dpctree/reader"
	"github.com/kaoru-ogata/dpctree/schema"
)

// dispatchArgument invokes the primitive parser matching ak's category and
// wraps its result into the one ArgumentValue field that category owns.
// Categories with no dedicated CST value (Entity, ScoreHolder, Time, the
// Resource family, and everything schema.CategoryOpaque covers) are
// recognised by the grammar but not parsed semantically; they consume one
// token as an opaque string and record a diagnostic rather than fail
// outright.
func dispatchArgument(ak schema.ArgumentKind, r *reader.Reader, in *intern.Interner) (cst.ArgumentValue, []cst.ParseError) {
	switch ak.Category {
	case schema.CategoryBool:
		v, errs := parse.Bool(r)
		return cst.ArgumentValue{Boolean: v}, errs
	case schema.CategoryInteger:
		v, errs := parse.Integer(r, ak.IntMin, ak.IntMax)
		return cst.ArgumentValue{Integer: v}, errs
	case schema.CategoryFloat:
		v, errs := parse.Float(r, ak.FloatMin, ak.FloatMax)
		return cst.ArgumentValue{Float: v}, errs
	case schema.CategoryDouble:
		v, errs := parse.Double(r, ak.DoubleMin, ak.DoubleMax)
		return cst.ArgumentValue{Double: v}, errs
	case schema.CategoryString:
		v, errs := parse.String(r, in, parse.StringKind(ak.StringKind))
		return cst.ArgumentValue{String: v}, errs
	case schema.CategoryAngle:
		v, errs := parse.Angle(r)
		return cst.ArgumentValue{Angle: v}, errs
	case schema.CategoryColor:
		v, errs := parse.Color(r)
		return cst.ArgumentValue{Color: v}, errs
	case schema.CategoryBlockPos:
		v, errs := parse.Coordinates3(r, parse.ScalarBlockPos)
		return cst.ArgumentValue{Coordinates3: v}, errs
	case schema.CategoryVec3:
		v, errs := parse.Coordinates3(r, parse.ScalarDouble)
		return cst.ArgumentValue{Coordinates3: v}, errs
	case schema.CategoryColumnPos, schema.CategoryVec2:
		v, errs := parse.Coordinates2(r, parse.ScalarDouble)
		return cst.ArgumentValue{Coordinates2: v}, errs
	default:
		v, errs := parse.NotImplemented(r, parserIDFor(ak))
		return cst.ArgumentValue{String: v}, errs
	}
}

// parserIDFor recovers the namespaced schema parser id for diagnostics,
// for the categories dispatchArgument treats as opaque.
func parserIDFor(ak schema.ArgumentKind) string {
	switch ak.Category {
	case schema.CategoryEntity:
		return "minecraft:entity"
	case schema.CategoryScoreHolder:
		return "minecraft:score_holder"
	case schema.CategoryTime:
		return "minecraft:time"
	case schema.CategoryResource:
		return "minecraft:resource"
	case schema.CategoryResourceKey:
		return "minecraft:resource_key"
	case schema.CategoryResourceOrTag:
		return "minecraft:resource_or_tag"
	case schema.CategoryResourceOrTagKey:
		return "minecraft:resource_or_tag_key"
	case schema.CategoryOpaque:
		return ak.OpaqueParserID
	default:
		return "unknown"
	}
}
