package colors

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/scalablecory/colors/types"
)

var _ = fmt.Print

// edges[from][to] converts from directly into to, or is nil.
var edges = [types.NumSpaces][types.NumSpaces]edge{
	types.RGB8: {
		types.RGB:       rgb8ToRGB,
		types.LinearRGB: rgb8ToLinearRGB,
	},
	types.RGB: {
		types.RGB8:      rgbToRGB8,
		types.LinearRGB: rgbToLinearRGB,
		types.HSL:       rgbToHSL,
		types.HSV:       rgbToHSV,
		types.YUV:       rgbToYUV,
		types.YDbDr:     rgbToYDbDr,
		types.YIQ:       rgbToYIQ,
	},
	types.LinearRGB: {
		types.RGB8: linearRGBToRGB8,
		types.RGB:  linearRGBToRGB,
		types.XYZ:  linearRGBToXYZ,
		types.Lab:  linearRGBToLab,
	},
	types.HSL: {
		types.RGB: hslToRGB,
	},
	types.HSV: {
		types.RGB: hsvToRGB,
	},
	types.YUV: {
		types.RGB:   yuvToRGB,
		types.YCbCr: yuvToYCbCr,
	},
	types.YCbCr: {
		types.YUV: ycbcrToYUV,
	},
	types.YDbDr: {
		types.RGB: ydbdrToRGB,
		types.YIQ: ydbdrToYIQ,
	},
	types.YIQ: {
		types.RGB:   yiqToRGB,
		types.YDbDr: yiqToYDbDr,
	},
	types.XYZ: {
		types.LinearRGB: xyzToLinearRGB,
		types.XyY:       xyzToXyY,
		types.Lab:       xyzToLab,
		types.Luv:       xyzToLuv,
	},
	types.XyY: {
		types.XYZ: xyyToXYZ,
	},
	types.Lab: {
		types.LinearRGB: labToLinearRGB,
		types.XYZ:       labToXYZ,
		types.LCHab:     labToLCHab,
	},
	types.Luv: {
		types.XYZ:   luvToXYZ,
		types.LCHuv: luvToLCHuv,
	},
	types.LCHab: {
		types.Lab: lchabToLab,
	},
	types.LCHuv: {
		types.Luv:   lchuvToLuv,
		types.LSHuv: lchuvToLSHuv,
	},
	types.LSHuv: {
		types.LCHuv: lshuvToLCHuv,
	},
}

// Self edges change the flags of a value without leaving its space. They are
// only used when the flags differ.
var selfEdges = [types.NumSpaces]edge{
	types.YUV:   yuvToYUV,
	types.YCbCr: ycbcrToYCbCr,
}

// nextHops[from][to] is the space to step into when there is no direct edge
// from from to to. Every entry is reachable directly from from and lies on a
// shortest path to to.
var nextHops = buildNextHops()

func buildNextHops() (ans [types.NumSpaces][types.NumSpaces]Space) {
	via := func(from, hop Space, to ...Space) {
		for _, t := range to {
			ans[from][t] = hop
		}
	}
	// every destination of from not yet routed goes through hop
	otherwise := func(from, hop Space) {
		for _, t := range types.All() {
			if t != from && edges[from][t] == nil && ans[from][t] == types.Invalid {
				ans[from][t] = hop
			}
		}
	}
	cie_spaces := []Space{types.XYZ, types.XyY, types.Lab, types.Luv, types.LCHab, types.LCHuv, types.LSHuv}
	rgb_spaces := []Space{types.RGB8, types.RGB, types.HSL, types.HSV, types.YUV, types.YCbCr, types.YDbDr, types.YIQ}

	via(types.RGB8, types.LinearRGB, cie_spaces...)
	otherwise(types.RGB8, types.RGB)

	via(types.RGB, types.YUV, types.YCbCr)
	otherwise(types.RGB, types.LinearRGB)

	via(types.LinearRGB, types.Lab, types.LCHab)
	via(types.LinearRGB, types.XYZ, types.XyY, types.Luv, types.LCHuv, types.LSHuv)
	otherwise(types.LinearRGB, types.RGB)

	otherwise(types.HSL, types.RGB)
	otherwise(types.HSV, types.RGB)
	otherwise(types.YUV, types.RGB)
	otherwise(types.YCbCr, types.YUV)
	otherwise(types.YDbDr, types.RGB)
	otherwise(types.YIQ, types.RGB)

	via(types.XYZ, types.Lab, types.LCHab)
	via(types.XYZ, types.Luv, types.LCHuv, types.LSHuv)
	otherwise(types.XYZ, types.LinearRGB)

	otherwise(types.XyY, types.XYZ)

	via(types.Lab, types.LinearRGB, rgb_spaces...)
	otherwise(types.Lab, types.XYZ)

	via(types.Luv, types.LCHuv, types.LSHuv)
	otherwise(types.Luv, types.XYZ)

	otherwise(types.LCHab, types.Lab)
	otherwise(types.LCHuv, types.Luv)
	otherwise(types.LSHuv, types.LCHuv)
	return
}

type convertConfig struct {
	debug  []func(before, after Value)
	logger *log.Logger
}

// ConvertOption sets an optional parameter for Convert and To.
type ConvertOption func(*convertConfig)

// WithDebug registers a callback that is called after every step of a
// conversion with the value before and after the step.
func WithDebug(callback func(before, after Value)) ConvertOption {
	return func(c *convertConfig) {
		c.debug = append(c.debug, callback)
	}
}

// WithLogger logs every step of a conversion to logger at debug level.
func WithLogger(logger *log.Logger) ConvertOption {
	return func(c *convertConfig) {
		c.logger = logger
	}
}

func (c *convertConfig) step(before, after Value) {
	if c.logger != nil {
		c.logger.Debug("conversion step", "from", before.Space(), "to", after.Space(), "flags", after.Flags(), "components", after.Components())
	}
	for _, f := range c.debug {
		f(before, after)
	}
}

// unwrap strips Color wrappers, which satisfy Value through embedding.
func unwrap(v Value) Value {
	for {
		switch c := v.(type) {
		case Color:
			v = c.Value
		case *Color:
			if c == nil {
				return nil
			}
			v = c.Value
		default:
			return v
		}
	}
}

func checkValue(v Value) {
	switch c := v.(type) {
	case nil:
		panic("colors: conversion of a nil value")
	case YUV:
		if !c.Matrix.IsValid() {
			panic(fmt.Sprintf("colors: YUV value with invalid matrix: %s", c.Matrix))
		}
	case YCbCr:
		if !c.Matrix.IsValid() {
			panic(fmt.Sprintf("colors: YCbCr value with invalid matrix: %s", c.Matrix))
		}
	case RGB8, RGB, LinearRGB, HSL, HSV, YDbDr, YIQ, XYZ, XyY, Lab, Luv, LCHab, LCHuv, LSHuv:
	default:
		// pointers to the variants have the same method set
		panic(fmt.Sprintf("colors: unsupported value type %T, variants are passed by value", v))
	}
}

// Convert rewrites c in place until it is in space to with the given flags.
// Flag bits that mean nothing to the destination space are ignored, so on
// return c.Space() == to and c.Flags() == flags.For(to). Edges apply the
// requested variant as early as they can, a YCbCr value converted to YUV in
// another matrix takes a single step.
//
// Conversion cannot fail for valid input. Convert panics if c holds no
// value, if to is not a valid space, or if a YUV or YCbCr value has an
// invalid matrix.
func Convert(c *Color, to Space, flags Flags, opts ...ConvertOption) {
	if c == nil {
		panic("colors: Convert called with a nil *Color")
	}
	if !to.IsValid() {
		panic(fmt.Sprintf("colors: conversion to invalid space: %s", to))
	}
	v := unwrap(c.Value)
	checkValue(v)
	cfg := convertConfig{}
	for _, o := range opts {
		o(&cfg)
	}
	flags = flags.For(to)
	for hops := 0; v.Space() != to || v.Flags() != flags; hops++ {
		if hops >= types.NumSpaces {
			panic(fmt.Sprintf("colors: no route from %s to %s", v.Space(), to))
		}
		from, dest, e := v.Space(), to, edge(nil)
		if from == to {
			e = selfEdges[from]
		} else if e = edges[from][to]; e == nil {
			dest = nextHops[from][to]
			e = edges[from][dest]
		}
		if e == nil {
			panic(fmt.Sprintf("colors: routing table has no edge from %s towards %s", from, to))
		}
		hop_flags := flags
		if to.FlagMask() == 0 {
			// nothing to select at the destination, video steps on the way keep their own variant
			hop_flags = v.Flags()
		}
		after := e(v, hop_flags)
		if after.Space() != dest {
			panic(fmt.Sprintf("colors: step from %s towards %s landed in %s instead of %s", from, to, after.Space(), dest))
		}
		cfg.step(v, after)
		v = after
	}
	c.Value = v
}

// To is the value returning form of Convert.
func To(v Value, to Space, flags Flags, opts ...ConvertOption) Value {
	c := Color{v}
	Convert(&c, to, flags, opts...)
	return c.Value
}

// Step is one stop along a conversion.
type Step struct {
	Space Space
	Flags Flags
}

func (s Step) String() string {
	if s.Space.FlagMask() != 0 {
		return fmt.Sprintf("%s[%s]", s.Space, s.Flags)
	}
	return s.Space.String()
}

// Path is the sequence of spaces a conversion passes through, starting with
// the source.
type Path []Step

// Hops returns the number of edges taken.
func (p Path) Hops() int {
	return max(0, len(p)-1)
}

func (p Path) String() string {
	items := make([]string, len(p))
	for i, s := range p {
		items[i] = s.String()
	}
	return strings.Join(items, " → ")
}

// Route returns the path Convert takes from a value in space from with flags
// from_flags to space to with flags to_flags. The path only depends on the
// spaces and flags, never on the channel values.
func Route(from Space, from_flags Flags, to Space, to_flags Flags) Path {
	c := Color{Zero(from, from_flags)}
	ans := Path{{c.Space(), c.Flags()}}
	Convert(&c, to, to_flags, WithDebug(func(_, after Value) {
		ans = append(ans, Step{after.Space(), after.Flags()})
	}))
	return ans
}
