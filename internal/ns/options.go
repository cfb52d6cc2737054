package ns

import "fmt"

// Flags holds the user-facing switches as they were given on the command line.
type Flags struct {
	NumberType NumberType
	Signed     bool
	Exp        bool
	Paths      bool
	Locale     bool
	Reverse    bool
}

// Options is the resolved, immutable form of Flags. It is the only thing the
// filter pipeline and the sort engine look at.
type Options struct {
	numberType NumberType
	alg        Alg
	reverse    bool
}

// Resolve maps Flags to Options.
//
// "real" forces float mode and sign sensitivity regardless of Flags.Signed.
// The number type is taken as is; values outside the enum behave like int.
func Resolve(f Flags) Options {
	var alg Alg
	if f.NumberType == NumberTypeFloat || f.NumberType == NumberTypeReal {
		alg |= Float
	}
	if f.Signed || f.NumberType == NumberTypeReal {
		alg |= Signed
	}
	if !f.Exp {
		alg |= NoExp
	}
	if f.Paths {
		alg |= Path
	}
	if f.Locale {
		alg |= Locale
	}
	return Options{numberType: f.NumberType, alg: alg, reverse: f.Reverse}
}

// Alg returns the full bitmask used by the sort engine.
func (o Options) Alg() Alg { return o.alg }

// NumberAlg returns only the bits that decide what a number looks like.
func (o Options) NumberAlg() Alg { return o.alg & (Float | Signed | NoExp) }

func (o Options) NumberType() NumberType { return o.numberType }
func (o Options) Float() bool { return o.alg&Float != 0 }
func (o Options) Signed() bool { return o.alg&Signed != 0 }
func (o Options) Exp() bool { return o.alg&NoExp == 0 }
func (o Options) Paths() bool { return o.alg&Path != 0 }
func (o Options) Locale() bool { return o.alg&Locale != 0 }
func (o Options) Reverse() bool { return o.reverse }

func (o Options) String() string {
	return fmt.Sprintf("%s alg=%s reverse=%t", o.numberType, o.alg, o.reverse)
}
