package config

import (
	"strconv"

	"github.com/spf13/pflag"

	"github.com/vipcxj/natsort/internal/ns"
)

// Setting keys. Each is also the long flag name and, upper-cased with
// dashes turned into underscores behind EnvPrefix, the environment variable.
const (
	KeyNumberType     = "number-type"
	KeySign           = "sign"
	KeyNoExp          = "noexp"
	KeyPaths          = "paths"
	KeyLocale         = "locale"
	KeyReverse        = "reverse"
	KeyZeroTerminated = "zero-terminated"
	KeyLogLevel       = "log-level"
	KeyLogFormat      = "log-format"
	KeyConfig         = "config"
)

const flagNoSign = "nosign"

// numberTypeValue rejects unknown number types while flags are parsed.
type numberTypeValue struct {
	t *ns.NumberType
}

func (v numberTypeValue) String() string {
	if v.t == nil {
		return ns.NumberTypeInt.String()
	}
	return v.t.String()
}

func (v numberTypeValue) Set(s string) error {
	t, err := ns.ParseNumberType(s)
	if err != nil {
		return err
	}
	*v.t = t
	return nil
}

func (v numberTypeValue) Type() string { return "type" }

// signValue backs both --sign and --nosign. They write the same bool, so
// whichever comes last on the command line wins.
type signValue struct {
	signed *bool
	want   bool
}

func (v signValue) String() string { return strconv.FormatBool(*v.signed == v.want) }

func (v signValue) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*v.signed = b == v.want
	return nil
}

func (v signValue) Type() string { return "bool" }

// RegisterFlags adds every flag that Load reads to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	numberType := new(ns.NumberType)
	fs.VarP(numberTypeValue{t: numberType}, KeyNumberType, "t",
		"the kind of number to search for: int, float or real (i, f, r)")

	signed := new(bool)
	fs.VarPF(signValue{signed: signed, want: true}, KeySign, "s",
		"treat a leading + or - as part of a number").NoOptDefVal = "true"
	fs.VarPF(signValue{signed: signed, want: false}, flagNoSign, "",
		"do not treat + or - as part of a number").NoOptDefVal = "true"

	fs.Bool(KeyNoExp, false, "do not treat an exponent (1e4) as part of a float")
	fs.BoolP(KeyPaths, "p", false, "sort entries as file system paths")
	fs.BoolP(KeyLocale, "l", false, "compare text using the current locale")
	fs.BoolP(KeyReverse, "r", false, "return the entries in reversed order")
	fs.BoolP(KeyZeroTerminated, "z", false, "read NUL separated entries from stdin")
	fs.String(KeyConfig, "", "read settings from this YAML, TOML or JSON file")
	fs.String(KeyLogLevel, "warn", "log level: debug, info, warn or error")
	fs.String(KeyLogFormat, "text", "log format: text or json")

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == "number_type" {
			name = KeyNumberType
		}
		return pflag.NormalizedName(name)
	})
}
